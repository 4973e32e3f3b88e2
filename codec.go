package xsd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	xsderrors "github.com/soapkit/xsd/errors"
	"github.com/soapkit/xsd/internal/charset"
)

var (
	errUnknownType     = errors.New("unknown datatype")
	errLiteralTooLarge = errors.New("literal exceeds size limit")
)

// Codec parses literals into values of named datatypes. A Codec is
// immutable and safe for concurrent use.
type Codec struct {
	charset        charset.Validator
	logger         *slog.Logger
	maxLiteralSize int
}

// Param is one named literal of a call, such as an RPC parameter.
type Param struct {
	Name    string
	Type    QName
	Literal string
}

// NewCodec builds a codec from opts.
func NewCodec(opts Options) (*Codec, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("new codec: %w", err)
	}
	return &Codec{
		charset:        resolved.charset,
		logger:         resolved.logger,
		maxLiteralSize: resolved.maxLiteralSize,
	}, nil
}

var defaultCodec = sync.OnceValue(func() *Codec {
	c, err := NewCodec(NewOptions())
	if err != nil {
		panic(err)
	}
	return c
})

// Parse reads literal as the named datatype with the default codec.
func Parse(typ QName, literal string) (Value, error) {
	return defaultCodec().Parse(typ, literal)
}

// MustParse is like Parse but panics on error. It is meant for literals
// known at compile time.
func MustParse(typ QName, literal string) Value {
	v, err := Parse(typ, literal)
	if err != nil {
		panic(err)
	}
	return v
}

// Encoding returns the IANA name of the charset string values are checked
// against.
func (c *Codec) Encoding() string {
	return c.orDefault().charset.Name()
}

// Parse reads literal as the named datatype. Errors are
// *errors.ValueSpaceError values matching errors.ErrValueSpace.
func (c *Codec) Parse(typ QName, literal string) (Value, error) {
	c = c.orDefault()
	info, ok := Lookup(typ)
	if !ok {
		err := rejectLiteral(typ, literal, errUnknownType)
		c.logReject(typ, literal, err)
		return nil, err
	}
	return c.parseWith(info, literal)
}

// ParseParams reads every parameter and returns the values in order.
// Rejected parameters leave a nil entry and are reported together as an
// errors.List, each located by its parameter name.
func (c *Codec) ParseParams(params []Param) ([]Value, error) {
	c = c.orDefault()
	values := make([]Value, len(params))
	var list xsderrors.List
	for i, p := range params {
		v, err := c.Parse(p.Type, p.Literal)
		if err != nil {
			vse, ok := xsderrors.AsValueSpace(err)
			if !ok {
				vse = xsderrors.NewValueSpaceCause(p.Type, p.Literal, err)
			}
			list = append(list, vse.WithPath(p.Name))
			continue
		}
		values[i] = v
	}
	if len(list) > 0 {
		return values, list
	}
	return values, nil
}

// NewString checks s against the codec's charset.
func (c *Codec) NewString(s string) (String, error) {
	c = c.orDefault()
	v, err := newString(c.charset, s)
	if err != nil {
		c.logReject(StringName, s, err)
	}
	return v, err
}

// NewNormalizedString checks s against the codec's charset and rejects tab,
// carriage return and line feed.
func (c *Codec) NewNormalizedString(s string) (NormalizedString, error) {
	c = c.orDefault()
	v, err := newNormalizedString(c.charset, s)
	if err != nil {
		c.logReject(NormalizedStringName, s, err)
	}
	return v, err
}

func (c *Codec) parseWith(info *TypeInfo, literal string) (Value, error) {
	if c.maxLiteralSize > 0 && len(literal) > c.maxLiteralSize {
		err := rejectLiteral(info.Name, truncateLiteral(literal, c.maxLiteralSize), errLiteralTooLarge)
		c.logReject(info.Name, literal, err)
		return nil, err
	}
	v, err := info.parse(c, literal)
	if err != nil {
		c.logReject(info.Name, literal, err)
		return nil, err
	}
	return v, nil
}

func (c *Codec) logReject(typ QName, literal string, err error) {
	if !c.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	c.logger.Debug("literal rejected",
		slog.String("type", typ.String()),
		slog.String("literal", truncateLiteral(literal, 256)),
		slog.Any("error", err),
	)
}

func (c *Codec) orDefault() *Codec {
	if c == nil {
		return defaultCodec()
	}
	return c
}

func truncateLiteral(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package xsd

import (
	xsderrors "github.com/soapkit/xsd/errors"
	"github.com/soapkit/xsd/internal/value"
)

// Value is implemented by every datatype value.
type Value interface {
	// Type returns the qualified name of the value's datatype.
	Type() QName
	// IsNil reports whether the value is absent.
	IsNil() bool
	// String returns the canonical lexical form, or "" for a nil value.
	String() string
}

// trim strips leading and trailing XML whitespace. Whitespace inside a
// literal is left for the grammar to reject.
func trim(s string) string {
	return value.TrimXMLWhitespaceString(s)
}

func rejectLiteral(typ QName, literal string, cause error) error {
	if cause == nil {
		return xsderrors.NewValueSpace(typ, literal)
	}
	return xsderrors.NewValueSpaceCause(typ, literal, cause)
}

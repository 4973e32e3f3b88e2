package xsd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/soapkit/xsd/internal/charset"
)

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

type stringOption struct {
	value string
	set   bool
}

func (o stringOption) resolved(def string) string {
	if !o.set || o.value == "" {
		return def
	}
	return o.value
}

// Options configures a Codec. The zero value is valid and equals
// NewOptions().
type Options struct {
	logger         *slog.Logger
	encoding       stringOption
	maxLiteralSize intOption
}

type resolvedOptions struct {
	charset        charset.Validator
	logger         *slog.Logger
	maxLiteralSize int
}

func (o Options) withDefaults() (resolvedOptions, error) {
	cs, err := charset.Lookup(o.encoding.resolved(charset.DefaultName))
	if err != nil {
		return resolvedOptions{}, fmt.Errorf("encoding: %w", err)
	}
	maxLiteralSize := o.maxLiteralSize.resolved()
	if maxLiteralSize < 0 {
		return resolvedOptions{}, fmt.Errorf("max literal size must be >= 0, got %d", maxLiteralSize)
	}
	logger := o.logger
	if logger == nil {
		logger = discardLogger()
	}
	return resolvedOptions{
		charset:        cs,
		logger:         logger,
		maxLiteralSize: maxLiteralSize,
	}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Package errors defines the error kinds reported by the datatype codec.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soapkit/xsd/qname"
)

var (
	// ErrLibrary is the generic library error every codec error matches.
	ErrLibrary = errors.New("xsd")
	// ErrValueSpace reports a literal outside its datatype's lexical or value space.
	ErrValueSpace = fmt.Errorf("%w: value space", ErrLibrary)
)

// ErrorCode represents a W3C XSD error code.
type ErrorCode string

// ErrDatatypeInvalid indicates a lexical value is invalid for its datatype.
const ErrDatatypeInvalid ErrorCode = "cvc-datatype-valid"

// ValueSpaceError describes a literal rejected by a datatype.
//
//nolint:errname // public API name uses XSD domain term.
type ValueSpaceError struct {
	// Type is the qualified name of the rejecting datatype.
	Type qname.QName
	// Literal is the offending input as received.
	Literal string
	// Path optionally locates the literal, e.g. an RPC parameter name.
	Path string
	// Err is an optional underlying cause.
	Err error
}

// NewValueSpace builds a ValueSpaceError for typ and literal.
func NewValueSpace(typ qname.QName, literal string) *ValueSpaceError {
	return &ValueSpaceError{Type: typ, Literal: literal}
}

// NewValueSpaceCause builds a ValueSpaceError that wraps cause.
func NewValueSpaceCause(typ qname.QName, literal string, cause error) *ValueSpaceError {
	return &ValueSpaceError{Type: typ, Literal: literal, Err: cause}
}

// Error formats the rejection as "<type>: cannot accept '<literal>'."
func (e *ValueSpaceError) Error() string {
	if e == nil {
		return "value space error <nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: cannot accept '%s'.", e.Type, e.Literal)
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " (%v)", e.Err)
	}
	return b.String()
}

// Code returns the W3C error code for datatype failures.
func (e *ValueSpaceError) Code() ErrorCode {
	return ErrDatatypeInvalid
}

// Unwrap exposes ErrValueSpace and the optional cause to errors.Is/As.
func (e *ValueSpaceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValueSpace}
	}
	return []error{ErrValueSpace, e.Err}
}

// WithPath returns a copy of e located at path.
func (e *ValueSpaceError) WithPath(path string) *ValueSpaceError {
	out := *e
	out.Path = path
	return &out
}

// AsValueSpace extracts a ValueSpaceError from err.
func AsValueSpace(err error) (*ValueSpaceError, bool) {
	var vse *ValueSpaceError
	if errors.As(err, &vse) && vse != nil {
		return vse, true
	}
	return nil, false
}

package errors

import (
	"errors"
	"fmt"
)

// List is an error that wraps one or more value-space errors.
type List []*ValueSpaceError //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the errors.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no value space errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Unwrap exposes the individual errors to errors.Is/As.
func (l List) Unwrap() []error {
	out := make([]error, 0, len(l))
	for _, e := range l {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// AsList extracts the value-space errors from err.
func AsList(err error) ([]*ValueSpaceError, bool) {
	if err == nil {
		return nil, false
	}
	var list List
	if errors.As(err, &list) {
		return []*ValueSpaceError(list), true
	}
	if vse, ok := AsValueSpace(err); ok {
		return []*ValueSpaceError{vse}, true
	}
	return nil, false
}

package errors

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/soapkit/xsd/qname"
)

var shortName = qname.New("http://www.w3.org/2001/XMLSchema", "short")

func TestValueSpaceErrorFormatting(t *testing.T) {
	cause := &url.Error{Op: "parse", URL: "%zz", Err: errors.New("invalid escape")}
	tests := []struct {
		name string
		err  *ValueSpaceError
		want string
	}{
		{
			name: "literal only",
			err:  NewValueSpace(shortName, "32768"),
			want: "{http://www.w3.org/2001/XMLSchema}short: cannot accept '32768'.",
		},
		{
			name: "with path",
			err:  NewValueSpace(shortName, "x").WithPath("count"),
			want: "{http://www.w3.org/2001/XMLSchema}short: cannot accept 'x'. at count",
		},
		{
			name: "with cause",
			err:  NewValueSpaceCause(qname.New("", "anyURI"), "%zz", cause),
			want: `anyURI: cannot accept '%zz'. (parse "%zz": invalid escape)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueSpaceErrorMatchesSentinels(t *testing.T) {
	cause := errors.New("out of range")
	err := fmt.Errorf("decode: %w", NewValueSpaceCause(shortName, "99999", cause))

	if !errors.Is(err, ErrValueSpace) {
		t.Fatal("errors.Is(err, ErrValueSpace) = false")
	}
	if !errors.Is(err, ErrLibrary) {
		t.Fatal("errors.Is(err, ErrLibrary) = false")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false")
	}
	vse, ok := AsValueSpace(err)
	if !ok {
		t.Fatal("AsValueSpace() ok = false")
	}
	if vse.Type != shortName || vse.Literal != "99999" {
		t.Fatalf("AsValueSpace() = %+v", vse)
	}
	if vse.Code() != ErrDatatypeInvalid {
		t.Fatalf("Code() = %q, want %q", vse.Code(), ErrDatatypeInvalid)
	}
}

func TestWithPathDoesNotMutate(t *testing.T) {
	orig := NewValueSpace(shortName, "x")
	_ = orig.WithPath("p")
	if orig.Path != "" {
		t.Fatalf("WithPath mutated receiver: %q", orig.Path)
	}
}

func TestListError(t *testing.T) {
	tests := []struct {
		name string
		list List
		want string
	}{
		{name: "empty", list: nil, want: "no value space errors"},
		{
			name: "single",
			list: List{NewValueSpace(shortName, "a")},
			want: "{http://www.w3.org/2001/XMLSchema}short: cannot accept 'a'.",
		},
		{
			name: "multiple",
			list: List{NewValueSpace(shortName, "a"), NewValueSpace(shortName, "b")},
			want: "{http://www.w3.org/2001/XMLSchema}short: cannot accept 'a'. (and 1 more)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsList(t *testing.T) {
	list := List{NewValueSpace(shortName, "a"), NewValueSpace(shortName, "b")}
	got, ok := AsList(fmt.Errorf("wrapped: %w", list))
	if !ok || len(got) != 2 {
		t.Fatalf("AsList(list) = %v, %v", got, ok)
	}
	if !errors.Is(list, ErrValueSpace) {
		t.Fatal("errors.Is(list, ErrValueSpace) = false")
	}

	got, ok = AsList(NewValueSpace(shortName, "c"))
	if !ok || len(got) != 1 || got[0].Literal != "c" {
		t.Fatalf("AsList(single) = %v, %v", got, ok)
	}

	if _, ok := AsList(errors.New("other")); ok {
		t.Fatal("AsList(other) ok = true")
	}
	if _, ok := AsList(nil); ok {
		t.Fatal("AsList(nil) ok = true")
	}
}

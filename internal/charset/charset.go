// Package charset checks that raw text is well formed in a named character
// encoding.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultName is the encoding used when none is configured.
const DefaultName = "UTF-8"

var replacementChar = []byte(string(utf8.RuneError))

type kind uint8

const (
	kindUTF8 kind = iota
	kindASCII
	kindDecoder
)

// Validator reports whether text is well formed in one encoding.
// The zero value validates UTF-8.
type Validator struct {
	name string
	kind kind
	enc  encoding.Encoding
}

// UTF8 returns the UTF-8 validator.
func UTF8() Validator {
	return Validator{name: DefaultName, kind: kindUTF8}
}

// Lookup resolves an IANA charset name.
func Lookup(name string) (Validator, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return UTF8(), nil
	}
	switch strings.ToUpper(trimmed) {
	case "US-ASCII", "ASCII":
		return Validator{name: "US-ASCII", kind: kindASCII}, nil
	}
	enc, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil {
		return Validator{}, fmt.Errorf("charset %q: %w", trimmed, err)
	}
	if enc == nil {
		return Validator{}, fmt.Errorf("charset %q: unsupported", trimmed)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = trimmed
	}
	if enc == unicode.UTF8 {
		return Validator{name: canonical, kind: kindUTF8}, nil
	}
	return Validator{name: canonical, kind: kindDecoder, enc: enc}, nil
}

// Name returns the IANA name of the encoding.
func (v Validator) Name() string {
	if v.name == "" {
		return DefaultName
	}
	return v.name
}

// ValidString reports whether s is well formed in the encoding.
func (v Validator) ValidString(s string) bool {
	switch v.kind {
	case kindUTF8:
		return utf8.ValidString(s)
	case kindASCII:
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return false
			}
		}
		return true
	default:
		return v.Valid([]byte(s))
	}
}

// Valid reports whether b is well formed in the encoding.
// Decoders in x/text substitute U+FFFD for malformed input, so any
// replacement character in the decoded text marks b as invalid.
func (v Validator) Valid(b []byte) bool {
	switch v.kind {
	case kindUTF8:
		return utf8.Valid(b)
	case kindASCII:
		return v.ValidString(string(b))
	}
	decoded, err := v.enc.NewDecoder().Bytes(b)
	if err != nil {
		return false
	}
	return !bytes.Contains(decoded, replacementChar)
}

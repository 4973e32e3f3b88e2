package xsd

import (
	"slices"

	"github.com/soapkit/xsd/internal/value"
)

// HexBinary is an xs:hexBinary value. It renders as uppercase hex digits.
type HexBinary struct {
	data []byte
	set  bool
}

// ParseHexBinary accepts an even number of hex digits in either case.
func ParseHexBinary(s string) (HexBinary, error) {
	data, err := value.ParseHexBinary(s)
	if err != nil {
		return HexBinary{}, rejectLiteral(HexBinaryName, s, err)
	}
	return HexBinary{data: data, set: true}, nil
}

// HexBinaryOf wraps a copy of b.
func HexBinaryOf(b []byte) HexBinary {
	return HexBinary{data: cloneBytes(b), set: true}
}

func (HexBinary) Type() QName { return HexBinaryName }

func (v HexBinary) IsNil() bool { return !v.set }

func (v HexBinary) String() string {
	if !v.set {
		return ""
	}
	return value.FormatHexBinary(v.data)
}

// Bytes returns a copy of the decoded octets.
func (v HexBinary) Bytes() []byte { return cloneBytes(v.data) }

// Base64Binary is an xs:base64Binary value. It renders in the padded
// standard alphabet without line breaks.
type Base64Binary struct {
	data []byte
	set  bool
}

// ParseBase64Binary accepts the standard base64 alphabet. Surrounding
// whitespace is trimmed and trailing padding may be omitted.
func ParseBase64Binary(s string) (Base64Binary, error) {
	data, err := value.ParseBase64Binary(s)
	if err != nil {
		return Base64Binary{}, rejectLiteral(Base64BinaryName, s, err)
	}
	return Base64Binary{data: data, set: true}, nil
}

// Base64BinaryOf wraps a copy of b.
func Base64BinaryOf(b []byte) Base64Binary {
	return Base64Binary{data: cloneBytes(b), set: true}
}

func (Base64Binary) Type() QName { return Base64BinaryName }

func (v Base64Binary) IsNil() bool { return !v.set }

func (v Base64Binary) String() string {
	if !v.set {
		return ""
	}
	return value.FormatBase64Binary(v.data)
}

// Bytes returns a copy of the decoded octets.
func (v Base64Binary) Bytes() []byte { return cloneBytes(v.data) }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return slices.Clone(b)
}

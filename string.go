package xsd

import (
	"errors"

	"github.com/soapkit/xsd/internal/charset"
	"github.com/soapkit/xsd/internal/value"
)

var errCharset = errors.New("malformed in configured charset")

// String is an xs:string value. Its text is kept verbatim.
type String struct {
	data string
	set  bool
}

// ParseString accepts s when it is well-formed UTF-8. Use Codec.NewString
// to validate against another charset.
func ParseString(s string) (String, error) {
	return newString(charset.UTF8(), s)
}

func newString(cs charset.Validator, s string) (String, error) {
	if !cs.ValidString(s) {
		return String{}, rejectLiteral(StringName, s, errCharset)
	}
	return String{data: s, set: true}, nil
}

func (String) Type() QName { return StringName }

func (v String) IsNil() bool { return !v.set }

func (v String) String() string { return v.data }

// NormalizedString is an xs:normalizedString value: a string without tab,
// carriage return or line feed characters.
type NormalizedString struct {
	data string
	set  bool
}

// ParseNormalizedString accepts well-formed UTF-8 without tab, CR or LF.
func ParseNormalizedString(s string) (NormalizedString, error) {
	return newNormalizedString(charset.UTF8(), s)
}

func newNormalizedString(cs charset.Validator, s string) (NormalizedString, error) {
	if err := value.ValidateNormalizedString(s); err != nil {
		return NormalizedString{}, rejectLiteral(NormalizedStringName, s, err)
	}
	if !cs.ValidString(s) {
		return NormalizedString{}, rejectLiteral(NormalizedStringName, s, errCharset)
	}
	return NormalizedString{data: s, set: true}, nil
}

func (NormalizedString) Type() QName { return NormalizedStringName }

func (v NormalizedString) IsNil() bool { return !v.set }

func (v NormalizedString) String() string { return v.data }

// AnySimpleType carries a literal whose datatype is unknown. The literal is
// kept as received.
type AnySimpleType struct {
	data string
	set  bool
}

// ParseAnySimpleType wraps s without validation.
func ParseAnySimpleType(s string) AnySimpleType {
	return AnySimpleType{data: s, set: true}
}

func (AnySimpleType) Type() QName { return AnySimpleTypeName }

func (v AnySimpleType) IsNil() bool { return !v.set }

func (v AnySimpleType) String() string { return v.data }

// Nil is the xsi:nil marker. It is always nil and renders as "".
type Nil struct{}

func (Nil) Type() QName { return NilName }

func (Nil) IsNil() bool { return true }

func (Nil) String() string { return "" }

// Attribute returns the xsi:nil attribute that marks an element as nil.
func (Nil) Attribute() (QName, string) { return AttrNilName, NilValue }

package xsd

import (
	"sync"

	"github.com/soapkit/xsd/internal/builtins"
)

// TypeInfo describes one registered datatype.
type TypeInfo struct {
	// Name is the datatype's qualified name.
	Name QName
	// Base is the datatype it restricts. xs:anySimpleType derives from
	// xs:anyType, which is not registered.
	Base  QName
	parse func(*Codec, string) (Value, error)
}

// Parse reads literal with the default codec.
func (t *TypeInfo) Parse(literal string) (Value, error) {
	return defaultCodec().parseWith(t, literal)
}

// DerivesFrom reports whether t is name or restricts it, directly or
// through its base chain.
func (t *TypeInfo) DerivesFrom(name QName) bool {
	for cur := t; cur != nil; {
		if cur.Name == name || cur.Base == name {
			return true
		}
		next, ok := registry().Get(cur.Base)
		if !ok {
			return false
		}
		cur = next
	}
	return false
}

func entry[T Value](name, base QName, parse func(string) (T, error)) *TypeInfo {
	return &TypeInfo{
		Name: name,
		Base: base,
		parse: func(_ *Codec, s string) (Value, error) {
			v, err := parse(s)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func charsetEntry[T Value](name, base QName, parse func(*Codec, string) (T, error)) *TypeInfo {
	return &TypeInfo{
		Name: name,
		Base: base,
		parse: func(c *Codec, s string) (Value, error) {
			v, err := parse(c, s)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func typeTable() []*TypeInfo {
	return []*TypeInfo{
		entry(AnySimpleTypeName, AnyTypeName, func(s string) (AnySimpleType, error) {
			return ParseAnySimpleType(s), nil
		}),
		entry(NilName, AnySimpleTypeName, func(string) (Nil, error) { return Nil{}, nil }),

		charsetEntry(StringName, AnySimpleTypeName, func(c *Codec, s string) (String, error) {
			return newString(c.charset, s)
		}),
		charsetEntry(NormalizedStringName, StringName, func(c *Codec, s string) (NormalizedString, error) {
			return newNormalizedString(c.charset, s)
		}),
		entry(BooleanName, AnySimpleTypeName, ParseBoolean),
		entry(DecimalName, AnySimpleTypeName, ParseDecimal),
		entry(FloatName, AnySimpleTypeName, ParseFloat),
		entry(DoubleName, AnySimpleTypeName, ParseDouble),
		entry(DurationName, AnySimpleTypeName, ParseDuration),

		entry(DateTimeName, AnySimpleTypeName, ParseDateTime),
		entry(TimeName, AnySimpleTypeName, ParseTime),
		entry(DateName, AnySimpleTypeName, ParseDate),
		entry(GYearMonthName, AnySimpleTypeName, ParseGYearMonth),
		entry(GYearName, AnySimpleTypeName, ParseGYear),
		entry(GMonthDayName, AnySimpleTypeName, ParseGMonthDay),
		entry(GDayName, AnySimpleTypeName, ParseGDay),
		entry(GMonthName, AnySimpleTypeName, ParseGMonth),

		entry(HexBinaryName, AnySimpleTypeName, ParseHexBinary),
		entry(Base64BinaryName, AnySimpleTypeName, ParseBase64Binary),
		entry(AnyURIName, AnySimpleTypeName, ParseAnyURI),
		entry(QNameName, AnySimpleTypeName, ParseQNameValue),

		entry(IntegerName, DecimalName, ParseInteger),
		entry(LongName, IntegerName, ParseLong),
		entry(IntName, LongName, ParseInt),
		entry(ShortName, IntName, ParseShort),
		entry(ByteName, ShortName, ParseByte),
		entry(NonNegativeIntegerName, IntegerName, ParseNonNegativeInteger),
		entry(PositiveIntegerName, NonNegativeIntegerName, ParsePositiveInteger),
		entry(NonPositiveIntegerName, IntegerName, ParseNonPositiveInteger),
		entry(NegativeIntegerName, NonPositiveIntegerName, ParseNegativeInteger),
		entry(UnsignedLongName, NonNegativeIntegerName, ParseUnsignedLong),
		entry(UnsignedIntName, UnsignedLongName, ParseUnsignedInt),
		entry(UnsignedShortName, UnsignedIntName, ParseUnsignedShort),
		entry(UnsignedByteName, UnsignedShortName, ParseUnsignedByte),
	}
}

var registry = sync.OnceValue(func() *builtins.Registry[*TypeInfo] {
	return builtins.New(typeTable(), func(t *TypeInfo) QName { return t.Name })
})

// Lookup returns the datatype registered under name.
func Lookup(name QName) (*TypeInfo, bool) {
	return registry().Get(name)
}

// LookupLocal returns the built-in datatype with the given local name in
// the XML Schema namespace.
func LookupLocal(local string) (*TypeInfo, bool) {
	return registry().GetBuiltin(builtins.TypeName(local))
}

// MustLookup is like Lookup but panics when name is not registered.
func MustLookup(name QName) *TypeInfo {
	return registry().MustGet(name)
}

// IsBuiltin reports whether name is a registered datatype.
func IsBuiltin(name QName) bool {
	return registry().Contains(name)
}

// Types lists every registered datatype in registration order.
func Types() []*TypeInfo {
	return registry().List()
}

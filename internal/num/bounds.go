package num

import "github.com/cockroachdb/apd/v3"

// Bounds is a closed integer range. A nil end is unbounded.
type Bounds struct {
	Min *apd.Decimal
	Max *apd.Decimal
}

func mustDecimal(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	// Unbounded accepts every integer.
	Unbounded = Bounds{}

	// Int64Bounds is the xs:long range.
	Int64Bounds = Bounds{Min: mustDecimal("-9223372036854775808"), Max: mustDecimal("9223372036854775807")}
	// Int32Bounds is the xs:int range.
	Int32Bounds = Bounds{Min: mustDecimal("-2147483648"), Max: mustDecimal("2147483647")}
	// Int16Bounds is the xs:short range.
	Int16Bounds = Bounds{Min: mustDecimal("-32768"), Max: mustDecimal("32767")}
	// Int8Bounds is the xs:byte range.
	Int8Bounds = Bounds{Min: mustDecimal("-128"), Max: mustDecimal("127")}

	// Uint64Bounds is the xs:unsignedLong range.
	Uint64Bounds = Bounds{Min: mustDecimal("0"), Max: mustDecimal("18446744073709551615")}
	// Uint32Bounds is the xs:unsignedInt range.
	Uint32Bounds = Bounds{Min: mustDecimal("0"), Max: mustDecimal("4294967295")}
	// Uint16Bounds is the xs:unsignedShort range.
	Uint16Bounds = Bounds{Min: mustDecimal("0"), Max: mustDecimal("65535")}
	// Uint8Bounds is the xs:unsignedByte range.
	Uint8Bounds = Bounds{Min: mustDecimal("0"), Max: mustDecimal("255")}

	NonNegativeBounds = Bounds{Min: mustDecimal("0")}
	PositiveBounds    = Bounds{Min: mustDecimal("1")}
	NonPositiveBounds = Bounds{Max: mustDecimal("0")}
	NegativeBounds    = Bounds{Max: mustDecimal("-1")}
)

// Contains reports whether v lies inside b.
func (b Bounds) Contains(v Decimal) bool {
	x := v.Apd()
	if b.Min != nil && x.Cmp(b.Min) < 0 {
		return false
	}
	if b.Max != nil && x.Cmp(b.Max) > 0 {
		return false
	}
	return true
}

// Check returns a range error when v lies outside b.
func (b Bounds) Check(v Decimal) *ParseError {
	if !b.Contains(v) {
		return &ParseError{Kind: ParseRange}
	}
	return nil
}

// ParseBoundedInteger parses an integer and checks it against b.
func ParseBoundedInteger(s string, b Bounds) (Decimal, *ParseError) {
	v, perr := ParseInteger(s)
	if perr != nil {
		return Decimal{}, perr
	}
	if perr := b.Check(v); perr != nil {
		return Decimal{}, perr
	}
	return v, nil
}

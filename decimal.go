package xsd

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/soapkit/xsd/internal/num"
)

// Decimal is an xs:decimal value held exactly.
type Decimal struct {
	data num.Decimal
	set  bool
}

// ParseDecimal accepts [+-]?\d*(\.\d*)? after trimming. The canonical form
// drops leading integer zeros, trailing fraction zeros and the sign of
// zero, so "-0.00" renders "0" and "1.230" renders "1.23".
func ParseDecimal(s string) (Decimal, error) {
	d, perr := num.ParseDecimal(trim(s))
	if perr != nil {
		return Decimal{}, rejectLiteral(DecimalName, s, perr)
	}
	return Decimal{data: d, set: true}, nil
}

// DecimalOf returns d in canonical form. NaN and infinities are rejected.
func DecimalOf(d *apd.Decimal) (Decimal, error) {
	v, perr := num.NewDecimal(d)
	if perr != nil {
		return Decimal{}, rejectLiteral(DecimalName, d.String(), perr)
	}
	return Decimal{data: v, set: true}, nil
}

func (Decimal) Type() QName { return DecimalName }

func (v Decimal) IsNil() bool { return !v.set }

func (v Decimal) String() string {
	if !v.set {
		return ""
	}
	return v.data.String()
}

// NonZero reports whether the value differs from zero.
func (v Decimal) NonZero() bool { return v.data.NonZero() }

// Sign returns -1, 0 or +1.
func (v Decimal) Sign() int { return v.data.Sign() }

// Apd returns a copy of the value.
func (v Decimal) Apd() *apd.Decimal { return v.data.Apd() }

// Parts decomposes the value as sign * digits * 10^point.
func (v Decimal) Parts() (sign, digits string, point int) { return v.data.Parts() }

// Cmp compares two decimals numerically.
func (v Decimal) Cmp(other Decimal) int { return v.data.Cmp(other.data) }

// integerKind names one bounded restriction of xs:integer.
type integerKind struct {
	name   QName
	bounds num.Bounds
}

var (
	integerKindInteger            = &integerKind{name: IntegerName, bounds: num.Unbounded}
	integerKindLong               = &integerKind{name: LongName, bounds: num.Int64Bounds}
	integerKindInt                = &integerKind{name: IntName, bounds: num.Int32Bounds}
	integerKindShort              = &integerKind{name: ShortName, bounds: num.Int16Bounds}
	integerKindByte               = &integerKind{name: ByteName, bounds: num.Int8Bounds}
	integerKindNonNegativeInteger = &integerKind{name: NonNegativeIntegerName, bounds: num.NonNegativeBounds}
	integerKindPositiveInteger    = &integerKind{name: PositiveIntegerName, bounds: num.PositiveBounds}
	integerKindNonPositiveInteger = &integerKind{name: NonPositiveIntegerName, bounds: num.NonPositiveBounds}
	integerKindNegativeInteger    = &integerKind{name: NegativeIntegerName, bounds: num.NegativeBounds}
	integerKindUnsignedLong       = &integerKind{name: UnsignedLongName, bounds: num.Uint64Bounds}
	integerKindUnsignedInt        = &integerKind{name: UnsignedIntName, bounds: num.Uint32Bounds}
	integerKindUnsignedShort      = &integerKind{name: UnsignedShortName, bounds: num.Uint16Bounds}
	integerKindUnsignedByte       = &integerKind{name: UnsignedByteName, bounds: num.Uint8Bounds}
)

// Integer is an xs:integer value or one of its bounded restrictions such
// as xs:long, xs:int or xs:short. Type reports which.
type Integer struct {
	kind *integerKind
	data num.Decimal
}

func (k *integerKind) parse(s string) (Integer, error) {
	d, perr := num.ParseBoundedInteger(trim(s), k.bounds)
	if perr != nil {
		return Integer{}, rejectLiteral(k.name, s, perr)
	}
	return Integer{kind: k, data: d}, nil
}

func (k *integerKind) of(d num.Decimal) (Integer, error) {
	if perr := k.bounds.Check(d); perr != nil {
		return Integer{}, rejectLiteral(k.name, d.String(), perr)
	}
	return Integer{kind: k, data: d}, nil
}

// ParseInteger accepts [+-]?\d+ of any magnitude.
func ParseInteger(s string) (Integer, error) { return integerKindInteger.parse(s) }

// ParseLong accepts integers in [-2^63, 2^63-1].
func ParseLong(s string) (Integer, error) { return integerKindLong.parse(s) }

// ParseInt accepts integers in [-2^31, 2^31-1].
func ParseInt(s string) (Integer, error) { return integerKindInt.parse(s) }

// ParseShort accepts integers in [-2^15, 2^15-1].
func ParseShort(s string) (Integer, error) { return integerKindShort.parse(s) }

// ParseByte accepts integers in [-128, 127].
func ParseByte(s string) (Integer, error) { return integerKindByte.parse(s) }

func ParseNonNegativeInteger(s string) (Integer, error) {
	return integerKindNonNegativeInteger.parse(s)
}

func ParsePositiveInteger(s string) (Integer, error) { return integerKindPositiveInteger.parse(s) }

func ParseNonPositiveInteger(s string) (Integer, error) {
	return integerKindNonPositiveInteger.parse(s)
}

func ParseNegativeInteger(s string) (Integer, error) { return integerKindNegativeInteger.parse(s) }

func ParseUnsignedLong(s string) (Integer, error) { return integerKindUnsignedLong.parse(s) }

func ParseUnsignedInt(s string) (Integer, error) { return integerKindUnsignedInt.parse(s) }

func ParseUnsignedShort(s string) (Integer, error) { return integerKindUnsignedShort.parse(s) }

func ParseUnsignedByte(s string) (Integer, error) { return integerKindUnsignedByte.parse(s) }

// IntegerOf returns v as an xs:integer.
func IntegerOf(v int64) Integer {
	return Integer{kind: integerKindInteger, data: num.DecimalFromInt64(v)}
}

// BigIntegerOf returns v as an xs:integer.
func BigIntegerOf(v *big.Int) Integer {
	d := new(apd.Decimal)
	d.Coeff.SetMathBigInt(v)
	if d.Coeff.Sign() < 0 {
		d.Coeff.Neg(&d.Coeff)
		d.Negative = true
	}
	out, _ := num.NewDecimal(d)
	return Integer{kind: integerKindInteger, data: out}
}

// LongOf returns v as an xs:long.
func LongOf(v int64) Integer {
	return Integer{kind: integerKindLong, data: num.DecimalFromInt64(v)}
}

// IntOf returns v as an xs:int.
func IntOf(v int32) Integer {
	return Integer{kind: integerKindInt, data: num.DecimalFromInt64(int64(v))}
}

// ShortOf returns v as an xs:short.
func ShortOf(v int16) Integer {
	return Integer{kind: integerKindShort, data: num.DecimalFromInt64(int64(v))}
}

// ByteOf returns v as an xs:byte.
func ByteOf(v int8) Integer {
	return Integer{kind: integerKindByte, data: num.DecimalFromInt64(int64(v))}
}

// UnsignedLongOf returns v as an xs:unsignedLong.
func UnsignedLongOf(v uint64) Integer {
	d := new(apd.Decimal)
	d.Coeff.SetUint64(v)
	out, _ := num.NewDecimal(d)
	return Integer{kind: integerKindUnsignedLong, data: out}
}

// Restrict re-checks v against the bounds of the named integer type, for
// example to narrow an xs:integer to xs:short. A nil Integer stays nil.
func (v Integer) Restrict(name QName) (Integer, error) {
	if v.kind == nil {
		return Integer{}, nil
	}
	k, ok := integerKinds()[name]
	if !ok {
		return Integer{}, rejectLiteral(name, v.String(), errUnknownType)
	}
	return k.of(v.data)
}

func integerKinds() map[QName]*integerKind {
	kinds := []*integerKind{
		integerKindInteger, integerKindLong, integerKindInt, integerKindShort, integerKindByte,
		integerKindNonNegativeInteger, integerKindPositiveInteger,
		integerKindNonPositiveInteger, integerKindNegativeInteger,
		integerKindUnsignedLong, integerKindUnsignedInt, integerKindUnsignedShort, integerKindUnsignedByte,
	}
	out := make(map[QName]*integerKind, len(kinds))
	for _, k := range kinds {
		out[k.name] = k
	}
	return out
}

func (v Integer) Type() QName {
	if v.kind == nil {
		return IntegerName
	}
	return v.kind.name
}

func (v Integer) IsNil() bool { return v.kind == nil }

func (v Integer) String() string {
	if v.kind == nil {
		return ""
	}
	return v.data.String()
}

// Int64 returns the value when it fits in an int64.
func (v Integer) Int64() (int64, bool) { return v.data.Int64() }

// BigInt returns the value as a big.Int.
func (v Integer) BigInt() *big.Int {
	out, _ := new(big.Int).SetString(v.data.String(), 10)
	return out
}

// NonZero reports whether the value differs from zero.
func (v Integer) NonZero() bool { return v.data.NonZero() }

// Cmp compares two integers numerically, whatever their restriction.
func (v Integer) Cmp(other Integer) int { return v.data.Cmp(other.data) }

// Decimal widens the value to xs:decimal.
func (v Integer) Decimal() Decimal {
	if v.kind == nil {
		return Decimal{}
	}
	return Decimal{data: v.data, set: true}
}

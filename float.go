package xsd

import "github.com/soapkit/xsd/internal/num"

// Float is an xs:float value. Every value is rounded to IEEE-754 single
// precision, so Float64 returns a float32-representable number.
type Float struct {
	data float64
	set  bool
}

// ParseFloat accepts NaN, INF, -INF, or a decimal number with an optional
// exponent. A trailing exponent marker with no digits, as in "1.4E", reads
// as an exponent of zero.
func ParseFloat(s string) (Float, error) {
	f, perr := num.ParseFloat(trim(s), 32)
	if perr != nil {
		return Float{}, rejectLiteral(FloatName, s, perr)
	}
	return Float{data: num.Narrow32(f), set: true}, nil
}

// FloatOf rounds f to single precision.
func FloatOf(f float64) Float {
	return Float{data: num.Narrow32(f), set: true}
}

func (Float) Type() QName { return FloatName }

func (v Float) IsNil() bool { return !v.set }

// Float64 returns the value widened to float64.
func (v Float) Float64() float64 { return v.data }

// Float32 returns the value.
func (v Float) Float32() float32 { return float32(v.data) }

// String renders NaN, INF, -INF, or at most 10 significant digits.
func (v Float) String() string {
	if !v.set {
		return ""
	}
	return num.FormatFloat(v.data, num.FloatDigits, 32)
}

// Compare orders two floats. ok is false when either is NaN.
func (v Float) Compare(other Float) (cmp int, ok bool) {
	return num.CompareFloat(v.data, other.data)
}

// Double is an xs:double value.
type Double struct {
	data float64
	set  bool
}

// ParseDouble accepts the same grammar as ParseFloat at double precision.
func ParseDouble(s string) (Double, error) {
	f, perr := num.ParseFloat(trim(s), 64)
	if perr != nil {
		return Double{}, rejectLiteral(DoubleName, s, perr)
	}
	return Double{data: f, set: true}, nil
}

// DoubleOf returns f as a Double.
func DoubleOf(f float64) Double {
	return Double{data: f, set: true}
}

func (Double) Type() QName { return DoubleName }

func (v Double) IsNil() bool { return !v.set }

// Float64 returns the value.
func (v Double) Float64() float64 { return v.data }

// String renders NaN, INF, -INF, or at most 16 significant digits.
func (v Double) String() string {
	if !v.set {
		return ""
	}
	return num.FormatFloat(v.data, num.DoubleDigits, 64)
}

// Compare orders two doubles. ok is false when either is NaN.
func (v Double) Compare(other Double) (cmp int, ok bool) {
	return num.CompareFloat(v.data, other.data)
}

package num

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FloatClass identifies the ordering class of a float value.
type FloatClass uint8

const (
	FloatFinite FloatClass = iota
	FloatPosInf
	FloatNegInf
	FloatNaN
)

// Significant digit budgets used when rendering.
const (
	FloatDigits  = 10
	DoubleDigits = 16
)

// float32Overflow is the smallest magnitude that rounds to infinity in
// single precision: halfway between MaxFloat32 and 2^128.
var float32Overflow = math.Ldexp(1, 128) - math.Ldexp(1, 103)

// Classify reports the ordering class of f.
func Classify(f float64) FloatClass {
	switch {
	case math.IsNaN(f):
		return FloatNaN
	case math.IsInf(f, 1):
		return FloatPosInf
	case math.IsInf(f, -1):
		return FloatNegInf
	default:
		return FloatFinite
	}
}

// ParseFloat parses a float or double lexical value for the requested bit
// size. The special literals NaN, INF and -INF are recognized first; any
// other input must consist of signs, digits, points and exponent markers.
// A dangling exponent marker is read as an exponent of zero. Values that
// overflow become signed infinities.
func ParseFloat(s string, bits int) (float64, *ParseError) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "":
		return 0, &ParseError{Kind: ParseNoDigits}
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c), c == '+', c == '-', c == '.', c == 'e', c == 'E':
		default:
			return 0, &ParseError{Kind: ParseBadChar}
		}
	}
	if last := s[len(s)-1]; last == 'e' || last == 'E' {
		s += "0"
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &ParseError{Kind: ParseInvalid}
	}
	return f, nil
}

// Narrow32 rounds f to the nearest single-precision value using IEEE-754
// round-half-to-even. NaN and infinities pass through unchanged.
func Narrow32(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	if math.Abs(f) >= float32Overflow {
		return math.Copysign(math.Inf(1), f)
	}
	return float64(float32(f))
}

// FormatFloat renders f like C's %.<digits>g, except that finite values use
// the fewest digits that read back to the same bits-sized value when that
// is shorter than the budget.
func FormatFloat(f float64, digits, bits int) string {
	switch Classify(f) {
	case FloatNaN:
		return "NaN"
	case FloatPosInf:
		return "INF"
	case FloatNegInf:
		return "-INF"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	mantissa, exp := splitExp(strconv.FormatFloat(f, 'e', -1, bits))
	if significantDigits(mantissa) > digits {
		mantissa, exp = splitExp(strconv.FormatFloat(f, 'e', digits-1, bits))
	}
	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(strings.TrimRight(mantissa, "0"), ".")
	}
	x, _ := strconv.Atoi(exp)
	if x < -4 || x >= digits {
		return mantissa + "e" + exp
	}
	return positional(mantissa, x)
}

func splitExp(s string) (string, string) {
	i := strings.IndexByte(s, 'e')
	return s[:i], s[i+1:]
}

func significantDigits(mantissa string) int {
	n := 0
	for i := 0; i < len(mantissa); i++ {
		if isDigit(mantissa[i]) {
			n++
		}
	}
	return n
}

// positional places the decimal point of a d.ddd mantissa scaled by 10^x.
func positional(mantissa string, x int) string {
	sign := ""
	if strings.HasPrefix(mantissa, "-") {
		sign, mantissa = "-", mantissa[1:]
	}
	digits := strings.Replace(mantissa, ".", "", 1)
	switch {
	case x < 0:
		return sign + "0." + strings.Repeat("0", -x-1) + digits
	case len(digits) <= x+1:
		return sign + digits + strings.Repeat("0", x+1-len(digits))
	default:
		return sign + digits[:x+1] + "." + digits[x+1:]
	}
}

// CompareFloat compares two parsed float/double values.
// The boolean result is false when either side is NaN (unordered).
func CompareFloat(a, b float64) (int, bool) {
	ac, bc := Classify(a), Classify(b)
	if ac == FloatNaN || bc == FloatNaN {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

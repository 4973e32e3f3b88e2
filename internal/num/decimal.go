package num

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is an exact base-10 number kept in canonical form: no trailing
// fractional zeros and no negative zero. The zero value is 0.
//
// The wrapped *apd.Decimal is never mutated once a Decimal is built.
type Decimal struct {
	d *apd.Decimal
}

// ParseDecimal parses [+-]?\d*(\.\d*)? into its canonical value. Every part
// of the pattern is optional, so "", "+" and "." all denote zero.
func ParseDecimal(s string) (Decimal, *ParseError) {
	neg, intPart, fracPart, perr := splitDecimal(s)
	if perr != nil {
		return Decimal{}, perr
	}
	return fromParts(neg, intPart, fracPart)
}

// ParseInteger parses [+-]?\d+ and rejects any fractional notation.
func ParseInteger(s string) (Decimal, *ParseError) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return Decimal{}, &ParseError{Kind: ParseNoDigits}
	}
	for j := i; j < len(s); j++ {
		switch {
		case isDigit(s[j]):
		case s[j] == '.':
			return Decimal{}, &ParseError{Kind: ParseFractional}
		case s[j] == '+' || s[j] == '-':
			return Decimal{}, &ParseError{Kind: ParseMultipleSigns}
		default:
			return Decimal{}, &ParseError{Kind: ParseBadChar}
		}
	}
	return ParseDecimal(s)
}

func fromParts(neg bool, intPart, fracPart string) (Decimal, *ParseError) {
	var b strings.Builder
	b.Grow(len(intPart) + len(fracPart) + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	d, _, err := apd.NewFromString(b.String())
	if err != nil {
		return Decimal{}, &ParseError{Kind: ParseInvalid}
	}
	return Decimal{d: d}, nil
}

// NewDecimal copies v into canonical form. Infinite and NaN forms are
// rejected.
func NewDecimal(v *apd.Decimal) (Decimal, *ParseError) {
	if v == nil {
		return Decimal{}, nil
	}
	if v.Form != apd.Finite {
		return Decimal{}, &ParseError{Kind: ParseInvalid}
	}
	d := new(apd.Decimal)
	d.Reduce(v)
	if d.IsZero() {
		d.Negative = false
		d.Exponent = 0
	}
	return Decimal{d: d}, nil
}

// DecimalFromInt64 returns v as a Decimal.
func DecimalFromInt64(v int64) Decimal {
	return Decimal{d: apd.New(v, 0)}
}

// Apd returns a copy of the value that the caller may modify.
func (d Decimal) Apd() *apd.Decimal {
	out := new(apd.Decimal)
	if d.d != nil {
		out.Set(d.d)
	}
	return out
}

// String renders the canonical lexical form, without exponent notation.
func (d Decimal) String() string {
	if d.d == nil {
		return "0"
	}
	return d.d.Text('f')
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	if d.d == nil {
		return 0
	}
	return d.d.Sign()
}

// NonZero reports whether the value differs from zero.
func (d Decimal) NonZero() bool {
	return d.Sign() != 0
}

// IsInteger reports whether the value has no fractional part.
func (d Decimal) IsInteger() bool {
	return !strings.Contains(d.String(), ".")
}

// Cmp compares d and other numerically.
func (d Decimal) Cmp(other Decimal) int {
	return d.Apd().Cmp(other.Apd())
}

// Int64 returns the value as an int64 when it is an integer in range.
func (d Decimal) Int64() (int64, bool) {
	if !d.IsInteger() {
		return 0, false
	}
	v, err := d.Apd().Int64()
	if err != nil {
		return 0, false
	}
	return v, true
}

// Parts decomposes the value as sign * digits * 10^point, where sign is ""
// or "-", digits has no leading zeros and point is zero or negative.
func (d Decimal) Parts() (sign, digits string, point int) {
	s := d.String()
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	digits = strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		digits = "0"
	}
	return sign, digits, -len(fracPart)
}

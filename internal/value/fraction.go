package value

import (
	"math/big"
	"strings"
)

// maxFractionDigits caps rendering of fractions whose decimal expansion does
// not terminate.
const maxFractionDigits = 64

var bigTen = big.NewInt(10)

// ParseFraction converts the digits after a decimal point into an exact
// fraction. Empty input yields zero.
func ParseFraction(digits string) (*big.Rat, bool) {
	if digits == "" {
		return new(big.Rat), true
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok || strings.ContainsAny(digits, "+-_") {
		return nil, false
	}
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(len(digits))), nil)
	return new(big.Rat).SetFrac(num, den), true
}

// FormatFraction renders a fraction in [0,1) as "." followed by its decimal
// digits with trailing zeros removed. Zero renders as the empty string.
func FormatFraction(fraction *big.Rat) string {
	if fraction == nil || fraction.Sign() == 0 {
		return ""
	}
	num := new(big.Int).Set(fraction.Num())
	den := fraction.Denom()
	var b strings.Builder
	b.WriteByte('.')
	rem := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < maxFractionDigits && num.Sign() != 0; i++ {
		num.Mul(num, bigTen)
		digit.QuoRem(num, den, rem)
		b.WriteByte(byte('0' + digit.Int64()))
		num.Set(rem)
	}
	out := strings.TrimRight(b.String(), "0")
	if out == "." {
		return ""
	}
	return out
}

package value

import (
	"fmt"
	"math/big"
)

const (
	// MinutesPerDay converts offsets expressed in minutes to day fractions.
	MinutesPerDay = 24 * 60
	// SecondsPerDay converts offsets expressed in seconds to day fractions.
	SecondsPerDay = 24 * 60 * 60
)

// ParseOffset converts a timezone suffix into an exact fraction of a day.
// The empty suffix and "Z" both yield a zero offset.
func ParseOffset(tz string) (*big.Rat, error) {
	if tz == "" || tz == "Z" {
		return new(big.Rat), nil
	}
	if len(tz) != 6 || (tz[0] != '+' && tz[0] != '-') || tz[3] != ':' {
		return nil, fmt.Errorf("invalid timezone format: %s", tz)
	}
	hour, ok := parseFixedDigits(tz, 1, 2)
	if !ok {
		return nil, fmt.Errorf("invalid timezone format: %s", tz)
	}
	minute, ok := parseFixedDigits(tz, 4, 2)
	if !ok {
		return nil, fmt.Errorf("invalid timezone format: %s", tz)
	}
	if hour > 14 || minute > 59 || (hour == 14 && minute != 0) {
		return nil, fmt.Errorf("invalid timezone offset: %s", tz)
	}
	minutes := int64(hour*60 + minute)
	if tz[0] == '-' {
		minutes = -minutes
	}
	return big.NewRat(minutes, MinutesPerDay), nil
}

// FormatOffset renders a day-fraction offset as "Z" or "±HH:MM".
// Sub-minute remainders are floored on the absolute value, so a negative
// offset renders with the same digits as its positive counterpart.
func FormatOffset(offset *big.Rat) string {
	if offset == nil || offset.Sign() == 0 {
		return "Z"
	}
	sign := byte('+')
	if offset.Sign() < 0 {
		sign = '-'
	}
	diff := new(big.Rat).Abs(offset)
	diff.Mul(diff, big.NewRat(MinutesPerDay, 1))
	total := new(big.Int).Quo(diff.Num(), diff.Denom()).Int64()
	if total == 0 {
		return "Z"
	}
	return fmt.Sprintf("%c%02d:%02d", sign, total/60, total%60)
}

// OffsetSeconds returns the offset in whole seconds, flooring towards
// negative infinity.
func OffsetSeconds(offset *big.Rat) int64 {
	if offset == nil {
		return 0
	}
	secs := new(big.Rat).Mul(offset, big.NewRat(SecondsPerDay, 1))
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(secs.Num(), secs.Denom(), m)
	return q.Int64()
}

// OffsetFromSeconds converts a zone offset in seconds into a day fraction.
func OffsetFromSeconds(seconds int) *big.Rat {
	return big.NewRat(int64(seconds), SecondsPerDay)
}

func parseFixedDigits(value string, start, length int) (int, bool) {
	if start < 0 || length <= 0 || start+length > len(value) {
		return 0, false
	}
	n := 0
	for i := range length {
		ch := value[start+i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

package value

import (
	"errors"
	"fmt"
	"math/big"
	"time"
)

// MaxAbsYear bounds the astronomical year so day arithmetic stays in int64.
const MaxAbsYear = 999_999_999_999

var (
	errMonthRange  = errors.New("month out of range")
	errDayRange    = errors.New("day out of range")
	errHourRange   = errors.New("hour out of range")
	errMinuteRange = errors.New("minute out of range")
	errSecondRange = errors.New("second out of range")
	errYearRange   = errors.New("year out of range")
)

// Civil is a proleptic Gregorian wall-clock reading plus an exact offset.
//
// Year uses astronomical numbering: 0 is 1 BCE, -1 is 2 BCE. Fraction is the
// sub-second part in [0,1). Offset is the timezone as a fraction of a day.
// The pointers are never mutated after construction.
type Civil struct {
	Fraction *big.Rat
	Offset   *big.Rat
	Year     int64
	Month    int
	Day      int
	Hour     int
	Minute   int
	Second   int
}

// NewCivil validates the fields and normalizes 24:00:00 to the start of the
// following day.
func NewCivil(year int64, month, day, hour, minute, second int, fraction, offset *big.Rat) (Civil, error) {
	if year > MaxAbsYear || year < -MaxAbsYear {
		return Civil{}, errYearRange
	}
	if month < 1 || month > 12 {
		return Civil{}, errMonthRange
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Civil{}, errDayRange
	}
	if minute < 0 || minute > 59 {
		return Civil{}, errMinuteRange
	}
	if second < 0 || second > 59 {
		return Civil{}, errSecondRange
	}
	if fraction == nil {
		fraction = new(big.Rat)
	}
	if fraction.Sign() < 0 || fraction.Cmp(big.NewRat(1, 1)) >= 0 {
		return Civil{}, errSecondRange
	}
	if offset == nil {
		offset = new(big.Rat)
	}
	c := Civil{
		Year:     year,
		Month:    month,
		Day:      day,
		Hour:     hour,
		Minute:   minute,
		Second:   second,
		Fraction: fraction,
		Offset:   offset,
	}
	switch {
	case hour >= 0 && hour < 24:
	case hour == 24 && minute == 0 && second == 0 && fraction.Sign() == 0:
		c.Year, c.Month, c.Day = CivilFromDays(DaysFromCivil(year, month, day) + 1)
		c.Hour = 0
	default:
		return Civil{}, errHourRange
	}
	return c, nil
}

// IsLeap reports whether the astronomical year is a Gregorian leap year.
func IsLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int64, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// DaysFromCivil returns the number of days since 1970-01-01.
func DaysFromCivil(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	m := int64(month)
	if m > 2 {
		m -= 3
	} else {
		m += 9
	}
	doy := (153*m+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (int64, int, int) {
	z := days + 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, int(m), int(d)
}

// Instant returns the exact number of seconds since the Unix epoch in UTC.
func (c Civil) Instant() *big.Rat {
	secs := DaysFromCivil(c.Year, c.Month, c.Day)*SecondsPerDay +
		int64(c.Hour)*3600 + int64(c.Minute)*60 + int64(c.Second)
	out := new(big.Rat).SetInt64(secs)
	if c.Fraction != nil {
		out.Add(out, c.Fraction)
	}
	if c.Offset != nil {
		out.Sub(out, new(big.Rat).Mul(c.Offset, big.NewRat(SecondsPerDay, 1)))
	}
	return out
}

// Compare orders two readings by the instant they denote.
func (c Civil) Compare(other Civil) int {
	return c.Instant().Cmp(other.Instant())
}

// Equal reports whether both readings carry identical fields, including the
// offset. Two readings of the same instant in different zones are not equal.
func (c Civil) Equal(other Civil) bool {
	if c.Year != other.Year || c.Month != other.Month || c.Day != other.Day ||
		c.Hour != other.Hour || c.Minute != other.Minute || c.Second != other.Second {
		return false
	}
	return ratEqual(c.Fraction, other.Fraction) && ratEqual(c.Offset, other.Offset)
}

// maxTimeYear bounds the years time.Time can hold without overflowing its
// internal seconds count.
const maxTimeYear = 292_277_022_656

// Time converts the reading to a time.Time. Readings in the host's current
// zone offset keep local time, all others are returned in UTC. The boolean
// is false when the year is outside what time.Time can represent.
func (c Civil) Time() (time.Time, bool) {
	if c.Year > maxTimeYear || c.Year < -maxTimeYear {
		return time.Time{}, false
	}
	year := int(c.Year)
	nanos := 0
	if c.Fraction != nil && c.Fraction.Sign() != 0 {
		n := new(big.Rat).Mul(c.Fraction, big.NewRat(int64(time.Second), 1))
		nanos = int(new(big.Int).Quo(n.Num(), n.Denom()).Int64())
	}
	wall := time.Date(year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, nanos, time.UTC)
	if int64(wall.Year()) != c.Year {
		return time.Time{}, false
	}
	offset := OffsetSeconds(c.Offset)
	if _, local := time.Now().Zone(); int64(local) == offset {
		t := time.Date(year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, nanos, time.Local)
		if int64(t.Year()) == c.Year {
			return t, true
		}
	}
	return wall.Add(-time.Duration(offset) * time.Second), true
}

// FromTime captures t, including its zone offset and nanoseconds.
func FromTime(t time.Time) Civil {
	_, offset := t.Zone()
	return Civil{
		Year:     int64(t.Year()),
		Month:    int(t.Month()),
		Day:      t.Day(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Second:   t.Second(),
		Fraction: big.NewRat(int64(t.Nanosecond()), int64(time.Second)),
		Offset:   OffsetFromSeconds(offset),
	}
}

// String renders the reading in a debug form.
func (c Civil) String() string {
	return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:%02d%s%s",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, FormatFraction(c.Fraction), FormatOffset(c.Offset))
}

func ratEqual(a, b *big.Rat) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil:
		return b.Sign() == 0
	case b == nil:
		return a.Sign() == 0
	default:
		return a.Cmp(b) == 0
	}
}

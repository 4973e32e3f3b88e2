package durationlex

import (
	"errors"

	"github.com/cockroachdb/apd/v3"
)

// ErrIndeterminateComparison reports that two durations are incomparable in XSD value space.
var ErrIndeterminateComparison = errors.New("duration comparison indeterminate")

// maxCompareComponent keeps reference-time arithmetic inside int64.
const maxCompareComponent = 1 << 40

type durationFields struct {
	seconds *apd.Decimal
	years   int64
	months  int64
	days    int64
	hours   int64
	minutes int64
}

type dateTimeFields struct {
	fraction *apd.Decimal
	year     int64
	month    int64
	day      int64
	hour     int64
	minute   int64
	second   int64
}

// durationOrderReferenceTimes are the XSD 1.0 reference dateTimes for duration ordering.
var durationOrderReferenceTimes = []dateTimeFields{
	{year: 1696, month: 9, day: 1},
	{year: 1697, month: 2, day: 1},
	{year: 1903, month: 3, day: 1},
	{year: 1903, month: 7, day: 1},
}

// Compare orders durations using the XSD 1.0 order relation for duration.
// Durations mixing months with days can be incomparable, for example P1M
// and P30D, in which case ErrIndeterminateComparison is returned.
func Compare(left, right Duration) (int, error) {
	if isDayTimeDuration(left) && isDayTimeDuration(right) {
		return totalSeconds(left).Cmp(totalSeconds(right)), nil
	}
	if !comparable(left) || !comparable(right) {
		return 0, ErrIndeterminateComparison
	}

	leftFields := durationFieldsFor(left)
	rightFields := durationFieldsFor(right)
	sign := 0
	sawEqual := false
	for _, ref := range durationOrderReferenceTimes {
		cmp := compareDateTimeFields(addDurationToDateTime(ref, leftFields), addDurationToDateTime(ref, rightFields))
		if cmp == 0 {
			if sign != 0 {
				return 0, ErrIndeterminateComparison
			}
			sawEqual = true
			continue
		}
		if sawEqual {
			return 0, ErrIndeterminateComparison
		}
		if sign == 0 {
			sign = cmp
			continue
		}
		if sign != cmp {
			return 0, ErrIndeterminateComparison
		}
	}
	return sign, nil
}

func comparable(d Duration) bool {
	for _, v := range []int64{d.Years, d.Months, d.Days, d.Hours, d.Minutes} {
		if v > maxCompareComponent {
			return false
		}
	}
	sec := d.Seconds.Apd()
	return sec.Cmp(apd.New(maxCompareComponent, 0)) <= 0
}

func isDayTimeDuration(d Duration) bool {
	return d.Years == 0 && d.Months == 0
}

// totalSeconds returns the signed length of a day-time duration.
func totalSeconds(d Duration) *apd.Decimal {
	ctx := apd.BaseContext
	total := apd.New(d.Days, 0)
	_, _ = ctx.Mul(total, total, apd.New(24, 0))
	_, _ = ctx.Add(total, total, apd.New(d.Hours, 0))
	_, _ = ctx.Mul(total, total, apd.New(60, 0))
	_, _ = ctx.Add(total, total, apd.New(d.Minutes, 0))
	_, _ = ctx.Mul(total, total, apd.New(60, 0))
	_, _ = ctx.Add(total, total, d.Seconds.Apd())
	if d.Negative {
		total.Neg(total)
	}
	return total
}

func durationFieldsFor(d Duration) durationFields {
	sign := int64(1)
	seconds := d.Seconds.Apd()
	if d.Negative {
		sign = -1
		seconds.Neg(seconds)
	}
	return durationFields{
		years:   sign * d.Years,
		months:  sign * d.Months,
		days:    sign * d.Days,
		hours:   sign * d.Hours,
		minutes: sign * d.Minutes,
		seconds: seconds,
	}
}

func compareDateTimeFields(left, right dateTimeFields) int {
	for _, pair := range [][2]int64{
		{left.year, right.year},
		{left.month, right.month},
		{left.day, right.day},
		{left.hour, right.hour},
		{left.minute, right.minute},
		{left.second, right.second},
	} {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}
	return left.fraction.Cmp(right.fraction)
}

// addDurationToDateTime follows the algorithm in XML Schema 1.0 Part 2,
// appendix E.
func addDurationToDateTime(start dateTimeFields, dur durationFields) dateTimeFields {
	tempMonth := start.month + dur.months
	month := moduloRange(tempMonth, 1, 13)
	carry := fQuotient(tempMonth-1, 12)

	year := start.year + dur.years + carry

	wholeSeconds, fraction := splitSeconds(dur.seconds)
	tempSecond := start.second + wholeSeconds
	second := modulo(tempSecond, 60)
	carry = fQuotient(tempSecond, 60)

	tempMinute := start.minute + dur.minutes + carry
	minute := modulo(tempMinute, 60)
	carry = fQuotient(tempMinute, 60)

	tempHour := start.hour + dur.hours + carry
	hour := modulo(tempHour, 24)
	carry = fQuotient(tempHour, 24)

	maxDay := maximumDayInMonthFor(year, month)
	tempDay := start.day
	switch {
	case tempDay > maxDay:
		tempDay = maxDay
	case tempDay < 1:
		tempDay = 1
	}
	day := tempDay + dur.days + carry

loop:
	for {
		maxDay = maximumDayInMonthFor(year, month)
		switch {
		case day < 1:
			day += maximumDayInMonthFor(year, month-1)
			carry = -1
		case day > maxDay:
			day -= maxDay
			carry = 1
		default:
			break loop
		}
		tempMonth = month + carry
		month = moduloRange(tempMonth, 1, 13)
		year += fQuotient(tempMonth-1, 12)
	}

	return dateTimeFields{
		year:     year,
		month:    month,
		day:      day,
		hour:     hour,
		minute:   minute,
		second:   second,
		fraction: fraction,
	}
}

// splitSeconds returns floor(sec) and the remainder in [0,1).
func splitSeconds(sec *apd.Decimal) (int64, *apd.Decimal) {
	ctx := apd.BaseContext
	whole := new(apd.Decimal)
	_, _ = ctx.Floor(whole, sec)
	fraction := new(apd.Decimal)
	_, _ = ctx.Sub(fraction, sec, whole)
	n, err := whole.Int64()
	if err != nil {
		return 0, fraction
	}
	return n, fraction
}

func maximumDayInMonthFor(year, month int64) int64 {
	m := moduloRange(month, 1, 13)
	y := year + fQuotient(month-1, 12)
	switch m {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if modulo(y, 400) == 0 || (modulo(y, 100) != 0 && modulo(y, 4) == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func fQuotient(a, b int64) int64 {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + b - 1) / b)
}

func modulo(a, b int64) int64 {
	return a - fQuotient(a, b)*b
}

func moduloRange(a, low, high int64) int64 {
	return modulo(a-low, high-low) + low
}

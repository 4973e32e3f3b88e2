package value

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies one of the calendar lexical forms.
type Kind uint8

const (
	KindDateTime Kind = iota
	KindTime
	KindDate
	KindGYearMonth
	KindGYear
	KindGMonthDay
	KindGDay
	KindGMonth
)

// Reference fields for the parts a kind does not carry. The month-day
// reference year is a leap year so that 02-29 is accepted.
const (
	timeReferenceYear     = 1
	monthDayReferenceYear = 0
)

var (
	errYearZero      = errors.New("year 0000 is not allowed")
	errCalendarShape = errors.New("lexical form does not match")
)

const tzPattern = `(Z|[+\-]\d\d:\d\d)?`

var calendarPatterns = [...]*regexp.Regexp{
	KindDateTime:   regexp.MustCompile(`^([+\-]?\d{4,})-(\d\d)-(\d\d)T(\d\d):(\d\d):(\d\d)(?:\.(\d*))?` + tzPattern + `$`),
	KindTime:       regexp.MustCompile(`^(\d\d):(\d\d):(\d\d)(?:\.(\d*))?` + tzPattern + `$`),
	KindDate:       regexp.MustCompile(`^([+\-]?\d{4,})-(\d\d)-(\d\d)` + tzPattern + `$`),
	KindGYearMonth: regexp.MustCompile(`^([+\-]?\d{4,})-(\d\d)` + tzPattern + `$`),
	KindGYear:      regexp.MustCompile(`^([+\-]?\d{4,})` + tzPattern + `$`),
	KindGMonthDay:  regexp.MustCompile(`^(?:--)?(\d\d)-(\d\d)` + tzPattern + `$`),
	KindGDay:       regexp.MustCompile(`^(?:---)?(\d\d)` + tzPattern + `$`),
	KindGMonth:     regexp.MustCompile(`^(?:--)?(\d\d)` + tzPattern + `$`),
}

func (k Kind) String() string {
	switch k {
	case KindDateTime:
		return "dateTime"
	case KindTime:
		return "time"
	case KindDate:
		return "date"
	case KindGYearMonth:
		return "gYearMonth"
	case KindGYear:
		return "gYear"
	case KindGMonthDay:
		return "gMonthDay"
	case KindGDay:
		return "gDay"
	case KindGMonth:
		return "gMonth"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseCalendar parses a lexical calendar value of the given kind.
// Surrounding XML whitespace is ignored.
func ParseCalendar(kind Kind, lexical string) (Civil, error) {
	if int(kind) >= len(calendarPatterns) {
		return Civil{}, fmt.Errorf("unknown calendar kind %s", kind)
	}
	m := calendarPatterns[kind].FindStringSubmatch(TrimXMLWhitespaceString(lexical))
	if m == nil {
		return Civil{}, errCalendarShape
	}
	var (
		year                 int64
		month, day           = 1, 1
		hour, minute, second int
		fraction             = new(big.Rat)
		tz                   string
		err                  error
		ok                   bool
	)
	switch kind {
	case KindDateTime:
		if year, err = parseYear(m[1]); err != nil {
			return Civil{}, err
		}
		month, day = atoi2(m[2]), atoi2(m[3])
		hour, minute, second = atoi2(m[4]), atoi2(m[5]), atoi2(m[6])
		if fraction, ok = ParseFraction(m[7]); !ok {
			return Civil{}, errCalendarShape
		}
		tz = m[8]
	case KindTime:
		year = timeReferenceYear
		hour, minute, second = atoi2(m[1]), atoi2(m[2]), atoi2(m[3])
		if fraction, ok = ParseFraction(m[4]); !ok {
			return Civil{}, errCalendarShape
		}
		tz = m[5]
	case KindDate:
		if year, err = parseYear(m[1]); err != nil {
			return Civil{}, err
		}
		month, day = atoi2(m[2]), atoi2(m[3])
		tz = m[4]
	case KindGYearMonth:
		if year, err = parseYear(m[1]); err != nil {
			return Civil{}, err
		}
		month = atoi2(m[2])
		tz = m[3]
	case KindGYear:
		if year, err = parseYear(m[1]); err != nil {
			return Civil{}, err
		}
		tz = m[2]
	case KindGMonthDay:
		year = monthDayReferenceYear
		month, day = atoi2(m[1]), atoi2(m[2])
		tz = m[3]
	case KindGDay:
		year = timeReferenceYear
		day = atoi2(m[1])
		tz = m[2]
	case KindGMonth:
		year = timeReferenceYear
		month = atoi2(m[1])
		tz = m[2]
	}
	offset, err := ParseOffset(tz)
	if err != nil {
		return Civil{}, err
	}
	return NewCivil(year, month, day, hour, minute, second, fraction, offset)
}

// FormatCalendar renders the fields that kind carries, followed by the
// timezone. A zero offset renders as "Z".
func FormatCalendar(kind Kind, c Civil) string {
	var b strings.Builder
	switch kind {
	case KindDateTime:
		b.WriteString(formatYear(c.Year))
		fmt.Fprintf(&b, "-%02d-%02dT", c.Month, c.Day)
		writeClock(&b, c)
	case KindTime:
		writeClock(&b, c)
	case KindDate:
		b.WriteString(formatYear(c.Year))
		fmt.Fprintf(&b, "-%02d-%02d", c.Month, c.Day)
	case KindGYearMonth:
		b.WriteString(formatYear(c.Year))
		fmt.Fprintf(&b, "-%02d", c.Month)
	case KindGYear:
		b.WriteString(formatYear(c.Year))
	case KindGMonthDay:
		fmt.Fprintf(&b, "%02d-%02d", c.Month, c.Day)
	case KindGDay:
		fmt.Fprintf(&b, "%02d", c.Day)
	case KindGMonth:
		fmt.Fprintf(&b, "%02d", c.Month)
	}
	b.WriteString(FormatOffset(c.Offset))
	return b.String()
}

// Project keeps the fields kind carries and resets the others to the
// reference values ParseCalendar uses. The offset is always kept.
func Project(kind Kind, c Civil) Civil {
	out := c
	if out.Fraction == nil {
		out.Fraction = new(big.Rat)
	}
	if out.Offset == nil {
		out.Offset = new(big.Rat)
	}
	clearClock := func() {
		out.Hour, out.Minute, out.Second = 0, 0, 0
		out.Fraction = new(big.Rat)
	}
	switch kind {
	case KindTime:
		out.Year, out.Month, out.Day = timeReferenceYear, 1, 1
	case KindDate:
		clearClock()
	case KindGYearMonth:
		out.Day = 1
		clearClock()
	case KindGYear:
		out.Month, out.Day = 1, 1
		clearClock()
	case KindGMonthDay:
		out.Year = monthDayReferenceYear
		clearClock()
	case KindGDay:
		out.Year, out.Month = timeReferenceYear, 1
		clearClock()
	case KindGMonth:
		out.Year, out.Day = timeReferenceYear, 1
		clearClock()
	}
	return out
}

// LexicalYear converts an astronomical year back to the lexical numbering
// without a year zero.
func LexicalYear(year int64) int64 {
	if year > 0 {
		return year
	}
	return year - 1
}

func writeClock(b *strings.Builder, c Civil) {
	fmt.Fprintf(b, "%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	b.WriteString(FormatFraction(c.Fraction))
}

// parseYear maps a lexical year onto astronomical numbering. Lexical years
// have no zero, so -0001 becomes 0.
func parseYear(lexical string) (int64, error) {
	digits := strings.TrimLeft(lexical, "+-")
	if strings.Trim(digits, "0") == "" {
		return 0, errYearZero
	}
	year, err := strconv.ParseInt(lexical, 10, 64)
	if err != nil || year > MaxAbsYear || year < -MaxAbsYear {
		return 0, errYearRange
	}
	if year < 0 {
		year++
	}
	return year, nil
}

func formatYear(year int64) string {
	y := LexicalYear(year)
	if y > 0 {
		return fmt.Sprintf("%04d", y)
	}
	return fmt.Sprintf("-%04d", -y)
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

package xsd

import (
	"math/big"
	"time"

	"github.com/soapkit/xsd/internal/value"
)

// calendar holds the reading shared by the eight date and time types.
// Each type renders only the fields it carries.
type calendar struct {
	civil value.Civil
	set   bool
}

func parseCalendar(kind value.Kind, name QName, s string) (calendar, error) {
	c, err := value.ParseCalendar(kind, trim(s))
	if err != nil {
		return calendar{}, rejectLiteral(name, s, err)
	}
	return calendar{civil: c, set: true}, nil
}

func calendarOf(kind value.Kind, t time.Time) calendar {
	return calendar{civil: value.Project(kind, value.FromTime(t)), set: true}
}

func (c calendar) format(kind value.Kind) string {
	if !c.set {
		return ""
	}
	return value.FormatCalendar(kind, c.civil)
}

// IsNil reports whether the value is absent.
func (c calendar) IsNil() bool { return !c.set }

// compare orders by instant. Absent values sort first; a reading without a
// zone is taken as UTC.
func (c calendar) compare(o calendar) int {
	switch {
	case !c.set && !o.set:
		return 0
	case !c.set:
		return -1
	case !o.set:
		return 1
	}
	return c.civil.Compare(o.civil)
}

func (c calendar) equal(o calendar) bool {
	if c.set != o.set {
		return false
	}
	return !c.set || c.civil.Equal(o.civil)
}

// Year returns the year in lexical numbering, where 1 BCE is -1.
func (c calendar) Year() int64 {
	if !c.set {
		return 0
	}
	return value.LexicalYear(c.civil.Year)
}

func (c calendar) Month() int  { return c.civil.Month }
func (c calendar) Day() int    { return c.civil.Day }
func (c calendar) Hour() int   { return c.civil.Hour }
func (c calendar) Minute() int { return c.civil.Minute }
func (c calendar) Second() int { return c.civil.Second }

// Fraction returns the exact sub-second part in [0,1).
func (c calendar) Fraction() *big.Rat {
	if c.civil.Fraction == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(c.civil.Fraction)
}

// Offset returns the timezone offset as an exact fraction of a day.
func (c calendar) Offset() *big.Rat {
	if c.civil.Offset == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(c.civil.Offset)
}

// Time converts the value to a time.Time, filling absent fields with the
// reference date used for parsing. A value in the host's current zone
// offset is returned in time.Local, any other in UTC. ok is false when the
// year cannot be represented.
func (c calendar) Time() (t time.Time, ok bool) {
	if !c.set {
		return time.Time{}, false
	}
	return c.civil.Time()
}

// DateTime is an xs:dateTime value.
type DateTime struct{ calendar }

// ParseDateTime accepts YYYY-MM-DDThh:mm:ss(.s+)?(Z|±hh:mm)?. Years may
// have more than four digits and a leading sign. Year 0000 is rejected.
// A missing timezone is read as UTC.
func ParseDateTime(s string) (DateTime, error) {
	c, err := parseCalendar(value.KindDateTime, DateTimeName, s)
	return DateTime{c}, err
}

// DateTimeOf captures t including its zone offset.
func DateTimeOf(t time.Time) DateTime { return DateTime{calendarOf(value.KindDateTime, t)} }

func (DateTime) Type() QName { return DateTimeName }

func (v DateTime) String() string { return v.format(value.KindDateTime) }

// Compare orders v and other by the instant they denote. It returns 0 for
// the same instant written in different zones.
func (v DateTime) Compare(other DateTime) int { return v.compare(other.calendar) }

// Equal reports whether v and other carry identical fields and offsets.
func (v DateTime) Equal(other DateTime) bool { return v.equal(other.calendar) }

// Time is an xs:time value.
type Time struct{ calendar }

// ParseTime accepts hh:mm:ss(.s+)?(Z|±hh:mm)?.
func ParseTime(s string) (Time, error) {
	c, err := parseCalendar(value.KindTime, TimeName, s)
	return Time{c}, err
}

// TimeOf captures the clock reading and zone offset of t.
func TimeOf(t time.Time) Time { return Time{calendarOf(value.KindTime, t)} }

func (Time) Type() QName { return TimeName }

func (v Time) String() string { return v.format(value.KindTime) }

func (v Time) Compare(other Time) int { return v.compare(other.calendar) }

func (v Time) Equal(other Time) bool { return v.equal(other.calendar) }

// Date is an xs:date value.
type Date struct{ calendar }

// ParseDate accepts YYYY-MM-DD(Z|±hh:mm)?.
func ParseDate(s string) (Date, error) {
	c, err := parseCalendar(value.KindDate, DateName, s)
	return Date{c}, err
}

// DateOf captures the date and zone offset of t.
func DateOf(t time.Time) Date { return Date{calendarOf(value.KindDate, t)} }

func (Date) Type() QName { return DateName }

func (v Date) String() string { return v.format(value.KindDate) }

func (v Date) Compare(other Date) int { return v.compare(other.calendar) }

func (v Date) Equal(other Date) bool { return v.equal(other.calendar) }

// GYearMonth is an xs:gYearMonth value.
type GYearMonth struct{ calendar }

func ParseGYearMonth(s string) (GYearMonth, error) {
	c, err := parseCalendar(value.KindGYearMonth, GYearMonthName, s)
	return GYearMonth{c}, err
}

func GYearMonthOf(t time.Time) GYearMonth {
	return GYearMonth{calendarOf(value.KindGYearMonth, t)}
}

func (GYearMonth) Type() QName { return GYearMonthName }

func (v GYearMonth) String() string { return v.format(value.KindGYearMonth) }

func (v GYearMonth) Compare(other GYearMonth) int { return v.compare(other.calendar) }

func (v GYearMonth) Equal(other GYearMonth) bool { return v.equal(other.calendar) }

// GYear is an xs:gYear value.
type GYear struct{ calendar }

func ParseGYear(s string) (GYear, error) {
	c, err := parseCalendar(value.KindGYear, GYearName, s)
	return GYear{c}, err
}

func GYearOf(t time.Time) GYear { return GYear{calendarOf(value.KindGYear, t)} }

func (GYear) Type() QName { return GYearName }

func (v GYear) String() string { return v.format(value.KindGYear) }

func (v GYear) Compare(other GYear) int { return v.compare(other.calendar) }

func (v GYear) Equal(other GYear) bool { return v.equal(other.calendar) }

// GMonthDay is an xs:gMonthDay value. It renders as MM-DD; the
// "--MM-DD" form is accepted on input.
type GMonthDay struct{ calendar }

func ParseGMonthDay(s string) (GMonthDay, error) {
	c, err := parseCalendar(value.KindGMonthDay, GMonthDayName, s)
	return GMonthDay{c}, err
}

func GMonthDayOf(t time.Time) GMonthDay { return GMonthDay{calendarOf(value.KindGMonthDay, t)} }

func (GMonthDay) Type() QName { return GMonthDayName }

func (v GMonthDay) String() string { return v.format(value.KindGMonthDay) }

func (v GMonthDay) Compare(other GMonthDay) int { return v.compare(other.calendar) }

func (v GMonthDay) Equal(other GMonthDay) bool { return v.equal(other.calendar) }

// GDay is an xs:gDay value. It renders as DD; "---DD" is accepted on input.
type GDay struct{ calendar }

func ParseGDay(s string) (GDay, error) {
	c, err := parseCalendar(value.KindGDay, GDayName, s)
	return GDay{c}, err
}

func GDayOf(t time.Time) GDay { return GDay{calendarOf(value.KindGDay, t)} }

func (GDay) Type() QName { return GDayName }

func (v GDay) String() string { return v.format(value.KindGDay) }

func (v GDay) Compare(other GDay) int { return v.compare(other.calendar) }

func (v GDay) Equal(other GDay) bool { return v.equal(other.calendar) }

// GMonth is an xs:gMonth value. It renders as MM; "--MM" is accepted on
// input.
type GMonth struct{ calendar }

func ParseGMonth(s string) (GMonth, error) {
	c, err := parseCalendar(value.KindGMonth, GMonthName, s)
	return GMonth{c}, err
}

func GMonthOf(t time.Time) GMonth { return GMonth{calendarOf(value.KindGMonth, t)} }

func (GMonth) Type() QName { return GMonthName }

func (v GMonth) String() string { return v.format(value.KindGMonth) }

func (v GMonth) Compare(other GMonth) int { return v.compare(other.calendar) }

func (v GMonth) Equal(other GMonth) bool { return v.equal(other.calendar) }

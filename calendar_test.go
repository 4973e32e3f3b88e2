package xsd_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/soapkit/xsd"
)

func TestCalendarOf(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("", -(5*3600 + 30*60))
	at := time.Date(2024, time.February, 29, 13, 4, 5, 250_000_000, zone)

	tests := []struct {
		name string
		got  xsd.Value
		want string
	}{
		{name: "dateTime", got: xsd.DateTimeOf(at), want: "2024-02-29T13:04:05.25-05:30"},
		{name: "time", got: xsd.TimeOf(at), want: "13:04:05.25-05:30"},
		{name: "date", got: xsd.DateOf(at), want: "2024-02-29-05:30"},
		{name: "gYearMonth", got: xsd.GYearMonthOf(at), want: "2024-02-05:30"},
		{name: "gYear", got: xsd.GYearOf(at), want: "2024-05:30"},
		{name: "gMonthDay", got: xsd.GMonthDayOf(at), want: "02-29-05:30"},
		{name: "gDay", got: xsd.GDayOf(at), want: "29-05:30"},
		{name: "gMonth", got: xsd.GMonthOf(at), want: "02-05:30"},
		{name: "utc", got: xsd.DateTimeOf(time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)), want: "2004-01-01T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.got.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
			again, err := xsd.Parse(tt.got.Type(), tt.want)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.want, err)
			}
			if again.String() != tt.want {
				t.Fatalf("Parse(%q).String() = %q", tt.want, again)
			}
		})
	}
}

func TestCalendarAccessors(t *testing.T) {
	t.Parallel()

	dt, err := xsd.ParseDateTime("-0044-03-15T12:30:45.125+01:00")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	if dt.Year() != -44 || dt.Month() != 3 || dt.Day() != 15 {
		t.Fatalf("date = %d-%d-%d", dt.Year(), dt.Month(), dt.Day())
	}
	if dt.Hour() != 12 || dt.Minute() != 30 || dt.Second() != 45 {
		t.Fatalf("clock = %d:%d:%d", dt.Hour(), dt.Minute(), dt.Second())
	}
	if dt.Fraction().Cmp(big.NewRat(1, 8)) != 0 {
		t.Fatalf("Fraction() = %s", dt.Fraction())
	}
	if dt.Offset().Cmp(big.NewRat(1, 24)) != 0 {
		t.Fatalf("Offset() = %s", dt.Offset())
	}
	dt.Fraction().SetInt64(0)
	if dt.Fraction().Sign() == 0 {
		t.Fatal("Fraction() exposed internal state")
	}
	if dt.String() != "-0044-03-15T12:30:45.125+01:00" {
		t.Fatalf("String() = %q", dt)
	}

	d, err := xsd.ParseDate("-0001-01-01")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.Year() != -1 {
		t.Fatalf("Year() = %d, want -1", d.Year())
	}
}

func TestCalendarTime(t *testing.T) {
	t.Parallel()

	dt, err := xsd.ParseDateTime("2004-01-01T05:00:00+05:00")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	got, ok := dt.Time()
	if !ok {
		t.Fatal("Time() not ok")
	}
	want := time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Time() = %v, want %v", got, want)
	}

	utc, err := xsd.ParseDateTime("2004-01-01T00:00:00.5Z")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	got, ok = utc.Time()
	if !ok || got.Nanosecond() != 500_000_000 {
		t.Fatalf("Time() = %v, %v", got, ok)
	}

	far, err := xsd.ParseGYear("999999999999")
	if err != nil {
		t.Fatalf("ParseGYear() error = %v", err)
	}
	if _, ok := far.Time(); ok {
		t.Fatal("Time() ok for a year beyond time.Time")
	}
	if _, ok := (xsd.DateTime{}).Time(); ok {
		t.Fatal("Time() ok for a nil value")
	}
}

func TestCalendarCompare(t *testing.T) {
	t.Parallel()

	east, err := xsd.ParseDateTime("2004-01-01T05:00:00+05:00")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	utc, err := xsd.ParseDateTime("2004-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	if got := east.Compare(utc); got != 0 {
		t.Fatalf("Compare() = %d, want 0", got)
	}
	if east.Equal(utc) {
		t.Fatal("Equal() = true for different offsets")
	}
	if !utc.Equal(xsd.DateTimeOf(time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC))) {
		t.Fatal("Equal() = false for identical readings")
	}

	later, err := xsd.ParseDateTime("2004-01-01T00:00:00.5Z")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	if utc.Compare(later) >= 0 || later.Compare(utc) <= 0 {
		t.Fatal("fractional seconds not ordered")
	}

	bce, err := xsd.ParseGYear("-0001")
	if err != nil {
		t.Fatalf("ParseGYear() error = %v", err)
	}
	ce, err := xsd.ParseGYear("0001")
	if err != nil {
		t.Fatalf("ParseGYear() error = %v", err)
	}
	if bce.Compare(ce) >= 0 {
		t.Fatal("-0001 should sort before 0001")
	}

	var absent xsd.Date
	d := xsd.DateOf(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))
	if absent.Compare(d) >= 0 || d.Compare(absent) <= 0 || absent.Compare(xsd.Date{}) != 0 {
		t.Fatal("absent values should sort first")
	}
	if !absent.Equal(xsd.Date{}) || absent.Equal(d) {
		t.Fatal("Equal() mismatch for absent values")
	}
}

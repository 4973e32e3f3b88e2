package xsd

import (
	"time"

	"github.com/soapkit/xsd/internal/durationconv"
	"github.com/soapkit/xsd/internal/durationlex"
)

// Duration is an xs:duration value.
type Duration struct {
	data durationlex.Duration
	set  bool
}

// ParseDuration accepts [+-]?P(nY)?(nM)?(nD)?(T(nH)?(nM)?(n(.n)?S)?)?.
// At least one component is required, and a T section needs both a date
// component before it and a time component after it: "P0DT5S" is accepted
// while "PT5S" and "P1DT" are not.
func ParseDuration(s string) (Duration, error) {
	d, err := durationlex.Parse(trim(s))
	if err != nil {
		return Duration{}, rejectLiteral(DurationName, s, err)
	}
	return Duration{data: d, set: true}, nil
}

func (Duration) Type() QName { return DurationName }

func (v Duration) IsNil() bool { return !v.set }

// String renders the nonzero components. When no year, month or day is
// present "0D" stands in for them, so a zero duration renders "P0D".
func (v Duration) String() string {
	if !v.set {
		return ""
	}
	return v.data.String()
}

// Negative reports whether the duration carries a minus sign.
func (v Duration) Negative() bool { return v.data.Negative }

// Components returns the unsigned year, month, day, hour and minute parts.
func (v Duration) Components() (years, months, days, hours, minutes int64) {
	return v.data.Years, v.data.Months, v.data.Days, v.data.Hours, v.data.Minutes
}

// Seconds returns the unsigned seconds part.
func (v Duration) Seconds() Decimal {
	return Decimal{data: v.data.Seconds, set: v.set}
}

// StdDuration converts a day-time duration to time.Duration. It fails when
// years or months are present, since their length depends on a start date.
func (v Duration) StdDuration() (time.Duration, error) {
	return durationconv.ToStdDuration(v.data)
}

// Compare orders two durations by the XML Schema partial order. Some pairs,
// such as P1M and P30D, are incomparable and yield an error.
func (v Duration) Compare(other Duration) (int, error) {
	return durationlex.Compare(v.data, other.data)
}

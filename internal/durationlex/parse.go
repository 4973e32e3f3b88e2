package durationlex

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/soapkit/xsd/internal/num"
)

// durationPattern captures sign, Y, M, D, the time section, H, M and S.
var durationPattern = regexp.MustCompile(`^([+\-]?)P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

var (
	// ErrSyntax reports input that does not match the duration grammar.
	ErrSyntax = errors.New("invalid duration format")
	// ErrNoComponents reports a bare "P".
	ErrNoComponents = errors.New("duration must have at least one component")
	// ErrTimeSection reports a "T" section without a date part or without
	// any hour, minute or second.
	ErrTimeSection = errors.New("time section requires a date component and at least one time component")
)

// Duration is a parsed duration lexical value. Absent components are zero.
type Duration struct {
	Seconds  num.Decimal
	Years    int64
	Months   int64
	Days     int64
	Hours    int64
	Minutes  int64
	Negative bool
}

// Parse parses [+-]?P(nY)?(nM)?(nD)?(T(nH)?(nM)?(n(.n)?S)?)?.
// A "T" section is only accepted after at least one date component, so
// "PT5S" is rejected while "P0DT5S" is not.
func Parse(s string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, fmt.Errorf("%w: %s", ErrSyntax, s)
	}
	hasDate := m[2] != "" || m[3] != "" || m[4] != ""
	hasTime := m[6] != "" || m[7] != "" || m[8] != ""
	if m[5] != "" && (!hasDate || !hasTime) {
		return Duration{}, ErrTimeSection
	}
	if !hasDate && !hasTime {
		return Duration{}, ErrNoComponents
	}

	var d Duration
	fields := []struct {
		dst   *int64
		text  string
		label string
	}{
		{&d.Years, m[2], "year"},
		{&d.Months, m[3], "month"},
		{&d.Days, m[4], "day"},
		{&d.Hours, m[6], "hour"},
		{&d.Minutes, m[7], "minute"},
	}
	for _, f := range fields {
		if f.text == "" {
			continue
		}
		v, err := strconv.ParseInt(f.text, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Duration{}, fmt.Errorf("%s value too large", f.label)
			}
			return Duration{}, fmt.Errorf("invalid %s value: %w", f.label, err)
		}
		*f.dst = v
	}
	if m[8] != "" {
		sec, perr := num.ParseDecimal(m[8])
		if perr != nil {
			return Duration{}, fmt.Errorf("invalid second value: %w", perr)
		}
		d.Seconds = sec
	}
	d.Negative = m[1] == "-"
	return d, nil
}

// String renders the nonzero components. A duration without any date
// component renders "0D" in its place, so zero is "P0D".
func (d Duration) String() string {
	var buf strings.Builder
	buf.Grow(32)
	if d.Negative {
		buf.WriteByte('-')
	}
	buf.WriteByte('P')

	hasDate := false
	for _, c := range []struct {
		v      int64
		suffix byte
	}{{d.Years, 'Y'}, {d.Months, 'M'}, {d.Days, 'D'}} {
		if c.v == 0 {
			continue
		}
		buf.WriteString(strconv.FormatInt(c.v, 10))
		buf.WriteByte(c.suffix)
		hasDate = true
	}
	if !hasDate {
		buf.WriteString("0D")
	}

	if d.Hours == 0 && d.Minutes == 0 && !d.Seconds.NonZero() {
		return buf.String()
	}
	buf.WriteByte('T')
	if d.Hours != 0 {
		buf.WriteString(strconv.FormatInt(d.Hours, 10))
		buf.WriteByte('H')
	}
	if d.Minutes != 0 {
		buf.WriteString(strconv.FormatInt(d.Minutes, 10))
		buf.WriteByte('M')
	}
	if d.Seconds.NonZero() {
		buf.WriteString(d.Seconds.String())
		buf.WriteByte('S')
	}
	return buf.String()
}

package durationconv

import (
	"errors"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/soapkit/xsd/internal/durationlex"
)

var (
	// ErrIndeterminate reports that duration contains years or months.
	ErrIndeterminate = errors.New("duration conversion indeterminate")
	// ErrOverflow reports that duration cannot fit in time.Duration.
	ErrOverflow = errors.New("duration conversion overflow")
)

const maxDuration = time.Duration(^uint64(0) >> 1)

// ParseToStdDuration parses a duration lexical value and converts it to time.Duration.
func ParseToStdDuration(text string) (time.Duration, error) {
	parsed, err := durationlex.Parse(text)
	if err != nil {
		return 0, err
	}
	return ToStdDuration(parsed)
}

// ToStdDuration converts a parsed duration to time.Duration. Sub-nanosecond
// digits are truncated.
func ToStdDuration(parsed durationlex.Duration) (time.Duration, error) {
	if parsed.Years != 0 || parsed.Months != 0 {
		return 0, ErrIndeterminate
	}

	dur := time.Duration(0)
	for _, c := range []struct {
		value int64
		unit  time.Duration
	}{
		{parsed.Days, 24 * time.Hour},
		{parsed.Hours, time.Hour},
		{parsed.Minutes, time.Minute},
	} {
		if c.value == 0 {
			continue
		}
		if c.value > int64(maxDuration/c.unit) {
			return 0, ErrOverflow
		}
		delta := time.Duration(c.value) * c.unit
		if dur > maxDuration-delta {
			return 0, ErrOverflow
		}
		dur += delta
	}

	secs, err := secondsToDuration(parsed.Seconds.Apd())
	if err != nil {
		return 0, err
	}
	if dur > maxDuration-secs {
		return 0, ErrOverflow
	}
	dur += secs

	if parsed.Negative {
		dur = -dur
	}
	return dur, nil
}

func secondsToDuration(sec *apd.Decimal) (time.Duration, error) {
	ctx := apd.BaseContext
	nanos := new(apd.Decimal)
	if _, err := ctx.Mul(nanos, sec, apd.New(int64(time.Second), 0)); err != nil {
		return 0, err
	}
	if _, err := ctx.Floor(nanos, nanos); err != nil {
		return 0, err
	}
	n, err := nanos.Int64()
	if err != nil {
		return 0, ErrOverflow
	}
	return time.Duration(n), nil
}

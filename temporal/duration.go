package temporal

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	// millisPerSecond is the number of milliseconds in a second.
	millisPerSecond = 1000
	// millisPerMinute is the number of milliseconds in a minute.
	millisPerMinute = 60 * millisPerSecond
	// millisPerHour is the number of milliseconds in an hour.
	millisPerHour = 60 * millisPerMinute
	// monthsPerYear is the number of months in a year.
	monthsPerYear = 12
)

// Duration represents a calendar-aware span of time as three independent
// signed components: whole months, whole days, and milliseconds.
//
// A span of "1 month" cannot be represented as a fixed number of days
// because months vary in length, so the components are stored verbatim and
// never normalized against each other, mirroring the server's interval type.
// Each component's sign is independent of the others'.
type Duration struct {
	months int64
	days   int64
	ms     int64
}

// NewDuration returns the Duration with the given months, days, and
// milliseconds components, stored verbatim. There is nothing to validate:
// every combination of signed components is a representable interval.
func NewDuration(months, days, ms int64) Duration {
	return Duration{months: months, days: days, ms: ms}
}

// Months returns the months component.
func (d Duration) Months() int64 { return d.months }

// Days returns the days component.
func (d Duration) Days() int64 { return d.days }

// Milliseconds returns the milliseconds component.
func (d Duration) Milliseconds() int64 { return d.ms }

// String returns the canonical verbose representation of d in the server's
// interval style: nonzero calendar units as pluralized "<n> unit" words,
// then a zero-padded "HH:MM:SS[.frac]" clock segment when any time component
// is nonzero or no calendar unit was emitted. A unit whose sign differs from
// the previous nonzero unit's sign carries an explicit "+" marker, so sign
// changes between calendar fields are never ambiguous. The empty duration
// renders as "00:00:00".
func (d Duration) String() string {
	years := d.months / monthsPerYear
	months := d.months % monthsPerYear

	hours := d.ms / millisPerHour
	rem := d.ms % millisPerHour
	minutes := rem / millisPerMinute
	rem %= millisPerMinute
	seconds := rem / millisPerSecond
	fracMs := rem % millisPerSecond

	// A sign flip in the hour decomposition means the arithmetic overflowed.
	if hours != 0 && (hours < 0) != (d.ms < 0) {
		panic(fmt.Errorf(
			"%w: hour component %d disagrees in sign with %d milliseconds",
			ErrFormat, hours, d.ms,
		))
	}

	var parts []string
	var negative bool // sign of the last emitted calendar unit
	calendarUnit := func(n int64, unit string) {
		if n == 0 {
			return
		}
		var marker string
		if len(parts) > 0 && negative && n > 0 {
			marker = "+"
		}
		if abs(n) != 1 {
			unit += "s"
		}
		parts = append(parts, fmt.Sprintf("%s%d %s", marker, n, unit))
		negative = n < 0
	}
	calendarUnit(years, "year")
	calendarUnit(months, "month")
	calendarUnit(d.days, "day")

	if len(parts) == 0 || hours != 0 || minutes != 0 || seconds != 0 || fracMs != 0 {
		var sign string
		switch {
		case hours < 0 || minutes < 0 || seconds < 0 || fracMs < 0:
			sign = "-"
		case len(parts) > 0 && negative:
			sign = "+"
		}
		clock := fmt.Sprintf(
			"%s%02d:%02d:%02d", sign, abs(hours), abs(minutes), abs(seconds),
		)
		if fracMs != 0 {
			clock += "." + strings.TrimRight(
				fmt.Sprintf("%03d", abs(fracMs)), "0",
			)
		}
		parts = append(parts, clock)
	}

	return strings.Join(parts, " ")
}

// GoString returns the diagnostic representation of d, its canonical string
// in a bracketed type wrapper.
func (d Duration) GoString() string {
	return fmt.Sprintf("Duration [ %s ]", d)
}

// MarshalJSON implements the json.Marshaler interface. The duration is a
// quoted string in the canonical verbose interval format. The format is
// output-only, so Duration has no UnmarshalJSON.
func (d Duration) MarshalJSON() ([]byte, error) {
	s := d.String()
	b := make([]byte, 0, len(s)+len(`""`))
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// abs returns the absolute value of v.
func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

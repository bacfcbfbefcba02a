package temporal

import (
	"fmt"
	"time"

	"github.com/theory/sqltemporal/temporal/calendar"
)

// LocalDate represents a calendar date with no time-of-day and no time zone.
// It stores only its ordinal day number, so comparison and whole-day
// arithmetic are single integer operations.
type LocalDate struct {
	ordinal int
}

// NewLocalDate returns the LocalDate for the given calendar fields. The
// month is zero-based (0 = January, 11 = December), matching the protocol's
// field convention; the day is one-based and must not exceed the number of
// days in that month of that year. Out-of-range fields return an error
// wrapping [ErrRange].
func NewLocalDate(year, month, day int) (LocalDate, error) {
	if month < 0 || month > 11 {
		return LocalDate{}, fmt.Errorf(
			"%w: month %d out of range 0-11", ErrRange, month,
		)
	}
	last := calendar.DaysInMonth(year, time.Month(month+1))
	if day < 1 || day > last {
		return LocalDate{}, fmt.Errorf(
			"%w: day %d out of range 1-%d for %04d-%02d",
			ErrRange, day, last, year, month+1,
		)
	}
	return LocalDateFromOrdinal(
		calendar.ToOrdinal(year, time.Month(month+1), day),
	), nil
}

// LocalDateFromOrdinal returns the LocalDate identified by an ordinal day
// number (days since 1970-01-01, negative for earlier dates). Every ordinal
// denotes a valid date, so this is the canonical path for whole-day
// arithmetic and for the wire codec.
func LocalDateFromOrdinal(ordinal int) LocalDate {
	return LocalDate{ordinal: ordinal}
}

// Ordinal returns the date's ordinal day number.
func (d LocalDate) Ordinal() int { return d.ordinal }

// Year returns the calendar year.
func (d LocalDate) Year() int {
	year, _, _ := calendar.FromOrdinal(d.ordinal)
	return year
}

// Month returns the zero-based month (0 = January).
func (d LocalDate) Month() int {
	_, month, _ := calendar.FromOrdinal(d.ordinal)
	return int(month) - 1
}

// Day returns the one-based day of the month.
func (d LocalDate) Day() int {
	_, _, day := calendar.FromOrdinal(d.ordinal)
	return day
}

// Weekday returns the day of the week.
func (d LocalDate) Weekday() time.Weekday {
	return calendar.Weekday(d.ordinal)
}

// AddDays returns the date n whole days after d; n may be negative.
func (d LocalDate) AddDays(n int) LocalDate {
	return LocalDateFromOrdinal(d.ordinal + n)
}

// Compare compares d with u. It returns -1 if d is before u, +1 if d is
// after u, and 0 if they are the same date.
func (d LocalDate) Compare(u LocalDate) int {
	switch {
	case d.ordinal < u.ordinal:
		return -1
	case d.ordinal > u.ordinal:
		return 1
	}
	return 0
}

// localDateFormat represents the canonical string format for LocalDate
// values. The month is emitted one-based.
const localDateFormat = "2006-01-02"

// String returns the canonical "YYYY-MM-DD" representation of d.
func (d LocalDate) String() string {
	year, month, day := calendar.FromOrdinal(d.ordinal)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// GoString returns the diagnostic representation of d, its canonical string
// in a bracketed type wrapper. It is cosmetic and not part of the wire
// contract.
func (d LocalDate) GoString() string {
	return fmt.Sprintf("LocalDate [ %s ]", d)
}

// MarshalJSON implements the json.Marshaler interface. The date is a quoted
// string in the canonical "YYYY-MM-DD" format.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	const dateJSONSize = len(localDateFormat) + len(`""`)
	b := make([]byte, 0, dateJSONSize)
	b = append(b, '"')
	b = append(b, d.String()...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must be
// a quoted string in the canonical "YYYY-MM-DD" format.
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(localDateFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf(
			"%w: cannot parse %s as %q", ErrRange, data, localDateFormat,
		)
	}
	*d = LocalDateFromOrdinal(
		calendar.ToOrdinal(tim.Year(), tim.Month(), tim.Day()),
	)
	return nil
}

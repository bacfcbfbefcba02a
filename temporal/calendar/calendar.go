// Package calendar implements proleptic Gregorian calendar arithmetic. It
// converts between (year, month, day) triples and ordinal day numbers using
// pure integer math, so no computation ever consults the host time zone or
// the zone database.
//
// An ordinal day number counts days since 1970-01-01; it increases by
// exactly one per calendar day and is negative for earlier dates.
package calendar

import "time"

const (
	// daysPerEra is the number of days in a full 400-year Gregorian cycle.
	daysPerEra = 146097

	// epochDays is the number of days from 0000-03-01 to 1970-01-01 in the
	// March-based year numbering the conversions use internally.
	epochDays = 719468
)

// daysPerMonth holds the number of days in each month of a non-leap year.
var daysPerMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by
// four, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year, accounting for leap years.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// ToOrdinal returns the ordinal day number of a calendar date. The date must
// be valid; ToOrdinal on out-of-range fields is undefined.
//
// The conversion shifts to March-based years so leap days land at the end of
// the internal year, then counts whole 400-year eras. See
// https://howardhinnant.github.io/date_algorithms.html for the derivation.
func ToOrdinal(year int, month time.Month, day int) int {
	y, m := year, int(month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400                    // [0, 399]
	doy := (153*((m+9)%12)+2)/5 + day - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - epochDays
}

// FromOrdinal returns the calendar date identified by an ordinal day number.
// It is the exact inverse of [ToOrdinal].
func FromOrdinal(ordinal int) (year int, month time.Month, day int) {
	z := ordinal + epochDays
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153 // March-based month, [0, 11]
	day = doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	year = yoe + era*400
	if m <= 2 {
		year++
	}
	return year, time.Month(m), day
}

// Weekday returns the day of the week of an ordinal day number. Ordinal zero,
// 1970-01-01, was a Thursday.
func Weekday(ordinal int) time.Weekday {
	return time.Weekday(floorMod(ordinal+int(time.Thursday), 7))
}

// floorDiv divides a by b rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

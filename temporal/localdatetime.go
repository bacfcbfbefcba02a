package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/theory/sqltemporal/temporal/calendar"
)

// millisPerDay is the number of milliseconds in a civil day.
const millisPerDay = 24 * 60 * 60 * 1000

// LocalDateTime represents a calendar date combined with a wall-clock time
// of day. It is not a real-world timestamp: it stores a single UTC-anchored
// instant (milliseconds since 1970-01-01T00:00:00) purely as a compact
// numeric encoding of its wall-clock fields, and every decomposition is
// performed in UTC so the fields never drift with the host time zone.
//
// Two LocalDateTime values are equal exactly when their instants are equal,
// so values compare correctly with ==.
type LocalDateTime struct {
	ms int64
}

// NewLocalDateTime returns the LocalDateTime for the given calendar and
// clock fields. The month is zero-based (0 = January); the remaining fields
// take the same ranges as [NewLocalDate] and [NewLocalTime], and a caller
// wanting defaults passes each field's minimum (day 1, every other field 0).
// Out-of-range fields return an error wrapping [ErrRange].
func NewLocalDateTime(year, month, day, hour, min, sec, msec int) (LocalDateTime, error) {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := NewLocalTime(hour, min, sec, msec)
	if err != nil {
		return LocalDateTime{}, err
	}
	return localDateTimeOfMillis(
		int64(d.Ordinal())*millisPerDay + int64(t.millisOfDay()),
	), nil
}

// localDateTimeOfMillis constructs a LocalDateTime directly from its
// UTC-anchored instant. It is reserved for the wire codec and other internal
// callers holding instants already known to be valid.
func localDateTimeOfMillis(ms int64) LocalDateTime {
	return LocalDateTime{ms: ms}
}

// utc returns the instant as a time.Time pinned to UTC. All field access
// goes through it so the host time zone never participates.
func (dt LocalDateTime) utc() time.Time {
	return time.UnixMilli(dt.ms).UTC()
}

// UnixMilli returns the underlying UTC-anchored instant as milliseconds
// since 1970-01-01T00:00:00.
func (dt LocalDateTime) UnixMilli() int64 { return dt.ms }

// Year returns the calendar year.
func (dt LocalDateTime) Year() int { return dt.utc().Year() }

// Month returns the zero-based month (0 = January).
func (dt LocalDateTime) Month() int { return int(dt.utc().Month()) - 1 }

// Day returns the one-based day of the month.
func (dt LocalDateTime) Day() int { return dt.utc().Day() }

// Hour returns the hour of the day, 0-23.
func (dt LocalDateTime) Hour() int { return dt.utc().Hour() }

// Minute returns the minute of the hour, 0-59.
func (dt LocalDateTime) Minute() int { return dt.utc().Minute() }

// Second returns the second of the minute, 0-59.
func (dt LocalDateTime) Second() int { return dt.utc().Second() }

// Millisecond returns the millisecond of the second, 0-999.
func (dt LocalDateTime) Millisecond() int {
	return dt.utc().Nanosecond() / int(time.Millisecond)
}

// Weekday returns the day of the week.
func (dt LocalDateTime) Weekday() time.Weekday { return dt.utc().Weekday() }

// Compare compares dt with u. It returns -1 if dt is before u, +1 if dt is
// after u, and 0 if they are the same.
func (dt LocalDateTime) Compare(u LocalDateTime) int {
	switch {
	case dt.ms < u.ms:
		return -1
	case dt.ms > u.ms:
		return 1
	}
	return 0
}

// localDateTimeFormat represents the canonical string format for
// LocalDateTime values; the fractional-seconds suffix appears only when the
// millisecond field is nonzero.
const localDateTimeFormat = "2006-01-02T15:04:05.999"

// String returns the canonical "YYYY-MM-DDTHH:MM:SS[.frac]" representation
// of dt with no zone designator, since the type carries no zone information.
// The instant is rendered by the RFC 3339 formatter in UTC and the mandatory
// trailing "Z" stripped; if the formatter ever fails to emit it, String
// panics with an error wrapping [ErrFormat] rather than let the canonical
// format drift silently.
func (dt LocalDateTime) String() string {
	s := dt.utc().Format(time.RFC3339Nano)
	trimmed := strings.TrimSuffix(s, "Z")
	if trimmed == s {
		panic(fmt.Errorf(
			"%w: UTC formatter output %q does not end in Z", ErrFormat, s,
		))
	}
	return trimmed
}

// PlainString returns the legacy display form of dt: the canonical string
// with the "T" date/time separator replaced by a space and, like String, no
// trailing zone text.
func (dt LocalDateTime) PlainString() string {
	return strings.Replace(dt.String(), "T", " ", 1)
}

// GoString returns the diagnostic representation of dt, its canonical string
// in a bracketed type wrapper.
func (dt LocalDateTime) GoString() string {
	return fmt.Sprintf("LocalDateTime [ %s ]", dt)
}

// MarshalJSON implements the json.Marshaler interface. The value is a quoted
// string in the canonical "YYYY-MM-DDTHH:MM:SS[.frac]" format.
func (dt LocalDateTime) MarshalJSON() ([]byte, error) {
	const dateTimeJSONSize = len(localDateTimeFormat) + len(`""`)
	b := make([]byte, 0, dateTimeJSONSize)
	b = append(b, '"')
	b = append(b, dt.String()...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value must be
// a quoted string in the canonical "YYYY-MM-DDTHH:MM:SS[.frac]" format.
func (dt *LocalDateTime) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(localDateTimeFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf(
			"%w: cannot parse %s as %q", ErrRange, data, localDateTimeFormat,
		)
	}
	days := calendar.ToOrdinal(tim.Year(), tim.Month(), tim.Day())
	clock := ((tim.Hour()*60+tim.Minute())*60+tim.Second())*1000 +
		tim.Nanosecond()/int(time.Millisecond)
	*dt = localDateTimeOfMillis(int64(days)*millisPerDay + int64(clock))
	return nil
}

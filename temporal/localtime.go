package temporal

import (
	"fmt"
	"strings"
	"time"
)

// LocalTime represents a wall-clock time of day with millisecond precision,
// independent of any date and any time zone.
type LocalTime struct {
	hour int
	min  int
	sec  int
	msec int
}

// NewLocalTime returns the LocalTime for the given clock fields. Each field
// is range-checked independently — hour 0-23, minute 0-59, second 0-59,
// millisecond 0-999 — and no field carries over into another. Out-of-range
// fields return an error wrapping [ErrRange].
func NewLocalTime(hour, min, sec, msec int) (LocalTime, error) {
	switch {
	case hour < 0 || hour > 23:
		return LocalTime{}, fmt.Errorf(
			"%w: hour %d out of range 0-23", ErrRange, hour,
		)
	case min < 0 || min > 59:
		return LocalTime{}, fmt.Errorf(
			"%w: minute %d out of range 0-59", ErrRange, min,
		)
	case sec < 0 || sec > 59:
		return LocalTime{}, fmt.Errorf(
			"%w: second %d out of range 0-59", ErrRange, sec,
		)
	case msec < 0 || msec > 999:
		return LocalTime{}, fmt.Errorf(
			"%w: millisecond %d out of range 0-999", ErrRange, msec,
		)
	}
	return rawLocalTime(hour, min, sec, msec), nil
}

// rawLocalTime constructs a LocalTime without validation. It is reserved for
// the wire codec and other internal callers whose fields are already known
// to be in range.
func rawLocalTime(hour, min, sec, msec int) LocalTime {
	return LocalTime{hour: hour, min: min, sec: sec, msec: msec}
}

// Hour returns the hour of the day, 0-23.
func (t LocalTime) Hour() int { return t.hour }

// Minute returns the minute of the hour, 0-59.
func (t LocalTime) Minute() int { return t.min }

// Second returns the second of the minute, 0-59.
func (t LocalTime) Second() int { return t.sec }

// Millisecond returns the millisecond of the second, 0-999.
func (t LocalTime) Millisecond() int { return t.msec }

// millisOfDay returns the time as milliseconds since midnight.
func (t LocalTime) millisOfDay() int {
	return ((t.hour*60+t.min)*60+t.sec)*1000 + t.msec
}

// Compare compares t with u. It returns -1 if t is before u, +1 if t is
// after u, and 0 if they are the same time of day.
func (t LocalTime) Compare(u LocalTime) int {
	a, b := t.millisOfDay(), u.millisOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// localTimeFormat represents the canonical string format for LocalTime
// values; the fractional-seconds suffix appears only when the millisecond
// field is nonzero.
const localTimeFormat = "15:04:05.999"

// String returns the canonical "HH:MM:SS" representation of t, with a
// fractional-seconds suffix appended only when the millisecond field is
// nonzero and with trailing fractional zeros stripped, so 500 milliseconds
// renders as ".5".
func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.hour, t.min, t.sec)
	if t.msec != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%03d", t.msec), "0")
	}
	return s
}

// GoString returns the diagnostic representation of t, its canonical string
// in a bracketed type wrapper.
func (t LocalTime) GoString() string {
	return fmt.Sprintf("LocalTime [ %s ]", t)
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string in the canonical "HH:MM:SS[.frac]" format.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	const timeJSONSize = len(localTimeFormat) + len(`""`)
	b := make([]byte, 0, timeJSONSize)
	b = append(b, '"')
	b = append(b, t.String()...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be
// a quoted string in the canonical "HH:MM:SS[.frac]" format.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(localTimeFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf(
			"%w: cannot parse %s as %q", ErrRange, data, localTimeFormat,
		)
	}
	*t = rawLocalTime(
		tim.Hour(), tim.Minute(), tim.Second(),
		tim.Nanosecond()/int(time.Millisecond),
	)
	return nil
}

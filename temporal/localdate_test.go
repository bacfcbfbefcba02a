package temporal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, tc := range []struct {
		year  int
		month int
		day   int
		str   string
	}{
		{2019, 0, 31, "2019-01-31"},
		{2019, 11, 31, "2019-12-31"},
		{2020, 1, 29, "2020-02-29"},
		{1970, 0, 1, "1970-01-01"},
		{1969, 11, 31, "1969-12-31"},
		{1, 0, 1, "0001-01-01"},
	} {
		tc := tc
		t.Run(tc.str, func(t *testing.T) {
			t.Parallel()
			d, err := NewLocalDate(tc.year, tc.month, tc.day)
			r.NoError(err)
			a.Equal(tc.year, d.Year())
			a.Equal(tc.month, d.Month())
			a.Equal(tc.day, d.Day())
			a.Equal(tc.str, d.String())
			a.Equal(fmt.Sprintf("LocalDate [ %s ]", tc.str), d.GoString())

			// The ordinal identifies the date.
			a.Equal(d, LocalDateFromOrdinal(d.Ordinal()))

			// Check JSON.
			json, err := d.MarshalJSON()
			r.NoError(err)
			a.Equal(fmt.Sprintf("%q", tc.str), string(json))
			d2 := new(LocalDate)
			r.NoError(d2.UnmarshalJSON(json))
			a.Equal(d, *d2)
		})
	}
}

func TestLocalDateValidation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		year  int
		month int
		day   int
		err   string
	}{
		{"month_high", 2019, 12, 1, "range: month 12 out of range 0-11"},
		{"month_low", 2019, -1, 1, "range: month -1 out of range 0-11"},
		{"day_low", 2019, 0, 0, "range: day 0 out of range 1-31 for 2019-01"},
		{"day_high", 2019, 0, 32, "range: day 32 out of range 1-31 for 2019-01"},
		{"feb_30", 2019, 1, 30, "range: day 30 out of range 1-28 for 2019-02"},
		{"feb_29_non_leap", 2019, 1, 29, "range: day 29 out of range 1-28 for 2019-02"},
		{"feb_30_leap", 2020, 1, 30, "range: day 30 out of range 1-29 for 2020-02"},
		{"apr_31", 2019, 3, 31, "range: day 31 out of range 1-30 for 2019-04"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewLocalDate(tc.year, tc.month, tc.day)
			require.Error(t, err)
			require.EqualError(t, err, tc.err)
			require.ErrorIs(t, err, ErrRange)
		})
	}
}

func TestLocalDateOrdinalRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d, err := NewLocalDate(1970, 0, 1)
	r.NoError(err)
	a.Equal(0, d.Ordinal())

	// Whole-day arithmetic goes through ordinals.
	a.Equal("1970-01-02", d.AddDays(1).String())
	a.Equal("1969-12-31", d.AddDays(-1).String())
	a.Equal("1970-02-01", d.AddDays(31).String())

	// Crossing a leap day.
	leap, err := NewLocalDate(2020, 1, 28)
	r.NoError(err)
	a.Equal("2020-02-29", leap.AddDays(1).String())
	a.Equal("2020-03-01", leap.AddDays(2).String())
}

func TestLocalDateWeekday(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	epoch, err := NewLocalDate(1970, 0, 1)
	r.NoError(err)
	a.Equal(time.Thursday, epoch.Weekday())

	apr29, err := NewLocalDate(2024, 3, 29)
	r.NoError(err)
	a.Equal(time.Monday, apr29.Weekday())
}

func TestLocalDateCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d, err := NewLocalDate(2024, 3, 29)
	r.NoError(err)
	a.Equal(-1, d.Compare(d.AddDays(1)))
	a.Equal(1, d.Compare(d.AddDays(-1)))
	a.Equal(0, d.Compare(d))

	same, err := NewLocalDate(2024, 3, 29)
	r.NoError(err)
	a.Equal(d, same)
}

func TestLocalDateInvalidJSON(t *testing.T) {
	t.Parallel()
	d := new(LocalDate)
	err := d.UnmarshalJSON([]byte(`"i am not a date"`))
	require.Error(t, err)
	require.EqualError(t, err, fmt.Sprintf(
		"range: cannot parse %q as %q", "i am not a date", localDateFormat,
	))
	require.ErrorIs(t, err, ErrRange)
}

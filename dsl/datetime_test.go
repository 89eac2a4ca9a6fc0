package dsl_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reifylab/reify/dsl"
)

func TestDate_Coercion(t *testing.T) {
	p := dsl.Date()

	want := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, p.MustParse("2021-06-15"))
	assert.Equal(t, want, p.MustParse("2021/06/15"))
	assert.Equal(t, want, p.MustParse(want))

	withTime := time.Date(2021, 6, 15, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, withTime, p.MustParse("2021-06-15 12:30:45"))
	assert.Equal(t, withTime, p.MustParse("2021-06-15T12:30:45"))

	epoch := time.UnixMilli(1623760245000).UTC()
	assert.Equal(t, epoch, p.MustParse(float64(1623760245000)))

	_, err := p.Parse("2021")
	require.Error(t, err)
	assert.Equal(t, `Invalid date, got "2021"`, err.Error())

	_, err = p.Parse("2021-06")
	require.Error(t, err)

	_, err = p.Parse("")
	require.Error(t, err)
	assert.Equal(t, "Invalid date, got empty string", err.Error())

	_, err = p.Parse(true)
	require.Error(t, err)
	assert.Equal(t, "Invalid date, got boolean (true/false)", err.Error())
}

func TestDate_Range(t *testing.T) {
	p := dsl.Date(dsl.DateOptions{Min: "2021-01-01", Max: "2021-12-31"})

	assert.NotPanics(t, func() { p.MustParse("2021-06-15") })

	_, err := p.Parse("2020-12-31")
	require.Error(t, err)
	assert.Equal(t, "Invalid date, should not be before 2021-01-01 00:00:00, got 2020-12-31 00:00:00", err.Error())

	_, err = p.Parse("2022-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "should not be after 2021-12-31 00:00:00")
}

func TestDate_BadBoundPanics(t *testing.T) {
	assert.Panics(t, func() { dsl.Date(dsl.DateOptions{Min: "soon"}) })
}

func TestDateString(t *testing.T) {
	p := dsl.DateString()

	assert.Equal(t, "2021-06-15", p.MustParse("2021/06/15"))
	assert.Equal(t, "2021-06-15", p.MustParse("2021-06-15 23:59:59"))
	assert.Equal(t, "1970-01-01", p.MustParse(float64(0)))
	assert.Equal(t, "2021-06-15", p.MustParse(time.Date(2021, 6, 15, 8, 0, 0, 0, time.UTC)))

	_, err := p.Parse("yesterday")
	require.Error(t, err)
	assert.Equal(t, `Invalid dateString, got "yesterday"`, err.Error())
}

func TestDateString_Range(t *testing.T) {
	p := dsl.DateString(dsl.DateStringOptions{Min: "2021-01-01", Max: "2021-12-31"})

	assert.Equal(t, "2021-06-15", p.MustParse("2021-06-15"))

	_, err := p.Parse("2020-12-31")
	require.Error(t, err)
	assert.Equal(t, "Invalid dateString, should not be before 2021-01-01, got 2020-12-31", err.Error())

	_, err = p.Parse("2022-06-15")
	require.Error(t, err)
	assert.Equal(t, "Invalid dateString, should not be after 2021-12-31, got 2022-06-15", err.Error())
}

func TestTimeString_MinutePrecision(t *testing.T) {
	p := dsl.TimeString()

	assert.Equal(t, "09:30", p.MustParse("9:30"))
	assert.Equal(t, "09:30", p.MustParse("09:30:15"), "extra components are dropped")
	assert.Equal(t, "12:34", p.MustParse("2021-06-15 12:34:56"), "full dates reduce to time of day")

	_, err := p.Parse("25:00")
	require.Error(t, err)
	assert.Equal(t, `Invalid timeString, got "25:00"`, err.Error())

	_, err = p.Parse("09:61")
	require.Error(t, err)

	_, err = p.Parse("noonish")
	require.Error(t, err)
	assert.Equal(t, `Invalid timeString, got "noonish"`, err.Error())

	_, err = p.Parse(true)
	require.Error(t, err)
	assert.Equal(t, "Invalid timeString, got boolean (true/false)", err.Error())
}

func TestTimeString_SecondPrecision(t *testing.T) {
	p := dsl.TimeString(dsl.TimeStringOptions{Precision: dsl.PrecisionSecond})

	assert.Equal(t, "09:30:15", p.MustParse("09:30:15"))
	assert.Equal(t, "09:30:15", p.MustParse("09:30:15.250"), "milliseconds are dropped")

	_, err := p.Parse("09:30")
	require.Error(t, err)
	assert.Equal(t, `Invalid timeString, seconds are required, got "09:30"`, err.Error())
}

func TestTimeString_MillisecondPrecision(t *testing.T) {
	p := dsl.TimeString(dsl.TimeStringOptions{Precision: dsl.PrecisionMillisecond})

	assert.Equal(t, "09:30:15.250", p.MustParse("09:30:15.25"), "fractions pad to three digits")
	assert.Equal(t, "09:30:15.007", p.MustParse("09:30:15.007"))

	_, err := p.Parse("09:30:15")
	require.Error(t, err)
	assert.Equal(t, `Invalid timeString, milliseconds are required, got "09:30:15"`, err.Error())
}

func TestTimeString_Range(t *testing.T) {
	p := dsl.TimeString(dsl.TimeStringOptions{Min: "09:00", Max: "17:00"})

	assert.Equal(t, "09:00", p.MustParse("09:00"))

	_, err := p.Parse("18:00")
	require.Error(t, err)
	assert.Equal(t, "Invalid timeString, should not be after 17:00, got 18:00", err.Error())

	_, err = p.Parse("08:59")
	require.Error(t, err)
	assert.Equal(t, "Invalid timeString, should not be before 09:00, got 08:59", err.Error())
}

func TestTimestamp(t *testing.T) {
	p := dsl.Timestamp()

	assert.Equal(t, "2021-06-15 12:30:45", p.MustParse("2021-06-15T12:30:45"))
	assert.Equal(t, "2021-06-15 00:00:00", p.MustParse("2021-06-15"))
	assert.Equal(t, "1970-01-01 00:00:00", p.MustParse(float64(0)))

	minute := dsl.Timestamp(dsl.TimestampOptions{Precision: dsl.PrecisionMinute})
	assert.Equal(t, "2021-06-15 12:30", minute.MustParse("2021-06-15 12:30:45"))

	_, err := p.Parse("junk")
	require.Error(t, err)
	assert.Equal(t, `Invalid timestamp, got "junk"`, err.Error())
}

func TestTimestamp_Range(t *testing.T) {
	p := dsl.Timestamp(dsl.TimestampOptions{Min: "2021-01-01", Max: "2021-12-31 23:59:59"})

	assert.Equal(t, "2021-06-15 00:00:00", p.MustParse("2021-06-15"))

	_, err := p.Parse("2020-06-15")
	require.Error(t, err)
	assert.Equal(t, "Invalid timestamp, should not be before 2021-01-01 00:00:00, got 2020-06-15 00:00:00", err.Error())
}

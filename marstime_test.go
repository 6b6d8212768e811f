package marstime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dateFormat = "2006-01-02 15:04:05"

func TestLocalTimeAt(t *testing.T) {
	tests := []struct {
		name    string
		site    Site
		time    time.Time
		display string
		utc     string
	}{
		{
			name:    "perseverance landing",
			site:    Perseverance,
			time:    time.Date(2021, time.February, 18, 19, 49, 0, 0, time.UTC),
			display: "Sol 00000 M14:59:59",
			utc:     "2021-02-18 19:49:00",
		},
		{
			name:    "perseverance sol 0",
			site:    Perseverance,
			time:    time.Date(2021, time.February, 18, 4, 24, 15, 806_000_000, time.UTC),
			display: "Sol 00000 M00:00:00",
			utc:     "2021-02-18 04:24:15",
		},
		{
			name:    "perseverance sol 1",
			site:    Perseverance,
			time:    time.Date(2021, time.February, 19, 5, 3, 51, 50_000_000, time.UTC),
			display: "Sol 00001 M00:00:00",
			utc:     "2021-02-19 05:03:51",
		},
		{
			name:    "perseverance sol 2",
			site:    Perseverance,
			time:    time.Date(2021, time.February, 20, 5, 43, 26, 294_000_000, time.UTC),
			display: "Sol 00002 M00:00:00",
			utc:     "2021-02-20 05:43:26",
		},
		{
			name:    "curiosity landing",
			site:    Curiosity,
			time:    time.Date(2012, time.August, 6, 5, 17, 57, 0, time.UTC),
			display: "Sol 00000 M20:43:52",
			utc:     "2012-08-06 05:17:57",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local, err := LocalTimeAt(tt.time, tt.site)
			require.NoError(t, err)
			assert.Equal(t, tt.display, local.String())

			utc, err := local.UTC(tt.site)
			require.NoError(t, err)

			// displayed to the second, as mission clocks are
			got := utc.Round(time.Millisecond).Truncate(time.Second)
			assert.Equal(t, tt.utc, got.Format(dateFormat))
			assert.WithinDuration(t, tt.time, utc, time.Second)
		})
	}
}

func TestLocalTimeAtDecomposition(t *testing.T) {
	local, err := LocalTimeAt(time.Date(2021, time.February, 18, 19, 49, 0, 0, time.UTC), Perseverance)
	require.NoError(t, err)

	assert.Equal(t, 0, local.Sol)
	assert.Equal(t, 14, local.Hour)
	assert.Equal(t, 59, local.Minute)
	assert.InDelta(t, 59.745, local.Second, 0.01)
}

func TestRoundTrip(t *testing.T) {
	start := time.Date(2013, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC)
	step := 7*24*time.Hour + 3*time.Hour + 17*time.Minute + 23*time.Second + 456*time.Millisecond

	for _, site := range []Site{Curiosity, Perseverance, {Name: "meridian", WestLongitude: 0}, {Name: "antimeridian", WestLongitude: 180}} {
		for ts := start; ts.Before(end); ts = ts.Add(step) {
			local, err := LocalTimeAt(ts, site)
			require.NoError(t, err)

			utc, err := UTC(local.Sol, local.Hour, local.Minute, local.Second, site)
			require.NoError(t, err)
			require.WithinDuration(t, ts, utc, time.Second, "%s at %s: %s", site.Name, ts, local)
		}
	}
}

func TestRoundTripBeforeLeapSecondTable(t *testing.T) {
	// no leap seconds either way, so the round trip still holds
	ts := time.Date(1955, time.March, 3, 11, 22, 33, 0, time.UTC)

	local, err := LocalTimeAt(ts, Curiosity)
	require.NoError(t, err)
	assert.Less(t, local.Sol, 0)

	utc, err := local.UTC(Curiosity)
	require.NoError(t, err)
	assert.WithinDuration(t, ts, utc, time.Second)
}

func TestLocalTimeAtNextSol(t *testing.T) {
	for _, ts := range []time.Time{
		time.Date(2012, time.August, 6, 5, 17, 57, 0, time.UTC),
		time.Date(2021, time.February, 18, 19, 49, 0, 0, time.UTC),
		time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC),
	} {
		for _, site := range []Site{Curiosity, Perseverance} {
			first, err := LocalTimeAt(ts, site)
			require.NoError(t, err)
			second, err := LocalTimeAt(ts.Add(SolDuration), site)
			require.NoError(t, err)

			assert.Equal(t, first.Sol+1, second.Sol)
			assert.InDelta(t, secondOfSol(first), secondOfSol(second), 0.01, "%s at %s", site.Name, ts)
		}
	}
}

func TestUTCInvalidInput(t *testing.T) {
	_, err := UTC(0, 0, 0, math.NaN(), Perseverance)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = UTC(0, 0, 0, math.Inf(1), Perseverance)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = UTC(0, 0, 0, 0, Site{Name: "nowhere", WestLongitude: math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLocalTimeAtInvalidInput(t *testing.T) {
	for _, site := range []Site{
		{Name: "nan", WestLongitude: math.NaN()},
		{Name: "inf", WestLongitude: math.Inf(-1)},
		{Name: "negative", WestLongitude: -10},
		{Name: "wrapped", WestLongitude: 400},
	} {
		_, err := LocalTimeAt(time.Now(), site)
		assert.ErrorIs(t, err, ErrInvalidInput, site.Name)
	}
}

func TestCompute(t *testing.T) {
	times, err := Compute(time.Date(2021, time.February, 18, 19, 49, 0, 0, time.UTC), Perseverance.WestLongitude)
	require.NoError(t, err)

	assert.InDelta(t, 2459264.3256944446, times.JulianDateUT, 1e-9)
	assert.InDelta(t, 67.184, times.TTMinusUTC, 1e-12)
	assert.InDelta(t, times.JulianDateUT+67.184/86400, times.JulianDateTT, 1e-9)

	assert.GreaterOrEqual(t, times.LMST, 0.0)
	assert.Less(t, times.LMST, 24.0)
	assert.InDelta(t, times.LMST+times.EquationOfTime/15, times.LTST, 1e-12)

	_, err = Compute(time.Now(), math.NaN())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLocalTimeString(t *testing.T) {
	tests := []struct {
		local    LocalTime
		expected string
	}{
		{LocalTime{}, "Sol 00000 M00:00:00"},
		{LocalTime{Sol: 1234, Hour: 7, Minute: 5, Second: 9.99}, "Sol 01234 M07:05:09"},
		{LocalTime{Sol: 99999, Hour: 23, Minute: 59, Second: 59.5}, "Sol 99999 M23:59:59"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.local.String())
	}
}

func TestSolDuration(t *testing.T) {
	assert.Equal(t, 88775244172800*time.Nanosecond, SolDuration)
}

func secondOfSol(l LocalTime) float64 {
	return float64(l.Hour*3600+l.Minute*60) + l.Second
}

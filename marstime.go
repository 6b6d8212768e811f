// Package marstime converts between UTC and Mars solar time at
// landing sites: Coordinated Mars Time, local mean and true solar
// time, and mission sol clocks.
package marstime

import (
	"fmt"
	"math"
	"time"

	"github.com/subtlepseudonym/marstime/ephemeris"
	"github.com/subtlepseudonym/marstime/julian"
)

// SolDuration is the length of a mean solar day on Mars in Earth time.
const SolDuration = time.Duration(ephemeris.EarthSecondsPerMarsSecond * 86400 * float64(time.Second))

// Times holds every value calculated for a single instant.
type Times struct {
	JulianDateUT float64
	TTMinusUTC   float64 // seconds
	ephemeris.Ephemeris

	LMST float64 // local mean solar time, hours
	LTST float64 // local true solar time, hours; not wrapped into [0,24)
}

// LocalTime is a time of day on a mission's sol clock.
type LocalTime struct {
	Sol    int
	Hour   int
	Minute int
	Second float64
}

// String formats the local time as it is displayed on mission clocks,
// with seconds truncated: "Sol 00042 M13:02:59"
func (l LocalTime) String() string {
	return fmt.Sprintf("Sol %05d M%02d:%02d:%02d", l.Sol, l.Hour, l.Minute, int(l.Second))
}

// UTC is shorthand for UTC(l.Sol, l.Hour, l.Minute, l.Second, site)
func (l LocalTime) UTC(site Site) (time.Time, error) {
	return UTC(l.Sol, l.Hour, l.Minute, l.Second, site)
}

// Compute calculates Mars time at the given west longitude.
func Compute(t time.Time, westLongitude float64) (Times, error) {
	if math.IsNaN(westLongitude) || math.IsInf(westLongitude, 0) {
		return Times{}, fmt.Errorf("west longitude %v: %w", westLongitude, ErrInvalidInput)
	}

	jdut := julian.FromTime(t)
	ttMinusUTC := julian.TTMinusUTC(jdut)
	eph := ephemeris.Compute(jdut + ttMinusUTC/julian.SecondsPerDay)

	lmst := ephemeris.CanonicalHours24(eph.CoordinatedMarsTime - westLongitude/15.0)
	return Times{
		JulianDateUT: jdut,
		TTMinusUTC:   ttMinusUTC,
		Ephemeris:    eph,
		LMST:         lmst,
		LTST:         lmst + eph.EquationOfTime/15.0,
	}, nil
}

// LocalTimeAt returns the mission sol and time of day at a site.
func LocalTimeAt(t time.Time, site Site) (LocalTime, error) {
	err := site.Validate()
	if err != nil {
		return LocalTime{}, err
	}

	times, err := Compute(t, site.WestLongitude)
	if err != nil {
		return LocalTime{}, fmt.Errorf("%s: compute: %w", site.Name, err)
	}

	eastFraction := (360 - site.WestLongitude) / 360
	sol := int(math.Floor(times.MarsSolDate-eastFraction)) - site.FirstSolOffset
	hours := ephemeris.CanonicalHours24(times.CoordinatedMarsTime - (360-site.WestLongitude)*24/360)

	return splitHours(sol, hours), nil
}

// UTC converts a mission sol and time of day at a site back to UTC.
func UTC(sol, hour, minute int, second float64, site Site) (time.Time, error) {
	err := site.Validate()
	if err != nil {
		return time.Time{}, err
	}

	if math.IsNaN(second) || math.IsInf(second, 0) {
		return time.Time{}, fmt.Errorf("%s: second %v: %w", site.Name, second, ErrInvalidInput)
	}

	hours := float64(hour) + float64(minute)/60.0 + second/3600.0
	mtc := hours + (360-site.WestLongitude)*24/360
	msd := float64(sol+site.FirstSolOffset) + mtc/24.0

	jdtt := ephemeris.JulianDateTT(msd)
	return julian.ToTime(julian.UniversalTime(jdtt)), nil
}

func splitHours(sol int, hours float64) LocalTime {
	hour := math.Floor(hours)
	minute := math.Floor((hours - hour) * 60)

	return LocalTime{
		Sol:    sol,
		Hour:   int(hour),
		Minute: int(minute),
		Second: (hours-hour)*3600 - minute*60,
	}
}

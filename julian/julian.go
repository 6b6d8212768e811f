package julian

import (
	"math"
	"time"
)

const (
	EpochJulianDate = 2440587.5 // Julian date of the unix epoch
	J2000           = 2451545.0 // Julian date of 2000-01-01T12:00:00 TT
	SecondsPerDay   = 86400     // not including leap seconds
	TTMinusTAI      = 32.184    // fixed offset of terrestrial time from atomic time
)

// FromTime returns the Julian date (UT) for a particular time.
//
// Leap seconds are not included here. Go's time package ignores
// them entirely, so unix seconds map onto UT days 1:1 and the
// TT correction is applied separately by TerrestrialTime.
func FromTime(t time.Time) float64 {
	return EpochJulianDate + unixSeconds(t)/SecondsPerDay
}

// ToTime is the inverse of FromTime. The returned time is in UTC.
func ToTime(julianDate float64) time.Time {
	seconds := (julianDate - EpochJulianDate) * SecondsPerDay

	whole := math.Floor(seconds)
	nanos := math.Round((seconds - whole) * 1e9)
	return time.Unix(int64(whole), int64(nanos)).UTC()
}

// TTMinusUTC returns the difference in seconds between terrestrial
// time and UTC at the given Julian date.
func TTMinusUTC(julianDate float64) float64 {
	return TTMinusTAI + LeapSeconds(julianDate)
}

// TerrestrialTime converts a Julian date in UT to one in TT.
func TerrestrialTime(jdut float64) float64 {
	return jdut + TTMinusUTC(jdut)/SecondsPerDay
}

// UniversalTime converts a Julian date in TT back to UT.
//
// The leap second lookup is keyed on the TT date rather than the UT
// date being solved for. The two are never more than ~70 seconds
// apart, so the result only differs from an exact solution within a
// minute of a leap second being inserted.
func UniversalTime(jdtt float64) float64 {
	return jdtt - TTMinusUTC(jdtt)/SecondsPerDay
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Package ephemeris implements the Mars solar time series from
// Allison & McEwen (2000), "A post-Pathfinder evaluation of
// areocentric solar coordinates with improved timing recipes for
// Mars seasonal/diurnal climate studies".
//
// Equation numbers refer to AM2000. NASA GISS publishes a worked
// version of the algorithm with test values:
// https://www.giss.nasa.gov/tools/mars24/help/algorithm.html
//
// All angles are in degrees. Angles are not range reduced before
// being passed to trig functions.
package ephemeris

import (
	"math"
)

const (
	EarthSecondsPerMarsSecond = 1.027491252

	marsSolDateEpoch  = 2451549.5 // JDTT of 2000-01-06T00:00:00 TT
	marsSolDateOffset = 44796.0   // MSD at marsSolDateEpoch
	marsSolDateFix    = 0.00096   // small empirical correction to the offset
)

// perturbation is one term of the planetary perturbation sum
// (AM2000, eq. 18)
type perturbation struct {
	Amplitude float64 // A, degrees
	Period    float64 // tau, Julian years
	Phase     float64 // phi, degrees
}

var perturbations = [...]perturbation{
	{0.0071, 2.2353, 49.409},
	{0.0057, 2.7543, 168.173},
	{0.0039, 1.1177, 191.837},
	{0.0037, 15.7866, 21.736},
	{0.0021, 2.1354, 15.704},
	{0.0020, 2.4694, 95.528},
	{0.0018, 32.8493, 49.095},
}

// Ephemeris holds every intermediate value of the series for a
// single terrestrial time Julian date.
type Ephemeris struct {
	JulianDateTT         float64
	DeltaJ2000           float64 // days since J2000 (TT)
	MeanAnomaly          float64 // M, degrees
	FictitiousMeanSun    float64 // alpha FMS, degrees
	Perturbation         float64 // PBS, degrees
	EquationOfCenter     float64 // v - M, degrees
	AreocentricLongitude float64 // Ls, degrees
	EquationOfTime       float64 // EOT, degrees
	MarsSolDate          float64 // MSD, sols
	CoordinatedMarsTime  float64 // MTC, hours in [0,24)
}

// Compute runs the series for a Julian date in terrestrial time.
func Compute(jdtt float64) Ephemeris {
	delta := DeltaJ2000(jdtt)
	meanAnomaly := MeanAnomaly(delta)
	fms := FictitiousMeanSun(delta)
	pbs := Perturbation(delta)
	center := EquationOfCenter(delta, meanAnomaly, pbs)
	ls := AreocentricLongitude(fms, center)
	msd := MarsSolDate(jdtt)

	return Ephemeris{
		JulianDateTT:         jdtt,
		DeltaJ2000:           delta,
		MeanAnomaly:          meanAnomaly,
		FictitiousMeanSun:    fms,
		Perturbation:         pbs,
		EquationOfCenter:     center,
		AreocentricLongitude: ls,
		EquationOfTime:       EquationOfTime(ls, center),
		MarsSolDate:          msd,
		CoordinatedMarsTime:  CoordinatedMarsTime(msd),
	}
}

// DeltaJ2000 is the time offset in days from the J2000 epoch.
// (AM2000, eq. 15)
func DeltaJ2000(jdtt float64) float64 {
	return jdtt - 2451545.0
}

// MeanAnomaly calculates the Mars mean anomaly. (AM2000, eq. 16)
func MeanAnomaly(deltaJ2000 float64) float64 {
	return 19.3870 + 0.52402075*deltaJ2000
}

// FictitiousMeanSun calculates the angle of the fictitious mean sun.
// (AM2000, eq. 17)
func FictitiousMeanSun(deltaJ2000 float64) float64 {
	return 270.3863 + 0.52403840*deltaJ2000
}

// Perturbation sums the perturbers of the Mars orbit: Jupiter,
// Earth and Venus. (AM2000, eq. 18)
//
// 0.985626 is 360 / 365.25, converting days to degrees per Julian
// year so each term's period can be expressed in years.
func Perturbation(deltaJ2000 float64) float64 {
	var pbs float64
	for _, p := range perturbations {
		pbs += p.Amplitude * cosd(0.985626*deltaJ2000/p.Period+p.Phase)
	}

	return pbs
}

// EquationOfCenter calculates the true anomaly minus the mean
// anomaly, including perturbations. (AM2000, eqs. 19 and 20)
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfCenter(deltaJ2000, meanAnomaly, perturbation float64) float64 {
	return (10.691+3e-7*deltaJ2000)*sind(meanAnomaly) +
		0.623*sind(2*meanAnomaly) +
		0.050*sind(3*meanAnomaly) +
		0.005*sind(4*meanAnomaly) +
		0.0005*sind(5*meanAnomaly) +
		perturbation
}

// AreocentricLongitude calculates Ls, the position of Mars along
// its orbit, measured from the northern spring equinox.
// (AM2000, eq. 19)
func AreocentricLongitude(fictitiousMeanSun, center float64) float64 {
	return fictitiousMeanSun + center
}

// EquationOfTime calculates the difference between true and mean
// solar time, in degrees. Divide by 15 for hours.
func EquationOfTime(areocentricLongitude, center float64) float64 {
	return 2.861*sind(2*areocentricLongitude) -
		0.071*sind(4*areocentricLongitude) +
		0.002*sind(6*areocentricLongitude) -
		center
}

// MarsSolDate is the continuous count of sols since 1873-12-29,
// the Mars analogue of the Julian date.
func MarsSolDate(jdtt float64) float64 {
	return (jdtt-marsSolDateEpoch)/EarthSecondsPerMarsSecond + marsSolDateOffset - marsSolDateFix
}

// JulianDateTT is the inverse of MarsSolDate.
func JulianDateTT(marsSolDate float64) float64 {
	return (marsSolDate+marsSolDateFix-marsSolDateOffset)*EarthSecondsPerMarsSecond + marsSolDateEpoch
}

// CoordinatedMarsTime is the mean solar time at the Mars prime
// meridian, in hours. (AM2000, eq. 22, modified)
func CoordinatedMarsTime(marsSolDate float64) float64 {
	return CanonicalHours24(math.Mod(24*marsSolDate, 24.0))
}

// CanonicalHours24 shifts an hour value by at most one day to land
// in [0, 24). Inputs more than a day outside that range are only
// partially corrected.
func CanonicalHours24(hours float64) float64 {
	if hours < 0 {
		// tiny negative values round up to exactly 24
		wrapped := hours + 24
		if wrapped >= 24 {
			return 0
		}
		return wrapped
	} else if hours >= 24 {
		return hours - 24
	}

	return hours
}

const degToRad = math.Pi / 180

func sind(degrees float64) float64 {
	return math.Sin(degrees * degToRad)
}

func cosd(degrees float64) float64 {
	return math.Cos(degrees * degToRad)
}

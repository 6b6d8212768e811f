package julian

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// ErrOutOfRange is returned for dates earlier than the first entry
// in the leap second table.
var ErrOutOfRange = errors.New("no leap second entry for date")

type leapSecond struct {
	JulianDate float64 // first day the offset applies
	Offset     float64 // TAI-UTC in seconds
}

// leapSeconds is the TAI-UTC table, most recent entry first.
//
// Values are taken from the USNO table:
// ftp://maia.usno.navy.mil/ser7/tai-utc.dat
//
// Entries before 1972 carry a linear drift term in the source table.
// Only the step value is used here; the drift amounts to well under
// a second over each interval.
//
// The table ends at the 2012-07-01 leap second. Later leap seconds
// (2015, 2016) are not included, so results after mid-2015 are off
// by up to two seconds.
var leapSeconds = []leapSecond{
	{2456109.5, 35.0},      // 2012 JUL  1
	{2454832.5, 34.0},      // 2009 JAN  1
	{2453736.5, 33.0},      // 2006 JAN  1
	{2451179.5, 32.0},      // 1999 JAN  1
	{2450630.5, 31.0},      // 1997 JUL  1
	{2450083.5, 30.0},      // 1996 JAN  1
	{2449534.5, 29.0},      // 1994 JUL  1
	{2449169.5, 28.0},      // 1993 JUL  1
	{2448804.5, 27.0},      // 1992 JUL  1
	{2448257.5, 26.0},      // 1991 JAN  1
	{2447892.5, 25.0},      // 1990 JAN  1
	{2447161.5, 24.0},      // 1988 JAN  1
	{2446247.5, 23.0},      // 1985 JUL  1
	{2445516.5, 22.0},      // 1983 JUL  1
	{2445151.5, 21.0},      // 1982 JUL  1
	{2444786.5, 20.0},      // 1981 JUL  1
	{2444239.5, 19.0},      // 1980 JAN  1
	{2443874.5, 18.0},      // 1979 JAN  1
	{2443509.5, 17.0},      // 1978 JAN  1
	{2443144.5, 16.0},      // 1977 JAN  1
	{2442778.5, 15.0},      // 1976 JAN  1
	{2442413.5, 14.0},      // 1975 JAN  1
	{2442048.5, 13.0},      // 1974 JAN  1
	{2441683.5, 12.0},      // 1973 JAN  1
	{2441499.5, 11.0},      // 1972 JUL  1
	{2441317.5, 10.0},      // 1972 JAN  1
	{2439887.5, 4.2131700}, // 1968 FEB  1
	{2439126.5, 4.3131700}, // 1966 JAN  1
	{2439004.5, 3.8401300}, // 1965 SEP  1
	{2438942.5, 3.7401300}, // 1965 JUL  1
	{2438820.5, 3.6401300}, // 1965 MAR  1
	{2438761.5, 3.5401300}, // 1965 JAN  1
	{2438639.5, 3.4401300}, // 1964 SEP  1
	{2438486.5, 3.3401300}, // 1964 APR  1
	{2438395.5, 3.2401300}, // 1964 JAN  1
	{2438334.5, 1.9458580}, // 1963 NOV  1
	{2437665.5, 1.8458580}, // 1962 JAN  1
	{2437512.5, 1.3728180}, // 1961 AUG  1
	{2437300.5, 1.4228180}, // 1961 JAN  1
}

// LookupLeapSeconds returns TAI-UTC in seconds for the given Julian
// date. Dates before 1961 are not covered by the table and return
// ErrOutOfRange.
func LookupLeapSeconds(julianDate float64) (float64, error) {
	// table is descending, so this finds the latest entry that
	// started on or before julianDate
	idx := sort.Search(len(leapSeconds), func(i int) bool {
		return julianDate >= leapSeconds[i].JulianDate
	})

	if idx == len(leapSeconds) {
		return 0, fmt.Errorf("%w: jd %.5f", ErrOutOfRange, julianDate)
	}

	return leapSeconds[idx].Offset, nil
}

// LeapSeconds is LookupLeapSeconds without the error. Dates outside
// the table log a warning and are treated as having no offset.
func LeapSeconds(julianDate float64) float64 {
	offset, err := LookupLeapSeconds(julianDate)
	if err != nil {
		log.Warn().Err(err).Msg("leap second lookup")
		return 0
	}

	return offset
}

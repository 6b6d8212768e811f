package marstime

import (
	"fmt"
	"math"
	"time"

	"github.com/subtlepseudonym/marstime/ephemeris"
)

// SolClock counts whole Mars seconds elapsed since a mission epoch,
// without consulting the ephemeris. This is how the MER rovers kept
// mission time.
type SolClock struct {
	Name     string
	Epoch    time.Time // start of FirstSol
	FirstSol int
}

// Opportunity numbers its landing day as sol 1
var Opportunity = SolClock{
	Name:     "opportunity",
	Epoch:    time.Date(2004, time.January, 24, 15, 8, 59, 0, time.UTC),
	FirstSol: 1,
}

// At returns the clock reading at t. Seconds are whole.
func (c SolClock) At(t time.Time) LocalTime {
	earthSeconds := float64(t.Unix() - c.Epoch.Unix())
	marsSeconds := math.Floor(earthSeconds / ephemeris.EarthSecondsPerMarsSecond)

	sols := math.Floor(marsSeconds / 86400)
	remaining := marsSeconds - sols*86400

	hour := math.Floor(remaining / 3600)
	remaining -= hour * 3600
	minute := math.Floor(remaining / 60)

	return LocalTime{
		Sol:    int(sols) + c.FirstSol,
		Hour:   int(hour),
		Minute: int(minute),
		Second: remaining - minute*60,
	}
}

// Format renders the clock reading at t: "Sol 042 13:02:59"
func (c SolClock) Format(t time.Time) string {
	l := c.At(t)
	return fmt.Sprintf("Sol %03d %02d:%02d:%02d", l.Sol, l.Hour, l.Minute, int(l.Second))
}

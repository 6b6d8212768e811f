package marstime

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for non-finite or out of range inputs.
var ErrInvalidInput = errors.New("invalid input")

// Site is a landing site on the surface of Mars.
//
// FirstSolOffset is the Mars sol date (rounded down) on which the
// mission's sol 0 began at the site, fixing that mission's sol
// numbering.
type Site struct {
	Name           string  `json:"name" mapstructure:"name"`
	WestLongitude  float64 `json:"west_longitude" mapstructure:"west_longitude"` // planetographic, 0-360
	FirstSolOffset int     `json:"first_sol_offset" mapstructure:"first_sol_offset"`
}

var (
	Curiosity = Site{
		Name:           "curiosity",
		WestLongitude:  222.6,
		FirstSolOffset: 49268,
	}
	Perseverance = Site{
		Name:           "perseverance",
		WestLongitude:  77.436,
		FirstSolOffset: 52303,
	}
)

// Sites returns the built-in landing sites keyed by name.
func Sites() map[string]Site {
	return map[string]Site{
		Curiosity.Name:    Curiosity,
		Perseverance.Name: Perseverance,
	}
}

// Validate checks that the site can be used for conversion.
func (s Site) Validate() error {
	if math.IsNaN(s.WestLongitude) || math.IsInf(s.WestLongitude, 0) {
		return fmt.Errorf("%s: west longitude %v: %w", s.Name, s.WestLongitude, ErrInvalidInput)
	}

	// local time offsets are only wrapped by a single day
	if s.WestLongitude < 0 || s.WestLongitude > 360 {
		return fmt.Errorf("%s: west longitude %v outside [0, 360]: %w", s.Name, s.WestLongitude, ErrInvalidInput)
	}

	return nil
}

func (s Site) String() string {
	return fmt.Sprintf("%s (%.3fW)", s.Name, s.WestLongitude)
}

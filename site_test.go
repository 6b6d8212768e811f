package marstime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteValidate(t *testing.T) {
	tests := []struct {
		name  string
		site  Site
		valid bool
	}{
		{"curiosity", Curiosity, true},
		{"perseverance", Perseverance, true},
		{"prime meridian", Site{Name: "airy-0", WestLongitude: 0}, true},
		{"full circle", Site{Name: "airy-0", WestLongitude: 360}, true},
		{"nan", Site{Name: "nan", WestLongitude: math.NaN()}, false},
		{"infinite", Site{Name: "inf", WestLongitude: math.Inf(1)}, false},
		{"east longitude", Site{Name: "east", WestLongitude: -137.4}, false},
		{"more than a turn", Site{Name: "wrapped", WestLongitude: 402.6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.site.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestSites(t *testing.T) {
	sites := Sites()

	assert.Len(t, sites, 2)
	assert.Equal(t, Curiosity, sites["curiosity"])
	assert.Equal(t, Perseverance, sites["perseverance"])

	// callers get their own copy
	delete(sites, "curiosity")
	assert.Contains(t, Sites(), "curiosity")
}

func TestSiteString(t *testing.T) {
	assert.Equal(t, "perseverance (77.436W)", Perseverance.String())
}

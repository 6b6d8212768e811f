package marstime

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Status is the JSON body returned by StatusHandler
type Status struct {
	Site    string    `json:"site"`
	Earth   time.Time `json:"earth"`
	Display string    `json:"display"`

	Sol    int     `json:"sol"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`

	MarsSolDate          float64 `json:"msd"`
	CoordinatedMarsTime  float64 `json:"mtc"`
	LMST                 float64 `json:"lmst"`
	LTST                 float64 `json:"ltst"`
	AreocentricLongitude float64 `json:"ls"`
}

// Conversion is the JSON body returned by UTCHandler
type Conversion struct {
	Site    string    `json:"site"`
	Display string    `json:"display"`
	UTC     time.Time `json:"utc"`
}

// StatusHandler reports the current Mars time at a site. clock
// supplies the current time.
func StatusHandler(site Site, clock func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := clock().UTC()

		local, err := LocalTimeAt(now, site)
		if err != nil {
			log.Error().Err(err).Str("site", site.Name).Msg("local time")
			writeError(w, http.StatusInternalServerError, "unable to convert to mars time")
			return
		}

		times, err := Compute(now, site.WestLongitude)
		if err != nil {
			log.Error().Err(err).Str("site", site.Name).Msg("compute")
			writeError(w, http.StatusInternalServerError, "unable to convert to mars time")
			return
		}

		writeJSON(w, Status{
			Site:                 site.Name,
			Earth:                now,
			Display:              local.String(),
			Sol:                  local.Sol,
			Hour:                 local.Hour,
			Minute:               local.Minute,
			Second:               local.Second,
			MarsSolDate:          times.MarsSolDate,
			CoordinatedMarsTime:  times.CoordinatedMarsTime,
			LMST:                 times.LMST,
			LTST:                 times.LTST,
			AreocentricLongitude: times.AreocentricLongitude,
		})
	}
}

// UTCHandler converts a sol and time of day at a site to UTC. The sol
// parameter is required; hour, minute and second default to zero.
func UTCHandler(site Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()

		if _, ok := r.Form["sol"]; !ok {
			writeError(w, http.StatusBadRequest, "sol parameter is required")
			return
		}

		var local LocalTime
		for _, param := range []struct {
			name  string
			value *int
			max   int
		}{
			{"sol", &local.Sol, 0},
			{"hour", &local.Hour, 23},
			{"minute", &local.Minute, 59},
		} {
			if _, ok := r.Form[param.name]; !ok {
				continue
			}

			raw := r.FormValue(param.name)
			p, err := strconv.Atoi(raw)
			if err != nil || (param.max > 0 && (p < 0 || p > param.max)) {
				log.Debug().Err(err).Str("site", site.Name).Str(param.name, raw).Msg("parse param")
				writeError(w, http.StatusBadRequest, "unable to parse "+param.name+" parameter")
				return
			}
			*param.value = p
		}

		if _, ok := r.Form["second"]; ok {
			raw := r.FormValue("second")
			p, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(p) || p < 0 || p >= 60 {
				log.Debug().Err(err).Str("site", site.Name).Str("second", raw).Msg("parse param")
				writeError(w, http.StatusBadRequest, "unable to parse second parameter")
				return
			}
			local.Second = p
		}

		utc, err := local.UTC(site)
		if err != nil {
			log.Error().Err(err).Str("site", site.Name).Msg("utc")
			writeError(w, http.StatusBadRequest, "unable to convert to utc")
			return
		}

		writeJSON(w, Conversion{
			Site:    site.Name,
			Display: local.String(),
			UTC:     utc,
		})
	}
}

// SolClockHandler reports the current reading of a mission sol clock.
func SolClockHandler(c SolClock, clock func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := clock().UTC()
		local := c.At(now)

		writeJSON(w, struct {
			Name    string    `json:"name"`
			Earth   time.Time `json:"earth"`
			Display string    `json:"display"`
			Sol     int       `json:"sol"`
		}{
			Name:    c.Name,
			Earth:   now,
			Display: c.Format(now),
			Sol:     local.Sol,
		})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

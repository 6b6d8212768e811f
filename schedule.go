package marstime

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const solPrefix = "@sol"

// SolSchedule fires at the start of every sol at a site, shifted by
// Offset (Earth time).
type SolSchedule struct {
	Site   Site          `json:"site"`
	Offset time.Duration `json:"offset"`
}

// Next returns the first sol start (plus offset) after now.
// The zero time is returned if the site is invalid, which cron
// treats as never.
//
// This implements robfig/cron.Schedule
func (s SolSchedule) Next(now time.Time) time.Time {
	local, err := LocalTimeAt(now, s.Site)
	if err != nil {
		log.Error().Err(err).Msg("sol schedule")
		return time.Time{}
	}

	// back up far enough that a positive offset can't skip a sol
	sol := local.Sol - 1
	if s.Offset > 0 {
		sol -= int(s.Offset / SolDuration)
	}

	for ; ; sol++ {
		start, err := UTC(sol, 0, 0, 0, s.Site)
		if err != nil {
			log.Error().Err(err).Int("sol", sol).Msg("sol schedule")
			return time.Time{}
		}

		// converting back from sol time is only accurate to a few
		// microseconds, so the current sol's start can land just after now
		next := start.Add(s.Offset)
		if next.After(now.Add(time.Millisecond)) {
			log.Debug().
				Str("site", s.Site.Name).
				Int("sol", sol).
				Time("next", next).
				Msg("next sol")
			return next
		}
	}
}

// ParseSchedule parses a job schedule for a site. "@sol" and
// "@sol <duration>" fire at the start of each sol, optionally offset.
// Anything else is parsed as a standard cron spec.
func ParseSchedule(spec string, site Site) (cron.Schedule, error) {
	if !strings.HasPrefix(spec, solPrefix) {
		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("parse schedule: %w", err)
		}
		return schedule, nil
	}

	err := site.Validate()
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(spec)
	if fields[0] != solPrefix || len(fields) > 2 {
		return nil, fmt.Errorf("parse schedule %q: expected %q or %q", spec, solPrefix, solPrefix+" <duration>")
	}

	var offset time.Duration
	if len(fields) == 2 {
		offset, err = time.ParseDuration(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse sol offset: %w", err)
		}
	}

	return SolSchedule{
		Site:   site,
		Offset: offset,
	}, nil
}

package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/subtlepseudonym/marstime"
	"github.com/subtlepseudonym/marstime/config"
	"github.com/subtlepseudonym/marstime/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultConfigFile = "secrets/marsclock.json"

type Job struct {
	Site marstime.Site
}

func (j Job) Run() {
	local, err := marstime.LocalTimeAt(time.Now(), j.Site)
	if err != nil {
		log.Error().Err(err).Str("site", j.Site.Name).Msg("mars time")
		return
	}
	metrics.ObserveConversion(j.Site.Name, metrics.ToMars)
	metrics.SetSol(j.Site.Name, local.Sol)

	log.Info().Str("site", j.Site.Name).Int("sol", local.Sol).Msg(local.String())
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	// manually set local timezone for docker container
	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatal().Err(err).Str("tz", tz).Msg("load tz location")
		}
		time.Local = loc
	}

	configFile := defaultConfigFile
	if filename := os.Getenv("MARSCLOCK_CONFIG"); filename != "" {
		configFile = filename
	}

	config, err := config.Open(configFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", configFile).Msg("open config")
	}

	err = config.Validate()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	zerolog.SetGlobalLevel(config.Level())

	now := time.Now() // used for logging cron entries
	solCron := cron.New(cron.WithLocation(time.UTC))
	for _, job := range config.Jobs {
		site := config.Sites[job.Site]

		schedule, err := marstime.ParseSchedule(job.Schedule, site)
		if err != nil {
			log.Error().Err(err).Str("schedule", job.Schedule).Msg("parse schedule")
			continue
		}
		solCron.Schedule(schedule, Job{Site: site})

		log.Info().
			Str("site", site.Name).
			Str("schedule", job.Schedule).
			Time("next", schedule.Next(now).Local()).
			Msg("job")
	}

	names := make([]string, 0, len(config.Sites))
	for name := range config.Sites {
		names = append(names, name)
	}
	sort.Strings(names)

	mux := http.NewServeMux()
	var routes []string
	for _, name := range names {
		site := config.Sites[name]

		status := fmt.Sprintf("/%s", name)
		mux.Handle(status, metrics.CountConversions(site.Name, metrics.ToMars, marstime.StatusHandler(site, time.Now)))

		utc := fmt.Sprintf("/%s/utc", name)
		mux.Handle(utc, metrics.CountConversions(site.Name, metrics.ToEarth, marstime.UTCHandler(site)))

		routes = append(routes, status, utc)
		log.Info().Str("site", site.String()).Msg("registered site")
	}

	clock := fmt.Sprintf("/%s", marstime.Opportunity.Name)
	mux.Handle(clock, marstime.SolClockHandler(marstime.Opportunity, time.Now))
	mux.Handle("/metrics", metrics.Handler())
	routes = append(routes, clock, "/metrics")

	log.Info().
		Str("clock", marstime.Opportunity.Name).
		Msg(marstime.Opportunity.Format(now))

	srv := http.Server{
		Addr:    config.Listen,
		Handler: metrics.Middleware(routes, mux),
	}
	log.Info().Str("addr", srv.Addr).Msg("listening")

	solCron.Start()
	log.Fatal().Err(srv.ListenAndServe()).Msg("serve")
}

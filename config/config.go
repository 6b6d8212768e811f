package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/subtlepseudonym/marstime"
)

const envPrefix = "MARSCLOCK"

// ReservedNames can't be used as site names; they're already served
// at the same path.
var ReservedNames = []string{marstime.Opportunity.Name, "metrics"}

type Config struct {
	Listen   string                   `mapstructure:"listen"`
	LogLevel string                   `mapstructure:"log_level"`
	Sites    map[string]marstime.Site `mapstructure:"sites"`
	Jobs     []Job                    `mapstructure:"jobs"`
}

// Job logs the Mars time at a site on a schedule.
//
// Schedule is either a standard cron spec or "@sol", optionally
// followed by an offset duration, to run at the start of each sol
// at the site.
type Job struct {
	Schedule string `mapstructure:"schedule"`
	Site     string `mapstructure:"site"`
}

// Open reads the config file at filename. Any format viper supports
// can be used; the format is taken from the file extension.
//
// Values can be overridden with MARSCLOCK_ prefixed environment
// variables, e.g. MARSCLOCK_LISTEN. The built-in landing sites are
// always available unless the file redefines them.
func Open(filename string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", ":9000")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(filename)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	if config.Sites == nil {
		config.Sites = make(map[string]marstime.Site)
	}
	for name, site := range config.Sites {
		if site.Name == "" {
			site.Name = name
			config.Sites[name] = site
		}
	}
	for name, site := range marstime.Sites() {
		if _, ok := config.Sites[name]; !ok {
			config.Sites[name] = site
		}
	}

	return &config, nil
}

func (c *Config) Validate() error {
	_, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	for name, site := range c.Sites {
		for _, reserved := range ReservedNames {
			if name == reserved {
				return fmt.Errorf("site %q: name is reserved", name)
			}
		}

		err := site.Validate()
		if err != nil {
			return fmt.Errorf("site %q: %w", name, err)
		}
	}

	for _, job := range c.Jobs {
		site, ok := c.Sites[job.Site]
		if !ok {
			return fmt.Errorf("job references missing site %q", job.Site)
		}

		_, err := marstime.ParseSchedule(job.Schedule, site)
		if err != nil {
			return fmt.Errorf("job for site %q: %w", job.Site, err)
		}
	}

	return nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

// Package config holds runtime configuration, populated from the
// environment. All knobs are optional; zero configuration works.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the CLI runtime configuration.
type Config struct {
	// Timeout bounds one search page fetch.
	Timeout time.Duration `env:"YTS_TIMEOUT" envDefault:"12s"`
	// MaxResults is the default result cap when --max-results is not given.
	MaxResults int `env:"YTS_MAX_RESULTS" envDefault:"20"`
	// UserAgent overrides the browser User-Agent sent to YouTube.
	UserAgent string `env:"YTS_USER_AGENT"`
	// Debug enables debug logging, same as the --debug flag.
	Debug bool `env:"YTS_DEBUG"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}

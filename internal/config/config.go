// Package config holds process defaults and the environment-only settings
// that do not surface as CLI flags.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// DefaultHost is the interface the server binds to.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; the page-view log stays disabled unless a URL is provided.
	DefaultDatabaseURL = ""

	// DefaultTypeDelay is the pause between two revealed characters.
	DefaultTypeDelay = 50 * time.Millisecond

	// DefaultStatsPeriod is used when no period is requested.
	DefaultStatsPeriod = "week"

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout = 10 * time.Second
)

// Env holds settings read only from the environment.
type Env struct {
	ServiceName  string `env:"DEVCONSOLE_SERVICE_NAME" envDefault:"devconsole"`
	OTelEndpoint string `env:"DEVCONSOLE_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"DEVCONSOLE_OTEL_ENABLED" envDefault:"true"`
}

// TracingEnabled reports whether spans should be exported.
func (e Env) TracingEnabled() bool {
	return e.OTelEnabled && e.OTelEndpoint != ""
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

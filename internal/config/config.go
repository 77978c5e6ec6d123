// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	// HTTP server
	Port            int           `env:"PORT" envDefault:"8080"`
	CORSOrigin      string        `env:"CORS_ORIGIN" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Storage
	LedgerBackend string `env:"LEDGER_BACKEND" envDefault:"memory"`
	DBPath        string `env:"DB_PATH" envDefault:"./data/ledger.db"`
	SeedFile      string `env:"SEED_FILE"`

	// AMQP. Publishing is disabled when AMQPURL is empty.
	AMQPURL        string `env:"AMQP_URL"`
	AMQPExchange   string `env:"AMQP_EXCHANGE" envDefault:"groupledger"`
	AMQPRoutingKey string `env:"AMQP_ROUTING_KEY" envDefault:"ledger.entry.recorded"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	switch c.LedgerBackend {
	case BackendMemory:
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			errs = append(errs, errors.New("DB_PATH is required for the sqlite backend"))
		} else if c.DBPath == ":memory:" {
			errs = append(errs, errors.New("DB_PATH cannot be :memory:, use LEDGER_BACKEND=memory instead"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid ledger backend '%s': must be one of %s, %s", c.LedgerBackend, BackendMemory, BackendSQLite))
	}

	if c.AMQPURL != "" {
		u, err := url.Parse(c.AMQPURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid AMQP URL: %w", err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			errs = append(errs, fmt.Errorf("invalid AMQP URL scheme '%s': must be amqp or amqps", u.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, errors.New("AMQP_EXCHANGE is required when AMQP_URL is set"))
		}
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("invalid log level '%s'", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %w", errors.Join(errs...))
	}
	return nil
}

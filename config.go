package fieldval

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries process-wide engine defaults sourced from the
// environment, for deployments that tune abort behavior without touching
// call sites.
//
// Example:
//
//	cfg, err := fieldval.LoadConfig()
//	if err != nil {
//		// handle error
//	}
//	schema, err := fieldval.NewSchema(fields, fieldval.WithConfig(cfg))
type Config struct {
	AbortEarly            bool `env:"FIELDVAL_ABORT_EARLY" envDefault:"false"`
	AbortEarlyOnEachField bool `env:"FIELDVAL_ABORT_EARLY_ON_EACH_FIELD" envDefault:"true"`
	DeferredErrors        bool `env:"FIELDVAL_DEFERRED_ERRORS" envDefault:"false"`
}

// ErrParsingConfig wraps environment parsing failures from LoadConfig.
var ErrParsingConfig = errors.New("fieldval: failed to parse config from environment")

var defaultEnvLoaded sync.Once

// LoadConfig loads engine defaults from environment variables, reading the
// default .env file once per process if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// WithConfig applies env-driven defaults to schema compilation. Per-call
// options still override the abort knobs.
func WithConfig(cfg Config) SchemaOption {
	return func(c *schemaConfig) {
		if cfg.DeferredErrors {
			c.deferred = true
		}
		c.defaults = append(c.defaults, func(o *callOptions) {
			o.abortEarly = cfg.AbortEarly
			o.abortEarlyOnEachField = cfg.AbortEarlyOnEachField
		})
	}
}

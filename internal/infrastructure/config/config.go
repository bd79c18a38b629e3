package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// minAgeProperty is the dotted property name accepted as an alias of USER_MIN_AGE.
const minAgeProperty = "user.min.age"

// Config holds environment-driven configuration. It is read once at
// startup and treated as immutable afterwards.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	User            User
	Log             Log       `envPrefix:"LOG_"`
	CORS            CORS      `envPrefix:"CORS_"`
	RateLimit       RateLimit `envPrefix:"RATE_LIMIT_"`
	Metrics         Metrics   `envPrefix:"METRICS_"`
}

// User contains the user policy parameters.
type User struct {
	MinAge int `env:"USER_MIN_AGE,required,notEmpty"`
}

type Log struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

type CORS struct {
	AllowOrigins string `env:"ALLOW_ORIGINS" envDefault:"*"`
}

// RateLimit configures the per-client limiter; RPS 0 disables it.
type RateLimit struct {
	RPS   float64 `env:"RPS" envDefault:"0"`
	Burst int     `env:"BURST" envDefault:"20"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnvironment(env.ToMap(os.Environ()))
}

// FromEnvironment parses configuration from the given variables.
func FromEnvironment(vars map[string]string) (*Config, error) {
	environment := make(map[string]string, len(vars)+1)
	for k, v := range vars {
		environment[k] = v
	}
	if _, ok := environment["USER_MIN_AGE"]; !ok {
		if v, ok := environment[minAgeProperty]; ok {
			environment["USER_MIN_AGE"] = v
		}
	}

	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.User.MinAge < 0 {
		return nil, fmt.Errorf("USER_MIN_AGE must not be negative, got %d", cfg.User.MinAge)
	}
	if cfg.RateLimit.RPS < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", cfg.RateLimit.RPS)
	}
	return &cfg, nil
}

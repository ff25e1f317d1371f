package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development" validate:"oneof=development staging production test"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080" validate:"required"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s" validate:"gt=0"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s" validate:"gt=0"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty" validate:"oneof=pretty text json"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	ChartCacheTTL time.Duration `envconfig:"CHART_CACHE_TTL" default:"10m" validate:"gt=0"`

	GeneratorSeed        string  `envconfig:"GENERATOR_SEED" validate:"omitempty,number"`
	VarianceThresholdPct float64 `envconfig:"VARIANCE_THRESHOLD_PCT" default:"10" validate:"gte=0,lte=1000"`

	RateLimitPerMinute       int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120" validate:"min=1"`
	ExportRateLimitPerMinute int `envconfig:"EXPORT_RATE_LIMIT_PER_MINUTE" default:"30" validate:"min=1"`
}

// LoadConfig reads configuration from environment variables. Values from
// envFiles (missing files are skipped) never override the real environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("app: load %s: %w", file, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("app: process env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("app: invalid config: %w", err)
	}
	if cfg.GeneratorSeed != "" {
		if _, err := strconv.ParseUint(cfg.GeneratorSeed, 10, 64); err != nil {
			return nil, fmt.Errorf("app: invalid GENERATOR_SEED: %w", err)
		}
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// Seed returns the configured generator seed. ok is false when the
// generator should use the unseeded global source.
func (c *Config) Seed() (seed uint64, ok bool) {
	if c == nil || c.GeneratorSeed == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(c.GeneratorSeed, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

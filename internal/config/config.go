package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	Assets AssetConfig
	DND5E  DND5EConfig
	Sheet  SheetConfig
}

// RedisConfig holds Redis-specific configuration.
// An empty URL runs without Redis: characters are kept in memory and
// resolved assets are not cached.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// Enabled reports whether a Redis URL is configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// AssetConfig controls where asset definitions are looked up
type AssetConfig struct {
	// Dir is a directory of <type>/<id>.yaml asset documents
	Dir      string        `env:"ASSET_DIR"`
	CacheTTL time.Duration `env:"ASSET_CACHE_TTL" envDefault:"24h"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Enabled bool          `env:"DND5E_API_ENABLED" envDefault:"false"`
	Timeout time.Duration `env:"DND5E_API_TIMEOUT" envDefault:"10s"`
}

// SheetConfig holds sheet derivation options
type SheetConfig struct {
	StrictAbilities bool `env:"STRICT_ABILITIES" envDefault:"false"`
}

// Load loads configuration from environment variables
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

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	if c.Assets.CacheTTL < 0 {
		return fmt.Errorf("ASSET_CACHE_TTL must not be negative, got %s", c.Assets.CacheTTL)
	}

	if c.DND5E.Enabled && c.DND5E.Timeout <= 0 {
		return fmt.Errorf("DND5E_API_TIMEOUT must be positive when the api is enabled, got %s", c.DND5E.Timeout)
	}

	return nil
}

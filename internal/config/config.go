package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the engine and the harness
type Config struct {
	Engine  EngineConfig
	Assets  AssetsConfig
	Harness HarnessConfig
	Redis   RedisConfig
}

// EngineConfig controls registration and diagnostics
type EngineConfig struct {
	// LogDir is where the MegaStones_*.txt files are written
	LogDir string `env:"MEGASTONES_LOG_DIR" envDefault:"."`

	// StartID is the first id handed to a new stone
	StartID int `env:"MEGASTONES_START_ID" envDefault:"6000"`

	// CatalogPath points at an optional YAML catalog extension
	CatalogPath string `env:"MEGASTONES_CATALOG_PATH"`
}

// AssetsConfig locates the game and the mod's icon folder
type AssetsConfig struct {
	GameRoot string `env:"MEGASTONES_GAME_ROOT" envDefault:"."`
	ModDir   string `env:"MEGASTONES_MOD_DIR"`
}

// HarnessConfig drives cmd/megasim
type HarnessConfig struct {
	SessionPath string `env:"MEGASTONES_SESSION_PATH"`
	Ticks       int    `env:"MEGASTONES_TICKS" envDefault:"3"`
	OwnerID     string `env:"MEGASTONES_OWNER_ID" envDefault:"player"`
}

// RedisConfig holds Redis-specific configuration. An empty URL means in-memory adapters.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Engine.StartID <= 0 {
		return nil, fmt.Errorf("MEGASTONES_START_ID must be positive, got %d", cfg.Engine.StartID)
	}
	if cfg.Harness.Ticks < 1 {
		return nil, fmt.Errorf("MEGASTONES_TICKS must be at least 1, got %d", cfg.Harness.Ticks)
	}

	return cfg, nil
}

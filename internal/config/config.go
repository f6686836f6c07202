// Package config resolves the application settings: compiled defaults, then
// an optional YAML config file, then environment variable overrides, each
// layer winning over the one before it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the application.
type Config struct {
	// ProjectPath is the campaign save file.
	ProjectPath string `yaml:"project_path" env:"FACTIONTURN_PROJECT"`
	// VaultPath is the autosave snapshot database. Empty disables autosave.
	VaultPath string `yaml:"vault_path" env:"FACTIONTURN_VAULT"`
	// VaultKeep is how many autosave snapshots to retain.
	VaultKeep int `yaml:"vault_keep" env:"FACTIONTURN_VAULT_KEEP"`
	// AutosaveEvery is how many completed faction turns pass between
	// autosaves. Zero autosaves after every faction turn.
	AutosaveEvery int `yaml:"autosave_every" env:"FACTIONTURN_AUTOSAVE_EVERY"`
	// Seed feeds the dice roller. Zero means seed from the clock.
	Seed int64 `yaml:"seed" env:"FACTIONTURN_SEED"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"FACTIONTURN_LOG_LEVEL"`
}

// Default returns the compiled-in settings.
func Default() Config {
	return Config{
		ProjectPath: "campaign.yaml",
		VaultPath:   "campaign.vault.db",
		VaultKeep:   20,
		LogLevel:    "info",
	}
}

// Load resolves the configuration. A missing config file is fine; a malformed
// one is logged and skipped so the application still starts.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			slog.Warn("ignoring malformed config file", "path", path, "err", err)
			cfg = Default()
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.VaultKeep < 1 {
		cfg.VaultKeep = 1
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info for unknown names.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

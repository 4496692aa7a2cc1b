// Package config resolves runtime settings from an optional YAML file
// and environment variables. Precedence is env over file over
// defaults; a missing config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings for the CLI.
type Config struct {
	// DBPath is the plan-history SQLite file.
	DBPath string `yaml:"db_path"`

	// CatalogPath overrides the embedded catalog when non-empty.
	CatalogPath string `yaml:"catalog_path"`

	// ProfilePath is the default profile file used when --profile is
	// not given.
	ProfilePath string `yaml:"profile_path"`

	Week WeekConfig `yaml:"week"`
}

// WeekConfig bounds how much content lands in one plan week.
type WeekConfig struct {
	MaxMinutes int `yaml:"max_minutes"`
	MaxModules int `yaml:"max_modules"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DBPath:      filepath.Join(home, ".creditcoach", "history.db"),
		ProfilePath: filepath.Join(home, ".creditcoach", "profile.json"),
		Week: WeekConfig{
			MaxMinutes: 120,
			MaxModules: 3,
		},
	}
}

// Load resolves configuration: defaults, then the YAML file (explicit
// path, or CREDITCOACH_CONFIG, or the default location), then
// environment variable overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("CREDITCOACH_CONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			candidate := filepath.Join(home, ".creditcoach", "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.Week.MaxMinutes <= 0 {
		cfg.Week.MaxMinutes = 120
	}
	if cfg.Week.MaxModules <= 0 {
		cfg.Week.MaxModules = 3
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CREDITCOACH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CREDITCOACH_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("CREDITCOACH_PROFILE"); v != "" {
		cfg.ProfilePath = v
	}
	if v := os.Getenv("CREDITCOACH_WEEK_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Week.MaxMinutes = n
		}
	}
	if v := os.Getenv("CREDITCOACH_WEEK_MODULES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Week.MaxModules = n
		}
	}
}

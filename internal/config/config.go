// Package config manages the per-user settings file written to
// <UserConfigDir>/pmx/config.json. The schema is versioned to support
// forward-compatible migrations.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configVersion = 1
	appDir        = "pmx"
	configFile    = "config.json"
)

// Config is the persisted settings file. The zero value is the default
// behavior: strict lockfile detection and interactive confirmations.
type Config struct {
	Version int `json:"version"`
	// InitDefaultManager, when set to npm, yarn or pnpm, is the manager
	// `pmx init` falls back to when no lockfile exists yet. Empty keeps
	// detection mandatory for init too.
	InitDefaultManager string `json:"initDefaultManager,omitempty"`
	// AssumeYes skips the clean confirmation prompt.
	AssumeYes bool `json:"assumeYes,omitempty"`
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, appDir, configFile), nil
}

// Load reads the config, returning defaults when no file exists yet.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Version: configVersion}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Future: handle cfg.Version < configVersion migrations here.

	return &cfg, nil
}

// Write persists cfg to <UserConfigDir>/pmx/config.json.
func Write(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	cfg.Version = configVersion
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

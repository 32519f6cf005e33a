// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the clinic TUI.
//
// Configuration sources, in order of precedence:
//   - environment variables (CLINIC_API_URL, CLINIC_STATE_DIR)
//   - ~/.clinic-tui/config.toml
//   - built-in defaults
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultRequestTimeout bounds every API call issued by the client.
const DefaultRequestTimeout = 30 * time.Second

// Config is the complete client configuration.
type Config struct {
	// APIURL is the base URL of the clinic API, e.g. "https://clinic.example.com".
	APIURL string `toml:"api_url"`

	// StateDir is where the session file and logs live.
	// Empty means ~/.clinic-tui.
	StateDir string `toml:"state_dir"`

	// RequestTimeoutSecs bounds each API request. Zero means the default.
	RequestTimeoutSecs int `toml:"request_timeout_secs"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		APIURL:             "http://localhost:5000",
		RequestTimeoutSecs: int(DefaultRequestTimeout / time.Second),
	}
}

// Load reads the config file if present, then applies environment overrides.
// A missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path, err := filePath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decErr := toml.DecodeFile(path, &cfg); decErr != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, decErr)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides config values from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CLINIC_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("CLINIC_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("api_url must not be empty")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url %q is not a valid URL", c.APIURL)
	}
	if c.RequestTimeoutSecs < 0 {
		return errors.New("request_timeout_secs must not be negative")
	}
	return nil
}

// RequestTimeout returns the configured request timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSecs <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}

// ResolveStateDir returns the directory for persisted client state,
// creating it if necessary.
func (c Config) ResolveStateDir() (string, error) {
	dir := c.StateDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".clinic-tui")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return dir, nil
}

// filePath returns the config file location.
func filePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".clinic-tui", "config.toml"), nil
}

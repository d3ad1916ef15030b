// Package config handles global dtk configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the global dtk configuration, loaded from TOML.
type Config struct {
	// Application is the scriptable application to target.
	Application string `toml:"application"`

	// Osascript overrides the osascript binary path (defaults to PATH lookup).
	Osascript string `toml:"osascript"`

	// TimeoutSeconds bounds a single scripting host invocation.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// DefaultDatabase scopes lookups when no database is given on the
	// command line. Empty means "search all open databases".
	DefaultDatabase string `toml:"default_database"`

	// Audit controls the append-only log of mutating operations.
	Audit AuditConfig `toml:"audit"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// AuditConfig controls the mutation audit log.
type AuditConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output: an ANSI code
	// ("0" to "255") or a hex color ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Application:    "DEVONthink 3",
		TimeoutSeconds: 60,
		Audit:          AuditConfig{Enabled: true},
	}
}

// Timeout returns the host invocation bound as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultPath returns the config file location: $DTK_CONFIG if set,
// otherwise $XDG_CONFIG_HOME/dtk/config.toml, otherwise
// ~/.config/dtk/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv("DTK_CONFIG"); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dtk", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dtk", "config.toml"), nil
}

// Load reads the config file at path, filling unset fields from
// Default. A missing file is not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Application == "" {
		cfg.Application = Default().Application
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}
	return cfg, nil
}

// AuditPath returns the audit log location, defaulting to
// $XDG_STATE_HOME/dtk/audit.log or ~/.local/state/dtk/audit.log when
// unset in the config.
func (c Config) AuditPath() (string, error) {
	if c.Audit.Path != "" {
		return c.Audit.Path, nil
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "dtk", "audit.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "dtk", "audit.log"), nil
}

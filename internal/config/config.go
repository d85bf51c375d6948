// Package config loads the strfmt command's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "STRFMT_CONFIG"

// Config holds the strfmt configuration
type Config struct {
	// Newline appends a newline after formatted output. Nil means: only when
	// stdout is a terminal.
	Newline *bool  `toml:"newline"`
	Report  string `toml:"report"` // "table", "markdown", "csv", "tsv", "json" or "yaml"
	Border  string `toml:"border"` // "rounded", "ascii" or "none"
}

var (
	reports = []string{"table", "markdown", "csv", "tsv", "json", "yaml"}
	borders = []string{"rounded", "ascii", "none"}
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Report: "table", Border: "rounded"}
}

// Path returns the config file location: $STRFMT_CONFIG, else
// $XDG_CONFIG_HOME/strfmt/config.toml, else ~/.config/strfmt/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "strfmt", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "strfmt", "config.toml"), nil
}

// Load reads the config from [Path].
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, string, error) {
	path, err := Path()
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := LoadFile(path)
	return cfg, path, err
}

// LoadFile reads the config at path. Unset keys keep their defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if !slices.Contains(reports, c.Report) {
		return fmt.Errorf("invalid report %q: must be one of %v", c.Report, reports)
	}
	if !slices.Contains(borders, c.Border) {
		return fmt.Errorf("invalid border %q: must be one of %v", c.Border, borders)
	}
	return nil
}

// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/leadline/config.yml.
type Config struct {
	CSVPath       string   `yaml:"csv_path,omitempty"`       // Default prospect CSV path
	DedupeColumn  string   `yaml:"dedupe_column,omitempty"`  // Default dedupe key column
	SearchColumns []string `yaml:"search_columns,omitempty"` // Default free-text search columns
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "leadline"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// EnvCSVPath overrides the configured CSV path.
	EnvCSVPath = "LEADLINE_CSV"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/leadline/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the configuration file. Returns an empty config (not an
// error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	configCache = &cfg
	return &cfg, nil
}

// Save writes the configuration file, creating its directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	configCache = c
	return nil
}

// ResetCache clears the loaded-config cache (used by tests).
func ResetCache() {
	configCache = nil
}

// ResolveCSVPath picks the CSV path: an explicit flag value wins, then the
// LEADLINE_CSV environment variable, then the configured default.
func (c *Config) ResolveCSVPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvCSVPath); env != "" {
		return env
	}
	return c.CSVPath
}

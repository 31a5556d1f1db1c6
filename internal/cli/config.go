package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFileName is the config file under the XDG config directory.
const configFileName = "config.toml"

// Config holds user preferences loaded from ~/.config/grahas/config.toml.
// Flags override config values; config values override built-in defaults.
type Config struct {
	// Ayanamsa is the default sidereal reference frame.
	Ayanamsa string `toml:"ayanamsa"`

	// HouseSystem is the default house system code or name.
	HouseSystem string `toml:"house_system"`

	// DataDir points at ephemeris coefficient files. Empty means the XDG
	// data directory, falling back to the built-in model when absent.
	DataDir string `toml:"data_dir"`

	// NoCache disables result caching entirely.
	NoCache bool `toml:"no_cache"`

	// Store configures the birth-record backend.
	Store StoreConfig `toml:"store"`
}

// StoreConfig selects and configures the record store backend.
type StoreConfig struct {
	// Backend is "file" (default) or "redis".
	Backend string `toml:"backend"`

	// Dir is the record directory for the file backend.
	Dir string `toml:"dir"`

	// Redis configures the redis backend.
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Ayanamsa:    "lahiri",
		HouseSystem: "whole-sign",
		Store: StoreConfig{
			Backend: "file",
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// ConfigPath returns the config file path.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfig reads the config file, layering it over the defaults. A missing
// file is not an error; a malformed one is.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "file"
	}
	if cfg.Store.Backend != "file" && cfg.Store.Backend != "redis" {
		return nil, fmt.Errorf("parsing %s: unknown store backend %q", path, cfg.Store.Backend)
	}
	return cfg, nil
}

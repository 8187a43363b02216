// Package config handles configuration loading and validation for innview.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/innview/internal/core/styles"
)

// Map providers.
const (
	MapProviderOSM  = "osm"
	MapProviderNone = "none"
)

// Config holds the application configuration.
type Config struct {
	// Catalog is the hotel catalog file. Relative paths resolve against the
	// directory of the config file.
	Catalog  string         `yaml:"catalog"`
	TUI      TUIConfig      `yaml:"tui"`
	Database DatabaseConfig `yaml:"database"`
	Maps     MapsConfig     `yaml:"maps"`

	DataDir   string `yaml:"-"` // set by caller, not from config file
	ConfigDir string `yaml:"-"` // directory of the loaded config file
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme        string `yaml:"theme"`
	WatchCatalog *bool  `yaml:"watch_catalog"` // nil = enabled
	Mouse        *bool  `yaml:"mouse"`         // nil = enabled
}

// DatabaseConfig holds settings for the registered image store.
type DatabaseConfig struct {
	Enabled      *bool `yaml:"enabled"` // nil = enabled
	MaxOpenConns int   `yaml:"max_open_conns"`
	MaxIdleConns int   `yaml:"max_idle_conns"`
	BusyTimeout  int   `yaml:"busy_timeout"` // milliseconds
}

// MapsConfig configures the location link shown on detail views.
type MapsConfig struct {
	Provider    string `yaml:"provider"`
	DefaultZoom int    `yaml:"default_zoom"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
		Maps: MapsConfig{
			Provider:    MapProviderOSM,
			DefaultZoom: 15,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		cfg.ConfigDir = filepath.Dir(configPath)

		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dirs since Unmarshal may have cleared them
			cfg.DataDir = dataDir
			cfg.ConfigDir = filepath.Dir(configPath)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Maps.Provider == "" {
		c.Maps.Provider = defaults.Maps.Provider
	}
	if c.Maps.DefaultZoom == 0 {
		c.Maps.DefaultZoom = defaults.Maps.DefaultZoom
	}
}

// CatalogPath returns the resolved catalog file path. An unset catalog
// defaults to catalog.yaml in the data directory.
func (c *Config) CatalogPath() string {
	switch {
	case c.Catalog == "":
		return filepath.Join(c.DataDir, "catalog.yaml")
	case filepath.IsAbs(c.Catalog) || c.ConfigDir == "":
		return c.Catalog
	default:
		return filepath.Join(c.ConfigDir, c.Catalog)
	}
}

// DatabaseEnabled reports whether the registered image store should be opened.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Enabled == nil || *c.Database.Enabled
}

// WatchCatalog reports whether the TUI reloads the catalog on change.
func (c *Config) WatchCatalog() bool {
	return c.TUI.WatchCatalog == nil || *c.TUI.WatchCatalog
}

// MouseEnabled reports whether the TUI captures mouse clicks.
func (c *Config) MouseEnabled() bool {
	return c.TUI.Mouse == nil || *c.TUI.Mouse
}

package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/innview/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("database.max_open_conns", c.Database.MaxOpenConns, atLeast(1)),
		criterio.Run("database.max_idle_conns", c.Database.MaxIdleConns, atLeast(0)),
		criterio.Run("database.busy_timeout", c.Database.BusyTimeout, atLeast(0)),
		criterio.Run("maps.provider", c.Maps.Provider, knownProvider),
		criterio.Run("maps.default_zoom", c.Maps.DefaultZoom, zoomInRange),
	)
}

// ValidateDeep performs Validate plus file system checks for the config
// file, data directory and catalog path. An empty configPath skips the
// config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("catalog", c.CatalogPath(), isReadableFile),
	)
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func knownProvider(p string) error {
	if !slices.Contains([]string{MapProviderOSM, MapProviderNone}, p) {
		return fmt.Errorf("unknown provider %q", p)
	}
	return nil
}

func zoomInRange(z int) error {
	if z < 0 || z > 20 {
		return fmt.Errorf("must be between 0 and 20, got %d", z)
	}
	return nil
}

func atLeast(n int) func(int) error {
	return func(v int) error {
		if v < n {
			return fmt.Errorf("must be at least %d", n)
		}
		return nil
	}
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isReadableFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

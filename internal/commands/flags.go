package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/innview/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Catalog overrides the catalog path from the config file.
	Catalog string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// CatalogErr is set when the catalog failed to load in the Before hook.
	// config validate reports it; every other command returns it.
	CatalogErr error
}

// catalogReady returns the catalog load error, if any.
func (f *Flags) catalogReady() error {
	if f.CatalogErr != nil {
		return fmt.Errorf("load catalog: %w", f.CatalogErr)
	}
	return nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "innview", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "innview")
}

// GlobalFlags returns the root command flags bound to f.
func GlobalFlags(f *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("INNVIEW_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (defaults to <data-dir>/innview.log, - for stderr)",
			Sources:     cli.EnvVars("INNVIEW_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("INNVIEW_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "path to data directory",
			Sources:     cli.EnvVars("INNVIEW_DATA_DIR"),
			Value:       DefaultDataDir(),
			Destination: &f.DataDir,
		},
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "path to the hotel catalog (overrides the config file)",
			Sources:     cli.EnvVars("INNVIEW_CATALOG"),
			Destination: &f.Catalog,
		},
	}
}

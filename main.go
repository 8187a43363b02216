package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/innview/internal/commands"
	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/config"
	"github.com/colonyops/innview/internal/core/kv"
	"github.com/colonyops/innview/internal/core/logging"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/internal/data/db"
	"github.com/colonyops/innview/internal/data/stores"
	"github.com/colonyops/innview/internal/innview"
	"github.com/colonyops/innview/internal/innview/sweep"
	"github.com/colonyops/innview/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser   func()
		innviewApp  = &innview.App{}
		database    *db.DB
		sweepCancel context.CancelFunc
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "innview",
		Usage:     "Browse hotel and room photo galleries in the terminal",
		UsageText: "innview [global options] command [command options]",
		Description: `innview shows the hotels and rooms of a catalog file with a photo preview
grid and a full-screen lightbox.

Run 'innview' with no arguments to open the interactive viewer.
Run 'innview ls' to list hotels, or 'innview images add' to register extra
photos for a hotel or room.`,
		Version: build(),
		Flags:   commands.GlobalFlags(flags),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/innview.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "innview.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			command := c.Args().First()
			if command == "" {
				command = "tui"
			}
			ctx = logging.WithCommand(ctx, command)

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Catalog != "" {
				abs, err := filepath.Abs(flags.Catalog)
				if err != nil {
					return ctx, fmt.Errorf("resolve catalog path: %w", err)
				}
				cfg.Catalog = abs
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			cat, err := catalog.Load(cfg.CatalogPath())
			if err != nil {
				// Reported by each command so config validate can still run.
				flags.CatalogErr = err
				return ctx, nil
			}

			// The database only holds registered images and saved positions;
			// the viewer works without it.
			var (
				imageStore catalog.ImageStore
				kvStore    kv.KV
			)
			if cfg.DatabaseEnabled() {
				database, err = innview.OpenDatabase(cfg, log.Logger)
				if err != nil {
					log.Warn().Err(err).Msg("database unavailable, registered images disabled")
				} else {
					imageStore = stores.NewGalleryStore(database)
					store := stores.NewKVStore(database)
					kvStore = store

					sweepCtx, cancel := context.WithCancel(context.Background())
					sweepCancel = cancel
					go sweep.Start(sweepCtx, store, 5*time.Minute)
				}
			}

			svcLogger := log.With().Str("component", "innview").Logger()

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*innviewApp = *innview.NewApp(
				innview.NewGalleryService(cat, imageStore, svcLogger),
				innview.NewPositionService(kvStore, svcLogger),
				innview.NewMapRenderer(cfg),
				cfg,
				database,
			)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Stop background sweep
			if sweepCancel != nil {
				sweepCancel()
			}

			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, innviewApp)

	app = commands.RegisterAll(app, flags, innviewApp)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'innview --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

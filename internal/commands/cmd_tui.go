package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/innview/internal/innview"
	"github.com/colonyops/innview/internal/profiler"
	"github.com/colonyops/innview/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *innview.App

	profilerPort int
	noWatch      bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *innview.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("INNVIEW_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload the catalog when it changes on disk",
			Destination: &cmd.noWatch,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if err := cmd.flags.catalogReady(); err != nil {
		return err
	}

	if cmd.profilerPort > 0 {
		profServer := profiler.New(cmd.profilerPort, func() any { return cmd.app.Stats() })
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	var opts tui.Options
	if cmd.app.Config.WatchCatalog() && !cmd.noWatch {
		watcher, err := tui.NewCatalogWatcher(cmd.app.Gallery.Catalog().Path(), cmd.app.Gallery.Reload)
		if err != nil {
			// Live reload is optional; keep going without it.
			log.Warn().Err(err).Msg("failed to watch catalog")
		} else {
			defer func() { _ = watcher.Close() }()
			opts.Watcher = watcher
		}
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cmd.app.Config.MouseEnabled() {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.New(cmd.app, opts), programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

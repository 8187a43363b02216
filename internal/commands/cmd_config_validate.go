package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration and catalog",
				UsageText:   "innview config validate [options]",
				Description: "Validates the configuration file, data directory and the catalog it points to.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// problem is a single validation failure.
type problem struct {
	Source  string `json:"source"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type validationReport struct {
	Valid       bool      `json:"valid"`
	ConfigPath  string    `json:"config_path"`
	CatalogPath string    `json:"catalog_path"`
	Hotels      int       `json:"hotels"`
	Rooms       int       `json:"rooms"`
	Problems    []problem `json:"problems,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	report := cmd.validate()

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
	} else {
		cmd.printText(c, report)
	}

	if !report.Valid {
		return fmt.Errorf("validation failed with %d problem(s)", len(report.Problems))
	}
	return nil
}

func (cmd *ConfigValidateCmd) validate() validationReport {
	cfg := cmd.flags.Config
	report := validationReport{
		ConfigPath:  cmd.flags.ConfigPath,
		CatalogPath: cfg.CatalogPath(),
	}

	report.Problems = append(report.Problems, problemsFrom("config", cfg.ValidateDeep(cmd.flags.ConfigPath))...)

	cat, err := catalog.Load(cfg.CatalogPath())
	if err != nil {
		report.Problems = append(report.Problems, problemsFrom("catalog", err)...)
	} else {
		report.Hotels = len(cat.Hotels)
		for _, h := range cat.Hotels {
			report.Rooms += len(h.Rooms)
		}
	}

	report.Valid = len(report.Problems) == 0
	return report
}

// problemsFrom flattens criterio field errors into one problem per field.
func problemsFrom(source string, err error) []problem {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []problem{{Source: source, Message: err.Error()}}
	}

	out := make([]problem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, problem{Source: source, Field: fe.Field, Message: fe.Err.Error()})
	}
	return out
}

func (cmd *ConfigValidateCmd) printText(c *cli.Command, report validationReport) {
	out := c.Root().Writer

	_, _ = fmt.Fprintln(out, styles.CommandHeaderStyle.Render("Config"))
	_, _ = fmt.Fprintf(out, "  %s\n", styles.TextMutedStyle.Render(report.ConfigPath))
	_, _ = fmt.Fprintln(out, styles.CommandHeaderStyle.Render("Catalog"))
	_, _ = fmt.Fprintf(out, "  %s\n", styles.TextMutedStyle.Render(report.CatalogPath))
	_, _ = fmt.Fprintln(out)

	if report.Valid {
		_, _ = fmt.Fprintf(out, "%s valid: %d hotel(s), %d room(s)\n",
			styles.TextSuccessStyle.Render("✓"), report.Hotels, report.Rooms)
		return
	}

	for _, p := range report.Problems {
		label := p.Source
		if p.Field != "" {
			label += " " + p.Field
		}
		_, _ = fmt.Fprintf(out, "%s %s: %s\n", styles.TextErrorStyle.Render("✗"), label, p.Message)
	}
}

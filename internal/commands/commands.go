// Package commands implements the innview CLI subcommands.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/colonyops/innview/internal/innview"
)

// RegisterAll adds every subcommand to root. app is populated later by the
// root Before hook; commands only dereference it when they run.
func RegisterAll(root *cli.Command, flags *Flags, app *innview.App) *cli.Command {
	root = NewLsCmd(flags, app).Register(root)
	root = NewShowCmd(flags, app).Register(root)
	root = NewImagesCmd(flags, app).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)
	return root
}

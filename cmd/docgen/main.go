// Command docgen generates CLI reference documentation from the innview
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/innview/internal/commands"
	"github.com/colonyops/innview/internal/innview"
)

func main() {
	flags := &commands.Flags{}
	app := &innview.App{}

	root := &cli.Command{
		Name:      "innview",
		Usage:     "Browse hotel and room photo galleries in the terminal",
		UsageText: "innview [global options] command [command options]",
		Flags:     commands.GlobalFlags(flags),
	}

	tuiCmd := commands.NewTuiCmd(flags, app)
	root.Flags = append(root.Flags, tuiCmd.Flags()...)
	root = commands.RegisterAll(root, flags, app)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}

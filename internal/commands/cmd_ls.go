package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/innview"
	"github.com/colonyops/innview/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *innview.App

	// flags
	jsonOutput bool
	rooms      bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *innview.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List hotels in the catalog",
		UsageText: "innview ls [--rooms] [--json]",
		Description: `Displays a table of hotels with their id, name, star rating and photo count.

Use --rooms to include each hotel's rooms. Photo counts include registered
images when the database is enabled.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "rooms",
				Aliases:     []string{"r"},
				Usage:       "include rooms",
				Destination: &cmd.rooms,
			},
		},
		Action: cmd.run,
	})

	return app
}

// ownerInfo is the JSON output format for innview ls --json.
type ownerInfo struct {
	Owner  string      `json:"owner"`
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Stars  int         `json:"stars,omitempty"`
	Photos int         `json:"photos"`
	Rooms  []ownerInfo `json:"rooms,omitempty"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.catalogReady(); err != nil {
		return err
	}

	cat := cmd.app.Gallery.Catalog()
	out := c.Root().Writer

	if len(cat.Hotels) == 0 {
		if !cmd.jsonOutput {
			_, _ = fmt.Fprintf(c.Root().ErrWriter, "No hotels in %s\n", cat.Path())
		}
		return nil
	}

	infos := make([]ownerInfo, 0, len(cat.Hotels))
	for _, h := range cat.Hotels {
		info, err := cmd.ownerInfo(ctx, catalog.HotelOwner(h.ID), h.ID, h.Name)
		if err != nil {
			return err
		}
		info.Stars = h.Stars

		if cmd.rooms {
			for _, r := range h.Rooms {
				room, err := cmd.ownerInfo(ctx, catalog.RoomOwner(h.ID, r.ID), r.ID, r.Name)
				if err != nil {
					return err
				}
				info.Rooms = append(info.Rooms, room)
			}
		}
		infos = append(infos, info)
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, infos)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTARS\tPHOTOS")
	for _, h := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", h.ID, h.Name, strings.Repeat("★", h.Stars), h.Photos)
		for _, r := range h.Rooms {
			_, _ = fmt.Fprintf(w, "  %s/%s\t  %s\t\t%d\n", h.ID, r.ID, r.Name, r.Photos)
		}
	}
	return w.Flush()
}

func (cmd *LsCmd) ownerInfo(ctx context.Context, owner catalog.Owner, id, name string) (ownerInfo, error) {
	images, err := cmd.app.Gallery.ImageSet(ctx, owner)
	if err != nil {
		return ownerInfo{}, fmt.Errorf("image set for %s: %w", owner, err)
	}
	return ownerInfo{Owner: owner.Key(), ID: id, Name: name, Photos: len(images)}, nil
}

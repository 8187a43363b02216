package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/internal/innview"
	"github.com/colonyops/innview/internal/tui/components/gallery"
)

type ShowCmd struct {
	flags *Flags
	app   *innview.App

	// flags
	open int
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags, app *innview.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print the photo preview for a hotel or room",
		UsageText: "innview show [--open N] <hotel> [room]",
		Description: `Prints the preview grid for a hotel or one of its rooms.

The owner can also be given as a single argument: "harbor-view/king-suite"
or "room:harbor-view/king-suite".

Use --open to print the lightbox for the Nth photo (1-based) instead. N must
be between 1 and the number of photos.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "open",
				Aliases:     []string{"o"},
				Usage:       "print the lightbox for photo N",
				Destination: &cmd.open,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.catalogReady(); err != nil {
		return err
	}

	owner, err := ownerFromArgs(c.Args().Slice())
	if err != nil {
		return err
	}

	title, err := ownerTitle(cmd.app.Gallery.Catalog(), owner)
	if err != nil {
		return err
	}

	images, err := cmd.app.Gallery.ImageSet(ctx, owner)
	if err != nil {
		return err
	}

	g := gallery.New(images)
	width, height := terminalSize(c.Root().Writer)
	g.SetSize(width, height)

	out := c.Root().Writer

	if c.IsSet("open") {
		if err := g.Viewer().OpenAt(cmd.open - 1); err != nil {
			return fmt.Errorf("open photo %d: %w", cmd.open, err)
		}
		_, _ = fmt.Fprintln(out, g.Lightbox())
		return nil
	}

	_, _ = fmt.Fprintln(out, styles.DetailTitleStyle.Render(title))
	if owner.Kind == catalog.OwnerHotel {
		h, _ := cmd.app.Gallery.Catalog().FindHotel(owner.HotelID)
		if link, err := cmd.app.Maps.HotelLink(h); err == nil && link != "" {
			_, _ = fmt.Fprintln(out, styles.DetailMapStyle.Render(link))
		}
	}
	_, _ = fmt.Fprintln(out, g.Grid())
	return nil
}

// ownerFromArgs accepts "<hotel> [room]" or a single owner key.
func ownerFromArgs(args []string) (catalog.Owner, error) {
	switch len(args) {
	case 1:
		return catalog.ParseOwner(args[0])
	case 2:
		return catalog.RoomOwner(args[0], args[1]), nil
	default:
		return catalog.Owner{}, fmt.Errorf("expected <hotel> [room], got %d arguments", len(args))
	}
}

func ownerTitle(cat *catalog.Catalog, owner catalog.Owner) (string, error) {
	if owner.Kind == catalog.OwnerRoom {
		h, r, err := cat.FindRoom(owner.HotelID, owner.RoomID)
		if err != nil {
			return "", err
		}
		return h.Name + " / " + r.Name, nil
	}
	h, err := cat.FindHotel(owner.HotelID)
	if err != nil {
		return "", err
	}
	return h.Name, nil
}

// terminalSize returns the size of w when it is a terminal, else 80x24.
func terminalSize(w io.Writer) (int, int) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			return width, height
		}
	}
	return 80, 24
}

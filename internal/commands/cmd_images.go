package commands

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/internal/innview"
	"github.com/colonyops/innview/pkg/iojson"
)

type ImagesCmd struct {
	flags *Flags
	app   *innview.App

	// flags
	jsonOutput bool
	url        string
	alt        string
	order      int
	keep       bool
	importer   iojson.FileReader[[]imageInput]
}

// imageInput is one entry of an images import file.
type imageInput struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
}

// NewImagesCmd creates a new images command
func NewImagesCmd(flags *Flags, app *innview.App) *ImagesCmd {
	return &ImagesCmd{flags: flags, app: app}
}

// Register adds the images command to the application
func (cmd *ImagesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "images",
		Usage: "Manage registered image references",
		Description: `Registered images are references (URLs or paths) stored in the local
database and shown after an owner's catalog images.

Owners are written as hotel:<hotel>, room:<hotel>/<room>, or the shorthand
<hotel> and <hotel>/<room>.`,
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List registered images for an owner",
				UsageText: "innview images ls [--json] <owner>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "add",
				Usage:     "Register an image reference",
				UsageText: "innview images add [--url URL] [--alt TEXT] [--order N] <owner>",
				Description: `Registers an image for an owner that exists in the catalog.

When --url is omitted and stdin is a terminal, an interactive form prompts
for the URL and alt text.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "url",
						Aliases:     []string{"u"},
						Usage:       "image URL or path",
						Destination: &cmd.url,
					},
					&cli.StringFlag{
						Name:        "alt",
						Usage:       "alt text",
						Destination: &cmd.alt,
					},
					&cli.IntFlag{
						Name:        "order",
						Usage:       "sort order (lower first)",
						Destination: &cmd.order,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "import",
				Usage:     "Register image references from a JSON file",
				UsageText: "innview images import [-f FILE] <owner>",
				Description: `Reads a JSON array of {"url", "alt_text", "sort_order"} objects from
--file or stdin and registers each entry for the owner.`,
				Flags:  []cli.Flag{cmd.importer.Flag()},
				Action: cmd.runImport,
			},
			{
				Name:      "update",
				Usage:     "Change alt text and sort order of a registered image",
				UsageText: "innview images update --alt TEXT --order N <id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "alt",
						Usage:       "alt text",
						Destination: &cmd.alt,
					},
					&cli.IntFlag{
						Name:        "order",
						Usage:       "sort order (lower first)",
						Destination: &cmd.order,
					},
				},
				Action: cmd.runUpdate,
			},
			{
				Name:      "rm",
				Usage:     "Remove a registered image",
				UsageText: "innview images rm [--keep] <id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "keep",
						Usage:       "hide the image instead of deleting it",
						Destination: &cmd.keep,
					},
				},
				Action: cmd.runRemove,
			},
		},
	})

	return app
}

func (cmd *ImagesCmd) runList(ctx context.Context, c *cli.Command) error {
	owner, err := cmd.ownerArg(c)
	if err != nil {
		return err
	}

	images, err := cmd.app.Gallery.Registered(ctx, owner)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		if images == nil {
			images = []catalog.Image{}
		}
		return iojson.WriteWith(out, c.Root().ErrWriter, images)
	}

	if len(images) == 0 {
		_, _ = fmt.Fprintf(c.Root().ErrWriter, "No registered images for %s\n", owner)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tORDER\tURL\tALT")
	for _, img := range images {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", img.ID, img.SortOrder, img.URL, img.AltText)
	}
	return w.Flush()
}

func (cmd *ImagesCmd) runAdd(ctx context.Context, c *cli.Command) error {
	owner, err := cmd.ownerArg(c)
	if err != nil {
		return err
	}

	if cmd.url == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--url is required when stdin is not a terminal")
		}
		if err := cmd.runForm(owner); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	img := &catalog.Image{
		Owner:     owner,
		URL:       strings.TrimSpace(cmd.url),
		AltText:   cmd.alt,
		SortOrder: cmd.order,
	}
	if err := cmd.app.Gallery.Register(ctx, img); err != nil {
		return fmt.Errorf("register image: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s registered image %d for %s\n",
		styles.TextSuccessStyle.Render("✓"), img.ID, owner)
	return nil
}

func (cmd *ImagesCmd) runImport(ctx context.Context, c *cli.Command) error {
	owner, err := cmd.ownerArg(c)
	if err != nil {
		return err
	}

	inputs, err := cmd.importer.Read(c.Root().Reader)
	if err != nil {
		return err
	}

	for i, in := range inputs {
		if err := validateImageURL(in.URL); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	for _, in := range inputs {
		img := &catalog.Image{Owner: owner, URL: in.URL, AltText: in.AltText, SortOrder: in.SortOrder}
		if err := cmd.app.Gallery.Register(ctx, img); err != nil {
			return fmt.Errorf("register %s: %w", in.URL, err)
		}
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s registered %d image(s) for %s\n",
		styles.TextSuccessStyle.Render("✓"), len(inputs), owner)
	return nil
}

func (cmd *ImagesCmd) runUpdate(ctx context.Context, c *cli.Command) error {
	id, err := cmd.idArg(c)
	if err != nil {
		return err
	}
	if err := cmd.app.Gallery.Update(ctx, id, cmd.alt, cmd.order); err != nil {
		return fmt.Errorf("update image %d: %w", id, err)
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "%s updated image %d\n", styles.TextSuccessStyle.Render("✓"), id)
	return nil
}

func (cmd *ImagesCmd) runRemove(ctx context.Context, c *cli.Command) error {
	id, err := cmd.idArg(c)
	if err != nil {
		return err
	}
	if err := cmd.app.Gallery.Remove(ctx, id, cmd.keep); err != nil {
		return fmt.Errorf("remove image %d: %w", id, err)
	}

	verb := "deleted"
	if cmd.keep {
		verb = "hid"
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "%s %s image %d\n", styles.TextSuccessStyle.Render("✓"), verb, id)
	return nil
}

func (cmd *ImagesCmd) runForm(owner catalog.Owner) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Image URL").
				Description("Registered for "+owner.String()).
				Validate(validateImageURL).
				Value(&cmd.url),
			huh.NewInput().
				Title("Alt text").
				Description("Optional description of the photo").
				Value(&cmd.alt),
		),
	).WithTheme(styles.FormTheme()).Run()
}

func (cmd *ImagesCmd) ownerArg(c *cli.Command) (catalog.Owner, error) {
	if err := cmd.flags.catalogReady(); err != nil {
		return catalog.Owner{}, err
	}
	if c.Args().Len() != 1 {
		return catalog.Owner{}, fmt.Errorf("expected exactly one owner argument")
	}
	return catalog.ParseOwner(c.Args().First())
}

func (cmd *ImagesCmd) idArg(c *cli.Command) (int64, error) {
	if err := cmd.flags.catalogReady(); err != nil {
		return 0, err
	}
	if c.Args().Len() != 1 {
		return 0, fmt.Errorf("expected exactly one image id")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid image id %q", c.Args().First())
	}
	return id, nil
}

// validateImageURL accepts absolute http(s) URLs and file paths.
func validateImageURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("url is required")
	}
	if !strings.Contains(s, "://") {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", s)
	}
	return nil
}

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/internal/innview"
	"github.com/colonyops/innview/internal/tui/components"
	"github.com/colonyops/innview/internal/tui/components/gallery"
	"github.com/colonyops/innview/pkg/kv"
)

// detailLoadedMsg carries a fully assembled detail view.
type detailLoadedMsg struct {
	detail *detailView
	err    error
}

// detailView is the hotel or room page: header, description and gallery.
type detailView struct {
	owner       catalog.Owner
	title       string
	subtitle    string
	mapLink     string
	description string // markdown

	catalogImages int
	registered    int
	storeEnabled  bool

	gallery gallery.Model

	rendered      string
	renderedWidth int
}

// loadDetail assembles the detail view for owner off the UI goroutine.
func loadDetail(app *innview.App, owner catalog.Owner, width, height int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cat := app.Gallery.Catalog()

		d := &detailView{owner: owner, storeEnabled: app.Gallery.HasStore()}

		var hotel *catalog.Hotel
		if owner.Kind == catalog.OwnerRoom {
			h, room, err := cat.FindRoom(owner.HotelID, owner.RoomID)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
			hotel = h
			d.title = room.Name
			d.subtitle = h.Name
			if s := roomSummary(*room); s != "" {
				d.subtitle += " • " + s
			}
			d.description = room.Description
			d.catalogImages = len(room.AllImages())
		} else {
			h, err := cat.FindHotel(owner.HotelID)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
			hotel = h
			d.title = h.Name
			d.subtitle = hotelSummary(*h)
			d.description = h.Description
			d.catalogImages = len(h.AllImages())
		}

		link, err := app.Maps.HotelLink(hotel)
		if err != nil {
			log.Warn().Err(err).Str("owner", owner.Key()).Msg("failed to render map link")
		}
		d.mapLink = link

		images, err := app.Gallery.ImageSet(ctx, owner)
		if err != nil {
			return detailLoadedMsg{err: fmt.Errorf("load images: %w", err)}
		}
		d.registered = len(images) - d.catalogImages

		d.gallery = gallery.New(images)
		d.gallery.SetSize(width, height)
		app.Positions.Restore(ctx, owner, d.gallery.Viewer())

		return detailLoadedMsg{detail: d}
	}
}

// header renders everything above the gallery grid. Descriptions are cut to
// maxDescLines so the grid stays on screen.
func (d *detailView) header(width, maxDescLines int) string {
	lines := []string{
		styles.DetailTitleStyle.Render(d.title),
	}
	if d.subtitle != "" {
		lines = append(lines, styles.DetailSubtitleStyle.Render(d.subtitle))
	}
	if d.mapLink != "" {
		lines = append(lines, styles.DetailMapStyle.Render(d.mapLink))
	}

	if desc := d.renderDescription(width); desc != "" && maxDescLines > 0 {
		descLines := strings.Split(desc, "\n")
		if len(descLines) > maxDescLines {
			descLines = append(descLines[:maxDescLines-1], styles.TextMutedStyle.Render("…"))
		}
		lines = append(lines, "")
		lines = append(lines, descLines...)
	}

	return strings.Join(lines, "\n") + "\n"
}

// renderDescription renders the markdown description, caching per width.
func (d *detailView) renderDescription(width int) string {
	if d.description == "" {
		return ""
	}
	if d.rendered != "" && d.renderedWidth == width {
		return d.rendered
	}

	renderer, err := markdownRenderer(width)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return d.description
	}

	rendered, err := renderer.Render(d.description)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return d.description
	}

	d.rendered = strings.Trim(rendered, "\n")
	d.renderedWidth = width
	return d.rendered
}

// renderers caches glamour renderers by wrap width.
var renderers = kv.New[int, *glamour.TermRenderer]()

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	wrap := max(width-2, 20)
	return renderers.GetOrCompute(wrap, func() (*glamour.TermRenderer, error) {
		style := styles.GlamourStyle()
		noMargin := uint(0)
		style.Document.Margin = &noMargin

		return glamour.NewTermRenderer(
			glamour.WithStyles(style),
			glamour.WithWordWrap(wrap),
		)
	})
}

// infoDialog summarizes the owner and where its images come from.
func (d *detailView) infoDialog(width, height int) *components.InfoDialog {
	total := d.gallery.Viewer().Len()

	registered := components.InfoItem{Label: "Registered", Value: fmt.Sprintf("%d", d.registered)}
	if !d.storeEnabled {
		registered.Value = "store disabled"
		registered.Status = components.InfoStatusWarn
	}

	imagesStatus := components.InfoStatusPass
	if total == 0 {
		imagesStatus = components.InfoStatusWarn
	}

	details := []components.InfoItem{
		{Label: "Owner", Value: d.owner.Key()},
	}
	if d.subtitle != "" {
		details = append(details, components.InfoItem{Label: "Summary", Value: d.subtitle})
	}
	if d.mapLink != "" {
		details = append(details, components.InfoItem{Label: "Map", Value: d.mapLink})
	}

	cur, _ := d.gallery.Viewer().Position()
	return components.NewInfoDialog(
		d.title,
		[]components.InfoSection{
			{Title: "Details", Items: details},
			{Title: "Images", Items: []components.InfoItem{
				{Label: "Total", Value: fmt.Sprintf("%d", total), Status: imagesStatus},
				{Label: "Catalog", Value: fmt.Sprintf("%d", d.catalogImages)},
				registered,
				{Label: "Overflow", Value: fmt.Sprintf("%d", d.gallery.Viewer().OverflowCount())},
				{Label: "Last viewed", Value: fmt.Sprintf("%d", cur)},
			}},
		},
		"",
		"[j/k] scroll  [esc] close",
		width,
		height,
	)
}

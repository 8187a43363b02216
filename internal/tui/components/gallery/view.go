package gallery

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	coregallery "github.com/colonyops/innview/internal/core/gallery"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/internal/tui/components"
)

// Tile geometry. Widths and heights are inner sizes; borders add one cell
// on every side.
const (
	primaryInnerWidth    = 32
	primaryInnerHeight   = 8
	secondaryInnerWidth  = 20
	secondaryInnerHeight = 3
	tileGap              = 1

	primaryOuterWidth    = primaryInnerWidth + 2
	primaryOuterHeight   = primaryInnerHeight + 2
	secondaryOuterWidth  = secondaryInnerWidth + 2
	secondaryOuterHeight = secondaryInnerHeight + 2
	secondaryColumns     = 2

	lightboxMinWidth  = 30
	lightboxMaxWidth  = 100
	lightboxChrome    = 12 // border, padding, header, controls, help
	lightboxMinHeight = 3

	emptyCaption = "No photos yet"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// tileRect returns the grid-relative bounds of the tile at grid position pos.
func tileRect(pos int) rect {
	if pos == 0 {
		return rect{x: 0, y: 0, w: primaryOuterWidth, h: primaryOuterHeight}
	}
	k := pos - 1
	col, row := k%secondaryColumns, k/secondaryColumns
	return rect{
		x: primaryOuterWidth + tileGap + col*(secondaryOuterWidth+tileGap),
		y: row * secondaryOuterHeight,
		w: secondaryOuterWidth,
		h: secondaryOuterHeight,
	}
}

// TileAt returns the tile under grid-relative cell x, y and its grid position.
func (m Model) TileAt(x, y int) (coregallery.Tile, int, bool) {
	for pos, tile := range m.Tiles() {
		if tileRect(pos).contains(x, y) {
			return tile, pos, true
		}
	}
	return coregallery.Tile{}, 0, false
}

// View renders the grid, or the full-screen lightbox while it is open.
func (m Model) View() string {
	if m.viewer.IsOpen() {
		return m.Overlay("", m.width, m.height)
	}
	return m.Grid()
}

// Grid renders the preview tiles. An empty image set renders only a caption.
func (m Model) Grid() string {
	layout := m.viewer.Layout()
	if layout.Empty() {
		return styles.GalleryEmptyStyle.Render(emptyCaption)
	}

	primary := m.renderTile(*layout.Primary, 0, primaryInnerWidth, primaryInnerHeight)
	if len(layout.Secondary) == 0 {
		return primary
	}

	var rows []string
	for start := 0; start < len(layout.Secondary); start += secondaryColumns {
		end := min(start+secondaryColumns, len(layout.Secondary))
		cells := make([]string, 0, 2*secondaryColumns-1)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, components.Pad(tileGap))
			}
			cells = append(cells, m.renderTile(layout.Secondary[i], i+1, secondaryInnerWidth, secondaryInnerHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	secondary := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.JoinHorizontal(lipgloss.Top, primary, components.Pad(tileGap), secondary)
}

func (m Model) renderTile(tile coregallery.Tile, pos, width, height int) string {
	style := styles.TileStyle
	marker := " "
	if pos == m.focus {
		style = styles.TileFocusedStyle
		marker = "▸"
	}

	label := styles.TileIndexStyle.Render(fmt.Sprintf("%s#%d", marker, tile.Slot()))
	if tile.Overflow > 0 {
		badge := styles.TileOverflowStyle.Render(fmt.Sprintf("+%d", tile.Overflow))
		gap := max(width-lipgloss.Width(label)-lipgloss.Width(badge), 1)
		label = label + components.Pad(gap) + badge
	}

	name := ansi.Truncate(DisplayName(tile.Image), width, "…")
	body := lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, name)

	return style.
		Width(width).
		Height(height).
		Render(label + "\n" + body)
}

// Lightbox renders the lightbox panel. It returns an empty string while the
// lightbox is closed so nothing can be found or interacted with.
func (m Model) Lightbox() string {
	if !m.viewer.IsOpen() {
		return ""
	}
	current, ok := m.viewer.Current()
	if !ok {
		return ""
	}

	width := min(max(m.width-8, lightboxMinWidth), lightboxMaxWidth)
	imageHeight := max(m.height-lightboxChrome, lightboxMinHeight)
	position := styles.LightboxPositionStyle.Render(m.viewer.PositionLabel())

	closeCtl := styles.LightboxControlStyle.Render("✕ close")
	header := position + components.Pad(max(width-lipgloss.Width(position)-lipgloss.Width(closeCtl), 1)) + closeCtl

	image := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.LightboxImageStyle.Render(ansi.Truncate(DisplayName(current), width, "…")),
		styles.TextMutedStyle.Render(ansi.Truncate(current, width, "…")),
	)
	panel := lipgloss.Place(width, imageHeight, lipgloss.Center, lipgloss.Center, image)

	controls := lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.LightboxControlStyle.Render("‹ prev"),
		components.Pad(3),
		position,
		components.Pad(3),
		styles.LightboxControlStyle.Render("next ›"),
	)
	controls = lipgloss.PlaceHorizontal(width, lipgloss.Center, controls)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panel,
		controls,
		styles.LightboxHelpStyle.Render(helpLine(m.ShortHelp())),
	)

	return styles.LightboxStyle.Render(content)
}

// Overlay renders the lightbox centered over the full screen area in place
// of background. While closed it returns background unchanged.
func (m Model) Overlay(background string, width, height int) string {
	if !m.viewer.IsOpen() {
		return background
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.Lightbox())
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// DisplayName returns the last path element of an image locator, ignoring
// query strings and fragments.
func DisplayName(locator string) string {
	if locator == "" {
		return ""
	}
	p := locator
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(strings.TrimRight(p, "/"))
	if base == "." || base == "/" {
		return locator
	}
	return base
}

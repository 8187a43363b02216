package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/internal/tui/components"
)

// CatalogItem is a hotel or room row in the catalog list.
type CatalogItem struct {
	Owner   catalog.Owner
	Name    string
	Summary string
	Images  int
}

// FilterValue returns the value used for filtering.
func (i CatalogItem) FilterValue() string {
	return i.Name + " " + i.Owner.HotelID + " " + i.Owner.RoomID
}

// IsRoom reports whether the item is nested under a hotel.
func (i CatalogItem) IsRoom() bool {
	return i.Owner.Kind == catalog.OwnerRoom
}

// BuildItems flattens a catalog into list rows: each hotel followed by its
// rooms.
func BuildItems(cat *catalog.Catalog) []list.Item {
	var items []list.Item
	for _, h := range cat.Hotels {
		items = append(items, CatalogItem{
			Owner:   catalog.HotelOwner(h.ID),
			Name:    h.Name,
			Summary: hotelSummary(h),
			Images:  len(h.AllImages()),
		})
		for _, r := range h.Rooms {
			items = append(items, CatalogItem{
				Owner:   catalog.RoomOwner(h.ID, r.ID),
				Name:    r.Name,
				Summary: roomSummary(r),
				Images:  len(r.AllImages()),
			})
		}
	}
	return items
}

func hotelSummary(h catalog.Hotel) string {
	parts := make([]string, 0, 3)
	if h.Stars > 0 {
		parts = append(parts, strings.Repeat("★", h.Stars))
	}
	if h.Location != nil && h.Location.Label != "" {
		parts = append(parts, h.Location.Label)
	}
	if h.Summary != "" {
		parts = append(parts, h.Summary)
	}
	return strings.Join(parts, " • ")
}

func roomSummary(r catalog.Room) string {
	parts := make([]string, 0, 2)
	if r.Capacity > 0 {
		parts = append(parts, fmt.Sprintf("sleeps %d", r.Capacity))
	}
	if r.PricePerNight > 0 {
		parts = append(parts, fmt.Sprintf("$%.0f/night", r.PricePerNight))
	}
	return strings.Join(parts, " • ")
}

// CatalogDelegate renders catalog rows. Rooms are indented under their hotel.
type CatalogDelegate struct{}

// Height returns the height of each item.
func (d CatalogDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d CatalogDelegate) Spacing() int { return 0 }

// Update handles item updates.
func (d CatalogDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single row.
// Line 1: marker, name and photo count
// Line 2: summary
func (d CatalogDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(CatalogItem)
	if !ok {
		return
	}

	indent := 1
	if ci.IsRoom() {
		indent = 4
	}

	marker := " "
	nameStyle := styles.TextForegroundBoldStyle
	if index == m.Index() {
		marker = styles.TextPrimaryBoldStyle.Render("▸")
		nameStyle = styles.TextPrimaryBoldStyle
	}

	width := max(m.Width()-indent-2, 10)
	count := styles.TextMutedStyle.Render(photoCount(ci.Images))
	name := nameStyle.Render(ansi.Truncate(ci.Name, max(width-lipgloss.Width(count)-1, 1), "…"))
	summary := styles.TextMutedStyle.Render(ansi.Truncate(ci.Summary, width, "…"))

	pad := components.Pad(indent)
	_, _ = fmt.Fprintf(w, "%s%s %s %s\n%s  %s", marker, pad[1:], name, count, pad, summary)
}

func photoCount(n int) string {
	if n == 1 {
		return "1 photo"
	}
	return fmt.Sprintf("%d photos", n)
}

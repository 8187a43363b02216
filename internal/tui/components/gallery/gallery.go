// Package gallery renders a preview grid and a lightbox for an image set and
// maps keyboard and mouse input onto the gallery state machine.
package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	coregallery "github.com/colonyops/innview/internal/core/gallery"
	"github.com/colonyops/innview/internal/core/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is a Bubble Tea component wrapping a coregallery.Viewer. Copies of a
// Model share the same viewer.
type Model struct {
	viewer       *coregallery.Viewer
	gridKeys     GridKeyMap
	lightboxKeys LightboxKeyMap

	// focus is the position of the highlighted tile in grid order.
	focus int

	width   int
	height  int
	originX int
	originY int

	log zerolog.Logger
}

// New creates a gallery component for images.
func New(images []string) Model {
	return Model{
		viewer:       coregallery.New(images),
		gridKeys:     DefaultGridKeyMap(),
		lightboxKeys: DefaultLightboxKeyMap(),
		width:        defaultWidth,
		height:       defaultHeight,
		log:          logging.Component("gallery"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Viewer exposes the underlying state machine.
func (m Model) Viewer() *coregallery.Viewer { return m.viewer }

// IsOpen reports whether the lightbox is active.
func (m Model) IsOpen() bool { return m.viewer.IsOpen() }

// Focus returns the grid position of the highlighted tile.
func (m Model) Focus() int { return m.focus }

// Tiles returns the preview tiles in grid order.
func (m Model) Tiles() []coregallery.Tile { return m.viewer.Layout().Tiles() }

// SetSize sets the area used by the lightbox overlay.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetOrigin sets the screen position of the grid's top-left cell so mouse
// events can be translated into grid coordinates.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Update handles input for the gallery.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.viewer.IsOpen() {
			m.updateLightbox(msg)
		} else {
			m.updateGrid(msg)
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

func (m *Model) updateGrid(msg tea.KeyMsg) {
	tiles := m.Tiles()
	if len(tiles) == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.gridKeys.Left):
		m.focus = max(m.focus-1, 0)
	case key.Matches(msg, m.gridKeys.Right):
		m.focus = min(m.focus+1, len(tiles)-1)
	case key.Matches(msg, m.gridKeys.Down):
		// Secondary tiles sit in a 2x2 block: positions 1,2 over 3,4.
		if m.focus >= 1 && m.focus+2 < len(tiles) {
			m.focus += 2
		}
	case key.Matches(msg, m.gridKeys.Up):
		if m.focus >= 3 {
			m.focus -= 2
		}
	case key.Matches(msg, m.gridKeys.Activate):
		m.activate(tiles[m.focus])
	case key.Matches(msg, m.gridKeys.Reopen):
		m.viewer.Reopen()
		m.log.Debug().Int("index", m.viewer.Index()).Msg("lightbox resumed")
	default:
		if slot, ok := slotKey(msg); ok && slot <= len(tiles) {
			m.focus = slot - 1
			m.activate(tiles[slot-1])
		}
	}
}

func (m *Model) updateLightbox(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.lightboxKeys.Close):
		m.viewer.Close()
		m.log.Debug().Int("index", m.viewer.Index()).Msg("lightbox closed")
	case key.Matches(msg, m.lightboxKeys.Previous):
		m.viewer.Previous()
	case key.Matches(msg, m.lightboxKeys.Next):
		m.viewer.Next()
	}
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	if m.viewer.IsOpen() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewer.Previous()
		case tea.MouseButtonWheelDown:
			m.viewer.Next()
		}
		return
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	tile, pos, ok := m.TileAt(msg.X-m.originX, msg.Y-m.originY)
	if !ok {
		return
	}
	m.focus = pos
	m.activate(tile)
}

func (m *Model) activate(tile coregallery.Tile) {
	if err := m.viewer.OpenAt(tile.Index); err != nil {
		m.log.Warn().Err(err).Int("index", tile.Index).Msg("tile activation rejected")
		return
	}
	m.log.Debug().
		Int("index", tile.Index).
		Int("total", m.viewer.Len()).
		Msg("lightbox opened")
}

// slotKey maps the digit keys 1..5 to a 1-based grid slot.
func slotKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '0'+coregallery.PreviewSlots {
		return 0, false
	}
	return int(r - '0'), true
}

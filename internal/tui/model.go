// Package tui implements the Bubble Tea TUI for innview: a catalog list of
// hotels and rooms, and a detail page with a photo gallery.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/innview/internal/core/logging"
	"github.com/colonyops/innview/internal/core/styles"
	"github.com/colonyops/innview/internal/innview"
	"github.com/colonyops/innview/internal/tui/components"
	"github.com/colonyops/innview/internal/tui/components/gallery"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

// statusKind selects the status line style.
type statusKind int

const (
	statusInfo statusKind = iota
	statusError
)

// Options configures the TUI.
type Options struct {
	// Watcher reloads the catalog on change. Nil disables live reload.
	Watcher *CatalogWatcher
}

// Model is the root Bubble Tea model.
type Model struct {
	app     *innview.App
	keys    KeyMap
	list    list.Model
	help    help.Model
	watcher *CatalogWatcher

	screen screen
	detail *detailView

	helpDialog *components.HelpDialog
	infoDialog *components.InfoDialog

	status     string
	statusKind statusKind

	width  int
	height int

	log zerolog.Logger
}

// New creates the root model for app.
func New(app *innview.App, opts Options) Model {
	l := list.New(BuildItems(app.Gallery.Catalog()), CatalogDelegate{}, 0, 0)
	l.Title = "Hotels"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.CommandHeaderStyle
	l.Styles.TitleBar = l.Styles.TitleBar.PaddingLeft(1)

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = styles.TextMutedStyle
	h.Styles.ShortDesc = styles.TextMutedStyle
	h.Styles.ShortSeparator = styles.TextMutedStyle

	return Model{
		app:     app,
		keys:    DefaultKeyMap(),
		list:    l,
		help:    h,
		watcher: opts.Watcher,
		width:   80,
		height:  24,
		log:     logging.Component("tui"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Start()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-statusHeight, 1))
		if m.detail != nil {
			m.detail.gallery.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case catalogReloadedMsg:
		m.list.SetItems(BuildItems(msg.catalog))
		m.setStatus(statusInfo, "catalog reloaded")
		return m, m.rearmWatcher()

	case catalogReloadFailedMsg:
		m.setStatus(statusError, "catalog reload failed: "+msg.err.Error())
		return m, m.rearmWatcher()

	case detailLoadedMsg:
		if msg.err != nil {
			m.setStatus(statusError, msg.err.Error())
			return m, nil
		}
		m.detail = msg.detail
		m.screen = screenDetail
		m.status = ""
		m.log.Debug().Str("owner", m.detail.owner.Key()).Int("images", m.detail.gallery.Viewer().Len()).Msg("detail opened")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.screen == screenDetail && m.detail != nil && m.helpDialog == nil && m.infoDialog == nil {
			m.detail.gallery.SetOrigin(0, m.galleryOriginY())
			m.detail.gallery, _ = m.detail.gallery.Update(msg)
		}
		return m, nil
	}

	if m.screen == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Force) {
		m.savePosition()
		return m, tea.Quit
	}

	if m.helpDialog != nil {
		if key.Matches(msg, m.keys.Back, m.keys.Help) {
			m.helpDialog = nil
		}
		return m, nil
	}

	if m.infoDialog != nil {
		switch {
		case key.Matches(msg, m.keys.Back, m.keys.Info):
			m.infoDialog = nil
		case msg.String() == "j" || msg.String() == "down":
			m.infoDialog.ScrollDown()
		case msg.String() == "k" || msg.String() == "up":
			m.infoDialog.ScrollUp()
		}
		return m, nil
	}

	if m.screen == screenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = m.newHelpDialog()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		cat, err := m.app.Gallery.Reload()
		if err != nil {
			m.setStatus(statusError, "catalog reload failed: "+err.Error())
			return m, nil
		}
		m.list.SetItems(BuildItems(cat))
		m.setStatus(statusInfo, "catalog reloaded")
		return m, nil
	case key.Matches(msg, m.keys.Open):
		item, ok := m.list.SelectedItem().(CatalogItem)
		if !ok {
			return m, nil
		}
		return m, loadDetail(m.app, item.Owner, m.width, m.height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The gallery owns every key while its lightbox is open.
	if m.detail.gallery.IsOpen() {
		m.detail.gallery, _ = m.detail.gallery.Update(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.savePosition()
		m.detail = nil
		m.screen = screenList
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = m.newHelpDialog()
		return m, nil
	case key.Matches(msg, m.keys.Info):
		m.infoDialog = m.detail.infoDialog(m.width, m.height)
		return m, nil
	}

	m.detail.gallery, _ = m.detail.gallery.Update(msg)
	return m, nil
}

// savePosition persists the gallery index of the open detail view.
func (m Model) savePosition() {
	if m.detail == nil {
		return
	}
	m.app.Positions.Save(context.Background(), m.detail.owner, m.detail.gallery.Viewer())
}

func (m Model) rearmWatcher() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Start()
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.status = text
	m.statusKind = kind
	if kind == statusError {
		m.log.Warn().Msg(text)
	}
}

func (m Model) newHelpDialog() *components.HelpDialog {
	grid := gallery.DefaultGridKeyMap()
	lightbox := gallery.DefaultLightboxKeyMap()
	listKeys := m.list.KeyMap

	return components.NewHelpDialog("Keyboard shortcuts", []components.HelpDialogSection{
		components.SectionFromBindings("Catalog",
			listKeys.CursorUp, listKeys.CursorDown, listKeys.Filter, m.keys.Open, m.keys.Reload, m.keys.Quit),
		components.SectionFromBindings("Detail",
			m.keys.Back, m.keys.Info, m.keys.Help),
		components.SectionFromBindings("Gallery",
			grid.Left, grid.Right, grid.Up, grid.Down, grid.Activate, grid.Reopen),
		components.SectionFromBindings("Lightbox",
			lightbox.Previous, lightbox.Next, lightbox.Close),
	})
}

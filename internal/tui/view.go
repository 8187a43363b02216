package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/innview/internal/core/styles"
)

// statusHeight is the number of lines below the main content.
const statusHeight = 2

// View implements tea.Model.
func (m Model) View() string {
	var content string
	if m.screen == screenDetail && m.detail != nil {
		content = m.detailContent()
	} else {
		content = m.list.View()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, content, m.statusLine())

	switch {
	case m.helpDialog != nil:
		return m.helpDialog.Overlay(screen, m.width, m.height)
	case m.infoDialog != nil:
		return m.infoDialog.Overlay(screen, m.width, m.height)
	case m.detail != nil && m.screen == screenDetail:
		return m.detail.gallery.Overlay(screen, m.width, m.height)
	}
	return screen
}

// detailContent renders the header followed by the gallery grid.
func (m Model) detailContent() string {
	return m.detailHeader() + m.detail.gallery.Grid()
}

func (m Model) detailHeader() string {
	gridHeight := lipgloss.Height(m.detail.gallery.Grid())
	// title, subtitle, map link, blank line
	maxDesc := m.height - gridHeight - statusHeight - 5
	return m.detail.header(m.width, maxDesc)
}

// galleryOriginY is the screen row of the grid's top edge.
func (m Model) galleryOriginY() int {
	return strings.Count(m.detailHeader(), "\n")
}

func (m Model) statusLine() string {
	var bindings []key.Binding
	if m.screen == screenDetail && m.detail != nil {
		bindings = append(m.keys.detailHelp(), m.detail.gallery.ShortHelp()...)
	} else {
		bindings = m.keys.listHelp()
	}

	line := m.help.ShortHelpView(bindings)
	if m.status != "" {
		style := styles.TextSuccessStyle
		if m.statusKind == statusError {
			style = styles.TextErrorStyle
		}
		line = style.Render(m.status) + styles.TextMutedStyle.Render(" • ") + line
	}
	return "\n" + styles.StatusBarStyle.Render(line)
}

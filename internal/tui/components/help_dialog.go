// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/innview/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// SectionFromBindings builds a section from enabled key bindings.
func SectionFromBindings(title string, bindings ...key.Binding) HelpDialogSection {
	section := HelpDialogSection{Title: title}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		section.Entries = append(section.Entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return section
}

// HelpDialog displays all available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
	}
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	title := styles.TextForegroundBoldStyle.Render(h.title)

	var lines []string
	separator := styles.TextMutedStyle.Render("─────────────────────────")

	for i, section := range h.sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title))
			lines = append(lines, separator)
		}

		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(lines, "\n"),
	)

	help := styles.HelpDialogHelpStyle.Render("esc/? close")
	content = lipgloss.JoinVertical(lipgloss.Left, content, help)

	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the help dialog centered in place of background.
func (h *HelpDialog) Overlay(_ string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, h.View())
}

// formatKeyDesc formats a key-description pair with consistent alignment.
func formatKeyDesc(key, desc string) string {
	const keyWidth = 12

	displayWidth := lipgloss.Width(key)
	paddedKey := key + Pad(keyWidth-displayWidth)

	return styles.TextPrimaryBoldStyle.Render(paddedKey) + styles.TextForegroundStyle.Render(desc)
}

// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so assertions
// are not sensitive to styling.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single rune.
func KeyPress(key rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}}
}

// KeyType creates a key press message for a special key such as
// tea.KeyEnter or tea.KeyEsc.
func KeyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.KeyMsg { return KeyType(tea.KeyEnter) }

// KeyEsc creates an escape key press message.
func KeyEsc() tea.KeyMsg { return KeyType(tea.KeyEsc) }

// KeyLeft creates a left arrow key press message.
func KeyLeft() tea.KeyMsg { return KeyType(tea.KeyLeft) }

// KeyRight creates a right arrow key press message.
func KeyRight() tea.KeyMsg { return KeyType(tea.KeyRight) }

// KeyDown creates a down arrow key press message.
func KeyDown() tea.KeyMsg { return KeyType(tea.KeyDown) }

// KeyUp creates an up arrow key press message.
func KeyUp() tea.KeyMsg { return KeyType(tea.KeyUp) }

// LeftClick creates a left mouse button press at x, y.
func LeftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

package gallery

import "github.com/charmbracelet/bubbles/key"

// GridKeyMap binds keys used while the lightbox is closed.
type GridKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Reopen   key.Binding
}

// LightboxKeyMap binds keys used while the lightbox is open.
type LightboxKeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Close    key.Binding
}

// DefaultGridKeyMap returns the default grid bindings.
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "right")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/1-5", "open")),
		Reopen:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "resume")),
	}
}

// DefaultLightboxKeyMap returns the default lightbox bindings.
func DefaultLightboxKeyMap() LightboxKeyMap {
	return LightboxKeyMap{
		Previous: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "n", " "), key.WithHelp("→/l", "next")),
		Close:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp returns the bindings relevant to the current state.
func (m Model) ShortHelp() []key.Binding {
	if m.viewer.IsOpen() {
		return []key.Binding{m.lightboxKeys.Previous, m.lightboxKeys.Next, m.lightboxKeys.Close}
	}
	if m.viewer.Len() == 0 {
		return nil
	}
	return []key.Binding{m.gridKeys.Left, m.gridKeys.Right, m.gridKeys.Activate, m.gridKeys.Reopen}
}

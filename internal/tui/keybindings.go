package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the screen-level keys. Gallery keys live in the gallery
// component and take precedence while its lightbox is open.
type KeyMap struct {
	Open   key.Binding
	Back   key.Binding
	Info   key.Binding
	Help   key.Binding
	Reload key.Binding
	Quit   key.Binding
	Force  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Info:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) listHelp() []key.Binding {
	return []key.Binding{k.Open, k.Reload, k.Help, k.Quit}
}

func (k KeyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Back, k.Info, k.Help}
}

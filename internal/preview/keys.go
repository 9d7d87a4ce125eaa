package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the preview TUI.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Kind key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous scheme"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next scheme"),
		),
		Kind: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "cycle theme kind"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the condensed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Kind, k.Quit}
}

// FullHelp returns the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Kind, k.Help, k.Quit},
	}
}

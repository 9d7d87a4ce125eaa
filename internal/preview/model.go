// Package preview is a small bubbletea browser for tint schemes: it
// shows, for the current workspace's base hue, what every scheme would
// paint on each piece of window chrome, across theme kinds.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
)

// Model is the bubbletea model for the scheme preview.
type Model struct {
	identifier string
	baseHue    float64
	schemes    []string
	cursor     int
	kindIdx    int

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New creates a preview model for the given workspace identity.
func New(identifier string, baseHue float64, initialScheme string) Model {
	schemes := scheme.Names()
	cursor := 0
	for i, name := range schemes {
		if name == initialScheme {
			cursor = i
			break
		}
	}
	return Model{
		identifier: identifier,
		baseHue:    baseHue,
		schemes:    schemes,
		cursor:     cursor,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Selected returns the scheme name under the cursor.
func (m Model) Selected() string {
	return m.schemes[m.cursor]
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.schemes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Kind):
			m.kindIdx = (m.kindIdx + 1) % len(scheme.Kinds())
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

// kind returns the theme kind currently being previewed.
func (m Model) kind() scheme.ThemeKind {
	return scheme.Kinds()[m.kindIdx]
}

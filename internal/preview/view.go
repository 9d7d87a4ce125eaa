package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jimeh/vscode-glaze-sub003/internal/blend"
	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
	"github.com/jimeh/vscode-glaze-sub003/internal/ui"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorAccent)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorAccent)
	normalStyle   = lipgloss.NewStyle()
	paneStyle     = lipgloss.NewStyle().PaddingLeft(2)
)

// View renders the scheme list beside the swatch pane.
func (m Model) View() string {
	var left strings.Builder
	left.WriteString(titleStyle.Render("Schemes"))
	left.WriteString("\n\n")
	for i, name := range m.schemes {
		cursor := "  "
		line := normalStyle.Render(name)
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(name)
		}
		left.WriteString(cursor + line + "\n")
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		left.String(),
		paneStyle.Render(m.swatchPane()),
	)

	footer := ui.RenderMuted(fmt.Sprintf("workspace: %s  hue: %.1f°", m.identifier, m.baseHue))
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.showHelp {
		helpView = m.help.FullHelpView(m.keys.FullHelp())
	}

	return body + "\n" + footer + "\n" + helpView
}

// swatchPane renders the selected scheme's colors for the current
// theme kind.
func (m Model) swatchPane() string {
	name := m.Selected()
	resolver, ok := scheme.Lookup(name)
	if !ok {
		return ""
	}
	kind := m.kind()
	ctx := scheme.Context{BaseHue: m.baseHue}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", name, kind)))
	sb.WriteString("\n\n")
	for _, element := range scheme.Elements() {
		hex := blend.Render(resolver.Resolve(kind, element, ctx), "")
		sb.WriteString(fmt.Sprintf("%-14s %s\n", string(element), ui.SwatchLabeled(hex)))
	}
	return sb.String()
}

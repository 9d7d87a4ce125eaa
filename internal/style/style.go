// Package style provides consistent terminal styling using Lipgloss.
// Semantic styles only; the raw palette lives in internal/ui.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/jimeh/vscode-glaze-sub003/internal/ui"
)

var (
	// Success style for positive outcomes (green)
	Success = lipgloss.NewStyle().
		Foreground(ui.ColorPass).
		Bold(true)

	// Warning style for cautionary messages (yellow)
	Warning = lipgloss.NewStyle().
		Foreground(ui.ColorWarn).
		Bold(true)

	// Error style for failures (red)
	Error = lipgloss.NewStyle().
		Foreground(ui.ColorFail).
		Bold(true)

	// Info style for informational messages (blue)
	Info = lipgloss.NewStyle().
		Foreground(ui.ColorAccent)

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(ui.ColorMuted)

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)
)

// PrintSuccess prints a checkmarked success message.
func PrintSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", Success.Render("✓"), fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message with consistent formatting.
func PrintWarning(format string, args ...any) {
	fmt.Printf("%s %s\n", Warning.Render("! Warning:"), fmt.Sprintf(format, args...))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error.Render("✗ Error:"), fmt.Sprintf(format, args...))
}

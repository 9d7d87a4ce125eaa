// Package ui provides terminal styling for glaze CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support,
// plus swatch rendering for showing computed tints inline.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	if !ShouldUseColor() {
		// disable colors when not appropriate (non-TTY, NO_COLOR, etc.)
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		// swatches need TrueColor to show the actual computed tint
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// ApplyThemeMode applies the theme mode settings to lipgloss.
// Call after InitTheme.
func ApplyThemeMode() {
	if !ShouldUseColor() {
		return
	}
	lipgloss.SetHasDarkBackground(HasDarkBackground())
}

// Ayu theme color palette
// Source: https://github.com/ayu-theme/ayu-colors
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49",
		Dark:  "#ffb454",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
)

// Core styles - consistent across all commands
var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	BoldStyle   = lipgloss.NewStyle().Bold(true)
)

// RenderAccent renders text in the accent color.
func RenderAccent(s string) string { return AccentStyle.Render(s) }

// RenderMuted renders text in the muted color.
func RenderMuted(s string) string { return MutedStyle.Render(s) }

// swatchBlock is the width of a color chip in the terminal.
const swatchBlock = "      "

// Swatch renders a block of the given hex color. Falls back to the
// raw hex string when color output is disabled, so piped output stays
// readable.
func Swatch(hex string) string {
	if !ShouldUseColor() {
		return hex
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(swatchBlock)
}

// SwatchLabeled renders a chip followed by its hex value.
func SwatchLabeled(hex string) string {
	if !ShouldUseColor() {
		return hex
	}
	return Swatch(hex) + " " + MutedStyle.Render(hex)
}

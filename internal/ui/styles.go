package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA): node IDs, paths, highlights
// - Muted (gray): secondary info
// - No colored success/error/warning - unicode symbols only

var (
	// Accent style for node IDs, file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)
)

// ConfigureTheme overrides the accent color from config. Accepts ANSI codes
// ("0" to "255") or hex colors ("#RRGGBB"); empty keeps the default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	color := lipgloss.Color(accent)
	Accent = lipgloss.NewStyle().Foreground(color)
	AccentBold = lipgloss.NewStyle().Foreground(color).Bold(true)
}

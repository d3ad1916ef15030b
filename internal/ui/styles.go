// Package ui provides terminal output styling.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft teal): record names, paths, interactive elements
// - Muted (gray): secondary info
// - No colored success/error - unicode symbols only

const defaultAccent = "#5EC4B6"

var (
	// Accent style for record names, locations, database names
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

// ConfigureTheme overrides the accent color from config. Accepts ANSI
// codes ("0" to "255") or hex colors ("#RRGGBB"); anything else keeps
// the default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	color := lipgloss.Color(accent)
	Accent = lipgloss.NewStyle().Foreground(color)
	AccentBold = lipgloss.NewStyle().Foreground(color).Bold(true)
}

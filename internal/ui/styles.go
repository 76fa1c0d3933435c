// Package ui renders client book output for terminals.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA unless configured): names, headers, the prompt
// - Muted (gray): indexes, hints, secondary fields
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for client names and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, indexes
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

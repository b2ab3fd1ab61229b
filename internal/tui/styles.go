package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#2E86AB")
	accentColor  = lipgloss.Color("#F6AE2D")
	mutedColor   = lipgloss.Color("#888888")
	errorColor   = lipgloss.Color("#A40000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	playingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	stoppedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	waveStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	playheadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	spectrumStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

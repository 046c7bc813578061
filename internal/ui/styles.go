package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("#00FFFF")
	colorGreen  = lipgloss.Color("#00FF00")
	colorYellow = lipgloss.Color("#FFFF00")
	colorRed    = lipgloss.Color("#FF0000")
	colorGray   = lipgloss.Color("#666666")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	assistantStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	speakingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	footerKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(colorGray)
)

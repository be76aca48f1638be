package ui

import "github.com/charmbracelet/lipgloss"

// Colors shared across nex output.
var (
	// Success is used for clean state and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for dirty state and failures (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

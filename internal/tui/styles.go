package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true)

	InputTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	CashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ActiveBorderColor   = lipgloss.Color("#04B575")
	InactiveBorderColor = lipgloss.Color("#626262")
)

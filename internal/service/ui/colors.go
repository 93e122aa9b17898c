package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses ANSI 6 (cyan) for headings.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle uses ANSI 2 (green) for arguments and usage lines.
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle uses ANSI 8 (gray) so descriptions stay in the background.
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle uses ANSI 3 (yellow) for flags.
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	AnswerStyle = lipgloss.NewStyle().Bold(true)
	MissStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

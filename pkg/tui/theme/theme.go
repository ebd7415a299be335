// Package theme centralizes the lipgloss styles shared by the TUI views.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	Subtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Header   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	Empty    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	Occupied = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	Today    = lipgloss.NewStyle().Underline(true)
	Selected = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	Badge    = lipgloss.NewStyle().Faint(true)
	Toast    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Error    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	Help     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	TabIdle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

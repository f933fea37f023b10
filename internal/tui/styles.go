package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	badgeStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	emptyBadgeStyle = lipgloss.NewStyle().Padding(0, 1).Faint(true)

	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"specmap/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	stateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	issueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusImplemented: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		domain.StatusPartial:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		domain.StatusNotFound:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		domain.StatusUnknown:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
)

func renderStatus(s domain.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

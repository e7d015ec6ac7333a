package cli

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	toolStatusStyles = map[string]lipgloss.Style{
		"ok":      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"missing": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

func toolStatusStyle(status string) lipgloss.Style {
	if s, ok := toolStatusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

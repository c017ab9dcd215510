// Package modal provides the help overlay.
package modal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Title   string
	Body    string
	Width   int
	Height  int
	Theme   theme.Theme
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	body := p.Body
	if p.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Foreground(p.Theme.Accent).Render(p.Title) + "\n\n" + body
	}
	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Theme.Accent).
		Padding(1, 2).
		Render(body)

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}

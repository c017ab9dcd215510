// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sidepanel/internal/presentation/tui/metrics"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
	Theme  theme.Theme
}

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(max(p.Width, 0)).
		Height(max(p.Height, 0)).
		PaddingLeft(metrics.MainPaddingLeft)

	content := p.Body
	if p.Header != "" {
		header := lipgloss.NewStyle().
			Foreground(p.Theme.Accent).
			Bold(true).
			MarginBottom(1).
			Render(p.Header)
		if p.Body != "" {
			content = header + "\n" + p.Body
		} else {
			content = header
		}
	}
	return mainStyle.Render(content)
}

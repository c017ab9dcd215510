// Package weatherline renders the one-line weather summary under the greeting.
package weatherline

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sidepanel/internal/presentation/tui/textutil"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

// Props defines the properties for the weather line.
type Props struct {
	Text  string
	Width int
	Theme theme.Theme
}

// Render renders the weather line. A failed lookup has no text and renders nothing.
func Render(p Props) string {
	if p.Text == "" {
		return ""
	}
	text := p.Text
	if p.Width > 0 {
		text = textutil.Truncate(text, p.Width)
	}
	return lipgloss.NewStyle().Foreground(p.Theme.Muted).Render(text)
}

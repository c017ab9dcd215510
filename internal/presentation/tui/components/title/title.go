// Package title provides the greeting block at the top of the sidebar.
package title

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sidepanel/internal/domain/greeting"
	"github.com/tesso57/sidepanel/internal/presentation/tui/textutil"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

// Props defines the properties for the title component.
// Weather is the already rendered weather line.
type Props struct {
	Open    bool
	Now     time.Time
	Weather string
	Width   int
	Theme   theme.Theme
}

// Render renders the title component. The greeting is derived from Now on every call.
func Render(p Props) string {
	divider := lipgloss.NewStyle().
		Foreground(p.Theme.Border).
		Render(strings.Repeat("─", max(p.Width, 1)))
	if !p.Open {
		return divider
	}

	g := greeting.At(p.Now)
	head := lipgloss.NewStyle().
		Foreground(p.Theme.Accent).
		Bold(true).
		Render(textutil.Truncate(g.Icon+" "+g.Text, max(p.Width, 1)))

	lines := []string{head}
	if p.Weather != "" {
		lines = append(lines, p.Weather)
	}
	lines = append(lines, divider)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Package sidebar provides the sidebar frame component.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sidepanel/internal/presentation/tui/metrics"
	"github.com/tesso57/sidepanel/internal/presentation/tui/textutil"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

// Props defines the properties for the sidebar component.
// Sections are rendered top to bottom; Toggle is pinned to the last line.
type Props struct {
	Sections []string
	Toggle   string
	Width    int
	Height   int
	Theme    theme.Theme
}

// ContentWidth is the usable width inside the border and padding.
func ContentWidth(width int) int {
	return max(width-metrics.SidebarBorderWidth-2*metrics.SidebarPaddingX, 0)
}

// Render renders the sidebar component.
func Render(p Props) string {
	inner := ContentWidth(p.Width)

	var parts []string
	for _, s := range p.Sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	top := strings.Join(parts, "\n")

	if gap := p.Height - lipgloss.Height(top) - lipgloss.Height(p.Toggle); gap > 0 {
		top += strings.Repeat("\n", gap)
	}
	content := textutil.Clip(top+"\n"+p.Toggle, inner)

	style := lipgloss.NewStyle().
		Width(max(p.Width-metrics.SidebarBorderWidth, 0)).
		PaddingLeft(metrics.SidebarPaddingX).
		PaddingRight(metrics.SidebarPaddingX).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(p.Theme.Border)
	if p.Height > 0 {
		style = style.Height(p.Height).MaxHeight(p.Height)
	}
	return style.Render(content)
}

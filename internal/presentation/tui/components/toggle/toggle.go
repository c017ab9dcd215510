// Package toggle provides the collapse/expand button at the bottom of the sidebar.
package toggle

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sidepanel/internal/domain/navigation"
	"github.com/tesso57/sidepanel/internal/presentation/tui/metrics"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
	"github.com/tesso57/sidepanel/internal/presentation/tui/zones"
)

const (
	CollapseChevron = "«"
	ExpandChevron   = "»"
	HideLabel       = "Hide"
)

// Props defines the properties for the toggle component.
type Props struct {
	Open    bool
	Focused bool
	Width   int
	Mark    zones.Marker
	Theme   theme.Theme
}

// Render renders the toggle component.
func Render(p Props) string {
	st := navigation.State{Open: p.Open}

	chevron := ExpandChevron
	if p.Open {
		chevron = CollapseChevron
	}
	marker := " "
	if p.Focused {
		marker = "›"
	}

	row := lipgloss.NewStyle().Width(metrics.IconColumnWidth).Render(marker + chevron)
	if st.ShowHideLabel() {
		row += HideLabel
	}

	style := lipgloss.NewStyle().Foreground(p.Theme.Muted)
	if p.Focused {
		style = style.Foreground(p.Theme.Accent)
	}
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	return p.Mark.Mark(zones.Toggle, style.Render(row))
}

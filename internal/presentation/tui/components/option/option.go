// Package option provides a single navigation row of the sidebar.
package option

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sidepanel/internal/domain/navigation"
	"github.com/tesso57/sidepanel/internal/presentation/tui/metrics"
	"github.com/tesso57/sidepanel/internal/presentation/tui/textutil"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
	"github.com/tesso57/sidepanel/internal/presentation/tui/zones"
)

// FocusMarker prefixes the row under the keyboard cursor.
const FocusMarker = "›"

// Props defines the properties for the option component.
type Props struct {
	Icon     string
	Title    string
	Notifs   int
	Selected string
	Open     bool
	Focused  bool
	Width    int
	ZoneID   string
	Mark     zones.Marker
	Theme    theme.Theme
}

// Render renders the option component.
func Render(p Props) string {
	st := navigation.State{Open: p.Open, Selected: p.Selected}

	rowStyle := lipgloss.NewStyle().Foreground(p.Theme.Text)
	if st.IsSelected(p.Title) {
		rowStyle = rowStyle.
			Background(p.Theme.SelectedBg).
			Foreground(p.Theme.SelectedFg).
			Bold(true)
	}
	if p.Width > 0 {
		rowStyle = rowStyle.Width(p.Width)
	}

	row := iconCell(p.Focused, p.Icon)
	if st.ShowLabel() {
		badge := ""
		if st.ShowBadge(p.Notifs) {
			badge = lipgloss.NewStyle().
				Background(p.Theme.BadgeBg).
				Foreground(p.Theme.BadgeFg).
				Padding(0, 1).
				Render(strconv.Itoa(p.Notifs))
		}
		labelWidth := p.Width - metrics.IconColumnWidth - lipgloss.Width(badge)
		if badge != "" {
			labelWidth--
		}
		label := textutil.Truncate(p.Title, labelWidth)
		if badge != "" {
			label = lipgloss.NewStyle().Width(labelWidth + 1).Render(label)
		}
		row += label + badge
	}

	return p.Mark.Mark(p.ZoneID, rowStyle.Render(row))
}

func iconCell(focused bool, icon string) string {
	marker := " "
	if focused {
		marker = FocusMarker
	}
	return lipgloss.NewStyle().Width(metrics.IconColumnWidth).Render(marker + icon)
}

package state

import (
	"strings"

	"github.com/tesso57/sidepanel/internal/domain/navigation"
)

// FooterText returns the footer content. Row labels are hidden while the sidebar
// is collapsed, so the footer names the selected section instead.
func FooterText(sidebar navigation.State, menu navigation.Menu, helpText string) string {
	if sidebar.Open {
		return helpText
	}
	status := sectionStatus(sidebar.Selected, menu)
	if helpText == "" {
		return status
	}
	return status + "  " + helpText
}

func sectionStatus(selected string, menu navigation.Menu) string {
	selected = strings.TrimSpace(selected)
	if idx := menu.IndexOf(selected); idx >= 0 {
		item, _ := menu.At(idx)
		return item.Icon + " " + item.Title
	}
	return selected
}

// Package zones names the bubblezone hit areas of the sidebar.
// IDs are used both when rendering (Mark) and when handling mouse input (Get).
package zones

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Toggle is the collapse/expand button.
const Toggle = "sidepanel-toggle"

// Option returns the zone ID of the menu row at render index idx.
func Option(idx int) string {
	return fmt.Sprintf("sidepanel-option-%d", idx)
}

// Marker wraps rendered output in a zone.
type Marker func(id, v string) string

// Mark applies m, or returns v unchanged when m is nil.
func (m Marker) Mark(id, v string) string {
	if m == nil {
		return v
	}
	return m(id, v)
}

// Hit reports whether a mouse event landed in the zone id.
func Hit(manager *zone.Manager, id string, msg tea.MouseMsg) bool {
	if manager == nil {
		return false
	}
	info := manager.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}

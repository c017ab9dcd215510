package state

import (
	"context"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/harmonica"
	"github.com/tesso57/sidepanel/internal/domain/navigation"
	"github.com/tesso57/sidepanel/internal/domain/weather"
	"github.com/tesso57/sidepanel/internal/presentation/tui/metrics"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

// WeatherMount is one mounted instance of the weather line.
// Token identifies the instance; results carrying another token are stale.
type WeatherMount struct {
	Token  string
	State  weather.State
	Cancel context.CancelFunc
}

// Mounted reports whether a weather line is currently live.
func (w WeatherMount) Mounted() bool {
	return w.Token != ""
}

// Animation tracks the sidebar width spring.
type Animation struct {
	Spring   harmonica.Spring
	Width    float64
	Velocity float64
	Target   float64
	Running  bool
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Sidebar       navigation.State
	Menu          navigation.Menu
	Cursor        int
	Weather       WeatherMount
	Anim          Animation
	Animate       bool
	ExpandedWidth int
	Keys          KeyMap
	Help          help.Model
	Theme         theme.Theme
	Width         int
	Height        int
}

// CursorRows is the number of focusable rows: every menu item plus the toggle.
func (s *ModelState) CursorRows() int {
	return s.Menu.Len() + 1
}

// ToggleRow is the cursor index of the collapse/expand button.
func (s *ModelState) ToggleRow() int {
	return s.Menu.Len()
}

// TargetWidth is the sidebar width the current open flag asks for.
func (s *ModelState) TargetWidth() int {
	if s.Sidebar.Open {
		return max(s.ExpandedWidth, metrics.MinExpandedWidth)
	}
	return metrics.CollapsedWidth
}

// SidebarWidth is the width to draw this frame.
func (s *ModelState) SidebarWidth() int {
	if !s.Animate || !s.Anim.Running {
		return s.TargetWidth()
	}
	return int(math.Round(s.Anim.Width))
}

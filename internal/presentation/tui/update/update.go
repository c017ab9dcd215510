// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/sidepanel/internal/application/settings"
	"github.com/tesso57/sidepanel/internal/domain/weather"
	"github.com/tesso57/sidepanel/internal/infrastructure/logging"
	"github.com/tesso57/sidepanel/internal/presentation/tui/intent"
	"github.com/tesso57/sidepanel/internal/presentation/tui/state"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
	"github.com/tesso57/sidepanel/internal/presentation/tui/zones"
)

// WeatherLookup runs one locate-then-fetch attempt.
type WeatherLookup interface {
	Current(ctx context.Context) (weather.Data, error)
}

// Deps groups external dependencies for updates.
type Deps struct {
	Weather       WeatherLookup
	Zones         *zone.Manager
	Detector      *theme.Detector
	ConfigChanges <-chan struct{}
	ReloadConfig  func() (settings.Settings, error)
	NewToken      func() string
	Logger        *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	return logging.OrDiscard(d.Logger)
}

func (d Deps) newToken() string {
	if d.NewToken != nil {
		return d.NewToken()
	}
	return uuid.NewString()
}

// HandleKeyMsg applies a key press. It reports whether the key was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	in := intent.FromKeyMsg(msg, s.Keys)

	if s.Help.ShowAll {
		switch in.Type {
		case intent.Quit:
			return Quit(s), true
		case intent.ToggleHelp:
			s.Help.ShowAll = false
			return nil, true
		}
		if msg.Type == tea.KeyEsc {
			s.Help.ShowAll = false
		}
		return nil, true
	}

	switch in.Type {
	case intent.Quit:
		return Quit(s), true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.Up:
		MoveCursor(s, -1)
		return nil, true
	case intent.Down:
		MoveCursor(s, 1)
		return nil, true
	case intent.Select:
		return ActivateRow(s, s.Cursor, deps), true
	case intent.ToggleSidebar:
		return ToggleSidebar(s, deps), true
	}
	return nil, false
}

// HandleMouseMsg turns a left click on an option or the toggle into the same
// action the keyboard would trigger.
func HandleMouseMsg(s *state.ModelState, msg tea.MouseMsg, deps Deps) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if s.Help.ShowAll {
		return nil
	}
	if zones.Hit(deps.Zones, zones.Toggle, msg) {
		s.Cursor = s.ToggleRow()
		return ToggleSidebar(s, deps)
	}
	for i := 0; i < s.Menu.Len(); i++ {
		if zones.Hit(deps.Zones, zones.Option(i), msg) {
			return ActivateRow(s, i, deps)
		}
	}
	return nil
}

// MoveCursor moves keyboard focus by delta rows, clamped to the focusable rows.
func MoveCursor(s *state.ModelState, delta int) {
	s.Cursor = clamp(s.Cursor+delta, 0, s.CursorRows()-1)
}

// ActivateRow clicks the row at idx: a menu item becomes selected, the toggle row
// flips the sidebar.
func ActivateRow(s *state.ModelState, idx int, deps Deps) tea.Cmd {
	if idx == s.ToggleRow() {
		s.Cursor = idx
		return ToggleSidebar(s, deps)
	}
	item, ok := s.Menu.At(idx)
	if !ok {
		return nil
	}
	s.Cursor = idx
	s.Sidebar = s.Sidebar.Select(item.Title)
	deps.logger().Debug("sidebar: selected", slog.String("title", item.Title))
	return nil
}

// ToggleSidebar flips the open flag. The weather line lives inside the title
// section, so opening mounts a fresh one and collapsing unmounts it.
func ToggleSidebar(s *state.ModelState, deps Deps) tea.Cmd {
	from := s.SidebarWidth()
	s.Sidebar = s.Sidebar.Toggle()
	deps.logger().Debug("sidebar: toggled", slog.Bool("open", s.Sidebar.Open))

	var cmds []tea.Cmd
	if s.Sidebar.ShowTitle() {
		cmds = append(cmds, MountWeather(s, deps))
	} else {
		UnmountWeather(s)
	}
	cmds = append(cmds, StartAnimation(s, from))
	return tea.Batch(cmds...)
}

// Quit tears down the weather line and exits.
func Quit(s *state.ModelState) tea.Cmd {
	UnmountWeather(s)
	return tea.Quit
}

// HandleWindowSize records the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	s.Help.Width = msg.Width
}

func clamp(value, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

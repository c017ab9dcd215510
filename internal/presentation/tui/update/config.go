package update

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sidepanel/internal/application/settings"
	"github.com/tesso57/sidepanel/internal/presentation/tui/state"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

// ClockTickMsg is delivered once a minute so the greeting follows the hour.
type ClockTickMsg time.Time

// ConfigChangedMsg reports that the config file was written.
type ConfigChangedMsg struct{}

// ClockTickCmd waits for the next minute boundary.
func ClockTickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// WatchConfigCmd waits for the next config change. It returns nil when no
// watcher is attached.
func WatchConfigCmd(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return ConfigChangedMsg{}
	}
}

// HandleConfigChanged reloads settings and applies them, then waits for the next change.
// A broken file keeps the running settings.
func HandleConfigChanged(s *state.ModelState, deps Deps) tea.Cmd {
	next := WatchConfigCmd(deps.ConfigChanges)
	if deps.ReloadConfig == nil {
		return next
	}
	cfg, err := deps.ReloadConfig()
	if err != nil {
		deps.logger().Warn("config: reload failed", slog.Any("err", err))
		return next
	}
	from := s.SidebarWidth()
	ApplySettings(s, cfg, deps.Detector)
	deps.logger().Info("config: reloaded")
	return tea.Batch(next, StartAnimation(s, from))
}

// ApplySettings copies the presentation settings into the model. The sidebar
// state itself is left alone.
func ApplySettings(s *state.ModelState, cfg settings.Settings, detector *theme.Detector) {
	s.Keys = state.NewKeyMap(cfg.KeyMap)
	s.Theme = theme.Resolve(theme.Mode(cfg.Theme.Mode), cfg.Theme.Accent, detector)
	s.ExpandedWidth = cfg.Sidebar.ExpandedWidth
	s.Animate = cfg.Sidebar.Animate
}

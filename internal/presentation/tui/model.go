// Package tui provides the main user interface model and view components.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/sidepanel/internal/application/settings"
	"github.com/tesso57/sidepanel/internal/domain/navigation"
	"github.com/tesso57/sidepanel/internal/presentation/tui/state"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
	"github.com/tesso57/sidepanel/internal/presentation/tui/update"
	"github.com/tesso57/sidepanel/internal/presentation/tui/view"
)

// Model represents the main application state.
type Model struct {
	deps  update.Deps
	now   func() time.Time
	state *state.ModelState
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used by update handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.deps.Logger = logger }
}

// WithClock overrides the time source for the greeting and the calendar.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithZoneManager enables mouse hit testing.
func WithZoneManager(manager *zone.Manager) Option {
	return func(m *Model) { m.deps.Zones = manager }
}

// WithThemeDetector sets the background probe used for theme.mode=auto.
func WithThemeDetector(detector *theme.Detector) Option {
	return func(m *Model) { m.deps.Detector = detector }
}

// WithConfigReload makes the model re-apply settings whenever changes fires.
func WithConfigReload(changes <-chan struct{}, reload func() (settings.Settings, error)) Option {
	return func(m *Model) {
		m.deps.ConfigChanges = changes
		m.deps.ReloadConfig = reload
	}
}

// WithTokenSource overrides how weather mount tokens are generated.
func WithTokenSource(next func() string) Option {
	return func(m *Model) { m.deps.NewToken = next }
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, weather update.WeatherLookup, opts ...Option) *Model {
	m := &Model{
		deps: update.Deps{Weather: weather},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = newModelState(cfg, m.deps.Detector)
	return m
}

// Init mounts the weather line and starts the background ticks.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.state.Sidebar.ShowTitle() {
		cmds = append(cmds, update.MountWeather(m.state, m.deps))
	}
	cmds = append(cmds, update.ClockTickCmd(), update.WatchConfigCmd(m.deps.ConfigChanges))
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := update.HandleKeyMsg(m.state, msg, m.deps)
		return m, cmd
	case tea.MouseMsg:
		return m, update.HandleMouseMsg(m.state, msg, m.deps)
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.WeatherLoadedMsg:
		update.HandleWeatherLoadedMsg(m.state, msg, m.deps)
	case update.AnimationFrameMsg:
		return m, update.HandleAnimationFrame(m.state)
	case update.ClockTickMsg:
		return m, update.ClockTickCmd()
	case update.ConfigChangedMsg:
		return m, update.HandleConfigChanged(m.state, m.deps)
	}
	return m, nil
}

// View renders the application view.
func (m *Model) View() string {
	out := view.Render(m.buildProps())
	if m.deps.Zones == nil {
		return out
	}
	return m.deps.Zones.Scan(out)
}

// Sidebar returns the current sidebar state.
func (m *Model) Sidebar() navigation.State {
	return m.state.Sidebar
}

func newModelState(cfg settings.Settings, detector *theme.Detector) *state.ModelState {
	menu := navigation.DefaultMenu()
	st := &state.ModelState{
		Sidebar: navigation.NewState(cfg.Sidebar.DefaultSelected),
		Menu:    menu,
		Help:    help.New(),
		Anim:    state.Animation{Spring: update.NewSpring()},
	}
	update.ApplySettings(st, cfg, detector)
	if idx := menu.IndexOf(st.Sidebar.Selected); idx >= 0 {
		st.Cursor = idx
	}
	return st
}

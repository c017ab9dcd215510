package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/sidepanel/internal/application/settings"
	"github.com/tesso57/sidepanel/internal/domain/navigation"
	"github.com/tesso57/sidepanel/internal/domain/weather"
	"github.com/tesso57/sidepanel/internal/presentation/tui/metrics"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
	"github.com/tesso57/sidepanel/internal/presentation/tui/update"
)

type stubWeather struct {
	data weather.Data
	err  error
}

func (s stubWeather) Current(context.Context) (weather.Data, error) {
	return s.data, s.err
}

func testSettings() settings.Settings {
	return settings.Settings{
		Sidebar: settings.SidebarConfig{
			ExpandedWidth:   metrics.DefaultExpandedWidth,
			DefaultSelected: navigation.DefaultSelected,
		},
		KeyMap: settings.KeyMapConfig{
			Up:     "k,up",
			Down:   "j,down",
			Select: "enter,space",
			Toggle: "[,tab",
			Help:   "?",
			Quit:   "q,ctrl+c",
		},
		Theme: settings.ThemeConfig{Mode: "dark"},
	}
}

func newTestModel(t *testing.T, cfg settings.Settings, lookup update.WeatherLookup, hour int) *Model {
	t.Helper()
	n := 0
	m := NewModel(cfg, lookup,
		WithClock(func() time.Time { return time.Date(2026, time.October, 17, hour, 0, 0, 0, time.UTC) }),
		WithThemeDetector(theme.NewStaticDetector(true)),
		WithTokenSource(func() string {
			n++
			return fmt.Sprintf("mount-%d", n)
		}),
	)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		switch k {
		case "enter":
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		default:
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t, testSettings(), nil, 9)

	assert.True(t, m.Sidebar().Open)
	assert.Equal(t, navigation.DefaultSelected, m.Sidebar().Selected)
	assert.Equal(t, 0, m.state.Cursor)
	assert.False(t, m.state.Weather.Mounted())
}

func TestNewModel_ConfiguredSelection(t *testing.T) {
	cfg := testSettings()
	cfg.Sidebar.DefaultSelected = "Tags"

	m := newTestModel(t, cfg, nil, 9)

	assert.Equal(t, "Tags", m.Sidebar().Selected)
	assert.Equal(t, 4, m.state.Cursor)
}

func TestModel_InitialRender(t *testing.T) {
	m := newTestModel(t, testSettings(), stubWeather{}, 9)
	require.NotNil(t, m.Init())

	got := plainView(m)
	for _, want := range []string{"Good Morning", "Loading weather...", "Create", "October 2026", "Sales", "3", "Members", "Hide", "Dashboard"} {
		assert.Contains(t, got, want)
	}
}

func TestModel_WeatherResolves(t *testing.T) {
	m := newTestModel(t, testSettings(), stubWeather{}, 14)
	m.Init()

	m.Update(update.WeatherLoadedMsg{Token: "mount-1", Data: weather.NewData(21.6, "Clouds", "Testville")})

	got := plainView(m)
	assert.Contains(t, got, "Good Afternoon")
	assert.Contains(t, got, "22°C • Testville")
	assert.NotContains(t, got, "Loading weather...")
}

func TestModel_WeatherFailureRendersNothing(t *testing.T) {
	m := newTestModel(t, testSettings(), stubWeather{}, 20)
	m.Init()

	m.Update(update.WeatherLoadedMsg{Token: "mount-1", Err: weather.ErrLocationDenied})

	got := plainView(m)
	assert.Contains(t, got, "Good Evening")
	assert.NotContains(t, got, "Loading weather...")
	assert.NotContains(t, got, "°C")
}

func TestModel_CollapseHidesLabels(t *testing.T) {
	m := newTestModel(t, testSettings(), stubWeather{}, 9)
	m.Init()

	press(m, "[")

	require.False(t, m.Sidebar().Open)
	got := plainView(m)
	for _, hidden := range []string{"Good Morning", "Loading weather...", "October 2026", "Hide", "Sales"} {
		sidebarPart := firstColumns(got, metrics.CollapsedWidth)
		assert.NotContains(t, sidebarPart, hidden)
	}
	assert.Contains(t, got, "»")
	assert.False(t, m.state.Weather.Mounted())
}

func TestModel_LateWeatherAfterCollapseIsDropped(t *testing.T) {
	m := newTestModel(t, testSettings(), stubWeather{}, 9)
	m.Init()

	press(m, "[")
	m.Update(update.WeatherLoadedMsg{Token: "mount-1", Data: weather.NewData(30, "Clear", "Late")})
	press(m, "[")

	got := plainView(m)
	assert.Equal(t, "mount-2", m.state.Weather.Token)
	assert.Contains(t, got, "Loading weather...")
	assert.NotContains(t, got, "Late")
}

func TestModel_KeyboardSelect(t *testing.T) {
	m := newTestModel(t, testSettings(), nil, 9)

	press(m, "j", "enter")

	assert.Equal(t, "Sales", m.Sidebar().Selected)
	assert.Contains(t, plainView(m), "Sales has 3 new notifications.")

	press(m, "j", "j", "enter")
	assert.Equal(t, "Products", m.Sidebar().Selected)
}

func TestModel_SelectionSurvivesToggle(t *testing.T) {
	m := newTestModel(t, testSettings(), nil, 9)
	press(m, "j", "enter")

	press(m, "[", "[")

	assert.True(t, m.Sidebar().Open)
	assert.Equal(t, "Sales", m.Sidebar().Selected)
}

func TestModel_HelpModal(t *testing.T) {
	m := newTestModel(t, testSettings(), nil, 9)

	press(m, "?")
	got := plainView(m)
	assert.Contains(t, got, "Keys")
	assert.NotContains(t, got, "October 2026")

	press(m, "?")
	assert.Contains(t, plainView(m), "October 2026")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, testSettings(), stubWeather{}, 9)
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.state.Weather.Mounted())
}

func TestModel_ClockTickReschedules(t *testing.T) {
	m := newTestModel(t, testSettings(), nil, 9)

	_, cmd := m.Update(update.ClockTickMsg(time.Now()))

	assert.NotNil(t, cmd)
}

func TestModel_ConfigReload(t *testing.T) {
	changes := make(chan struct{}, 1)
	reloaded := testSettings()
	reloaded.Sidebar.ExpandedWidth = 40
	m := NewModel(testSettings(), nil,
		WithThemeDetector(theme.NewStaticDetector(true)),
		WithConfigReload(changes, func() (settings.Settings, error) { return reloaded, nil }),
	)

	m.Update(update.ConfigChangedMsg{})

	assert.Equal(t, 40, m.state.TargetWidth())
}

func firstColumns(view string, width int) string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

package update

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sidepanel/internal/domain/weather"
	"github.com/tesso57/sidepanel/internal/presentation/tui/state"
)

// WeatherLoadedMsg is emitted when a weather lookup finishes.
type WeatherLoadedMsg struct {
	Token string
	Data  weather.Data
	Err   error
}

// MountWeather starts a new weather line in Loading and returns the lookup command.
// Any previous instance is unmounted first.
func MountWeather(s *state.ModelState, deps Deps) tea.Cmd {
	UnmountWeather(s)

	ctx, cancel := context.WithCancel(context.Background())
	token := deps.newToken()
	s.Weather = state.WeatherMount{
		Token:  token,
		State:  weather.NewState(),
		Cancel: cancel,
	}
	deps.logger().Debug("weather: mounted", slog.String("token", token))
	return FetchWeatherCmd(ctx, deps.Weather, token)
}

// UnmountWeather cancels the in-flight lookup, if any, and forgets the instance.
func UnmountWeather(s *state.ModelState) {
	if s.Weather.Cancel != nil {
		s.Weather.Cancel()
	}
	s.Weather = state.WeatherMount{}
}

// FetchWeatherCmd creates a command running one lookup for the instance token.
func FetchWeatherCmd(ctx context.Context, lookup WeatherLookup, token string) tea.Cmd {
	return func() tea.Msg {
		if lookup == nil {
			return WeatherLoadedMsg{Token: token, Err: weather.ErrLocationDenied}
		}
		data, err := lookup.Current(ctx)
		return WeatherLoadedMsg{Token: token, Data: data, Err: err}
	}
}

// HandleWeatherLoadedMsg resolves the live instance. Results for an instance that
// has been unmounted or replaced are dropped. It reports whether msg was applied.
func HandleWeatherLoadedMsg(s *state.ModelState, msg WeatherLoadedMsg, deps Deps) bool {
	if msg.Token == "" || msg.Token != s.Weather.Token {
		deps.logger().Debug("weather: dropped stale result", slog.String("token", msg.Token))
		return false
	}

	s.Weather.State = s.Weather.State.Resolve(msg.Data, msg.Err)
	if s.Weather.Cancel != nil {
		s.Weather.Cancel()
		s.Weather.Cancel = nil
	}

	logger := deps.logger()
	switch {
	case msg.Err == nil:
		logger.Debug("weather: resolved", slog.String("summary", s.Weather.State.Text()))
	case errors.Is(msg.Err, weather.ErrLocationDenied):
		logger.Info("weather: hidden", slog.String("reason", s.Weather.State.Reason()))
	default:
		logger.Warn("weather: hidden", slog.String("reason", s.Weather.State.Reason()), slog.Any("err", msg.Err))
	}
	return true
}

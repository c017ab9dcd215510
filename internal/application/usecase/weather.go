// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tesso57/sidepanel/internal/domain/weather"
)

// Locator obtains the current position.
type Locator interface {
	Locate(ctx context.Context) (weather.Coordinates, error)
}

// WeatherFetcher fetches current conditions for a position.
type WeatherFetcher interface {
	Fetch(ctx context.Context, coords weather.Coordinates) (weather.Data, error)
}

// ErrorReporter receives failures that are hidden from the user.
type ErrorReporter interface {
	CaptureError(err error, tags map[string]string)
}

// WeatherService runs the one-shot lookup: locate, then fetch.
type WeatherService struct {
	Locator  Locator
	Fetcher  WeatherFetcher
	Timeout  time.Duration
	Logger   *slog.Logger
	Reporter ErrorReporter
}

// NewWeatherService constructs a WeatherService.
func NewWeatherService(locator Locator, fetcher WeatherFetcher, timeout time.Duration, logger *slog.Logger, reporter ErrorReporter) WeatherService {
	return WeatherService{
		Locator:  locator,
		Fetcher:  fetcher,
		Timeout:  timeout,
		Logger:   orDiscard(logger),
		Reporter: reporter,
	}
}

// Current locates the user and fetches the conditions there. It makes exactly one
// attempt. Errors wrap weather.ErrLocationDenied or weather.ErrFetchFailed.
func (s WeatherService) Current(ctx context.Context) (weather.Data, error) {
	logger := orDiscard(s.Logger)
	if s.Locator == nil {
		return weather.Data{}, weather.ErrLocationDenied
	}

	coords, err := s.Locator.Locate(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", weather.ErrLocationDenied, err)
		switch {
		case ctx.Err() != nil:
			// Unmounted; nothing to report.
		case errors.Is(err, weather.ErrLocationDisabled):
			logger.Debug("weather: location disabled")
		default:
			logger.Warn("weather: locate failed", slog.Any("err", err))
			s.report(err, "locate")
		}
		return weather.Data{}, err
	}
	logger.Debug("weather: located",
		slog.Float64("lat", coords.Latitude),
		slog.Float64("lon", coords.Longitude))

	if s.Fetcher == nil {
		return weather.Data{}, weather.ErrFetchFailed
	}
	fetchCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	data, err := s.Fetcher.Fetch(fetchCtx, coords)
	if err != nil {
		err = fmt.Errorf("%w: %w", weather.ErrFetchFailed, err)
		// Cancellation means the weather line went away; nothing to report.
		if ctx.Err() == nil {
			logger.Warn("weather: fetch failed", slog.Any("err", err))
			s.report(err, "fetch")
		}
		return weather.Data{}, err
	}

	logger.Info("weather: loaded",
		slog.Int("temp", data.Temp),
		slog.String("condition", data.Condition),
		slog.String("city", data.City))
	return data, nil
}

func (s WeatherService) report(err error, stage string) {
	if s.Reporter == nil {
		return
	}
	s.Reporter.CaptureError(err, map[string]string{"component": "weather", "stage": stage})
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

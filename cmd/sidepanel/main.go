// Command sidepanel runs the collapsible navigation sidebar in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/sidepanel/internal/application/usecase"
	"github.com/tesso57/sidepanel/internal/infrastructure/config"
	"github.com/tesso57/sidepanel/internal/infrastructure/geolocation"
	"github.com/tesso57/sidepanel/internal/infrastructure/logging"
	"github.com/tesso57/sidepanel/internal/infrastructure/openweather"
	"github.com/tesso57/sidepanel/internal/infrastructure/telemetry"
	"github.com/tesso57/sidepanel/internal/presentation/tui"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

var version = "dev"

type cli struct {
	Config  string           `help:"Path to the config file." short:"c" type:"path"`
	Version kong.VersionFlag `help:"Print the version and exit."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("sidepanel"),
		kong.Description("A collapsible navigation sidebar for the terminal."),
		kong.Vars{"version": version},
	)
	if err := run(c); err != nil {
		fmt.Fprintf(os.Stderr, "sidepanel: %v\n", err)
		os.Exit(1)
	}
}

func run(c cli) error {
	store, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := store.Settings

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = closer.Close() }()

	if err := telemetry.Init(cfg.Telemetry.DSN, cfg.Telemetry.Environment, version); err != nil {
		logger.Warn("telemetry: init failed", slog.Any("err", err))
	}
	defer telemetry.Flush()
	defer telemetry.RecoverPanic()

	logger.Info("starting",
		slog.String("version", version),
		slog.String("config", store.Path()),
		slog.String("location_mode", cfg.Location.Mode),
	)

	httpClient := &http.Client{Timeout: cfg.Weather.Timeout()}
	weatherSvc := usecase.NewWeatherService(
		geolocation.FromSettings(cfg.Location, httpClient),
		openweather.Client{
			Endpoint: cfg.Weather.Endpoint,
			APIKey:   cfg.Weather.APIKey,
			Units:    cfg.Weather.Units,
			HTTP:     httpClient,
		},
		cfg.Weather.Timeout(),
		logger,
		telemetry.Reporter{},
	)

	// Probe the background before the program takes over the terminal.
	detector := theme.NewDetector()
	detector.IsDark()

	zones := zone.New()
	defer zones.Close()

	opts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithZoneManager(zones),
		tui.WithThemeDetector(detector),
	}

	watcher, err := store.Watch()
	if err != nil {
		logger.Warn("config: watch disabled", slog.Any("err", err))
	} else {
		defer func() { _ = watcher.Close() }()
		go func() {
			for err := range watcher.Errors() {
				logger.Warn("config: watch error", slog.Any("err", err))
			}
		}()
		opts = append(opts, tui.WithConfigReload(watcher.Changes(), store.Reload))
	}

	p := tea.NewProgram(tui.NewModel(cfg, weatherSvc, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

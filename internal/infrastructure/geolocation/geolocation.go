// Package geolocation resolves the current position for the weather lookup.
package geolocation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/tesso57/sidepanel/internal/application/settings"
	"github.com/tesso57/sidepanel/internal/domain/weather"
)

// ErrDisabled is returned when location lookup is turned off.
var ErrDisabled = weather.ErrLocationDisabled

// Static always reports the configured position.
type Static struct {
	Coordinates weather.Coordinates
}

// Locate returns the configured coordinates.
func (s Static) Locate(_ context.Context) (weather.Coordinates, error) {
	return s.Coordinates, nil
}

// Off never yields a position.
type Off struct{}

// Locate always fails with ErrDisabled.
func (Off) Locate(_ context.Context) (weather.Coordinates, error) {
	return weather.Coordinates{}, ErrDisabled
}

// IP estimates the position from the public IP address using an ip-api.com style endpoint.
type IP struct {
	Endpoint string
	Client   *http.Client
}

// Locate queries the endpoint and reads lat/lon from the response.
func (l IP) Locate(ctx context.Context) (weather.Coordinates, error) {
	endpoint := strings.TrimSpace(l.Endpoint)
	if endpoint == "" {
		return weather.Coordinates{}, errors.New("geolocation endpoint is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Coordinates{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client().Do(req)
	if err != nil {
		return weather.Coordinates{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return weather.Coordinates{}, fmt.Errorf("geolocation: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return weather.Coordinates{}, err
	}
	return parseIPResponse(body)
}

func (l IP) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return http.DefaultClient
}

func parseIPResponse(body []byte) (weather.Coordinates, error) {
	if status, err := jsonparser.GetString(body, "status"); err == nil && status != "success" {
		msg, _ := jsonparser.GetString(body, "message")
		return weather.Coordinates{}, fmt.Errorf("geolocation: status %q %s", status, msg)
	}
	lat, err := jsonparser.GetFloat(body, "lat")
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("geolocation: lat: %w", err)
	}
	lon, err := jsonparser.GetFloat(body, "lon")
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("geolocation: lon: %w", err)
	}
	return weather.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// Locator is implemented by Static, Off and IP.
type Locator interface {
	Locate(ctx context.Context) (weather.Coordinates, error)
}

// FromSettings picks the locator for the configured mode.
func FromSettings(cfg settings.LocationConfig, client *http.Client) Locator {
	switch cfg.Mode {
	case "static":
		return Static{Coordinates: weather.Coordinates{Latitude: cfg.Latitude, Longitude: cfg.Longitude}}
	case "off":
		return Off{}
	default:
		return IP{Endpoint: cfg.Endpoint, Client: client}
	}
}

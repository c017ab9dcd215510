// Package openweather fetches current conditions from the OpenWeatherMap API.
package openweather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/tesso57/sidepanel/internal/domain/weather"
)

// DefaultEndpoint is the current weather by coordinates endpoint.
const DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

const userAgent = "sidepanel/1.0"

// Client queries the current weather endpoint.
type Client struct {
	Endpoint string
	APIKey   string
	Units    string
	HTTP     *http.Client
}

// Fetch returns the conditions at coords. Any missing field in the response is an error.
func (c Client) Fetch(ctx context.Context, coords weather.Coordinates) (weather.Data, error) {
	reqURL, err := c.requestURL(coords)
	if err != nil {
		return weather.Data{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return weather.Data{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return weather.Data{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return weather.Data{}, err
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := jsonparser.GetString(body, "message")
		return weather.Data{}, fmt.Errorf("openweather: status %d: %s", resp.StatusCode, msg)
	}
	return ParseCurrent(body)
}

func (c Client) requestURL(coords weather.Coordinates) (string, error) {
	endpoint := strings.TrimSpace(c.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("openweather: invalid endpoint: %w", err)
	}
	units := c.Units
	if units == "" {
		units = "metric"
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("units", units)
	q.Set("appid", c.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// ParseCurrent reads main.temp, weather[0].main and name from a current weather response.
func ParseCurrent(body []byte) (weather.Data, error) {
	temp, err := jsonparser.GetFloat(body, "main", "temp")
	if err != nil {
		return weather.Data{}, fmt.Errorf("openweather: main.temp: %w", err)
	}
	condition, err := jsonparser.GetString(body, "weather", "[0]", "main")
	if err != nil {
		return weather.Data{}, fmt.Errorf("openweather: weather[0].main: %w", err)
	}
	city, err := jsonparser.GetString(body, "name")
	if err != nil {
		return weather.Data{}, fmt.Errorf("openweather: name: %w", err)
	}
	return weather.NewData(temp, condition, city), nil
}

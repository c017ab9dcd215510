// Package settings defines application-level configuration data.
package settings

import "time"

// WeatherAPIKeyEnv names the environment variable the API key may come from.
const WeatherAPIKeyEnv = "WEATHER_API_KEY"

// SidebarConfig controls the sidebar layout.
type SidebarConfig struct {
	ExpandedWidth   int    `yaml:"expanded_width" kong:"help='Sidebar width in columns when open',default='32'"`
	DefaultSelected string `yaml:"default_selected" kong:"help='Section selected on start',default='Dashboard'"`
	Animate         bool   `yaml:"animate" kong:"help='Animate collapse and expand',default='true'"`
}

// WeatherConfig defines the OpenWeatherMap integration.
type WeatherConfig struct {
	APIKey         string `yaml:"api_key,omitempty" kong:"help='OpenWeatherMap API key',env='WEATHER_API_KEY'"`
	Endpoint       string `yaml:"endpoint" kong:"help='Current weather endpoint',default='https://api.openweathermap.org/data/2.5/weather'"`
	Units          string `yaml:"units" kong:"help='Units (metric/imperial/standard)',default='metric'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='10'"`
}

// Timeout returns the request timeout. Non-positive values disable it.
func (c WeatherConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LocationConfig defines how the current position is obtained.
type LocationConfig struct {
	Mode      string  `yaml:"mode" kong:"help='Location mode (ip/static/off)',enum='ip,static,off',default='ip'"`
	Endpoint  string  `yaml:"endpoint" kong:"help='IP geolocation endpoint',default='http://ip-api.com/json/'"`
	Latitude  float64 `yaml:"latitude" kong:"help='Latitude for static mode',default='0'"`
	Longitude float64 `yaml:"longitude" kong:"help='Longitude for static mode',default='0'"`
}

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up     string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down   string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Select string `yaml:"select" kong:"help='Select key',default='enter,space'"`
	Toggle string `yaml:"toggle" kong:"help='Collapse/expand key',default='[,tab'"`
	Help   string `yaml:"help" kong:"help='Help key',default='?'"`
	Quit   string `yaml:"quit" kong:"help='Quit key',default='q,ctrl+c'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Mode   string `yaml:"mode" kong:"help='Theme mode (auto/dark/light)',enum='auto,dark,light',default='auto'"`
	Accent string `yaml:"accent" kong:"help='Accent color',default='99'"`
}

// LogConfig defines the log file.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',enum='debug,info,warn,error',default='info'"`
}

// TelemetryConfig defines error reporting.
type TelemetryConfig struct {
	DSN         string `yaml:"dsn" kong:"help='Sentry DSN; empty disables reporting'"`
	Environment string `yaml:"environment" kong:"help='Sentry environment',default='production'"`
}

// Settings represents the application configuration.
type Settings struct {
	Sidebar   SidebarConfig   `yaml:"sidebar" kong:"embed,prefix='sidebar.'"`
	Weather   WeatherConfig   `yaml:"weather" kong:"embed,prefix='weather.'"`
	Location  LocationConfig  `yaml:"location" kong:"embed,prefix='location.'"`
	KeyMap    KeyMapConfig    `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme     ThemeConfig     `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log       LogConfig       `yaml:"log" kong:"embed,prefix='log.'"`
	Telemetry TelemetryConfig `yaml:"telemetry" kong:"embed,prefix='telemetry.'"`
}

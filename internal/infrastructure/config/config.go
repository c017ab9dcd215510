// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/sidepanel/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const appName = "sidepanel"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns ~/.config/sidepanel/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.yaml"), nil
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	store := &Store{configPath: configPath}
	cfg, err := parse(configPath)
	if err != nil {
		return nil, err
	}
	store.Settings = cfg

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaults := store.Settings
		if os.Getenv(settings.WeatherAPIKeyEnv) != "" {
			defaults.Weather.APIKey = ""
		}
		if err := write(configPath, defaults); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.configPath
}

// Reload re-reads the config file and replaces the in-memory settings.
func (s *Store) Reload() (settings.Settings, error) {
	cfg, err := parse(s.configPath)
	if err != nil {
		return s.Settings, err
	}
	s.Settings = cfg
	return cfg, nil
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	return write(s.configPath, s.Settings)
}

func parse(configPath string) (settings.Settings, error) {
	cfg := settings.Settings{}

	var options []kong.Option

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return cfg, err
	}

	if _, err := parser.Parse([]string{}); err != nil {
		return cfg, err
	}

	cfg.Sidebar.DefaultSelected = strings.TrimSpace(cfg.Sidebar.DefaultSelected)
	cfg.Weather.APIKey = strings.TrimSpace(cfg.Weather.APIKey)
	if cfg.Weather.APIKey == "" {
		cfg.Weather.APIKey = strings.TrimSpace(os.Getenv(settings.WeatherAPIKeyEnv))
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(defaultStateHome(), appName, appName+".log")
	}
	return cfg, nil
}

func write(configPath string, cfg settings.Settings) error {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(cfg)
}

func defaultStateHome() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return stateHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return scalarText(v), nil
			}
			if v, ok := lookupNested(values, strings.Split(name, ".")); ok {
				return scalarText(v), nil
			}
		}
		return nil, nil
	}
	return f, nil
}

// scalarText hands YAML scalars to kong as text so its own mappers convert them.
// yaml.v3 decodes `latitude: 0` as int, which kong cannot assign to a float64 field.
func scalarText(v any) any {
	switch v.(type) {
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v)
	}
	return v
}

func lookupNested(values map[string]any, parts []string) (any, bool) {
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for i, part := range parts {
		if i == len(parts)-1 {
			v, ok := curr[part]
			return v, ok
		}
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	return nil, false
}

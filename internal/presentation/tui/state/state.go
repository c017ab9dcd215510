// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/sidepanel/internal/application/settings"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Toggle, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(helpKey(cfg.Up), "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(helpKey(cfg.Down), "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Select)...),
			key.WithHelp(helpKey(cfg.Select), "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Toggle)...),
			key.WithHelp(helpKey(cfg.Toggle), "hide/show"),
		),
		Help: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Help)...),
			key.WithHelp(helpKey(cfg.Help), "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(helpKey(cfg.Quit), "quit"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		switch keyName {
		case "space", " ":
			out = append(out, "space", " ")
		case "pgdn":
			out = append(out, keyName, "pgdown")
		case "pgdown":
			out = append(out, keyName, "pgdn")
		default:
			out = append(out, keyName)
		}
	}
	return out
}

// helpKey shows the first configured key.
func helpKey(keys string) string {
	for part := range strings.SplitSeq(keys, ",") {
		if name := strings.TrimSpace(part); name != "" {
			return name
		}
	}
	return ""
}

package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sidepanel/internal/application/settings"
	"github.com/tesso57/sidepanel/internal/presentation/tui/state"
)

func TestFromKeyMsg(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up:     "k,up",
		Down:   "j,down",
		Select: "enter,space",
		Toggle: "[,tab",
		Help:   "?",
		Quit:   "q,ctrl+c",
	})

	runes := func(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{"quit", runes('q'), Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Quit},
		{"help", runes('?'), ToggleHelp},
		{"toggle bracket", runes('['), ToggleSidebar},
		{"toggle tab", tea.KeyMsg{Type: tea.KeyTab}, ToggleSidebar},
		{"up", runes('k'), Up},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, Down},
		{"select", tea.KeyMsg{Type: tea.KeyEnter}, Select},
		{"unbound", runes('z'), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys); got.Type != tt.want {
				t.Errorf("FromKeyMsg() = %v, want %v", got.Type, tt.want)
			}
		})
	}
}

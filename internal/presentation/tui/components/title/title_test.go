package title

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func at(hour int) time.Time {
	return time.Date(2026, time.October, 17, hour, 30, 0, 0, time.UTC)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		props     Props
		wantText  []string
		avoidText []string
	}{
		{
			name:     "Morning",
			props:    Props{Open: true, Now: at(0), Weather: "22°C • Testville", Width: 28},
			wantText: []string{"Good Morning", "22°C • Testville", "─"},
		},
		{
			name:      "Afternoon",
			props:     Props{Open: true, Now: at(16), Width: 28},
			wantText:  []string{"Good Afternoon"},
			avoidText: []string{"Morning"},
		},
		{
			name:     "Evening",
			props:    Props{Open: true, Now: at(17), Width: 28},
			wantText: []string{"Good Evening"},
		},
		{
			name:      "CollapsedShowsDividerOnly",
			props:     Props{Open: false, Now: at(9), Weather: "Loading weather...", Width: 3},
			wantText:  []string{"───"},
			avoidText: []string{"Good", "Loading"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(Render(tt.props))
			for _, want := range tt.wantText {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want %q", got, want)
				}
			}
			for _, avoid := range tt.avoidText {
				if strings.Contains(got, avoid) {
					t.Errorf("Render() = %q, should not contain %q", got, avoid)
				}
			}
		})
	}
}

func TestRender_EmptyWeatherAddsNoLine(t *testing.T) {
	got := Render(Props{Open: true, Now: at(9), Width: 28})

	if lines := strings.Count(got, "\n") + 1; lines != 2 {
		t.Errorf("got %d lines, want 2: %q", lines, ansi.Strip(got))
	}
}

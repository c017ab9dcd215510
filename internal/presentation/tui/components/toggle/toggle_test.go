package toggle

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/sidepanel/internal/presentation/tui/zones"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		props       Props
		wantChevron string
		wantHide    bool
	}{
		{name: "Open", props: Props{Open: true, Width: 20}, wantChevron: CollapseChevron, wantHide: true},
		{name: "Collapsed", props: Props{Open: false, Width: 3}, wantChevron: ExpandChevron, wantHide: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(Render(tt.props))
			if !strings.Contains(got, tt.wantChevron) {
				t.Errorf("Render() = %q, want chevron %q", got, tt.wantChevron)
			}
			if strings.Contains(got, HideLabel) != tt.wantHide {
				t.Errorf("Render() = %q, hide label shown = %v", got, !tt.wantHide)
			}
		})
	}
}

func TestRender_MarksToggleZone(t *testing.T) {
	var marked string
	Render(Props{Open: true, Mark: func(id, v string) string {
		marked = id
		return v
	}})

	if marked != zones.Toggle {
		t.Errorf("marked zone = %q, want %q", marked, zones.Toggle)
	}
}

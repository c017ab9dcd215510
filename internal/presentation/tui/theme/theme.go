// Package theme resolves the sidebar palette for dark and light terminals.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the palette.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Theme holds the colors used by the components.
type Theme struct {
	Dark       bool
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	SelectedBg lipgloss.Color
	SelectedFg lipgloss.Color
	BadgeBg    lipgloss.Color
	BadgeFg    lipgloss.Color
}

// Detector answers whether the terminal background is dark. The answer is cached
// because querying the terminal is not safe once the program owns it.
type Detector struct {
	probe  func() bool
	isDark *bool
}

// NewDetector returns a Detector backed by termenv.
func NewDetector() *Detector {
	return &Detector{probe: func() bool {
		return termenv.NewOutput(os.Stdout).HasDarkBackground()
	}}
}

// NewStaticDetector returns a Detector with a fixed answer.
func NewStaticDetector(dark bool) *Detector {
	return &Detector{probe: func() bool { return dark }}
}

// IsDark returns true if the background is dark.
func (d *Detector) IsDark() bool {
	if d == nil || d.probe == nil {
		return true
	}
	if d.isDark == nil {
		v := d.probe()
		d.isDark = &v
	}
	return *d.isDark
}

// Resolve builds the palette for mode. accent overrides the accent color when set.
func Resolve(mode Mode, accent string, d *Detector) Theme {
	dark := true
	switch mode {
	case ModeLight:
		dark = false
	case ModeDark:
		dark = true
	default:
		dark = d.IsDark()
	}

	var t Theme
	if dark {
		t = Theme{
			Dark:       true,
			Border:     lipgloss.Color("240"),
			Text:       lipgloss.Color("252"),
			Muted:      lipgloss.Color("245"),
			Accent:     lipgloss.Color("99"),
			SelectedBg: lipgloss.Color("55"),
			SelectedFg: lipgloss.Color("189"),
			BadgeBg:    lipgloss.Color("63"),
			BadgeFg:    lipgloss.Color("231"),
		}
	} else {
		t = Theme{
			Border:     lipgloss.Color("250"),
			Text:       lipgloss.Color("236"),
			Muted:      lipgloss.Color("244"),
			Accent:     lipgloss.Color("62"),
			SelectedBg: lipgloss.Color("189"),
			SelectedFg: lipgloss.Color("54"),
			BadgeBg:    lipgloss.Color("63"),
			BadgeFg:    lipgloss.Color("231"),
		}
	}
	if accent != "" {
		t.Accent = lipgloss.Color(accent)
	}
	return t
}

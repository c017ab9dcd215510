package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	dark := Resolve(ModeDark, "", nil)
	assert.True(t, dark.Dark)

	light := Resolve(ModeLight, "", nil)
	assert.False(t, light.Dark)
	assert.NotEqual(t, dark.SelectedBg, light.SelectedBg)

	withAccent := Resolve(ModeDark, "205", nil)
	assert.Equal(t, lipgloss.Color("205"), withAccent.Accent)
}

func TestResolve_AutoUsesDetector(t *testing.T) {
	assert.False(t, Resolve(ModeAuto, "", NewStaticDetector(false)).Dark)
	assert.True(t, Resolve(ModeAuto, "", NewStaticDetector(true)).Dark)
	assert.True(t, Resolve(ModeAuto, "", nil).Dark)
}

func TestDetector_Caches(t *testing.T) {
	calls := 0
	d := &Detector{probe: func() bool {
		calls++
		return false
	}}
	assert.False(t, d.IsDark())
	assert.False(t, d.IsDark())
	assert.Equal(t, 1, calls)
}

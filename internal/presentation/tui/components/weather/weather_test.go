package weatherline

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/tesso57/sidepanel/internal/domain/weather"
)

func TestRender(t *testing.T) {
	loading := weather.NewState()
	loaded := weather.NewState().Resolve(weather.NewData(21.6, "Clouds", "Testville"), nil)
	failed := weather.NewState().Resolve(weather.Data{}, weather.ErrFetchFailed)

	assert.Equal(t, "Loading weather...", ansi.Strip(Render(Props{Text: loading.Text()})))
	assert.Equal(t, "22°C • Testville", ansi.Strip(Render(Props{Text: loaded.Text()})))
	assert.Empty(t, Render(Props{Text: failed.Text()}))
}

func TestRender_Truncates(t *testing.T) {
	got := ansi.Strip(Render(Props{Text: "22°C • Llanfairpwllgwyngyll", Width: 12}))

	assert.LessOrEqual(t, ansi.StringWidth(got), 12)
}

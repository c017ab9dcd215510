package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeks(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantWeeks int
		wantFirst [7]int
		wantLast  [7]int
	}{
		{
			name:      "October2026StartsThursday",
			date:      time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC),
			wantWeeks: 5,
			wantFirst: [7]int{0, 0, 0, 0, 1, 2, 3},
			wantLast:  [7]int{25, 26, 27, 28, 29, 30, 31},
		},
		{
			name:      "February2026FitsFourWeeks",
			date:      time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantWeeks: 4,
			wantFirst: [7]int{1, 2, 3, 4, 5, 6, 7},
			wantLast:  [7]int{22, 23, 24, 25, 26, 27, 28},
		},
		{
			name:      "LeapFebruary2028",
			date:      time.Date(2028, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantWeeks: 5,
			wantFirst: [7]int{0, 0, 1, 2, 3, 4, 5},
			wantLast:  [7]int{27, 28, 29, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks := Weeks(tt.date)
			require.Len(t, weeks, tt.wantWeeks)
			assert.Equal(t, tt.wantFirst, weeks[0])
			assert.Equal(t, tt.wantLast, weeks[len(weeks)-1])
		})
	}
}

func TestRender(t *testing.T) {
	got := ansi.Strip(Render(Props{
		Visible: true,
		Now:     time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC),
		Width:   GridWidth,
	}))
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "October 2026", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Su Mo Tu We Th Fr Sa", lines[1])
	assert.Equal(t, "             1  2  3", lines[2])
	assert.Equal(t, "11 12 13 14 15 16 17", lines[4])
}

func TestRender_Hidden(t *testing.T) {
	assert.Empty(t, Render(Props{Visible: false, Now: time.Now()}))
}

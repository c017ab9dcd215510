// Package calendar renders a read-only month grid for the current date.
package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tesso57/sidepanel/internal/presentation/tui/theme"
)

const (
	cellWidth = 2
	// GridWidth is seven cells separated by single spaces.
	GridWidth = 7*cellWidth + 6
)

var weekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Props defines the properties for the calendar component.
type Props struct {
	Visible bool
	Now     time.Time
	Width   int
	Theme   theme.Theme
}

// Render renders the month containing Now, Sunday first, with today highlighted.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	width := max(p.Width, GridWidth)
	headerStyle := lipgloss.NewStyle().Foreground(p.Theme.Text).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(p.Theme.Muted)
	todayStyle := lipgloss.NewStyle().
		Background(p.Theme.Accent).
		Foreground(p.Theme.SelectedFg).
		Bold(true)

	lines := []string{
		headerStyle.Render(center(p.Now.Format("January 2006"), GridWidth)),
		mutedStyle.Render(strings.Join(weekdays[:], " ")),
	}
	for _, week := range Weeks(p.Now) {
		cells := make([]string, len(week))
		for i, day := range week {
			cell := strings.Repeat(" ", cellWidth)
			if day > 0 {
				cell = runewidth.FillLeft(strconv.Itoa(day), cellWidth)
			}
			if day == p.Now.Day() {
				cell = todayStyle.Render(cell)
			}
			cells[i] = cell
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// Weeks returns the month of t as rows of seven days, Sunday first.
// Days outside the month are 0.
func Weeks(t time.Time) [][7]int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	days := first.AddDate(0, 1, -1).Day()

	var weeks [][7]int
	var week [7]int
	col := int(first.Weekday())
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == len(week) {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return runewidth.FillRight(strings.Repeat(" ", left)+s, width)
}

// Package greeting buckets the local hour into a time-of-day greeting.
package greeting

import "time"

// Period is a time-of-day bucket.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
)

// Greeting is the text and icon shown at the top of the sidebar.
type Greeting struct {
	Period Period
	Text   string
	Icon   string
}

// ForHour returns the greeting for an hour of the day (0-23).
func ForHour(hour int) Greeting {
	switch {
	case hour < 12:
		return Greeting{Period: Morning, Text: "Good Morning", Icon: "🌅"}
	case hour < 17:
		return Greeting{Period: Afternoon, Text: "Good Afternoon", Icon: "☀️"}
	default:
		return Greeting{Period: Evening, Text: "Good Evening", Icon: "🌙"}
	}
}

// At returns the greeting for t in t's location.
func At(t time.Time) Greeting {
	return ForHour(t.Hour())
}

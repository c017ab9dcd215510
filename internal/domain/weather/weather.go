// Package weather defines current-conditions data and the one-shot weather state machine.
package weather

import (
	"errors"
	"fmt"
	"math"
)

// User-facing failure reasons.
const (
	ReasonLocationDenied = "Location access denied"
	ReasonFetchFailed    = "Failed to fetch weather"
)

var (
	// ErrLocationDenied reports that no position could be obtained.
	ErrLocationDenied = errors.New("location access denied")
	// ErrLocationDisabled reports that location lookup is turned off in the config.
	ErrLocationDisabled = errors.New("location lookup disabled")
	// ErrFetchFailed reports a transport error or a malformed weather response.
	ErrFetchFailed = errors.New("failed to fetch weather")
)

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Data is a short summary of the current conditions.
type Data struct {
	Temp      int
	Condition string
	City      string
}

// NewData builds Data, rounding temp to the nearest degree with halves rounded up.
func NewData(temp float64, condition, city string) Data {
	return Data{
		Temp:      roundHalfUp(temp),
		Condition: condition,
		City:      city,
	}
}

// Summary returns the display text, e.g. "22°C • Testville".
func (d Data) Summary() string {
	return fmt.Sprintf("%d°C • %s", d.Temp, d.City)
}

// roundHalfUp rounds to the nearest integer, with exact halves going up
// (2.5 to 3, -2.5 to -2).
func roundHalfUp(t float64) int {
	f := math.Floor(t)
	if t-f >= 0.5 {
		f++
	}
	return int(f)
}

package settings

import (
	"testing"
	"time"
)

func TestWeatherConfig_Timeout(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{10, 10 * time.Second},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		got := WeatherConfig{TimeoutSeconds: tt.seconds}.Timeout()
		if got != tt.want {
			t.Errorf("Timeout() with %d = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

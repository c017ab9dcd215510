package greeting

import (
	"testing"
	"time"
)

func TestForHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good Morning"},
		{11, "Good Morning"},
		{12, "Good Afternoon"},
		{16, "Good Afternoon"},
		{17, "Good Evening"},
		{23, "Good Evening"},
	}

	for _, tt := range tests {
		got := ForHour(tt.hour)
		if got.Text != tt.want {
			t.Errorf("ForHour(%d) = %q, want %q", tt.hour, got.Text, tt.want)
		}
		if got.Icon == "" {
			t.Errorf("ForHour(%d) has no icon", tt.hour)
		}
	}
}

func TestForHour_IconsDifferPerPeriod(t *testing.T) {
	seen := map[string]Period{}
	for _, hour := range []int{8, 14, 20} {
		g := ForHour(hour)
		if p, ok := seen[g.Icon]; ok && p != g.Period {
			t.Errorf("icon %q shared by periods %d and %d", g.Icon, p, g.Period)
		}
		seen[g.Icon] = g.Period
	}
}

func TestAt_CrossesHourBoundary(t *testing.T) {
	loc := time.FixedZone("test", 0)
	before := time.Date(2026, 10, 17, 11, 59, 59, 0, loc)
	after := before.Add(time.Second)

	if At(before).Period != Morning {
		t.Errorf("At(11:59:59) = %v, want Morning", At(before).Period)
	}
	if At(after).Period != Afternoon {
		t.Errorf("At(12:00:00) = %v, want Afternoon", At(after).Period)
	}
}

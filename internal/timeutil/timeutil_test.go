package timeutil

import (
	"testing"
	"time"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{59, "59m"},
		{60, "1h 0m"},
		{125, "2h 5m"},
		{480, "8h 0m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"0m", 0},
		{"45m", 45},
		{"1h 30m", 90},
		{"2h 5m", 125},
		{"3h", 180},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		if got := ParseMinutes(tt.input); got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 61, 90, 125, 480, 1441} {
		if got := ParseMinutes(FormatMinutes(m)); got != m {
			t.Errorf("round trip for %d minutes: got %d", m, got)
		}
	}
}

func TestSessionMinutes(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"2m30s rounds up", start.Add(2*time.Minute + 30*time.Second), 3},
		{"90s rounds half up", start.Add(90 * time.Second), 2},
		{"89s rounds down", start.Add(89 * time.Second), 1},
		{"exact hour", start.Add(time.Hour), 60},
		{"zero", start, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionMinutes(start, tt.end); got != tt.want {
				t.Errorf("SessionMinutes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	start, end, err := DayBounds("2025-06-01", loc)
	if err != nil {
		t.Fatalf("DayBounds failed: %v", err)
	}

	if start.Hour() != 0 || start.Day() != 1 {
		t.Errorf("expected midnight June 1, got %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("expected 24h day, got %v", end.Sub(start))
	}

	if _, _, err := DayBounds("not-a-date", loc); err == nil {
		t.Error("expected error for invalid date")
	}
}

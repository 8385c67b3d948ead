package timefmt

import (
	"testing"
	"time"
)

// ============================================================
// Display duration
// ============================================================

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h 0m"},
		{3660, "1h 1m"},
		{5400, "1h 30m"},
		{7200, "2h 0m"},
		{86400, "24h 0m"},
	}

	for _, tt := range tests {
		if got := Duration(tt.seconds); got != tt.want {
			t.Fatalf("Duration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{3725, "01:02:05"},
		{90061, "25:01:01"}, // hours keep counting past a day
	}

	for _, tt := range tests {
		if got := Clock(tt.seconds); got != tt.want {
			t.Fatalf("Clock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestDurationInput(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00"},
		{1800, "0:30"},
		{3600, "1:00"},
		{5400, "1:30"},
		{36000, "10:00"},
	}

	for _, tt := range tests {
		if got := DurationInput(tt.seconds); got != tt.want {
			t.Fatalf("DurationInput(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

// ============================================================
// Parsing
// ============================================================

func TestParseDurationInput(t *testing.T) {
	tests := []struct {
		text string
		want int64
		ok   bool
	}{
		{"1:30", 5400, true},
		{"0:45", 2700, true},
		{"10:00", 36000, true},
		{" 2 : 15 ", 8100, true},
		{"1h 30m", 5400, true},
		{"1h30m", 5400, true},
		{"45m", 2700, true},
		{"2h", 7200, true},
		{"90m", 5400, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1:xx", 0, false},
		{"-1:30", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDurationInput(tt.text)
		if ok != tt.ok {
			t.Fatalf("ParseDurationInput(%q) ok = %v, want %v", tt.text, ok, tt.ok)
		}
		if got != tt.want {
			t.Fatalf("ParseDurationInput(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestParseDurationInputRoundTrip(t *testing.T) {
	for _, seconds := range []int64{0, 60, 1800, 3600, 5400, 36060} {
		text := DurationInput(seconds)
		got, ok := ParseDurationInput(text)
		if !ok {
			t.Fatalf("ParseDurationInput(%q) failed", text)
		}
		if got != seconds {
			t.Fatalf("round trip through %q: got %d, want %d", text, got, seconds)
		}
	}
}

func TestClockHour(t *testing.T) {
	tests := []struct {
		clock string
		want  int
		ok    bool
	}{
		{"09:15 AM", 9, true},
		{"02:00 PM", 14, true},
		{"12:00 AM", 0, true},
		{"12:30 PM", 12, true},
		{"11:59 PM", 23, true},
		{"14:00", 14, true},
		{"", 0, false},
		{"morning", 0, false},
		{"25:00", 0, false},
	}

	for _, tt := range tests {
		got, ok := ClockHour(tt.clock)
		if ok != tt.ok {
			t.Fatalf("ClockHour(%q) ok = %v, want %v", tt.clock, ok, tt.ok)
		}
		if got != tt.want {
			t.Fatalf("ClockHour(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

// ============================================================
// Time rendering
// ============================================================

func TestDate(t *testing.T) {
	ts := time.Date(2024, 3, 7, 22, 15, 0, 0, time.UTC)
	if got := Date(ts); got != "2024-03-07" {
		t.Fatalf("Date = %q, want 2024-03-07", got)
	}
}

func TestClockTime(t *testing.T) {
	tests := []struct {
		ts   time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC), "09:05 AM"},
		{time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC), "02:30 PM"},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "12:00 AM"},
		{time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), "12:00 PM"},
	}

	for _, tt := range tests {
		if got := ClockTime(tt.ts); got != tt.want {
			t.Fatalf("ClockTime(%s) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

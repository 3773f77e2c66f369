package arrivals

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{"bus time with millis and offset", "2024-03-05T10:01:00.000-05:00", TimeOfDay{10, 1, 0}, false},
		{"utc", "2024-03-05T23:59:30Z", TimeOfDay{23, 59, 30}, false},
		{"offset is ignored", "2024-03-05T00:01:00+09:00", TimeOfDay{0, 1, 0}, false},
		{"no T", "10:01:00", TimeOfDay{}, true},
		{"short clock", "2024-03-05T10:01", TimeOfDay{}, true},
		{"letters", "2024-03-05Tab:cd:ef", TimeOfDay{}, true},
		{"hour out of range", "2024-03-05T25:00:00", TimeOfDay{}, true},
		{"empty", "", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMinutesUntil_IgnoresSeconds(t *testing.T) {
	now := TimeOfDay{10, 0, 59}
	arrival := TimeOfDay{10, 1, 0}
	if got := arrival.MinutesUntil(now); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestMinutesUntil_MidnightBoundary(t *testing.T) {
	// Time-of-day arithmetic does not wrap: 00:01 seen at 23:59 is -1438 minutes.
	now := TimeOfDay{23, 59, 0}
	arrival := TimeOfDay{0, 1, 0}
	if got := arrival.MinutesUntil(now); got != -1438 {
		t.Errorf("expected -1438, got %d", got)
	}
}

func TestTimeOfDay_Within(t *testing.T) {
	early := [2]TimeOfDay{{0, 15, 0}, {5, 30, 0}}
	overnight := [2]TimeOfDay{{23, 30, 0}, {5, 30, 0}}

	tests := []struct {
		name     string
		window   [2]TimeOfDay
		tod      TimeOfDay
		expected bool
	}{
		{"start inclusive", early, TimeOfDay{0, 15, 0}, true},
		{"inside", early, TimeOfDay{3, 0, 0}, true},
		{"end inclusive", early, TimeOfDay{5, 30, 0}, true},
		{"just after end", early, TimeOfDay{5, 30, 1}, false},
		{"just before start", early, TimeOfDay{0, 14, 59}, false},
		{"evening", early, TimeOfDay{23, 0, 0}, false},
		{"overnight before midnight", overnight, TimeOfDay{23, 45, 0}, true},
		{"overnight after midnight", overnight, TimeOfDay{1, 0, 0}, true},
		{"overnight start", overnight, TimeOfDay{23, 30, 0}, true},
		{"overnight end", overnight, TimeOfDay{5, 30, 0}, true},
		{"overnight midday", overnight, TimeOfDay{12, 0, 0}, false},
		{"overnight just before start", overnight, TimeOfDay{23, 29, 59}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tod.Within(tt.window[0], tt.window[1]); got != tt.expected {
				t.Errorf("Within(%v, %v) at %v = %v, expected %v", tt.window[0], tt.window[1], tt.tod, got, tt.expected)
			}
		})
	}
}

func TestTimeOfDay_Clock(t *testing.T) {
	if got := (TimeOfDay{5, 30, 0}).Clock(); got != "5:30am" {
		t.Errorf("expected 5:30am, got %s", got)
	}
	if got := (TimeOfDay{17, 5, 0}).Clock(); got != "5:05pm" {
		t.Errorf("expected 5:05pm, got %s", got)
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	if got := FromTime(ts); got != (TimeOfDay{14, 7, 9}) {
		t.Errorf("unexpected %v", got)
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("05:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (TimeOfDay{5, 30, 0}) {
		t.Errorf("unexpected %v", got)
	}
	for _, bad := range []string{"", "5:30", "25:00:00", "ab:cd:ef"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

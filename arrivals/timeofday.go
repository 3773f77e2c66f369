package arrivals

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without date or zone
type TimeOfDay struct {
	Hour, Minute, Second int
}

// FromTime takes the wall-clock fields of t in its own location
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseTimeOfDay extracts HH:MM:SS following the 'T' of an ISO8601 timestamp.
// The date and any fractional seconds or offset are ignored.
func ParseTimeOfDay(iso string) (TimeOfDay, error) {
	idx := strings.IndexByte(iso, 'T')
	if idx < 0 {
		return TimeOfDay{}, fmt.Errorf("no time component in %q", iso)
	}
	clock := iso[idx+1:]
	if len(clock) > 8 {
		clock = clock[:8]
	}
	return ParseClock(clock)
}

// ParseClock parses a bare HH:MM:SS value such as a config window bound
func ParseClock(clock string) (TimeOfDay, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("malformed time of day %q", clock)
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("malformed time of day %q: %w", clock, err)
		}
		vals[i] = n
	}
	tod := TimeOfDay{Hour: vals[0], Minute: vals[1], Second: vals[2]}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 || tod.Second < 0 || tod.Second > 60 {
		return TimeOfDay{}, fmt.Errorf("time of day out of range %q", clock)
	}
	return tod, nil
}

// MinuteOfDay ignores seconds
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// MinutesUntil is the signed whole-minute difference from now to t.
// There is no wrap at midnight.
func (t TimeOfDay) MinutesUntil(now TimeOfDay) int {
	return t.MinuteOfDay() - now.MinuteOfDay()
}

// Within reports whether t falls in [start, end], both inclusive, comparing seconds too.
// A start later than end is a window that wraps past midnight.
func (t TimeOfDay) Within(start, end TimeOfDay) bool {
	s, lo, hi := t.seconds(), start.seconds(), end.seconds()
	if lo > hi {
		return s >= lo || s <= hi
	}
	return lo <= s && s <= hi
}

func (t TimeOfDay) seconds() int {
	return t.MinuteOfDay()*60 + t.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Clock formats t the way the display shows it, e.g. 5:30am
func (t TimeOfDay) Clock() string {
	return time.Date(2000, 1, 1, t.Hour, t.Minute, t.Second, 0, time.UTC).Format("3:04pm")
}

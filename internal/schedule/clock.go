package schedule

import (
	"errors"
	"strings"
	"time"
)

// ClosedSentinel marks a day without working hours in schedule payloads.
const ClosedSentinel = "Closed"

// displayLayout is the canonical time-of-day format stored in a schedule.
const displayLayout = "3:04 PM"

var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
	"15:04",
	"15:04:05",
}

var ErrInvalidTime = errors.New("invalid time of day")

// IsClosedValue reports whether v means "no hours" for a start or end field.
func IsClosedValue(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, ClosedSentinel)
}

// ParseClock returns minutes since midnight for a time-of-day string.
func ParseClock(v string) (int, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v == "" {
		return 0, ErrInvalidTime
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, ErrInvalidTime
}

// normalizeClock rewrites v in the canonical "3:04 PM" form.
// Closed values normalize to the empty string.
func normalizeClock(v string) (string, error) {
	if IsClosedValue(v) {
		return "", nil
	}
	minutes, err := ParseClock(v)
	if err != nil {
		return "", err
	}
	t := time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(displayLayout), nil
}

// HourlyOptions lists the 24 whole-hour values offered by schedule pickers.
func HourlyOptions() []string {
	out := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		t := time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC)
		out = append(out, t.Format(displayLayout))
	}
	return out
}

// Package calendar selects appointments that fall on a given calendar day.
package calendar

import (
	"sort"
	"strings"
	"time"

	"tattooparlor/internal/pkg/datefmt"
)

// Appointment is any record with a backend appointment timestamp.
type Appointment interface {
	AppointmentTime() string
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	datefmt.BackendLayout,
}

// ParseAppointment reads a backend timestamp. Zoned values are converted to
// loc; values without a zone are read as wall-clock time in loc.
func ParseAppointment(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ForDate returns the items whose appointment falls on date's calendar day in
// date's location. Order is preserved and items is not modified.
func ForDate[T Appointment](items []T, date time.Time) []T {
	loc := date.Location()
	out := make([]T, 0)
	for _, it := range items {
		t, ok := ParseAppointment(it.AppointmentTime(), loc)
		if !ok {
			continue
		}
		if sameDay(t, date) {
			out = append(out, it)
		}
	}
	return out
}

// MarkedDays returns the distinct days of month that have at least one
// appointment, ascending, at midnight in month's location.
func MarkedDays[T Appointment](items []T, month time.Time) []time.Time {
	loc := month.Location()
	seen := make(map[int]struct{})
	for _, it := range items {
		t, ok := ParseAppointment(it.AppointmentTime(), loc)
		if !ok {
			continue
		}
		if t.Year() != month.Year() || t.Month() != month.Month() {
			continue
		}
		seen[t.Day()] = struct{}{}
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)

	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		out = append(out, time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, loc))
	}
	return out
}

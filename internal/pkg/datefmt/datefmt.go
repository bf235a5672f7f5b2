// Package datefmt converts browser datetime-local values into the long-form
// string the parlor backend stores as an appointment date.
package datefmt

import (
	"errors"
	"strings"
	"time"
)

const (
	// BackendLayout renders "Monday, March 10, 2025 3:00 PM".
	BackendLayout = "Monday, January 2, 2006 3:04 PM"
	// InvalidDate is returned for input that cannot be parsed.
	InvalidDate = "Invalid Date"
)

var ErrInvalidDatetime = errors.New("invalid datetime-local value")

var inputLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// Parse reads a datetime-local value as a wall-clock time with no zone.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDatetime
}

// ToBackendString formats a datetime-local value for the backend,
// or returns InvalidDate.
func ToBackendString(value string) string {
	t, err := Parse(value)
	if err != nil {
		return InvalidDate
	}
	return Format(t)
}

// Format renders t's wall clock in BackendLayout.
func Format(t time.Time) string {
	return t.Format(BackendLayout)
}

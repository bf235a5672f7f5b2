package datefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBackendString(t *testing.T) {
	cases := map[string]string{
		"2025-03-10T15:00":        "Monday, March 10, 2025 3:00 PM",
		"2025-03-10T09:05":        "Monday, March 10, 2025 9:05 AM",
		"2024-12-31T00:30:00":     "Tuesday, December 31, 2024 12:30 AM",
		"2025-07-04T12:00:00.000": "Friday, July 4, 2025 12:00 PM",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ToBackendString(in))
		})
	}
}

func TestToBackendString_Invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2025-13-01T10:00", "2025-03-10"} {
		assert.Equal(t, InvalidDate, ToBackendString(in), in)
	}
}

func TestToBackendString_Deterministic(t *testing.T) {
	assert.Equal(t, ToBackendString("2025-03-10T15:00"), ToBackendString("2025-03-10T15:00"))
}

func TestParse(t *testing.T) {
	ts, err := Parse(" 2025-03-10T15:00 ")
	require.NoError(t, err)
	assert.Equal(t, 15, ts.Hour())

	_, err = Parse("nope")
	assert.ErrorIs(t, err, ErrInvalidDatetime)
}

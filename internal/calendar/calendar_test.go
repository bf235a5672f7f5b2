package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattooparlor/internal/domain"
)

func bookings() []domain.Booking {
	return []domain.Booking{
		{ID: 1, AppointmentDate: "2025-03-10T15:00:00"},
		{ID: 2, AppointmentDate: "Tue, 11 Mar 2025 10:00:00 GMT"},
		{ID: 3, AppointmentDate: "Monday, March 10, 2025 9:00 AM"},
		{ID: 4, AppointmentDate: "garbage"},
		{ID: 5, AppointmentDate: "2025-03-10T23:30:00Z"},
		{ID: 6, AppointmentDate: ""},
	}
}

func ids(items []domain.Booking) []int64 {
	out := make([]int64, 0, len(items))
	for _, b := range items {
		out = append(out, b.ID)
	}
	return out
}

func TestForDate_UTC(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got := ForDate(bookings(), day)
	assert.Equal(t, []int64{1, 3, 5}, ids(got))
}

func TestForDate_ConvertsZonedTimestamps(t *testing.T) {
	ny := time.FixedZone("EST", -5*3600)
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, ny)

	// 23:30Z is 18:30 in New York, still the 10th; 10:00 GMT on the 11th is 05:00 on the 11th.
	got := ForDate(bookings(), day)
	assert.Equal(t, []int64{1, 3, 5}, ids(got))

	tokyo := time.FixedZone("JST", 9*3600)
	got = ForDate(bookings(), time.Date(2025, 3, 11, 0, 0, 0, 0, tokyo))
	assert.Equal(t, []int64{2, 5}, ids(got))
}

func TestForDate_DoesNotMutateAndIsIdempotent(t *testing.T) {
	in := bookings()
	before := append([]domain.Booking(nil), in...)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first := ForDate(in, day)
	second := ForDate(first, day)

	assert.Equal(t, before, in)
	assert.Equal(t, first, second)
}

func TestForDate_Empty(t *testing.T) {
	got := ForDate([]domain.Booking{}, time.Now())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestForDate_Piercings(t *testing.T) {
	items := []domain.Piercing{
		{ID: 10, AppointmentDate: "2025-04-01 13:00"},
		{ID: 11, AppointmentDate: "2025-04-02"},
	}
	got := ForDate(items, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 1)
	assert.Equal(t, int64(10), got[0].ID)
}

func TestParseAppointment(t *testing.T) {
	loc := time.UTC
	_, ok := ParseAppointment("not a date", loc)
	assert.False(t, ok)

	ts, ok := ParseAppointment("2025-03-10T15:00", loc)
	require.True(t, ok)
	assert.Equal(t, 15, ts.Hour())

	ts, ok = ParseAppointment("2025-03-10T15:00:00+02:00", loc)
	require.True(t, ok)
	assert.Equal(t, 13, ts.Hour())
}

func TestMarkedDays(t *testing.T) {
	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	items := append(bookings(), domain.Booking{ID: 7, AppointmentDate: "2025-04-10T10:00"})

	days := MarkedDays(items, month)
	require.Len(t, days, 2)
	assert.Equal(t, 10, days[0].Day())
	assert.Equal(t, 11, days[1].Day())
	assert.Equal(t, time.March, days[1].Month())
}

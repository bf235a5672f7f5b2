package booking

import (
	"context"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
)

type Backend interface {
	ListBookings(ctx context.Context, token string) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, token string, in backend.BookingInput) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, token string, id int64, patch backend.AppointmentPatch) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, token string, id int64) error

	ListPiercings(ctx context.Context, token string) ([]domain.Piercing, error)
	CreatePiercing(ctx context.Context, token string, in backend.PiercingInput) (*domain.Piercing, error)
	UpdatePiercing(ctx context.Context, token string, id int64, patch backend.AppointmentPatch) (*domain.Piercing, error)
	DeletePiercing(ctx context.Context, token string, id int64) error
}

// Notifier receives changes after the backend has confirmed them.
type Notifier interface {
	AppointmentChanged(ev domain.AppointmentEvent)
}

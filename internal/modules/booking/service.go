package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/calendar"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/datefmt"
	"tattooparlor/internal/pkg/logging"
)

const dateLayout = "2006-01-02"

type Service struct {
	backend  Backend
	notifier Notifier
	loc      *time.Location
	logger   *logging.Logger
}

func NewService(b Backend, notifier Notifier, loc *time.Location, logger *logging.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{backend: b, notifier: notifier, loc: loc, logger: logger.With("component", "booking")}
}

func (s *Service) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*domain.Booking, error) {
	if err := req.appointmentFields.check(); err != nil {
		return nil, err
	}
	when, err := backendDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	b, err := s.backend.CreateBooking(ctx, token, backend.BookingInput{
		Name:              strings.TrimSpace(req.Name),
		PhoneNumber:       strings.TrimSpace(req.PhoneNumber),
		ContactPreference: req.ContactPreference,
		TattooStyle:       strings.TrimSpace(req.TattooStyle),
		TattooSize:        strings.TrimSpace(req.TattooSize),
		Placement:         strings.TrimSpace(req.Placement),
		ArtistID:          req.ArtistID,
		StudioLocation:    strings.TrimSpace(req.StudioLocation),
		AppointmentDate:   when,
		Price:             *req.Price,
	})
	if err != nil {
		return nil, err
	}

	s.publish(domain.KindBooking, domain.ActionCreated, b.ID, b.ArtistID)
	return b, nil
}

func (s *Service) CreatePiercing(ctx context.Context, token string, req CreatePiercingRequest) (*domain.Piercing, error) {
	if err := req.appointmentFields.check(); err != nil {
		return nil, err
	}
	when, err := backendDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	p, err := s.backend.CreatePiercing(ctx, token, backend.PiercingInput{
		Name:              strings.TrimSpace(req.Name),
		PhoneNumber:       strings.TrimSpace(req.PhoneNumber),
		ContactPreference: req.ContactPreference,
		PiercingType:      strings.TrimSpace(req.PiercingType),
		JewelryType:       strings.TrimSpace(req.JewelryType),
		Placement:         strings.TrimSpace(req.Placement),
		ArtistID:          req.ArtistID,
		StudioLocation:    strings.TrimSpace(req.StudioLocation),
		AppointmentDate:   when,
		Price:             *req.Price,
	})
	if err != nil {
		return nil, err
	}

	s.publish(domain.KindPiercing, domain.ActionCreated, p.ID, p.ArtistID)
	return p, nil
}

func (s *Service) ListBookings(ctx context.Context, token string, f ListFilter) ([]domain.Booking, error) {
	day, err := s.filterDay(f.Date)
	if err != nil {
		return nil, err
	}
	items, err := s.backend.ListBookings(ctx, token)
	if err != nil {
		return nil, err
	}
	return applyFilter(items, f.ArtistID, day, func(b domain.Booking) int64 { return b.ArtistID }), nil
}

func (s *Service) ListPiercings(ctx context.Context, token string, f ListFilter) ([]domain.Piercing, error) {
	day, err := s.filterDay(f.Date)
	if err != nil {
		return nil, err
	}
	items, err := s.backend.ListPiercings(ctx, token)
	if err != nil {
		return nil, err
	}
	return applyFilter(items, f.ArtistID, day, func(p domain.Piercing) int64 { return p.ArtistID }), nil
}

func (s *Service) UpdateBooking(ctx context.Context, token string, id int64, req UpdateRequest) (*domain.Booking, error) {
	patch, err := toPatch(req)
	if err != nil {
		return nil, err
	}
	b, err := s.backend.UpdateBooking(ctx, token, id, patch)
	if err != nil {
		return nil, err
	}
	s.publish(domain.KindBooking, domain.ActionUpdated, id, b.ArtistID)
	return b, nil
}

func (s *Service) UpdatePiercing(ctx context.Context, token string, id int64, req UpdateRequest) (*domain.Piercing, error) {
	patch, err := toPatch(req)
	if err != nil {
		return nil, err
	}
	p, err := s.backend.UpdatePiercing(ctx, token, id, patch)
	if err != nil {
		return nil, err
	}
	s.publish(domain.KindPiercing, domain.ActionUpdated, id, p.ArtistID)
	return p, nil
}

// DeleteBooking reports success only once the backend confirmed the delete.
func (s *Service) DeleteBooking(ctx context.Context, token string, id int64) error {
	if err := s.backend.DeleteBooking(ctx, token, id); err != nil {
		return err
	}
	s.publish(domain.KindBooking, domain.ActionDeleted, id, 0)
	return nil
}

func (s *Service) DeletePiercing(ctx context.Context, token string, id int64) error {
	if err := s.backend.DeletePiercing(ctx, token, id); err != nil {
		return err
	}
	s.publish(domain.KindPiercing, domain.ActionDeleted, id, 0)
	return nil
}

func (s *Service) publish(kind domain.AppointmentKind, action domain.AppointmentAction, id, artistID int64) {
	s.logger.Info("appointment changed", "kind", kind, "action", action, "id", id, "artist_id", artistID)
	if s.notifier == nil {
		return
	}
	s.notifier.AppointmentChanged(domain.AppointmentEvent{Kind: kind, Action: action, ID: id, ArtistID: artistID})
}

func (s *Service) filterDay(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, value, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidQuery)
	}
	return &d, nil
}

func applyFilter[T calendar.Appointment](items []T, artistID int64, day *time.Time, artistOf func(T) int64) []T {
	if artistID > 0 {
		kept := make([]T, 0, len(items))
		for _, it := range items {
			if artistOf(it) == artistID {
				kept = append(kept, it)
			}
		}
		items = kept
	}
	if day != nil {
		return calendar.ForDate(items, *day)
	}
	if items == nil {
		return []T{}
	}
	return items
}

// backendDate converts the form's datetime-local value to the backend
// layout. Required-ness is checked by binding; this rejects garbage.
func backendDate(value string) (string, error) {
	if _, err := datefmt.Parse(value); err != nil {
		return "", ErrInvalidDate
	}
	return datefmt.ToBackendString(value), nil
}

func toPatch(req UpdateRequest) (backend.AppointmentPatch, error) {
	patch := backend.AppointmentPatch{
		Name:              trimmed(req.Name),
		PhoneNumber:       trimmed(req.PhoneNumber),
		ContactPreference: req.ContactPreference,
		TattooStyle:       trimmed(req.TattooStyle),
		TattooSize:        trimmed(req.TattooSize),
		PiercingType:      trimmed(req.PiercingType),
		JewelryType:       trimmed(req.JewelryType),
		Placement:         trimmed(req.Placement),
		StudioLocation:    trimmed(req.StudioLocation),
		Price:             req.Price,
		PaymentStatus:     req.PaymentStatus,
		Status:            req.Status,
	}
	if blank(patch.Name) || blank(patch.PhoneNumber) {
		return patch, fmt.Errorf("%w: name and phone number must not be empty", ErrValidation)
	}
	if req.AppointmentDate != nil {
		when, err := backendDate(*req.AppointmentDate)
		if err != nil {
			return patch, err
		}
		patch.AppointmentDate = &when
	}
	if patch == (backend.AppointmentPatch{}) {
		return patch, ErrEmptyPatch
	}
	return patch, nil
}

// check rejects required text fields that are only whitespace, which
// binding's required rule lets through.
func (f appointmentFields) check() error {
	for field, v := range map[string]string{
		"name":            f.Name,
		"phone_number":    f.PhoneNumber,
		"placement":       f.Placement,
		"studio_location": f.StudioLocation,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	return nil
}

func blank(v *string) bool {
	return v != nil && *v == ""
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

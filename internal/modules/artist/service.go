package artist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/calendar"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/schedule"
)

const dateLayout = "2006-01-02"

type Service struct {
	backend Backend
	loc     *time.Location
	now     func() time.Time
}

// NewService builds the artist service. Dates without a zone are read in loc.
func NewService(b Backend, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{backend: b, loc: loc, now: time.Now}
}

func (s *Service) List(ctx context.Context, token, name string) ([]domain.Artist, error) {
	return s.backend.ListArtists(ctx, token, name)
}

func (s *Service) Get(ctx context.Context, token string, id int64) (*domain.Artist, error) {
	return s.backend.GetArtist(ctx, token, id)
}

// Availability answers whether the artist works on the given date
// (YYYY-MM-DD, today when empty).
func (s *Service) Availability(ctx context.Context, token string, id int64, date string) (*AvailabilityResponse, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	a, err := s.backend.GetArtist(ctx, token, id)
	if err != nil {
		return nil, err
	}

	avail := schedule.IsOpenOn(a.AvailabilitySchedule, day)
	hours := schedule.NotAvailable
	if avail.Open {
		hours = avail.Window.Start + " - " + avail.Window.End
	}
	return &AvailabilityResponse{
		ArtistID:     a.ID,
		Date:         day.Format(dateLayout),
		Availability: avail,
		Hours:        hours,
	}, nil
}

func (s *Service) Hours(ctx context.Context, token string, id int64) (*HoursResponse, error) {
	a, err := s.backend.GetArtist(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return &HoursResponse{ArtistID: a.ID, Rows: schedule.WeekGrid(a.AvailabilitySchedule)}, nil
}

// Status reports whether the artist is inside working hours right now.
func (s *Service) Status(ctx context.Context, token string, id int64) (*StatusResponse, error) {
	a, err := s.backend.GetArtist(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{ArtistID: a.ID, Status: schedule.StatusAt(a.AvailabilitySchedule, s.now().In(s.loc))}, nil
}

func (s *Service) Calendar(ctx context.Context, token string, id int64, date string) (*CalendarResponse, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	bookings, err := s.backend.ArtistBookings(ctx, token, id)
	if err != nil {
		return nil, err
	}

	marked := calendar.MarkedDays(bookings, day)
	days := make([]string, 0, len(marked))
	for _, d := range marked {
		days = append(days, d.Format(dateLayout))
	}
	return &CalendarResponse{
		ArtistID:   id,
		Date:       day.Format(dateLayout),
		Bookings:   calendar.ForDate(bookings, day),
		MarkedDays: days,
	}, nil
}

func (s *Service) Create(ctx context.Context, token string, req CreateArtistRequest) (*domain.Artist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	in := backend.ArtistInput{
		Name:              name,
		Bio:               strings.TrimSpace(req.Bio),
		Specialties:       strings.TrimSpace(req.Specialties),
		Styles:            backend.ParseStyles(req.Styles),
		SocialMedia:       backend.ParseSocialMedia(req.SocialMedia),
		YearsOfExperience: req.YearsOfExperience,
		Location:          strings.TrimSpace(req.Location),
		ProfilePicture:    strings.TrimSpace(req.ProfilePicture),
		Certifications:    strings.TrimSpace(req.Certifications),
		Awards:            strings.TrimSpace(req.Awards),
	}
	if len(req.AvailabilitySchedule) > 0 {
		ws, err := strictSchedule(req.AvailabilitySchedule)
		if err != nil {
			return nil, err
		}
		in.AvailabilitySchedule = &ws
	}

	return s.backend.CreateArtist(ctx, token, in)
}

func (s *Service) Update(ctx context.Context, token string, id int64, req UpdateArtistRequest) (*domain.Artist, error) {
	patch, err := PatchFrom(req)
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateArtist(ctx, token, id, patch)
}

// PatchFrom converts a partial profile edit into the backend patch. Styles
// and social media are normalised; a schedule must parse strictly.
func PatchFrom(req UpdateArtistRequest) (backend.ArtistPatch, error) {
	patch := backend.ArtistPatch{
		Name:              trimmed(req.Name),
		Bio:               req.Bio,
		Specialties:       trimmed(req.Specialties),
		YearsOfExperience: req.YearsOfExperience,
		Location:          trimmed(req.Location),
		ProfilePicture:    trimmed(req.ProfilePicture),
		Certifications:    req.Certifications,
		Awards:            req.Awards,
		IsActive:          req.IsActive,
	}
	if patch.Name != nil && *patch.Name == "" {
		return patch, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if len(req.Styles) > 0 {
		patch.Styles = backend.ParseStyles(req.Styles)
	}
	if len(req.SocialMedia) > 0 {
		patch.SocialMedia = backend.ParseSocialMedia(req.SocialMedia)
	}
	if len(req.AvailabilitySchedule) > 0 {
		ws, err := strictSchedule(req.AvailabilitySchedule)
		if err != nil {
			return patch, err
		}
		patch.AvailabilitySchedule = &ws
	}
	return patch, nil
}

// SetWindow applies a single start or end change to the stored schedule.
// A rejected change is never sent to the backend.
func (s *Service) SetWindow(ctx context.Context, token string, id int64, day string, req SetWindowRequest) (*domain.Artist, error) {
	a, err := s.backend.GetArtist(ctx, token, id)
	if err != nil {
		return nil, err
	}

	ws := a.AvailabilitySchedule
	if err := ws.SetWindow(day, req.Field, req.Value); err != nil {
		return nil, err
	}
	return s.backend.UpdateArtist(ctx, token, id, backend.ArtistPatch{AvailabilitySchedule: &ws})
}

func (s *Service) Delete(ctx context.Context, token string, id int64) error {
	return s.backend.DeleteArtist(ctx, token, id)
}

func (s *Service) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		now := s.now().In(s.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc), nil
	}
	d, err := time.ParseInLocation(dateLayout, value, s.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// strictSchedule rejects schedules a user typed wrong, unlike the lenient
// parse used on backend payloads.
func strictSchedule(raw json.RawMessage) (schedule.WeeklySchedule, error) {
	var ws schedule.WeeklySchedule
	if err := json.Unmarshal(raw, &ws); err != nil {
		return schedule.WeeklySchedule{}, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	return ws, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

package artist

import (
	"encoding/json"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/schedule"
)

// CreateArtistRequest accepts styles as a list or comma-separated string and
// social media as an object or JSON string, the way the artist form posts them.
type CreateArtistRequest struct {
	Name                 string          `json:"name" binding:"required,max=120"`
	Bio                  string          `json:"bio" binding:"max=4000"`
	Specialties          string          `json:"specialties"`
	Styles               json.RawMessage `json:"styles"`
	SocialMedia          json.RawMessage `json:"social_media"`
	YearsOfExperience    int             `json:"years_of_experience" binding:"gte=0,lte=80"`
	Location             string          `json:"location"`
	ProfilePicture       string          `json:"profile_picture" binding:"omitempty,url"`
	AvailabilitySchedule json.RawMessage `json:"availability_schedule"`
	Certifications       string          `json:"certifications"`
	Awards               string          `json:"awards"`
}

type UpdateArtistRequest struct {
	Name                 *string         `json:"name" binding:"omitempty,min=1,max=120"`
	Bio                  *string         `json:"bio" binding:"omitempty,max=4000"`
	Specialties          *string         `json:"specialties"`
	Styles               json.RawMessage `json:"styles"`
	SocialMedia          json.RawMessage `json:"social_media"`
	YearsOfExperience    *int            `json:"years_of_experience" binding:"omitempty,gte=0,lte=80"`
	Location             *string         `json:"location"`
	ProfilePicture       *string         `json:"profile_picture" binding:"omitempty,url"`
	AvailabilitySchedule json.RawMessage `json:"availability_schedule"`
	Certifications       *string         `json:"certifications"`
	Awards               *string         `json:"awards"`
	IsActive             *bool           `json:"is_active"`
}

// SetWindowRequest changes one side of one day's window.
type SetWindowRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type AvailabilityResponse struct {
	ArtistID int64  `json:"artist_id"`
	Date     string `json:"date"`
	schedule.Availability
	Hours string `json:"hours"`
}

type HoursResponse struct {
	ArtistID int64              `json:"artist_id"`
	Rows     []schedule.GridRow `json:"rows"`
}

type StatusResponse struct {
	ArtistID int64 `json:"artist_id"`
	schedule.Status
}

// CalendarResponse carries the bookings for the selected day and the days of
// that month that have at least one booking.
type CalendarResponse struct {
	ArtistID   int64            `json:"artist_id"`
	Date       string           `json:"date"`
	Bookings   []domain.Booking `json:"bookings"`
	MarkedDays []string         `json:"marked_days"`
}

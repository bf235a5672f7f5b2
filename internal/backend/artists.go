package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/schedule"
)

// ArtistInput is the body of an artist create.
type ArtistInput struct {
	Name                 string                   `json:"name"`
	Bio                  string                   `json:"bio"`
	Specialties          string                   `json:"specialties"`
	Styles               []string                 `json:"styles"`
	SocialMedia          map[string]string        `json:"social_media"`
	YearsOfExperience    int                      `json:"years_of_experience"`
	Location             string                   `json:"location,omitempty"`
	ProfilePicture       string                   `json:"profile_picture,omitempty"`
	AvailabilitySchedule *schedule.WeeklySchedule `json:"availability_schedule,omitempty"`
	Certifications       string                   `json:"certifications,omitempty"`
	Awards               string                   `json:"awards,omitempty"`
}

// ArtistPatch carries only the fields being changed.
type ArtistPatch struct {
	Name                 *string                  `json:"name,omitempty"`
	Bio                  *string                  `json:"bio,omitempty"`
	Specialties          *string                  `json:"specialties,omitempty"`
	Styles               []string                 `json:"styles,omitempty"`
	SocialMedia          map[string]string        `json:"social_media,omitempty"`
	YearsOfExperience    *int                     `json:"years_of_experience,omitempty"`
	Location             *string                  `json:"location,omitempty"`
	ProfilePicture       *string                  `json:"profile_picture,omitempty"`
	AvailabilitySchedule *schedule.WeeklySchedule `json:"availability_schedule,omitempty"`
	Certifications       *string                  `json:"certifications,omitempty"`
	Awards               *string                  `json:"awards,omitempty"`
	IsActive             *bool                    `json:"is_active,omitempty"`
}

// ListArtists lists artists, filtered by name when name is non-empty.
func (c *Client) ListArtists(ctx context.Context, token, name string) ([]domain.Artist, error) {
	path := "/api/artists"
	if name = strings.TrimSpace(name); name != "" {
		path += "?" + url.Values{"name": {name}}.Encode()
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, "artists", http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return decodeArtists(raw)
}

func (c *Client) GetArtist(ctx context.Context, token string, id int64) (*domain.Artist, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/artists/%d", id)
	if err := c.doJSON(ctx, "artists", http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return decodeArtist(raw)
}

func (c *Client) CreateArtist(ctx context.Context, token string, in ArtistInput) (*domain.Artist, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "artists", http.MethodPost, "/api/artists", token, in, &raw); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return decodeArtist(raw)
}

func (c *Client) UpdateArtist(ctx context.Context, token string, id int64, patch ArtistPatch) (*domain.Artist, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/artists/%d", id)
	if err := c.doJSON(ctx, "artists", http.MethodPatch, path, token, patch, &raw); err != nil {
		return nil, fmt.Errorf("update artist: %w", err)
	}
	return decodeArtist(raw)
}

func (c *Client) DeleteArtist(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/artists/%d", id)
	if err := c.doJSON(ctx, "artists", http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	return nil
}

// ArtistBookings lists the tattoo bookings of one artist.
func (c *Client) ArtistBookings(ctx context.Context, token string, artistID int64) ([]domain.Booking, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/artists/%d/bookings", artistID)
	if err := c.doJSON(ctx, "artists", http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, fmt.Errorf("artist bookings: %w", err)
	}
	return decodeList[domain.Booking](raw, "bookings")
}

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tattooparlor/internal/domain"
)

// BookingInput is a new tattoo booking. AppointmentDate is already in the
// backend's long-form layout.
type BookingInput struct {
	Name              string                   `json:"name"`
	PhoneNumber       string                   `json:"phone_number"`
	ContactPreference domain.ContactPreference `json:"call_or_text_preference"`
	TattooStyle       string                   `json:"tattoo_style"`
	TattooSize        string                   `json:"tattoo_size"`
	Placement         string                   `json:"placement"`
	ArtistID          int64                    `json:"artist_id"`
	StudioLocation    string                   `json:"studio_location"`
	AppointmentDate   string                   `json:"appointment_date"`
	Price             float64                  `json:"price"`
}

type PiercingInput struct {
	Name              string                   `json:"name"`
	PhoneNumber       string                   `json:"phone_number"`
	ContactPreference domain.ContactPreference `json:"call_or_text_preference"`
	PiercingType      string                   `json:"piercing_type"`
	JewelryType       string                   `json:"jewelry_type"`
	Placement         string                   `json:"placement"`
	ArtistID          int64                    `json:"artist_id"`
	StudioLocation    string                   `json:"studio_location"`
	AppointmentDate   string                   `json:"appointment_date"`
	Price             float64                  `json:"price"`
}

// AppointmentPatch is shared by booking and piercing edits.
type AppointmentPatch struct {
	Name              *string                   `json:"name,omitempty"`
	PhoneNumber       *string                   `json:"phone_number,omitempty"`
	ContactPreference *domain.ContactPreference `json:"call_or_text_preference,omitempty"`
	TattooStyle       *string                   `json:"tattoo_style,omitempty"`
	TattooSize        *string                   `json:"tattoo_size,omitempty"`
	PiercingType      *string                   `json:"piercing_type,omitempty"`
	JewelryType       *string                   `json:"jewelry_type,omitempty"`
	Placement         *string                   `json:"placement,omitempty"`
	StudioLocation    *string                   `json:"studio_location,omitempty"`
	AppointmentDate   *string                   `json:"appointment_date,omitempty"`
	Price             *float64                  `json:"price,omitempty"`
	PaymentStatus     *domain.PaymentStatus     `json:"payment_status,omitempty"`
	Status            *domain.BookingStatus     `json:"status,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "bookings", http.MethodGet, "/api/bookings", token, nil, &raw); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return decodeList[domain.Booking](raw, "bookings")
}

func (c *Client) CreateBooking(ctx context.Context, token string, in BookingInput) (*domain.Booking, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "bookings", http.MethodPost, "/api/bookings", token, in, &raw); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return decodeOne[domain.Booking](raw, "booking")
}

func (c *Client) UpdateBooking(ctx context.Context, token string, id int64, patch AppointmentPatch) (*domain.Booking, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/bookings/%d", id)
	if err := c.doJSON(ctx, "bookings", http.MethodPatch, path, token, patch, &raw); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return decodeOne[domain.Booking](raw, "booking")
}

func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/bookings/%d", id)
	if err := c.doJSON(ctx, "bookings", http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func (c *Client) ListPiercings(ctx context.Context, token string) ([]domain.Piercing, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "piercings", http.MethodGet, "/api/piercings", token, nil, &raw); err != nil {
		return nil, fmt.Errorf("list piercings: %w", err)
	}
	return decodeList[domain.Piercing](raw, "piercings")
}

func (c *Client) CreatePiercing(ctx context.Context, token string, in PiercingInput) (*domain.Piercing, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "piercings", http.MethodPost, "/api/piercings", token, in, &raw); err != nil {
		return nil, fmt.Errorf("create piercing: %w", err)
	}
	return decodeOne[domain.Piercing](raw, "piercing")
}

func (c *Client) UpdatePiercing(ctx context.Context, token string, id int64, patch AppointmentPatch) (*domain.Piercing, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/piercings/%d", id)
	if err := c.doJSON(ctx, "piercings", http.MethodPatch, path, token, patch, &raw); err != nil {
		return nil, fmt.Errorf("update piercing: %w", err)
	}
	return decodeOne[domain.Piercing](raw, "piercing")
}

func (c *Client) DeletePiercing(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/piercings/%d", id)
	if err := c.doJSON(ctx, "piercings", http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete piercing: %w", err)
	}
	return nil
}

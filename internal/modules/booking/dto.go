package booking

import "tattooparlor/internal/domain"

// appointmentFields are shared by the booking and piercing forms.
// AppointmentDate is the browser's datetime-local value.
type appointmentFields struct {
	Name              string                   `json:"name" binding:"required,max=120"`
	PhoneNumber       string                   `json:"phone_number" binding:"required,max=32"`
	ContactPreference domain.ContactPreference `json:"call_or_text_preference" binding:"required,oneof=call text"`
	Placement         string                   `json:"placement" binding:"required"`
	ArtistID          int64                    `json:"artist_id" binding:"required,gt=0"`
	StudioLocation    string                   `json:"studio_location" binding:"required"`
	AppointmentDate   string                   `json:"appointment_date" binding:"required"`
	Price             *float64                 `json:"price" binding:"required,gte=0"`
}

type CreateBookingRequest struct {
	appointmentFields
	TattooStyle string `json:"tattoo_style" binding:"required"`
	TattooSize  string `json:"tattoo_size" binding:"required"`
}

type CreatePiercingRequest struct {
	appointmentFields
	PiercingType string `json:"piercing_type" binding:"required"`
	JewelryType  string `json:"jewelry_type" binding:"required"`
}

// UpdateRequest is a partial edit of a booking or piercing. Only fields
// that are present are forwarded.
type UpdateRequest struct {
	Name              *string                   `json:"name" binding:"omitempty,min=1,max=120"`
	PhoneNumber       *string                   `json:"phone_number" binding:"omitempty,min=1,max=32"`
	ContactPreference *domain.ContactPreference `json:"call_or_text_preference" binding:"omitempty,oneof=call text"`
	TattooStyle       *string                   `json:"tattoo_style"`
	TattooSize        *string                   `json:"tattoo_size"`
	PiercingType      *string                   `json:"piercing_type"`
	JewelryType       *string                   `json:"jewelry_type"`
	Placement         *string                   `json:"placement"`
	StudioLocation    *string                   `json:"studio_location"`
	AppointmentDate   *string                   `json:"appointment_date"`
	Price             *float64                  `json:"price" binding:"omitempty,gte=0"`
	PaymentStatus     *domain.PaymentStatus     `json:"payment_status" binding:"omitempty,oneof=unpaid paid"`
	Status            *domain.BookingStatus     `json:"status" binding:"omitempty,oneof=pending completed canceled"`
}

// ListFilter narrows a list on the web tier: by artist and/or by calendar day.
type ListFilter struct {
	ArtistID int64
	Date     string
}

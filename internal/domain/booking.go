package domain

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
	BookingCanceled  BookingStatus = "canceled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type ContactPreference string

const (
	ContactCall ContactPreference = "call"
	ContactText ContactPreference = "text"
)

// Booking is a tattoo appointment. AppointmentDate holds whatever timestamp
// string the backend stores.
type Booking struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	PhoneNumber       string            `json:"phone_number"`
	ContactPreference ContactPreference `json:"call_or_text_preference"`
	TattooStyle       string            `json:"tattoo_style"`
	TattooSize        string            `json:"tattoo_size"`
	Placement         string            `json:"placement"`
	ArtistID          int64             `json:"artist_id"`
	StudioLocation    string            `json:"studio_location"`
	AppointmentDate   string            `json:"appointment_date"`
	Price             float64           `json:"price"`
	PaymentStatus     PaymentStatus     `json:"payment_status"`
	Status            BookingStatus     `json:"status"`
	BookingDate       string            `json:"booking_date,omitempty"`
}

func (b Booking) AppointmentTime() string { return b.AppointmentDate }

// Piercing mirrors Booking with piercing and jewelry type in place of style and size.
type Piercing struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	PhoneNumber       string            `json:"phone_number"`
	ContactPreference ContactPreference `json:"call_or_text_preference"`
	PiercingType      string            `json:"piercing_type"`
	JewelryType       string            `json:"jewelry_type"`
	Placement         string            `json:"placement"`
	ArtistID          int64             `json:"artist_id"`
	StudioLocation    string            `json:"studio_location"`
	AppointmentDate   string            `json:"appointment_date"`
	Price             float64           `json:"price"`
	PaymentStatus     PaymentStatus     `json:"payment_status"`
	Status            BookingStatus     `json:"status"`
	BookingDate       string            `json:"booking_date,omitempty"`
}

func (p Piercing) AppointmentTime() string { return p.AppointmentDate }

func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingCompleted, BookingCanceled:
		return true
	}
	return false
}

func IsValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

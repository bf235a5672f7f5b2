package domain

type AppointmentKind string

const (
	KindBooking  AppointmentKind = "booking"
	KindPiercing AppointmentKind = "piercing"
)

type AppointmentAction string

const (
	ActionCreated AppointmentAction = "created"
	ActionUpdated AppointmentAction = "updated"
	ActionDeleted AppointmentAction = "deleted"
)

// AppointmentEvent announces a booking or piercing change the backend has
// already confirmed.
type AppointmentEvent struct {
	Kind     AppointmentKind   `json:"kind"`
	Action   AppointmentAction `json:"action"`
	ID       int64             `json:"id"`
	ArtistID int64             `json:"artist_id,omitempty"`
}

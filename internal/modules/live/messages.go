package live

import "tattooparlor/internal/domain"

const (
	TypeSearch         = "search"
	TypePing           = "ping"
	TypeSearchResults  = "search_results"
	TypeBookingChanged = "booking_changed"
	TypePong           = "pong"
	TypeError          = "error"
)

// Searchable resources.
const (
	ResourceArtists     = "artists"
	ResourceGallery     = "gallery"
	ResourceNewsletters = "newsletters"
	ResourceSubscribers = "subscribers"
)

type ClientMessage struct {
	Type     string `json:"type"`
	Resource string `json:"resource,omitempty"`
	ArtistID int64  `json:"artist_id,omitempty"`
	Query    string `json:"query"`
}

type ServerMessage struct {
	Type     string  `json:"type"`
	Resource string  `json:"resource,omitempty"`
	Query    *string `json:"query,omitempty"`
	Items    any     `json:"items,omitempty"`

	Kind     domain.AppointmentKind   `json:"kind,omitempty"`
	Action   domain.AppointmentAction `json:"action,omitempty"`
	ID       int64                    `json:"id,omitempty"`
	ArtistID int64                    `json:"artist_id,omitempty"`

	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func NewSearchResultsEvent(resource, query string, items any) *ServerMessage {
	return &ServerMessage{Type: TypeSearchResults, Resource: resource, Query: &query, Items: items}
}

func NewBookingChangedEvent(ev domain.AppointmentEvent) *ServerMessage {
	return &ServerMessage{
		Type:     TypeBookingChanged,
		Kind:     ev.Kind,
		Action:   ev.Action,
		ID:       ev.ID,
		ArtistID: ev.ArtistID,
	}
}

func NewPongEvent() *ServerMessage {
	return &ServerMessage{Type: TypePong}
}

func NewErrorEvent(code, message string) *ServerMessage {
	return &ServerMessage{Type: TypeError, Code: code, Message: message}
}

package domain

type InquiryStatus string

const (
	InquiryPending      InquiryStatus = "pending"
	InquiryContacted    InquiryStatus = "contacted"
	InquiryFinalBooking InquiryStatus = "final_booking"
	InquiryBooked       InquiryStatus = "booked"
)

func IsValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryPending, InquiryContacted, InquiryFinalBooking, InquiryBooked:
		return true
	}
	return false
}

type Inquiry struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phone_number"`
	Email       string        `json:"email"`
	Inquiry     string        `json:"inquiry"`
	Status      InquiryStatus `json:"status"`
}

type Subscriber struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	IsActive     bool   `json:"is_active"`
	SubscribedAt string `json:"subscribed_at,omitempty"`
}

// SubscriberMetrics holds month-keyed counters.
type SubscriberMetrics struct {
	MonthlyNewSubscribers map[string]int `json:"monthly_new_subscribers"`
	MonthlyUnsubscribes   map[string]int `json:"monthly_unsubscribes"`
}

type Newsletter struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
	Body  string `json:"body"`
}

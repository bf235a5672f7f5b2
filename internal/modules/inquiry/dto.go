package inquiry

import "tattooparlor/internal/domain"

type CreateInquiryRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	PhoneNumber string `json:"phone_number" binding:"required,max=50"`
	Email       string `json:"email" binding:"required"`
	Inquiry     string `json:"inquiry" binding:"required,max=5000"`
}

type UpdateStatusRequest struct {
	Status domain.InquiryStatus `json:"status" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type CreateNewsletterRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Image string `json:"image" binding:"omitempty,url"`
	Body  string `json:"body" binding:"required"`
}

// MetricsResponse adds month order and totals to the backend counters.
type MetricsResponse struct {
	domain.SubscriberMetrics
	Months            []string `json:"months"`
	TotalNew          int      `json:"total_new"`
	TotalUnsubscribed int      `json:"total_unsubscribed"`
	Net               int      `json:"net"`
}

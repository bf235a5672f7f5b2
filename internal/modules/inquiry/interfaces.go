package inquiry

import (
	"context"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
)

type Backend interface {
	CreateInquiry(ctx context.Context, in backend.InquiryInput) (*backend.MessageResponse, error)
	ListInquiries(ctx context.Context, token string) ([]domain.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, token string, id int64, status domain.InquiryStatus) error
	DeleteInquiry(ctx context.Context, token string, id int64) error

	Subscribe(ctx context.Context, email string) (*backend.MessageResponse, error)
	Unsubscribe(ctx context.Context, token, email string) (*backend.MessageResponse, error)
	ListSubscribers(ctx context.Context, token string, page int, search string) (*domain.Page[domain.Subscriber], error)
	DeleteSubscriber(ctx context.Context, token string, id int64) error
	SubscriberMetrics(ctx context.Context, token string) (*domain.SubscriberMetrics, error)

	CreateNewsletter(ctx context.Context, token string, in backend.NewsletterInput) (*backend.MessageResponse, error)
	ListNewsletters(ctx context.Context, page int, search string) (*domain.Page[domain.Newsletter], error)
}

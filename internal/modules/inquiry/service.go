package inquiry

import (
	"context"
	"slices"
	"strings"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/validator"
)

type Service struct {
	backend Backend
}

func NewService(b Backend) *Service {
	return &Service{backend: b}
}

func (s *Service) Create(ctx context.Context, req CreateInquiryRequest) (string, error) {
	email, err := validator.NormalizeEmail(req.Email)
	if err != nil {
		return "", err
	}
	resp, err := s.backend.CreateInquiry(ctx, backend.InquiryInput{
		Name:        strings.TrimSpace(req.Name),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Email:       email,
		Inquiry:     strings.TrimSpace(req.Inquiry),
	})
	if err != nil {
		return "", err
	}
	return messageOr(resp, "Inquiry submitted successfully!"), nil
}

func (s *Service) List(ctx context.Context, token string) ([]domain.Inquiry, error) {
	items, err := s.backend.ListInquiries(ctx, token)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Inquiry{}
	}
	return items, nil
}

func (s *Service) UpdateStatus(ctx context.Context, token string, id int64, status domain.InquiryStatus) error {
	if !domain.IsValidInquiryStatus(status) {
		return ErrInvalidStatus
	}
	return s.backend.UpdateInquiryStatus(ctx, token, id, status)
}

func (s *Service) Delete(ctx context.Context, token string, id int64) error {
	return s.backend.DeleteInquiry(ctx, token, id)
}

func (s *Service) Subscribe(ctx context.Context, email string) (string, error) {
	addr, err := validator.NormalizeEmail(email)
	if err != nil {
		return "", err
	}
	resp, err := s.backend.Subscribe(ctx, addr)
	if err != nil {
		return "", err
	}
	return messageOr(resp, "Subscribed successfully"), nil
}

func (s *Service) Unsubscribe(ctx context.Context, token, email string) (string, error) {
	addr, err := validator.NormalizeEmail(email)
	if err != nil {
		return "", err
	}
	resp, err := s.backend.Unsubscribe(ctx, token, addr)
	if err != nil {
		return "", err
	}
	return messageOr(resp, "Unsubscribed successfully"), nil
}

func (s *Service) Subscribers(ctx context.Context, token string, page int, search string) (*domain.Page[domain.Subscriber], error) {
	return s.backend.ListSubscribers(ctx, token, page, search)
}

func (s *Service) DeleteSubscriber(ctx context.Context, token string, id int64) error {
	return s.backend.DeleteSubscriber(ctx, token, id)
}

func (s *Service) Metrics(ctx context.Context, token string) (*MetricsResponse, error) {
	m, err := s.backend.SubscriberMetrics(ctx, token)
	if err != nil {
		return nil, err
	}

	res := &MetricsResponse{SubscriberMetrics: *m}
	months := make(map[string]struct{}, len(m.MonthlyNewSubscribers))
	for k, v := range m.MonthlyNewSubscribers {
		months[k] = struct{}{}
		res.TotalNew += v
	}
	for k, v := range m.MonthlyUnsubscribes {
		months[k] = struct{}{}
		res.TotalUnsubscribed += v
	}
	// Keys are YYYY-MM, so lexical order is chronological.
	for k := range months {
		res.Months = append(res.Months, k)
	}
	slices.Sort(res.Months)
	if res.Months == nil {
		res.Months = []string{}
	}
	res.Net = res.TotalNew - res.TotalUnsubscribed
	return res, nil
}

func (s *Service) CreateNewsletter(ctx context.Context, token string, req CreateNewsletterRequest) (string, error) {
	resp, err := s.backend.CreateNewsletter(ctx, token, backend.NewsletterInput{
		Title: strings.TrimSpace(req.Title),
		Image: strings.TrimSpace(req.Image),
		Body:  strings.TrimSpace(req.Body),
	})
	if err != nil {
		return "", err
	}
	return messageOr(resp, "Newsletter created successfully"), nil
}

func (s *Service) Newsletters(ctx context.Context, page int, search string) (*domain.Page[domain.Newsletter], error) {
	return s.backend.ListNewsletters(ctx, page, search)
}

func messageOr(resp *backend.MessageResponse, fallback string) string {
	if resp == nil || resp.Message == "" {
		return fallback
	}
	return resp.Message
}

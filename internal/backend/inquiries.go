package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tattooparlor/internal/domain"
)

const (
	subscribersPerPage = 10
	newslettersPerPage = 5
)

type InquiryInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Inquiry     string `json:"inquiry"`
}

type NewsletterInput struct {
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
	Body  string `json:"body"`
}

func (c *Client) CreateInquiry(ctx context.Context, in InquiryInput) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, "inquiries", http.MethodPost, "/api/inquiries", "", in, &resp); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return &resp, nil
}

func (c *Client) ListInquiries(ctx context.Context, token string) ([]domain.Inquiry, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "inquiries", http.MethodGet, "/api/inquiries", token, nil, &raw); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return decodeList[domain.Inquiry](raw, "inquiries")
}

func (c *Client) UpdateInquiryStatus(ctx context.Context, token string, id int64, status domain.InquiryStatus) error {
	path := fmt.Sprintf("/api/inquiries/%d", id)
	body := map[string]domain.InquiryStatus{"status": status}
	if err := c.doJSON(ctx, "inquiries", http.MethodPatch, path, token, body, nil); err != nil {
		return fmt.Errorf("update inquiry: %w", err)
	}
	return nil
}

func (c *Client) DeleteInquiry(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/inquiries/%d", id)
	if err := c.doJSON(ctx, "inquiries", http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	return nil
}

func (c *Client) Subscribe(ctx context.Context, email string) (*MessageResponse, error) {
	var resp MessageResponse
	body := map[string]string{"email": email}
	if err := c.doJSON(ctx, "subscribers", http.MethodPost, "/api/subscribe", "", body, &resp); err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	return &resp, nil
}

// Unsubscribe deactivates email. token may be empty for the public form.
func (c *Client) Unsubscribe(ctx context.Context, token, email string) (*MessageResponse, error) {
	var resp MessageResponse
	path := "/api/unsubscribe?" + url.Values{"email": {email}}.Encode()
	if err := c.doJSON(ctx, "subscribers", http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("unsubscribe: %w", err)
	}
	return &resp, nil
}

func (c *Client) ListSubscribers(ctx context.Context, token string, page int, search string) (*domain.Page[domain.Subscriber], error) {
	q := pageQuery(page, subscribersPerPage, search)

	var resp struct {
		Subscribers []domain.Subscriber `json:"subscribers"`
		TotalPages  int                 `json:"total_pages"`
		CurrentPage int                 `json:"current_page"`
	}
	if err := c.doJSON(ctx, "subscribers", http.MethodGet, "/api/subscribers?"+q.Encode(), token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return newPage(resp.Subscribers, resp.TotalPages, resp.CurrentPage), nil
}

func (c *Client) DeleteSubscriber(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/subscribers/%d/delete", id)
	if err := c.doJSON(ctx, "subscribers", http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}

func (c *Client) SubscriberMetrics(ctx context.Context, token string) (*domain.SubscriberMetrics, error) {
	var m domain.SubscriberMetrics
	if err := c.doJSON(ctx, "subscribers", http.MethodGet, "/api/metrics/subscribers", token, nil, &m); err != nil {
		return nil, fmt.Errorf("subscriber metrics: %w", err)
	}
	if m.MonthlyNewSubscribers == nil {
		m.MonthlyNewSubscribers = map[string]int{}
	}
	if m.MonthlyUnsubscribes == nil {
		m.MonthlyUnsubscribes = map[string]int{}
	}
	return &m, nil
}

func (c *Client) CreateNewsletter(ctx context.Context, token string, in NewsletterInput) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, "newsletters", http.MethodPost, "/api/newsletters", token, in, &resp); err != nil {
		return nil, fmt.Errorf("create newsletter: %w", err)
	}
	return &resp, nil
}

func (c *Client) ListNewsletters(ctx context.Context, page int, search string) (*domain.Page[domain.Newsletter], error) {
	q := pageQuery(page, newslettersPerPage, search)

	var resp struct {
		Newsletters []domain.Newsletter `json:"newsletters"`
		TotalPages  int                 `json:"total_pages"`
		CurrentPage int                 `json:"current_page"`
	}
	if err := c.doJSON(ctx, "newsletters", http.MethodGet, "/api/newsletters?"+q.Encode(), "", nil, &resp); err != nil {
		return nil, fmt.Errorf("list newsletters: %w", err)
	}
	return newPage(resp.Newsletters, resp.TotalPages, resp.CurrentPage), nil
}

func pageQuery(page, perPage int, search string) url.Values {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	if search = strings.TrimSpace(search); search != "" {
		q.Set("search", search)
	}
	return q
}

func newPage[T any](items []T, total, current int) *domain.Page[T] {
	if items == nil {
		items = []T{}
	}
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	return &domain.Page[T]{Items: items, TotalPages: total, CurrentPage: current}
}

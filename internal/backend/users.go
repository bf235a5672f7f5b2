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

// SettingShowCreateArtist is the global setting behind the create-artist button.
const SettingShowCreateArtist = "show_create_artist"

type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (c *Client) GetUser(ctx context.Context, token string, id int64) (*domain.User, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/users/%d", id)
	if err := c.doJSON(ctx, "users", http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return decodeOne[domain.User](raw, "user")
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int64, patch UserPatch) (*domain.User, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/users/%d", id)
	if err := c.doJSON(ctx, "users", http.MethodPatch, path, token, patch, &raw); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return decodeOne[domain.User](raw, "user")
}

// AdminDashboard is passed through as the backend shapes it.
func (c *Client) AdminDashboard(ctx context.Context, token string) (map[string]any, error) {
	out := map[string]any{}
	if err := c.doJSON(ctx, "dashboard", http.MethodGet, "/api/admin-dashboard", token, nil, &out); err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}
	return out, nil
}

func (c *Client) ArtistDashboard(ctx context.Context, token string) (*domain.ArtistDashboard, error) {
	var resp struct {
		ArtistDetails      json.RawMessage       `json:"artist_details"`
		UpcomingBookings   []domain.Booking      `json:"upcoming_bookings"`
		RecentReviews      []domain.Review       `json:"recent_reviews"`
		PortfolioPreview   []domain.GalleryPhoto `json:"portfolio_preview"`
		PerformanceMetrics map[string]any        `json:"performance_metrics"`
	}
	if err := c.doJSON(ctx, "dashboard", http.MethodGet, "/api/artist-dashboard", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("artist dashboard: %w", err)
	}

	out := &domain.ArtistDashboard{
		UpcomingBookings:   resp.UpcomingBookings,
		RecentReviews:      resp.RecentReviews,
		PortfolioPreview:   resp.PortfolioPreview,
		PerformanceMetrics: resp.PerformanceMetrics,
	}
	if len(resp.ArtistDetails) > 0 && string(resp.ArtistDetails) != "null" {
		a, err := decodeArtist(resp.ArtistDetails)
		if err != nil {
			return nil, fmt.Errorf("artist dashboard: %w", err)
		}
		out.ArtistDetails = a
	}
	return out, nil
}

func (c *Client) ArtistProfile(ctx context.Context, token string) (*domain.Artist, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "dashboard", http.MethodGet, "/api/artist-dashboard/profile", token, nil, &raw); err != nil {
		return nil, fmt.Errorf("artist profile: %w", err)
	}
	return decodeArtist(raw)
}

func (c *Client) UpdateArtistProfile(ctx context.Context, token string, patch ArtistPatch) (*domain.Artist, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "dashboard", http.MethodPatch, "/api/artist-dashboard/profile", token, patch, &raw); err != nil {
		return nil, fmt.Errorf("update artist profile: %w", err)
	}
	return decodeArtist(raw)
}

// GetBoolSetting reads a global setting. Missing settings read as false.
func (c *Client) GetBoolSetting(ctx context.Context, token, key string) (bool, error) {
	var resp struct {
		Value json.RawMessage `json:"value"`
	}
	path := "/api/global-settings/" + url.PathEscape(key)
	if err := c.doJSON(ctx, "settings", http.MethodGet, path, token, nil, &resp); err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return looseBool(resp.Value), nil
}

func (c *Client) PutBoolSetting(ctx context.Context, token, key string, value bool) error {
	path := "/api/global-settings/" + url.PathEscape(key)
	body := map[string]bool{"value": value}
	if err := c.doJSON(ctx, "settings", http.MethodPut, path, token, body, nil); err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}

func looseBool(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && v
	}
	return false
}

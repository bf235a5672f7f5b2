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

type ReviewInput struct {
	StarRating int    `json:"star_rating"`
	ReviewText string `json:"review_text"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

type PhotoInput struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
}

// GalleryFeed is one page of the public gallery.
type GalleryFeed struct {
	Galleries []domain.GalleryPhoto `json:"galleries"`
	Pages     int                   `json:"pages"`
}

func (c *Client) ListReviews(ctx context.Context, artistID int64) ([]domain.Review, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/artists/%d/reviews", artistID)
	if err := c.doJSON(ctx, "reviews", http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return decodeList[domain.Review](raw, "reviews")
}

func (c *Client) CreateReview(ctx context.Context, token string, artistID int64, in ReviewInput) (*domain.Review, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/artists/%d/reviews", artistID)
	if err := c.doJSON(ctx, "reviews", http.MethodPost, path, token, in, &raw); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return decodeOne[domain.Review](raw, "review")
}

func (c *Client) DeleteReview(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/reviews/%d", id)
	if err := c.doJSON(ctx, "reviews", http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// ListGallery lists an artist's photos, filtered by caption when search is set.
func (c *Client) ListGallery(ctx context.Context, artistID int64, search string) ([]domain.GalleryPhoto, error) {
	path := fmt.Sprintf("/api/artists/%d/gallery", artistID)
	if search = strings.TrimSpace(search); search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, "gallery", http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return decodeList[domain.GalleryPhoto](raw, "photos")
}

func (c *Client) AddPhoto(ctx context.Context, token string, artistID int64, in PhotoInput) (*domain.GalleryPhoto, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/artists/%d/gallery", artistID)
	if err := c.doJSON(ctx, "gallery", http.MethodPost, path, token, in, &raw); err != nil {
		return nil, fmt.Errorf("add photo: %w", err)
	}
	return decodeOne[domain.GalleryPhoto](raw, "photo")
}

func (c *Client) DeletePhoto(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/gallery/%d", id)
	if err := c.doJSON(ctx, "gallery", http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}

// GalleryPage fetches one page of the public feed.
func (c *Client) GalleryPage(ctx context.Context, page int) (*GalleryFeed, error) {
	if page < 1 {
		page = 1
	}
	path := "/api/galleries?page=" + strconv.Itoa(page)

	var feed GalleryFeed
	if err := c.doJSON(ctx, "gallery", http.MethodGet, path, "", nil, &feed); err != nil {
		return nil, fmt.Errorf("gallery page: %w", err)
	}
	if feed.Galleries == nil {
		feed.Galleries = []domain.GalleryPhoto{}
	}
	return &feed, nil
}

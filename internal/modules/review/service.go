package review

import (
	"context"
	"math"
	"strings"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
)

type Service struct {
	backend Backend
}

func NewService(b Backend) *Service {
	return &Service{backend: b}
}

func (s *Service) ListReviews(ctx context.Context, artistID int64) (*ReviewSummary, error) {
	reviews, err := s.backend.ListReviews(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.StarRating
	}
	avg := 0.0
	if len(reviews) > 0 {
		avg = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}
	return &ReviewSummary{Reviews: reviews, Count: len(reviews), AverageRating: avg}, nil
}

func (s *Service) CreateReview(ctx context.Context, token string, artistID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.StarRating < domain.MinStarRating || req.StarRating > domain.MaxStarRating {
		return nil, ErrInvalidRating
	}
	return s.backend.CreateReview(ctx, token, artistID, backend.ReviewInput{
		StarRating: req.StarRating,
		ReviewText: strings.TrimSpace(req.ReviewText),
		PhotoURL:   strings.TrimSpace(req.PhotoURL),
	})
}

func (s *Service) DeleteReview(ctx context.Context, token string, id int64) error {
	return s.backend.DeleteReview(ctx, token, id)
}

func (s *Service) Gallery(ctx context.Context, artistID int64, search string) ([]domain.GalleryPhoto, error) {
	photos, err := s.backend.ListGallery(ctx, artistID, search)
	if err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []domain.GalleryPhoto{}
	}
	return photos, nil
}

func (s *Service) AddPhoto(ctx context.Context, token string, artistID int64, req AddPhotoRequest) (*domain.GalleryPhoto, error) {
	return s.backend.AddPhoto(ctx, token, artistID, backend.PhotoInput{
		ImageURL: strings.TrimSpace(req.ImageURL),
		Caption:  strings.TrimSpace(req.Caption),
	})
}

func (s *Service) DeletePhoto(ctx context.Context, token string, id int64) error {
	return s.backend.DeletePhoto(ctx, token, id)
}

func (s *Service) Feed(ctx context.Context, page int) (*backend.GalleryFeed, error) {
	return s.backend.GalleryPage(ctx, page)
}

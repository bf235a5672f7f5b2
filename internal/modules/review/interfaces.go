package review

import (
	"context"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
)

type Backend interface {
	ListReviews(ctx context.Context, artistID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, token string, artistID int64, in backend.ReviewInput) (*domain.Review, error)
	DeleteReview(ctx context.Context, token string, id int64) error

	ListGallery(ctx context.Context, artistID int64, search string) ([]domain.GalleryPhoto, error)
	AddPhoto(ctx context.Context, token string, artistID int64, in backend.PhotoInput) (*domain.GalleryPhoto, error)
	DeletePhoto(ctx context.Context, token string, id int64) error
	GalleryPage(ctx context.Context, page int) (*backend.GalleryFeed, error)
}

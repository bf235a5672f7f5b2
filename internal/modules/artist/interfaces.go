package artist

import (
	"context"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
)

type Backend interface {
	ListArtists(ctx context.Context, token, name string) ([]domain.Artist, error)
	GetArtist(ctx context.Context, token string, id int64) (*domain.Artist, error)
	CreateArtist(ctx context.Context, token string, in backend.ArtistInput) (*domain.Artist, error)
	UpdateArtist(ctx context.Context, token string, id int64, patch backend.ArtistPatch) (*domain.Artist, error)
	DeleteArtist(ctx context.Context, token string, id int64) error
	ArtistBookings(ctx context.Context, token string, artistID int64) ([]domain.Booking, error)
}

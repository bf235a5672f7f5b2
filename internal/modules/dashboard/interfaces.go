package dashboard

import (
	"context"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
)

type Backend interface {
	GetUser(ctx context.Context, token string, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, token string, id int64, patch backend.UserPatch) (*domain.User, error)

	AdminDashboard(ctx context.Context, token string) (map[string]any, error)
	ArtistDashboard(ctx context.Context, token string) (*domain.ArtistDashboard, error)
	ArtistProfile(ctx context.Context, token string) (*domain.Artist, error)
	UpdateArtistProfile(ctx context.Context, token string, patch backend.ArtistPatch) (*domain.Artist, error)

	GetBoolSetting(ctx context.Context, token, key string) (bool, error)
	PutBoolSetting(ctx context.Context, token, key string, value bool) error
}

// Sessions mirrors confirmed preference changes into the caller's session.
type Sessions interface {
	SetShowCreateArtist(ctx context.Context, id string, show bool) error
}

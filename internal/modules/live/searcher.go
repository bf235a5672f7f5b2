package live

import (
	"context"
	"errors"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/session"
)

var (
	ErrUnknownResource = errors.New("unknown search resource")
	ErrArtistRequired  = errors.New("artist_id is required")
)

type Backend interface {
	ListArtists(ctx context.Context, token, name string) ([]domain.Artist, error)
	ListGallery(ctx context.Context, artistID int64, search string) ([]domain.GalleryPhoto, error)
	ListNewsletters(ctx context.Context, page int, search string) (*domain.Page[domain.Newsletter], error)
	ListSubscribers(ctx context.Context, token string, page int, search string) (*domain.Page[domain.Subscriber], error)
}

// Searcher runs one live search against the backend on behalf of a session.
type Searcher struct {
	backend Backend
}

func NewSearcher(b Backend) *Searcher {
	return &Searcher{backend: b}
}

// Validate rejects a request before it is debounced.
func (s *Searcher) Validate(resource string, artistID int64) error {
	switch resource {
	case ResourceArtists, ResourceNewsletters, ResourceSubscribers:
		return nil
	case ResourceGallery:
		if artistID <= 0 {
			return ErrArtistRequired
		}
		return nil
	}
	return ErrUnknownResource
}

// Search returns the first page of matches for query.
func (s *Searcher) Search(ctx context.Context, sess *session.Session, resource string, artistID int64, query string) (any, error) {
	switch resource {
	case ResourceArtists:
		return s.backend.ListArtists(ctx, sess.Token, query)
	case ResourceGallery:
		if artistID <= 0 {
			return nil, ErrArtistRequired
		}
		return s.backend.ListGallery(ctx, artistID, query)
	case ResourceNewsletters:
		page, err := s.backend.ListNewsletters(ctx, 1, query)
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	case ResourceSubscribers:
		page, err := s.backend.ListSubscribers(ctx, sess.Token, 1, query)
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	}
	return nil, ErrUnknownResource
}

package dashboard

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/modules/artist"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/pkg/validator"
	"tattooparlor/internal/session"
)

const (
	minUsername = 3
	maxUsername = 50
)

type Service struct {
	backend  Backend
	sessions Sessions
	logger   *logging.Logger
}

func NewService(b Backend, sessions Sessions, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{backend: b, sessions: sessions, logger: logger.With("component", "dashboard")}
}

func (s *Service) User(ctx context.Context, token string, id int64) (*domain.User, error) {
	return s.backend.GetUser(ctx, token, id)
}

func (s *Service) UpdateUser(ctx context.Context, token string, id int64, req UpdateUserRequest) (*domain.User, error) {
	patch := backend.UserPatch{}
	if req.Username != nil {
		v := strings.TrimSpace(*req.Username)
		if n := utf8.RuneCountInString(v); n < minUsername || n > maxUsername {
			return nil, ErrInvalidUsername
		}
		patch.Username = &v
	}
	if req.Email != nil {
		v, err := validator.NormalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = &v
	}
	if patch.Username == nil && patch.Email == nil {
		return nil, ErrEmptyPatch
	}
	return s.backend.UpdateUser(ctx, token, id, patch)
}

func (s *Service) Admin(ctx context.Context, token string) (map[string]any, error) {
	return s.backend.AdminDashboard(ctx, token)
}

func (s *Service) Artist(ctx context.Context, token string) (*domain.ArtistDashboard, error) {
	d, err := s.backend.ArtistDashboard(ctx, token)
	if err != nil {
		return nil, err
	}
	if d.UpcomingBookings == nil {
		d.UpcomingBookings = []domain.Booking{}
	}
	if d.RecentReviews == nil {
		d.RecentReviews = []domain.Review{}
	}
	if d.PortfolioPreview == nil {
		d.PortfolioPreview = []domain.GalleryPhoto{}
	}
	if d.PerformanceMetrics == nil {
		d.PerformanceMetrics = map[string]any{}
	}
	return d, nil
}

func (s *Service) Profile(ctx context.Context, token string) (*domain.Artist, error) {
	return s.backend.ArtistProfile(ctx, token)
}

func (s *Service) UpdateProfile(ctx context.Context, token string, req artist.UpdateArtistRequest) (*domain.Artist, error) {
	patch, err := artist.PatchFrom(req)
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateArtistProfile(ctx, token, patch)
}

// ShowCreateArtist reports the global preference from the backend. A
// signed-in caller's session copy is resynced when it has gone stale, and
// is only served when the backend cannot be reached.
func (s *Service) ShowCreateArtist(ctx context.Context, sess *session.Session) (bool, error) {
	token := ""
	if sess != nil {
		token = sess.Token
	}
	value, err := s.backend.GetBoolSetting(ctx, token, backend.SettingShowCreateArtist)
	if err != nil {
		if sess != nil && errors.Is(err, backend.ErrUnavailable) {
			s.logger.Warn("serving session copy of setting", "session_id", sess.ID, "error", err)
			return sess.ShowCreateArtist, nil
		}
		return false, err
	}
	if sess != nil && sess.ShowCreateArtist != value {
		if err := s.sessions.SetShowCreateArtist(ctx, sess.ID, value); err != nil {
			s.logger.Warn("resync setting into session failed", "session_id", sess.ID, "error", err)
		} else {
			sess.ShowCreateArtist = value
		}
	}
	return value, nil
}

// SetShowCreateArtist writes the global setting and, once the backend has
// accepted it, mirrors it into the caller's session. A mirror failure is
// logged; the next sign-in reseeds the value.
func (s *Service) SetShowCreateArtist(ctx context.Context, sess *session.Session, value bool) error {
	if sess == nil {
		return ErrNoSession
	}
	if err := s.backend.PutBoolSetting(ctx, sess.Token, backend.SettingShowCreateArtist, value); err != nil {
		return err
	}
	if err := s.sessions.SetShowCreateArtist(ctx, sess.ID, value); err != nil {
		s.logger.Warn("mirror setting into session failed", "session_id", sess.ID, "error", err)
		return nil
	}
	sess.ShowCreateArtist = value
	return nil
}

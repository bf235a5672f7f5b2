package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/jwt"
)

// Accessor is the single read/write path to session state. Handlers never
// talk to a Store directly.
type Accessor struct {
	store Store
	jwt   *jwt.Service
	ttl   time.Duration
	now   func() time.Time
}

func NewAccessor(store Store, jwtService *jwt.Service, ttl time.Duration) *Accessor {
	return &Accessor{
		store: store,
		jwt:   jwtService,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Login stores the backend token and user descriptor under a fresh session id
// and returns the signed handle for the browser.
func (a *Accessor) Login(ctx context.Context, token string, user domain.UserDescriptor, showCreateArtist bool) (string, *Session, error) {
	if token == "" {
		return "", nil, errors.New("session: empty backend token")
	}

	now := a.now().UTC()
	sess := &Session{
		ID:               uuid.NewString(),
		Token:            token,
		User:             user,
		ShowCreateArtist: showCreateArtist,
		CreatedAt:        now,
		ExpiresAt:        now.Add(a.ttl),
	}
	if err := a.store.Create(ctx, sess); err != nil {
		return "", nil, err
	}

	handle, err := a.jwt.GenerateToken(sess.ID, user.ID, string(user.UserType))
	if err != nil {
		_ = a.store.Delete(ctx, sess.ID)
		return "", nil, fmt.Errorf("session: sign handle: %w", err)
	}
	return handle, sess, nil
}

// Current loads a live session. Expired sessions are removed and reported as ErrExpired.
func (a *Accessor) Current(ctx context.Context, id string) (*Session, error) {
	sess, err := a.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Expired(a.now()) {
		_ = a.store.Delete(ctx, id)
		return nil, ErrExpired
	}
	return sess, nil
}

// Resolve validates a browser handle and loads its session.
func (a *Accessor) Resolve(ctx context.Context, handle string) (*Session, error) {
	claims, err := a.jwt.ValidateToken(handle)
	if err != nil {
		return nil, err
	}
	return a.Current(ctx, claims.SessionID)
}

func (a *Accessor) Logout(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

func (a *Accessor) SetShowCreateArtist(ctx context.Context, id string, show bool) error {
	return a.store.SetShowCreateArtist(ctx, id, show)
}

// Sweep removes sessions whose expiry has passed.
func (a *Accessor) Sweep(ctx context.Context) (int64, error) {
	return a.store.DeleteExpired(ctx, a.now().UTC())
}

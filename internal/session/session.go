// Package session keeps the backend token and user descriptor on the server
// side. The browser only ever holds a signed handle naming the session.
package session

import (
	"context"
	"errors"
	"time"

	"tattooparlor/internal/domain"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrExpired   = errors.New("session expired")
	ErrDuplicate = errors.New("session already exists")
)

type Session struct {
	ID               string                `json:"id"`
	Token            string                `json:"token"`
	User             domain.UserDescriptor `json:"user"`
	ShowCreateArtist bool                  `json:"show_create_artist"`
	CreatedAt        time.Time             `json:"created_at"`
	ExpiresAt        time.Time             `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions. Get returns ErrNotFound for unknown ids.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	SetShowCreateArtist(ctx context.Context, id string, show bool) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

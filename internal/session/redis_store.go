package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a JSON blob that expires with the session.
type RedisStore struct {
	redis *redis.Client
	now   func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client, now: time.Now}
}

func (s *RedisStore) key(id string) string {
	return fmt.Sprintf("tattooparlor:session:%s", id)
}

func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return ErrExpired
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	ok, err := s.redis.SetNX(ctx, s.key(sess.ID), data, ttl).Result()
	if err != nil {
		return fmt.Errorf("session: create: %w", err)
	}
	if !ok {
		return ErrDuplicate
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: get: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

func (s *RedisStore) SetShowCreateArtist(ctx context.Context, id string, show bool) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.ShowCreateArtist = show

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	// XX + KEEPTTL: never resurrect a session that expired in between.
	ok, err := s.redis.SetArgs(ctx, s.key(id), data, redis.SetArgs{Mode: "XX", KeepTTL: true}).Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("session: update preference: %w", err)
	}
	if ok != "OK" {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired is a no-op; redis expires keys on its own.
func (s *RedisStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

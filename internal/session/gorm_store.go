package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tattooparlor/internal/database"
	"tattooparlor/internal/domain"
)

// sessionModel is the private table row; domain callers only see Session.
type sessionModel struct {
	ID               string    `gorm:"column:id;primaryKey;size:64"`
	Token            string    `gorm:"column:token;type:text;not null"`
	UserID           int64     `gorm:"column:user_id;index"`
	UserType         string    `gorm:"column:user_type;size:16"`
	ShowCreateArtist bool      `gorm:"column:show_create_artist"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	ExpiresAt        time.Time `gorm:"column:expires_at;index"`
}

func (sessionModel) TableName() string { return "web_sessions" }

func (m sessionModel) toDomain() *Session {
	return &Session{
		ID:    m.ID,
		Token: m.Token,
		User: domain.UserDescriptor{
			ID:       m.UserID,
			UserType: domain.UserType(m.UserType),
		},
		ShowCreateArtist: m.ShowCreateArtist,
		CreatedAt:        m.CreatedAt,
		ExpiresAt:        m.ExpiresAt,
	}
}

func fromDomain(s *Session) sessionModel {
	return sessionModel{
		ID:               s.ID,
		Token:            s.Token,
		UserID:           s.User.ID,
		UserType:         string(s.User.UserType),
		ShowCreateArtist: s.ShowCreateArtist,
		CreatedAt:        s.CreatedAt,
		ExpiresAt:        s.ExpiresAt,
	}
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the sessions table.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&sessionModel{})
}

func (s *GormStore) Create(ctx context.Context, sess *Session) error {
	m := fromDomain(sess)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("session: create: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*Session, error) {
	var m sessionModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: get: %w", err)
	}
	return m.toDomain(), nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&sessionModel{}).Error; err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

func (s *GormStore) SetShowCreateArtist(ctx context.Context, id string, show bool) error {
	res := s.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", id).
		Update("show_create_artist", show)
	if res.Error != nil {
		return fmt.Errorf("session: update preference: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&sessionModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("session: delete expired: %w", res.Error)
	}
	return res.RowsAffected, nil
}

package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Service signs the browser's session handle. The backend token is never
// part of the claims.
type Service struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	SessionID string `json:"sid"`
	UserID    int64  `json:"user_id"`
	UserType  string `json:"user_type"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) GenerateToken(sessionID string, userID int64, userType string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		UserID:    userID,
		UserType:  userType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessionID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

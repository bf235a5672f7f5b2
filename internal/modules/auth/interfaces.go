package auth

import (
	"context"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/session"
)

// Backend is the slice of the parlor backend the auth flows use.
type Backend interface {
	SignIn(ctx context.Context, in backend.SignInInput) (*backend.SignInResult, error)
	SignUp(ctx context.Context, in backend.SignUpInput) (*backend.MessageResponse, error)
	RequestPasswordReset(ctx context.Context, email string) (*backend.MessageResponse, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) (*backend.MessageResponse, error)
	GetBoolSetting(ctx context.Context, token, key string) (bool, error)
}

type Sessions interface {
	Login(ctx context.Context, token string, user domain.UserDescriptor, showCreateArtist bool) (string, *session.Session, error)
	Logout(ctx context.Context, id string) error
}

package auth

import (
	"tattooparlor/internal/domain"
	"tattooparlor/internal/session"
)

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Username        string          `json:"username" binding:"required"`
	Email           string          `json:"email" binding:"required"`
	Password        string          `json:"password" binding:"required"`
	ConfirmPassword string          `json:"confirm_password" binding:"required"`
	UserType        domain.UserType `json:"user_type"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password" binding:"required"`
}

// SessionView is what the browser learns about its session. The backend
// token is never part of it.
type SessionView struct {
	User       domain.UserDescriptor `json:"user"`
	Visibility session.Visibility    `json:"visibility"`
	ExpiresAt  string                `json:"expires_at"`
}

type SignInResponse struct {
	Handle string `json:"token"`
	SessionView
}

package backend

import (
	"context"
	"fmt"
	"net/http"

	"tattooparlor/internal/domain"
)

type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResult carries the backend token, which never leaves the web tier.
type SignInResult struct {
	Token string                `json:"token"`
	User  domain.UserDescriptor `json:"user"`
}

type SignUpInput struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	UserType domain.UserType `json:"user_type"`
}

func (c *Client) SignIn(ctx context.Context, in SignInInput) (*SignInResult, error) {
	var res SignInResult
	if err := c.doJSON(ctx, "auth", http.MethodPost, "/api/signin", "", in, &res); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if res.Token == "" {
		return nil, fmt.Errorf("sign in: %w", ErrUnauthorized)
	}
	return &res, nil
}

func (c *Client) SignUp(ctx context.Context, in SignUpInput) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, "auth", http.MethodPost, "/api/signup", "", in, &resp); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return &resp, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*MessageResponse, error) {
	var resp MessageResponse
	body := map[string]string{"email": email}
	if err := c.doJSON(ctx, "auth", http.MethodPost, "/api/request-password-reset", "", body, &resp); err != nil {
		return nil, fmt.Errorf("request password reset: %w", err)
	}
	return &resp, nil
}

func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) (*MessageResponse, error) {
	var resp MessageResponse
	body := map[string]string{"token": resetToken, "new_password": newPassword}
	if err := c.doJSON(ctx, "auth", http.MethodPost, "/api/reset-password", "", body, &resp); err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}
	return &resp, nil
}

package auth

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/pkg/validator"
	"tattooparlor/internal/session"
)

const (
	minUsername = 2
	maxUsername = 64
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
	return &Service{backend: b, sessions: sessions, logger: logger.With("component", "auth")}
}

// SignIn authenticates against the backend and opens a session holding the
// backend token. The show-create-artist preference is seeded from the
// global setting; failing to read it is not fatal.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	res, err := s.backend.SignIn(ctx, backend.SignInInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	show, err := s.backend.GetBoolSetting(ctx, res.Token, backend.SettingShowCreateArtist)
	if err != nil {
		s.logger.Warn("show_create_artist lookup failed", "error", err)
		show = false
	}

	handle, sess, err := s.sessions.Login(ctx, res.Token, res.User, show)
	if err != nil {
		return nil, err
	}

	s.logger.Info("signed in", "session_id", sess.ID, "user_id", sess.User.ID, "user_type", sess.User.UserType)
	return &SignInResponse{Handle: handle, SessionView: View(sess)}, nil
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*backend.MessageResponse, error) {
	username := strings.TrimSpace(req.Username)
	if n := utf8.RuneCountInString(username); n < minUsername || n > maxUsername {
		return nil, ErrInvalidUsername
	}
	email, err := validator.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if !validator.StrongPassword(req.Password) {
		return nil, ErrWeakPassword
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	userType := req.UserType
	if userType == "" {
		userType = domain.UserTypeArtist
	}
	if !domain.IsValidUserType(userType) {
		return nil, ErrInvalidUserType
	}

	return s.backend.SignUp(ctx, backend.SignUpInput{
		Username: username,
		Email:    email,
		Password: req.Password,
		UserType: userType,
	})
}

func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*backend.MessageResponse, error) {
	email, err := validator.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	return s.backend.RequestPasswordReset(ctx, email)
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*backend.MessageResponse, error) {
	if strings.TrimSpace(req.Token) == "" {
		return nil, ErrMissingToken
	}
	if !validator.StrongPassword(req.NewPassword) {
		return nil, ErrWeakPassword
	}
	return s.backend.ResetPassword(ctx, strings.TrimSpace(req.Token), req.NewPassword)
}

func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.Logout(ctx, sessionID)
}

func View(sess *session.Session) SessionView {
	return SessionView{
		User:       sess.User,
		Visibility: session.VisibilityFor(sess),
		ExpiresAt:  sess.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/pkg/jwt"
	"tattooparlor/internal/pkg/response"
	"tattooparlor/internal/session"
)

const sessionKey = "session"

// SessionAuth requires a valid session handle as a bearer credential and
// loads the server-side session into the context.
func SessionAuth(accessor *session.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		handle, ok := bearer(authHeader)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		sess, err := accessor.Resolve(c.Request.Context(), handle)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrInvalidToken), errors.Is(err, jwt.ErrInvalidClaims):
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			case errors.Is(err, session.ErrExpired), errors.Is(err, session.ErrNotFound):
				response.Error(c, http.StatusUnauthorized, "SESSION_EXPIRED", "Session expired, please sign in again")
			default:
				_ = c.Error(err)
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load session")
			}
			c.Abort()
			return
		}

		setSession(c, sess)
		c.Next()
	}
}

// OptionalSession loads the session when a valid handle is present and
// otherwise lets the request through anonymously.
func OptionalSession(accessor *session.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if handle, ok := bearer(c.GetHeader("Authorization")); ok {
			if sess, err := accessor.Resolve(c.Request.Context(), handle); err == nil {
				setSession(c, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by SessionAuth or OptionalSession.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// BackendToken returns the backend token of the current session, or "".
func BackendToken(c *gin.Context) string {
	if sess := CurrentSession(c); sess != nil {
		return sess.Token
	}
	return ""
}

func setSession(c *gin.Context, sess *session.Session) {
	c.Set(sessionKey, sess)
	c.Set("session_id", sess.ID)
	c.Set("user_id", sess.User.ID)
	c.Set("role", string(sess.User.UserType))
}

func bearer(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

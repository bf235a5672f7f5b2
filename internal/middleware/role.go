package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/response"
)

// RequireRole lets the request through when the session user has one of roles.
// It must run after SessionAuth.
func RequireRole(roles ...domain.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Sign in required")
			c.Abort()
			return
		}

		for _, r := range roles {
			if sess.User.UserType == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.UserTypeAdmin)
}

// StaffOnly admits admins and artists.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(domain.UserTypeAdmin, domain.UserTypeArtist)
}

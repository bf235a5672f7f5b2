package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/pkg/response"
)

// StaticToken protects internal endpoints with a shared bearer token.
// An empty expected token leaves the endpoint open.
func StaticToken(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		token, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			response.Error(c, http.StatusForbidden, "AUTH_INVALID", "Invalid internal token")
			c.Abort()
			return
		}
		c.Next()
	}
}

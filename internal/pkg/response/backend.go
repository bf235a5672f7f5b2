package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/backend"
)

// Backend writes the error envelope for a failed backend call. Backend 4xx
// answers keep their status and message; everything else is a 5xx.
func Backend(c *gin.Context, err error, fallback string) {
	if errors.Is(err, backend.ErrUnavailable) {
		_ = c.Error(err)
		Error(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "Backend is unavailable, please try again")
		return
	}

	apiErr, ok := backend.AsAPIError(err)
	if !ok {
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
		return
	}

	message := apiErr.Message
	if message == "" {
		message = fallback
	}
	switch {
	case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
		Error(c, apiErr.Status, "VALIDATION_ERROR", message)
	case apiErr.Status == http.StatusUnauthorized:
		Error(c, apiErr.Status, "UNAUTHORIZED", message)
	case apiErr.Status == http.StatusForbidden:
		Error(c, apiErr.Status, "FORBIDDEN", message)
	case apiErr.Status == http.StatusNotFound:
		Error(c, apiErr.Status, "NOT_FOUND", message)
	case apiErr.Status == http.StatusConflict:
		Error(c, apiErr.Status, "CONFLICT", message)
	case apiErr.Status >= 400 && apiErr.Status < 500:
		Error(c, apiErr.Status, "BACKEND_ERROR", message)
	default:
		_ = c.Error(err)
		Error(c, http.StatusBadGateway, "BACKEND_ERROR", message)
	}
}

// Validation writes a 400 with the failed field rules as details.
func Validation(c *gin.Context, message string, details map[string]string) {
	if len(details) == 0 {
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", message)
		return
	}
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", message, details)
}

package backend

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

var (
	ErrUnavailable  = errors.New("backend unavailable")
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrForbidden    = errors.New("backend: forbidden")
	ErrNotFound     = errors.New("backend: not found")
	ErrConflict     = errors.New("backend: conflict")
)

const maxErrorBody = 300

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}

// AsAPIError unwraps err into an *APIError when there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// Package testutil holds fixtures shared by handler tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tattooparlor/internal/database"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/jwt"
	"tattooparlor/internal/session"
)

// NewAccessor returns an accessor over a fresh in-memory sqlite store.
func NewAccessor(t *testing.T) *session.Accessor {
	t.Helper()
	db, err := database.Connect(":memory:", nil)
	require.NoError(t, err)
	store := session.NewGormStore(db)
	require.NoError(t, store.Migrate())
	return session.NewAccessor(store, jwt.New("test-secret", time.Hour), time.Hour)
}

// Login opens a session for a user of the given type and returns its handle.
func Login(t *testing.T, acc *session.Accessor, id int64, userType domain.UserType, backendToken string) string {
	t.Helper()
	handle, _, err := acc.Login(context.Background(), backendToken, domain.UserDescriptor{ID: id, UserType: userType}, false)
	require.NoError(t, err)
	return handle
}

// Do sends a JSON request through router.
func Do(router http.Handler, method, path, handle string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if handle != "" {
		req.Header.Set("Authorization", "Bearer "+handle)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Envelope is the shape of every JSON response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func Decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// DecodeData unmarshals the data member of the envelope into out.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := Decode(t, w)
	require.True(t, env.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func init() {
	gin.SetMode(gin.TestMode)
}

package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattooparlor/internal/database"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/jwt"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAccessor(t *testing.T, ttl time.Duration) *session.Accessor {
	t.Helper()
	db, err := database.Connect(":memory:", nil)
	require.NoError(t, err)
	store := session.NewGormStore(db)
	require.NoError(t, store.Migrate())
	return session.NewAccessor(store, jwt.New("test-secret-123", time.Hour), ttl)
}

func login(t *testing.T, acc *session.Accessor, userType domain.UserType) string {
	t.Helper()
	handle, _, err := acc.Login(context.Background(), "backend-token", domain.UserDescriptor{ID: 42, UserType: userType}, false)
	require.NoError(t, err)
	return handle
}

func serve(router *gin.Engine, method, path, auth string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAuth_ValidHandle(t *testing.T) {
	acc := newAccessor(t, time.Hour)
	handle := login(t, acc, domain.UserTypeArtist)

	router := gin.New()
	router.Use(SessionAuth(acc))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
			"token":   BackendToken(c),
		})
	})

	w := serve(router, http.MethodGet, "/protected", "Bearer "+handle)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "artist")
	assert.Contains(t, w.Body.String(), "backend-token")
}

func TestSessionAuth_Rejections(t *testing.T) {
	acc := newAccessor(t, time.Hour)
	foreign, err := jwt.New("other-secret", time.Hour).GenerateToken("s1", 1, "user")
	require.NoError(t, err)
	orphan, err := jwt.New("test-secret-123", time.Hour).GenerateToken("no-such-session", 1, "user")
	require.NoError(t, err)

	tests := []struct {
		name string
		auth string
		code string
	}{
		{"no header", "", "AUTH_HEADER_MISSING"},
		{"wrong scheme", "Basic dGVzdA==", "INVALID_AUTH_FORMAT"},
		{"garbage", "Bearer invalid-jwt-here", "INVALID_TOKEN"},
		{"wrong secret", "Bearer " + foreign, "INVALID_TOKEN"},
		{"unknown session", "Bearer " + orphan, "SESSION_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(SessionAuth(acc))
			router.GET("/protected", func(c *gin.Context) {
				t.Fatal("handler should not be reached")
			})

			w := serve(router, http.MethodGet, "/protected", tt.auth)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestSessionAuth_ExpiredSession(t *testing.T) {
	acc := newAccessor(t, time.Millisecond)
	handle := login(t, acc, domain.UserTypeUser)
	time.Sleep(5 * time.Millisecond)

	router := gin.New()
	router.Use(SessionAuth(acc))
	router.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, http.MethodGet, "/protected", "Bearer "+handle)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
}

func TestOptionalSession(t *testing.T) {
	acc := newAccessor(t, time.Hour)
	handle := login(t, acc, domain.UserTypeAdmin)

	router := gin.New()
	router.Use(OptionalSession(acc))
	router.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"signed_in": CurrentSession(c) != nil})
	})

	w := serve(router, http.MethodGet, "/public", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"signed_in":false}`, w.Body.String())

	w = serve(router, http.MethodGet, "/public", "Bearer broken")
	assert.JSONEq(t, `{"signed_in":false}`, w.Body.String())

	w = serve(router, http.MethodGet, "/public", "Bearer "+handle)
	assert.JSONEq(t, `{"signed_in":true}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	acc := newAccessor(t, time.Hour)

	router := gin.New()
	router.GET("/admin", SessionAuth(acc), AdminOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/staff", SessionAuth(acc), StaffOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bare", RequireRole(domain.UserTypeAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	admin := "Bearer " + login(t, acc, domain.UserTypeAdmin)
	artist := "Bearer " + login(t, acc, domain.UserTypeArtist)
	user := "Bearer " + login(t, acc, domain.UserTypeUser)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/admin", admin).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodGet, "/admin", artist).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/staff", artist).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodGet, "/staff", user).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/bare", "").Code)
}

func TestStaticToken(t *testing.T) {
	router := gin.New()
	router.GET("/metrics", StaticToken("scrape-me"), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/open", StaticToken(""), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodGet, "/metrics", "Bearer nope").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/metrics", "Bearer scrape-me").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/open", "").Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{" https://parlor.example "}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://parlor.example")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://parlor.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info")

	router := gin.New()
	router.Use(RequestID(), ErrorLogger(logger))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "req-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestRequestID_Generated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := serve(router, http.MethodGet, "/x", "")
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}

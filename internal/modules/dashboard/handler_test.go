package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/middleware"
	"tattooparlor/internal/session"
	"tattooparlor/internal/testutil"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) GetUser(ctx context.Context, token string, id int64) (*domain.User, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) UpdateUser(ctx context.Context, token string, id int64, patch backend.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, token, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) AdminDashboard(ctx context.Context, token string) (map[string]any, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockBackend) ArtistDashboard(ctx context.Context, token string) (*domain.ArtistDashboard, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtistDashboard), args.Error(1)
}

func (m *MockBackend) ArtistProfile(ctx context.Context, token string) (*domain.Artist, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockBackend) UpdateArtistProfile(ctx context.Context, token string, patch backend.ArtistPatch) (*domain.Artist, error) {
	args := m.Called(ctx, token, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockBackend) GetBoolSetting(ctx context.Context, token, key string) (bool, error) {
	args := m.Called(ctx, token, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockBackend) PutBoolSetting(ctx context.Context, token, key string, value bool) error {
	return m.Called(ctx, token, key, value).Error(0)
}

type fixture struct {
	router *gin.Engine
	mb     *MockBackend
	acc    *session.Accessor
	admin  string
	artist string
	user   string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	acc := testutil.NewAccessor(t)
	mb := new(MockBackend)

	router := gin.New()
	public := router.Group("/api/v1")
	public.Use(middleware.OptionalSession(acc))
	protected := router.Group("/api/v1")
	protected.Use(middleware.SessionAuth(acc))
	NewHandler(NewService(mb, acc, nil)).RegisterRoutes(public, protected)

	return &fixture{
		router: router,
		mb:     mb,
		acc:    acc,
		admin:  testutil.Login(t, acc, 1, domain.UserTypeAdmin, "admin-token"),
		artist: testutil.Login(t, acc, 2, domain.UserTypeArtist, "artist-token"),
		user:   testutil.Login(t, acc, 3, domain.UserTypeUser, "user-token"),
	}
}

func TestUpdateUser(t *testing.T) {
	f := setup(t)
	email := "rue@example.com"
	f.mb.On("UpdateUser", mock.Anything, "user-token", int64(3), backend.UserPatch{Email: &email}).
		Return(&domain.User{ID: 3, Username: "rue", Email: email, UserType: domain.UserTypeUser}, nil)

	w := testutil.Do(f.router, http.MethodPatch, "/api/v1/users/3", f.user, map[string]string{"email": " Rue@Example.com "})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"email":"rue@example.com"`)

	w = testutil.Do(f.router, http.MethodPatch, "/api/v1/users/3", f.user, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(f.router, http.MethodPatch, "/api/v1/users/3", f.user, map[string]string{"username": "ab"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(f.router, http.MethodPatch, "/api/v1/users/3", f.user, map[string]string{"username": "  ab  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(f.router, http.MethodPatch, "/api/v1/users/3", f.user, map[string]string{"email": " rue@ "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_EMAIL", testutil.Decode(t, w).Error.Code)
	f.mb.AssertNumberOfCalls(t, "UpdateUser", 1)
}

func TestUpdateUser_TrimsUsernameBeforeLengthCheck(t *testing.T) {
	f := setup(t)
	name := "rue"
	f.mb.On("UpdateUser", mock.Anything, "user-token", int64(3), backend.UserPatch{Username: &name}).
		Return(&domain.User{ID: 3, Username: name, UserType: domain.UserTypeUser}, nil)

	w := testutil.Do(f.router, http.MethodPatch, "/api/v1/users/3", f.user, map[string]string{"username": "  rue  "})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	f.mb.AssertExpectations(t)
}

func TestDashboards_RoleFlags(t *testing.T) {
	f := setup(t)
	f.mb.On("AdminDashboard", mock.Anything, "admin-token").Return(map[string]any{"total_bookings": 12.0}, nil)
	f.mb.On("ArtistDashboard", mock.Anything, "artist-token").Return(&domain.ArtistDashboard{}, nil)

	w := testutil.Do(f.router, http.MethodGet, "/api/v1/dashboard/admin", f.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_bookings":12`)

	w = testutil.Do(f.router, http.MethodGet, "/api/v1/dashboard/admin", f.artist, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var d domain.ArtistDashboard
	testutil.DecodeData(t, testutil.Do(f.router, http.MethodGet, "/api/v1/dashboard/artist", f.artist, nil), &d)
	assert.NotNil(t, d.UpcomingBookings)
	assert.NotNil(t, d.PerformanceMetrics)

	w = testutil.Do(f.router, http.MethodGet, "/api/v1/dashboard/artist", f.user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateArtistProfile_NormalisesStyles(t *testing.T) {
	f := setup(t)
	f.mb.On("UpdateArtistProfile", mock.Anything, "artist-token", mock.MatchedBy(func(p backend.ArtistPatch) bool {
		return assert.ObjectsAreEqual([]string{"blackwork", "fine line"}, p.Styles)
	})).Return(&domain.Artist{ID: 2, Name: "Mika"}, nil)

	w := testutil.Do(f.router, http.MethodPatch, "/api/v1/dashboard/artist/profile", f.artist, `{"styles":"blackwork, fine line"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Do(f.router, http.MethodPatch, "/api/v1/dashboard/artist/profile", f.artist, `{"availability_schedule":"garbage"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.mb.AssertNumberOfCalls(t, "UpdateArtistProfile", 1)
}

func TestShowCreateArtist_WriteThenMirror(t *testing.T) {
	f := setup(t)
	f.mb.On("GetBoolSetting", mock.Anything, "", backend.SettingShowCreateArtist).Return(false, nil)
	f.mb.On("GetBoolSetting", mock.Anything, "admin-token", backend.SettingShowCreateArtist).Return(true, nil)
	f.mb.On("PutBoolSetting", mock.Anything, "admin-token", backend.SettingShowCreateArtist, true).Return(nil)

	var res SettingResponse
	testutil.DecodeData(t, testutil.Do(f.router, http.MethodGet, "/api/v1/settings/show-create-artist", "", nil), &res)
	assert.False(t, res.Value)

	w := testutil.Do(f.router, http.MethodPut, "/api/v1/settings/show-create-artist", f.admin, map[string]bool{"value": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	testutil.DecodeData(t, testutil.Do(f.router, http.MethodGet, "/api/v1/settings/show-create-artist", f.admin, nil), &res)
	assert.True(t, res.Value)

	sess, err := f.acc.Resolve(context.Background(), f.admin)
	require.NoError(t, err)
	assert.True(t, sess.ShowCreateArtist)

	w = testutil.Do(f.router, http.MethodPut, "/api/v1/settings/show-create-artist", f.user, map[string]bool{"value": true})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestShowCreateArtist_BackendRejectsLeavesSession(t *testing.T) {
	f := setup(t)
	f.mb.On("PutBoolSetting", mock.Anything, "admin-token", backend.SettingShowCreateArtist, true).
		Return(&backend.APIError{Status: http.StatusForbidden, Message: "Admins only"})

	w := testutil.Do(f.router, http.MethodPut, "/api/v1/settings/show-create-artist", f.admin, map[string]bool{"value": true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	sess, err := f.acc.Resolve(context.Background(), f.admin)
	require.NoError(t, err)
	assert.False(t, sess.ShowCreateArtist)
}

func TestShowCreateArtist_ResyncsStaleSession(t *testing.T) {
	f := setup(t)
	f.mb.On("GetBoolSetting", mock.Anything, "user-token", backend.SettingShowCreateArtist).Return(true, nil).Once()

	var res SettingResponse
	testutil.DecodeData(t, testutil.Do(f.router, http.MethodGet, "/api/v1/settings/show-create-artist", f.user, nil), &res)
	assert.True(t, res.Value)

	sess, err := f.acc.Resolve(context.Background(), f.user)
	require.NoError(t, err)
	assert.True(t, sess.ShowCreateArtist)

	f.mb.On("GetBoolSetting", mock.Anything, "user-token", backend.SettingShowCreateArtist).
		Return(false, fmt.Errorf("get setting: %w", backend.ErrUnavailable)).Once()
	testutil.DecodeData(t, testutil.Do(f.router, http.MethodGet, "/api/v1/settings/show-create-artist", f.user, nil), &res)
	assert.True(t, res.Value)

	f.mb.On("GetBoolSetting", mock.Anything, "", backend.SettingShowCreateArtist).
		Return(false, fmt.Errorf("get setting: %w", backend.ErrUnavailable)).Once()
	w := testutil.Do(f.router, http.MethodGet, "/api/v1/settings/show-create-artist", "", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

type failingSessions struct{}

func (failingSessions) SetShowCreateArtist(context.Context, string, bool) error {
	return errors.New("store down")
}

func TestSetShowCreateArtist_MirrorFailureIsNotFatal(t *testing.T) {
	mb := new(MockBackend)
	mb.On("PutBoolSetting", mock.Anything, "tok", backend.SettingShowCreateArtist, true).Return(nil)
	svc := NewService(mb, failingSessions{}, nil)

	sess := &session.Session{ID: "s1", Token: "tok"}
	require.NoError(t, svc.SetShowCreateArtist(context.Background(), sess, true))
	assert.False(t, sess.ShowCreateArtist)

	assert.ErrorIs(t, svc.SetShowCreateArtist(context.Background(), nil, true), ErrNoSession)
}

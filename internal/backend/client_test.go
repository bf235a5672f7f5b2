package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/observability/metrics"
	"tattooparlor/internal/pkg/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, logging.Default(),
		WithHTTPClient(ts.Client()),
		WithMetrics(metrics.NewBackendMetrics(prometheus.NewRegistry())),
	)
}

func TestClient_ListArtists_NormalisesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/artists", r.URL.Path)
		assert.Equal(t, "ink", r.URL.Query().Get("name"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artists":[{
			"id": 7,
			"name": "Inka",
			"styles": "Blackwork, Fine line",
			"social_media": "{'Instagram': 'https://instagram.com/inka', 'tiktok': ''}",
			"years_of_experience": "9",
			"availability_schedule": "{\"monday\":{\"start\":\"9:00 AM\",\"end\":\"5:00 PM\"}}"
		}]}`))
	})

	artists, err := client.ListArtists(context.Background(), "", "ink")
	require.NoError(t, err)
	require.Len(t, artists, 1)

	a := artists[0]
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, []string{"Blackwork", "Fine line"}, a.Styles)
	assert.Equal(t, map[string]string{"instagram": "https://instagram.com/inka"}, a.SocialMedia)
	assert.Equal(t, 9, a.YearsOfExperience)
	assert.True(t, a.IsActive)
	assert.True(t, a.AvailabilitySchedule.Window(time.Monday).IsOpen())
}

func TestClient_GetArtist_Unwrapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artists/3", r.URL.Path)
		assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":3,"name":"Rex","styles":["Realism"],"social_media":null,"availability_schedule":null}`))
	})

	a, err := client.GetArtist(context.Background(), "backend-token", 3)
	require.NoError(t, err)
	assert.Equal(t, "Rex", a.Name)
	assert.Equal(t, []string{"Realism"}, a.Styles)
	assert.Empty(t, a.SocialMedia)
}

func TestClient_CreateBooking_SendsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Monday, March 10, 2025 3:00 PM", got["appointment_date"])
		assert.Equal(t, "text", got["call_or_text_preference"])
		assert.Equal(t, 150.0, got["price"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":11,"name":"Sam","appointment_date":"Monday, March 10, 2025 3:00 PM","status":"pending"}`))
	})

	b, err := client.CreateBooking(context.Background(), "", BookingInput{
		Name:              "Sam",
		ContactPreference: domain.ContactText,
		ArtistID:          2,
		AppointmentDate:   "Monday, March 10, 2025 3:00 PM",
		Price:             150,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Only admins can delete bookings"}`))
	})

	err := client.DeleteBooking(context.Background(), "tok", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.False(t, errors.Is(err, ErrNotFound))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Only admins can delete bookings", apiErr.Message)
}

func TestClient_APIError_TruncatesPlainBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("x", 1000), http.StatusBadGateway)
	})

	_, err := client.ListBookings(context.Background(), "")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.LessOrEqual(t, len(apiErr.Message), maxErrorBody+3)
}

func TestClient_APIError_TruncatesOnRuneBoundary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "x"+strings.Repeat("é", 400), http.StatusBadGateway)
	})

	_, err := client.ListBookings(context.Background(), "")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, utf8.ValidString(apiErr.Message))
	assert.True(t, strings.HasSuffix(apiErr.Message, "é..."), apiErr.Message)
	assert.LessOrEqual(t, len(apiErr.Message), maxErrorBody+3)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	assert.Equal(t, "a...", truncate("aé", 2))
	assert.Equal(t, "aé...", truncate("aéb", 3))
}

func TestClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := NewClient(url, logging.Default(), WithHTTPClient(&http.Client{Timeout: time.Second}))
	_, err := client.ListArtists(context.Background(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI)
}

func TestClient_ListSubscribers_Pagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("per_page"))
		assert.Equal(t, "gmail", q.Get("search"))
		_, _ = w.Write([]byte(`{"subscribers":[{"id":1,"email":"a@gmail.com","is_active":true}],"total_pages":3,"current_page":2}`))
	})

	page, err := client.ListSubscribers(context.Background(), "tok", 2, "gmail")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestClient_ListNewsletters_DefaultsPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Empty(t, r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"newsletters":null}`))
	})

	page, err := client.ListNewsletters(context.Background(), 0, "  ")
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestClient_SignIn(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"ada","password":"Secret#123"}`, string(body))
		_, _ = w.Write([]byte(`{"token":"backend-token","user":{"id":4,"user_type":"artist"}}`))
	})

	res, err := client.SignIn(context.Background(), SignInInput{Username: "ada", Password: "Secret#123"})
	require.NoError(t, err)
	assert.Equal(t, "backend-token", res.Token)
	assert.Equal(t, domain.UserTypeArtist, res.User.UserType)
}

func TestClient_GetBoolSetting(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/global-settings/show_create_artist":
			_, _ = w.Write([]byte(`{"key":"show_create_artist","value":"true"}`))
		default:
			http.NotFound(w, r)
		}
	})

	v, err := client.GetBoolSetting(context.Background(), "", SettingShowCreateArtist)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = client.GetBoolSetting(context.Background(), "", "missing")
	require.NoError(t, err)
	assert.False(t, v)
}

func TestClient_ArtistDashboard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"artist_details": {"id": 2, "name": "Mo", "availability_schedule": "garbage"},
			"upcoming_bookings": [{"id": 1, "appointment_date": "2025-03-10T15:00"}],
			"recent_reviews": [],
			"portfolio_preview": [],
			"performance_metrics": {"total_bookings": 12}
		}`))
	})

	d, err := client.ArtistDashboard(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, d.ArtistDetails)
	assert.Equal(t, "Mo", d.ArtistDetails.Name)
	assert.Len(t, d.UpcomingBookings, 1)
	assert.Equal(t, 12.0, d.PerformanceMetrics["total_bookings"])
}

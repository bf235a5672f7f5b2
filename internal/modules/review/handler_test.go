package review

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/domain"
	"tattooparlor/internal/middleware"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/testutil"
)

// newRouter wires the handler to a real backend client that talks to api.
func newRouter(t *testing.T, api http.HandlerFunc) (*gin.Engine, string) {
	t.Helper()
	ts := httptest.NewServer(api)
	t.Cleanup(ts.Close)
	client := backend.NewClient(ts.URL, logging.Default(), backend.WithHTTPClient(ts.Client()))

	acc := testutil.NewAccessor(t)
	router := gin.New()
	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.SessionAuth(acc))
	NewHandler(NewService(client)).RegisterRoutes(v1, protected)

	return router, testutil.Login(t, acc, 4, domain.UserTypeUser, "user-token")
}

func TestListReviews_Average(t *testing.T) {
	router, _ := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artists/7/reviews", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"artist_id":7,"star_rating":5,"review_text":"Clean lines"},
			{"id":2,"artist_id":7,"star_rating":4,"review_text":"Great"},
			{"id":3,"artist_id":7,"star_rating":4,"review_text":"Kind"}]`)
	})

	var res ReviewSummary
	testutil.DecodeData(t, testutil.Do(router, http.MethodGet, "/api/v1/artists/7/reviews", "", nil), &res)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 4.3, res.AverageRating)
}

func TestListReviews_Empty(t *testing.T) {
	router, _ := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"reviews":[]}`)
	})

	w := testutil.Do(router, http.MethodGet, "/api/v1/artists/7/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reviews":[]`)
	assert.Contains(t, w.Body.String(), `"average_rating":0`)
}

func TestCreateReview(t *testing.T) {
	var got backend.ReviewInput
	router, handle := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"review":{"id":10,"artist_id":7,"star_rating":5,"review_text":"Superb"}}`)
	})

	w := testutil.Do(router, http.MethodPost, "/api/v1/artists/7/reviews", handle, CreateReviewRequest{StarRating: 5, ReviewText: " Superb "})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Superb", got.ReviewText)

	for _, rating := range []int{0, 6, -1} {
		w := testutil.Do(router, http.MethodPost, "/api/v1/artists/7/reviews", handle, map[string]any{"star_rating": rating, "review_text": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code, rating)
	}

	w = testutil.Do(router, http.MethodPost, "/api/v1/artists/7/reviews", "", CreateReviewRequest{StarRating: 5, ReviewText: "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGalleryAndFeed(t *testing.T) {
	router, handle := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/artists/7/gallery" && r.Method == http.MethodGet:
			assert.Equal(t, "koi", r.URL.Query().Get("search"))
			_, _ = io.WriteString(w, `{"photos":[{"id":1,"artist_id":7,"image_url":"https://img.example/koi.jpg","caption":"Koi sleeve"}]}`)
		case r.URL.Path == "/api/galleries":
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			_, _ = io.WriteString(w, `{"galleries":[{"id":3,"image_url":"https://img.example/a.jpg","artist_name":"Inka"}],"pages":4}`)
		case r.URL.Path == "/api/gallery/1" && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"error":"Only the artist can delete this photo"}`)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	var photos struct {
		Photos []domain.GalleryPhoto `json:"photos"`
	}
	testutil.DecodeData(t, testutil.Do(router, http.MethodGet, "/api/v1/artists/7/gallery?search=koi", "", nil), &photos)
	require.Len(t, photos.Photos, 1)
	assert.Equal(t, "Koi sleeve", photos.Photos[0].Caption)

	var feed struct {
		Galleries   []domain.GalleryPhoto `json:"galleries"`
		Pages       int                   `json:"pages"`
		CurrentPage int                   `json:"current_page"`
	}
	testutil.DecodeData(t, testutil.Do(router, http.MethodGet, "/api/v1/galleries?page=2", "", nil), &feed)
	assert.Equal(t, 4, feed.Pages)
	assert.Equal(t, 2, feed.CurrentPage)
	assert.Equal(t, "Inka", feed.Galleries[0].ArtistName)

	w := testutil.Do(router, http.MethodDelete, "/api/v1/gallery/1", handle, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only the artist can delete this photo", testutil.Decode(t, w).Error.Message)

	w = testutil.Do(router, http.MethodPost, "/api/v1/artists/7/gallery", handle, AddPhotoRequest{ImageURL: "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

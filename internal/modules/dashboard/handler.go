package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/middleware"
	"tattooparlor/internal/modules/artist"
	"tattooparlor/internal/pkg/params"
	"tattooparlor/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts user, dashboard and settings routes. Dashboards are
// only offered to the roles that can see them; the backend still decides.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/settings/show-create-artist", h.GetShowCreateArtist)
	}

	if protected != nil {
		protected.GET("/users/:id", h.GetUser)
		protected.PATCH("/users/:id", h.UpdateUser)

		dash := protected.Group("/dashboard")
		{
			dash.GET("/admin", middleware.AdminOnly(), h.AdminDashboard)
			dash.GET("/artist", middleware.StaffOnly(), h.ArtistDashboard)
			dash.GET("/artist/profile", middleware.StaffOnly(), h.ArtistProfile)
			dash.PATCH("/artist/profile", middleware.StaffOnly(), h.UpdateArtistProfile)
		}

		protected.PUT("/settings/show-create-artist", middleware.AdminOnly(), h.PutShowCreateArtist)
	}
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	u, err := h.service.User(c.Request.Context(), middleware.BackendToken(c), id)
	if err != nil {
		handleError(c, err, "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.UpdateUser(c.Request.Context(), middleware.BackendToken(c), id, req)
	if err != nil {
		handleError(c, err, "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	d, err := h.service.Admin(c.Request.Context(), middleware.BackendToken(c))
	if err != nil {
		handleError(c, err, "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) ArtistDashboard(c *gin.Context) {
	d, err := h.service.Artist(c.Request.Context(), middleware.BackendToken(c))
	if err != nil {
		handleError(c, err, "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) ArtistProfile(c *gin.Context) {
	a, err := h.service.Profile(c.Request.Context(), middleware.BackendToken(c))
	if err != nil {
		handleError(c, err, "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artist": a})
}

func (h *Handler) UpdateArtistProfile(c *gin.Context) {
	var req artist.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile data")
		return
	}

	a, err := h.service.UpdateProfile(c.Request.Context(), middleware.BackendToken(c), req)
	if err != nil {
		handleError(c, err, "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artist": a})
}

func (h *Handler) GetShowCreateArtist(c *gin.Context) {
	v, err := h.service.ShowCreateArtist(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		handleError(c, err, "Failed to load setting")
		return
	}
	response.Success(c, http.StatusOK, SettingResponse{Key: backend.SettingShowCreateArtist, Value: v})
}

func (h *Handler) PutShowCreateArtist(c *gin.Context) {
	var req SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "value must be true or false")
		return
	}

	if err := h.service.SetShowCreateArtist(c.Request.Context(), middleware.CurrentSession(c), *req.Value); err != nil {
		handleError(c, err, "Failed to save setting")
		return
	}
	response.Success(c, http.StatusOK, SettingResponse{Key: backend.SettingShowCreateArtist, Value: *req.Value})
}

func handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEmptyPatch):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update")
	case errors.Is(err, ErrInvalidUsername):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username must be 3-50 characters")
	case errors.Is(err, ErrInvalidEmail):
		response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", "A valid email is required")
	case errors.Is(err, ErrNoSession):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Please sign in")
	case errors.Is(err, artist.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, artist.ErrInvalidSchedule):
		response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", "Invalid availability schedule")
	default:
		response.Backend(c, err, fallback)
	}
}

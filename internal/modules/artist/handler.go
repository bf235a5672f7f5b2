package artist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/middleware"
	"tattooparlor/internal/pkg/params"
	"tattooparlor/internal/pkg/response"
	"tattooparlor/internal/schedule"
	"tattooparlor/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the read endpoints on public and the mutations on
// protected. public is expected to run OptionalSession.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/artists", h.List)
		public.GET("/artists/:id", h.Get)
		public.GET("/artists/:id/availability", h.Availability)
		public.GET("/artists/:id/hours", h.Hours)
		public.GET("/artists/:id/status", h.Status)
		public.GET("/artists/:id/calendar", h.Calendar)
		public.GET("/schedule/options", h.HourOptions)
	}

	if protected != nil {
		protected.POST("/artists", h.Create)
		protected.PATCH("/artists/:id", h.Update)
		protected.DELETE("/artists/:id", h.Delete)
		protected.PUT("/artists/:id/schedule/:day", h.SetWindow)
	}
}

func (h *Handler) List(c *gin.Context) {
	artists, err := h.service.List(c.Request.Context(), middleware.BackendToken(c), c.Query("name"))
	if err != nil {
		response.Backend(c, err, "Failed to load artists")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artists": artists})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), middleware.BackendToken(c), id)
	if err != nil {
		response.Backend(c, err, "Failed to load artist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"artist":   a,
		"can_edit": session.CanEditArtist(middleware.CurrentSession(c), *a),
	})
}

func (h *Handler) Availability(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Availability(c.Request.Context(), middleware.BackendToken(c), id, c.Query("date"))
	if err != nil {
		handleError(c, err, "Failed to check availability")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Hours(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Hours(c.Request.Context(), middleware.BackendToken(c), id)
	if err != nil {
		handleError(c, err, "Failed to load working hours")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Status(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Status(c.Request.Context(), middleware.BackendToken(c), id)
	if err != nil {
		handleError(c, err, "Failed to load working status")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Calendar(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Calendar(c.Request.Context(), middleware.BackendToken(c), id, c.Query("date"))
	if err != nil {
		handleError(c, err, "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) HourOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"options": schedule.HourlyOptions(),
		"days":    dayNames(),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), middleware.BackendToken(c), req)
	if err != nil {
		handleError(c, err, "Failed to create artist")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"artist": a})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), middleware.BackendToken(c), id, req)
	if err != nil {
		handleError(c, err, "Failed to update artist")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artist": a})
}

func (h *Handler) SetWindow(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	var req SetWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "field is required")
		return
	}

	a, err := h.service.SetWindow(c.Request.Context(), middleware.BackendToken(c), id, c.Param("day"), req)
	if err != nil {
		handleError(c, err, "Failed to update schedule")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artist": a})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.BackendToken(c), id); err != nil {
		response.Backend(c, err, "Failed to delete artist")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
	case errors.Is(err, schedule.ErrEndNotAfterStart):
		response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", "End time must be after start time")
	case errors.Is(err, schedule.ErrUnknownDay):
		response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", "Unknown day of week")
	case errors.Is(err, schedule.ErrUnknownField):
		response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", "field must be start or end")
	case errors.Is(err, schedule.ErrInvalidTime):
		response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", "Times must look like 9:00 AM")
	case errors.Is(err, ErrInvalidSchedule):
		response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", "Invalid availability schedule")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Backend(c, err, fallback)
	}
}

func dayNames() []string {
	out := make([]string, 0, len(schedule.Order))
	for _, d := range schedule.Order {
		out = append(out, d.String())
	}
	return out
}

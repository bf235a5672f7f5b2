package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/middleware"
	"tattooparlor/internal/pkg/params"
	"tattooparlor/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts creation on public (walk-in clients book without an
// account) and listing and edits on protected.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/bookings", h.CreateBooking)
		public.POST("/piercings", h.CreatePiercing)
	}

	if protected != nil {
		protected.GET("/bookings", h.ListBookings)
		protected.PATCH("/bookings/:id", h.UpdateBooking)
		protected.DELETE("/bookings/:id", h.DeleteBooking)

		protected.GET("/piercings", h.ListPiercings)
		protected.PATCH("/piercings/:id", h.UpdatePiercing)
		protected.DELETE("/piercings/:id", h.DeletePiercing)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please fill in all booking fields")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), middleware.BackendToken(c), req)
	if err != nil {
		handleError(c, err, "Failed to create booking. Please try again.")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CreatePiercing(c *gin.Context) {
	var req CreatePiercingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please fill in all piercing fields")
		return
	}

	p, err := h.service.CreatePiercing(c.Request.Context(), middleware.BackendToken(c), req)
	if err != nil {
		handleError(c, err, "Failed to create piercing. Please try again.")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"piercing": p})
}

func (h *Handler) ListBookings(c *gin.Context) {
	f, ok := listFilter(c)
	if !ok {
		return
	}

	items, err := h.service.ListBookings(c.Request.Context(), middleware.BackendToken(c), f)
	if err != nil {
		handleError(c, err, "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) ListPiercings(c *gin.Context) {
	f, ok := listFilter(c)
	if !ok {
		return
	}

	items, err := h.service.ListPiercings(c.Request.Context(), middleware.BackendToken(c), f)
	if err != nil {
		handleError(c, err, "Failed to load piercings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"piercings": items})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, req, ok := bindUpdate(c)
	if !ok {
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), middleware.BackendToken(c), id, req)
	if err != nil {
		handleError(c, err, "Failed to update booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdatePiercing(c *gin.Context) {
	id, req, ok := bindUpdate(c)
	if !ok {
		return
	}

	p, err := h.service.UpdatePiercing(c.Request.Context(), middleware.BackendToken(c), id, req)
	if err != nil {
		handleError(c, err, "Failed to update piercing")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"piercing": p})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), middleware.BackendToken(c), id); err != nil {
		handleError(c, err, "Failed to delete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) DeletePiercing(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePiercing(c.Request.Context(), middleware.BackendToken(c), id); err != nil {
		handleError(c, err, "Failed to delete piercing")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func bindUpdate(c *gin.Context) (int64, UpdateRequest, bool) {
	var req UpdateRequest
	id, ok := params.PathID(c, "id")
	if !ok {
		return 0, req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return 0, req, false
	}
	return id, req, true
}

func listFilter(c *gin.Context) (ListFilter, bool) {
	f := ListFilter{Date: c.Query("date")}
	if v := c.Query("artist_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "artist_id must be a positive integer")
			return f, false
		}
		f.ArtistID = id
	}
	return f, true
}

func handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "appointment_date must be a date and time like 2025-03-10T15:00")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrEmptyPatch):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update")
	case errors.Is(err, ErrInvalidQuery):
		response.Error(c, http.StatusBadRequest, "INVALID_FILTER", err.Error())
	default:
		response.Backend(c, err, fallback)
	}
}

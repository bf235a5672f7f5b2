package inquiry

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/inquiries", h.Create)
		public.POST("/subscribe", h.Subscribe)
		public.POST("/unsubscribe", h.Unsubscribe)
		public.GET("/newsletters", h.Newsletters)
	}

	if protected != nil {
		protected.GET("/inquiries", h.List)
		protected.PATCH("/inquiries/:id", h.UpdateStatus)
		protected.DELETE("/inquiries/:id", h.Delete)

		protected.GET("/subscribers", h.Subscribers)
		protected.GET("/subscribers/metrics", h.Metrics)
		protected.DELETE("/subscribers/:id", h.DeleteSubscriber)

		protected.POST("/newsletters", h.CreateNewsletter)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, phone number, a valid email and a message are required")
		return
	}

	msg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Something went wrong!")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), middleware.BackendToken(c))
	if err != nil {
		handleError(c, err, "Failed to fetch inquiries. Please try again later.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inquiries": items})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status is required")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), middleware.BackendToken(c), id, req.Status); err != nil {
		handleError(c, err, "Failed to update status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.BackendToken(c), id); err != nil {
		handleError(c, err, "Failed to delete inquiry")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "email is required")
		return
	}

	msg, err := h.service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		handleError(c, err, "Failed to subscribe")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

// Unsubscribe serves both the public form and staff acting on a list row.
func (h *Handler) Unsubscribe(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "email is required")
		return
	}

	msg, err := h.service.Unsubscribe(c.Request.Context(), middleware.BackendToken(c), req.Email)
	if err != nil {
		handleError(c, err, "Failed to unsubscribe.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) Subscribers(c *gin.Context) {
	page, err := h.service.Subscribers(c.Request.Context(), middleware.BackendToken(c), params.QueryPage(c), c.Query("search"))
	if err != nil {
		handleError(c, err, "An error occurred.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"subscribers":  page.Items,
		"total_pages":  page.TotalPages,
		"current_page": page.CurrentPage,
	})
}

func (h *Handler) Metrics(c *gin.Context) {
	m, err := h.service.Metrics(c.Request.Context(), middleware.BackendToken(c))
	if err != nil {
		handleError(c, err, "Failed to fetch metrics.")
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) DeleteSubscriber(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSubscriber(c.Request.Context(), middleware.BackendToken(c), id); err != nil {
		handleError(c, err, "Failed to delete subscriber.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) CreateNewsletter(c *gin.Context) {
	var req CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and body are required; image must be a URL")
		return
	}

	msg, err := h.service.CreateNewsletter(c.Request.Context(), middleware.BackendToken(c), req)
	if err != nil {
		handleError(c, err, "Failed to create newsletter")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) Newsletters(c *gin.Context) {
	page, err := h.service.Newsletters(c.Request.Context(), params.QueryPage(c), c.Query("search"))
	if err != nil {
		handleError(c, err, "Failed to load newsletters")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"newsletters":  page.Items,
		"total_pages":  page.TotalPages,
		"current_page": page.CurrentPage,
	})
}

func handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "status must be one of pending, contacted, final_booking, booked")
	case errors.Is(err, ErrInvalidEmail):
		response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", "Please enter a valid email address")
	default:
		response.Backend(c, err, fallback)
	}
}

package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/middleware"
	"tattooparlor/internal/pkg/params"
	"tattooparlor/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/artists/:id/reviews", h.ListReviews)
		public.GET("/artists/:id/gallery", h.Gallery)
		public.GET("/galleries", h.Feed)
	}

	if protected != nil {
		protected.POST("/artists/:id/reviews", h.CreateReview)
		protected.DELETE("/reviews/:id", h.DeleteReview)
		protected.POST("/artists/:id/gallery", h.AddPhoto)
		protected.DELETE("/gallery/:id", h.DeletePhoto)
	}
}

func (h *Handler) ListReviews(c *gin.Context) {
	artistID, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.svc.ListReviews(c.Request.Context(), artistID)
	if err != nil {
		response.Backend(c, err, "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) CreateReview(c *gin.Context) {
	artistID, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.CreateReview(c.Request.Context(), middleware.BackendToken(c), artistID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRating) {
			response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Star rating must be between 1 and 5")
			return
		}
		response.Backend(c, err, "Failed to submit review")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteReview(c.Request.Context(), middleware.BackendToken(c), id); err != nil {
		response.Backend(c, err, "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) Gallery(c *gin.Context) {
	artistID, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	photos, err := h.svc.Gallery(c.Request.Context(), artistID, c.Query("search"))
	if err != nil {
		response.Backend(c, err, "Failed to load gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"photos": photos})
}

func (h *Handler) AddPhoto(c *gin.Context) {
	artistID, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	var req AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "image_url must be a valid URL")
		return
	}

	photo, err := h.svc.AddPhoto(c.Request.Context(), middleware.BackendToken(c), artistID, req)
	if err != nil {
		response.Backend(c, err, "Failed to add photo")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"photo": photo})
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	id, ok := params.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeletePhoto(c.Request.Context(), middleware.BackendToken(c), id); err != nil {
		response.Backend(c, err, "Failed to delete photo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) Feed(c *gin.Context) {
	page := params.QueryPage(c)
	feed, err := h.svc.Feed(c.Request.Context(), page)
	if err != nil {
		response.Backend(c, err, "Failed to load galleries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"galleries":    feed.Galleries,
		"pages":        feed.Pages,
		"current_page": page,
	})
}

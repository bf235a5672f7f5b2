package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/middleware"
	"tattooparlor/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signin", h.SignIn)
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/password/forgot", h.ForgotPassword)
		authGroup.POST("/password/reset", h.ResetPassword)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/signout", h.SignOut)
	protected.GET("/session", h.Session)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	res, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		response.Backend(c, err, "Invalid credentials. Please try again.")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "An error occurred during sign-up. Please try again.")
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email is required")
		return
	}

	res, err := h.service.ForgotPassword(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Something went wrong. Please try again.")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.ResetPassword(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Something went wrong. Please try again.")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) SignOut(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Sign in required")
		return
	}

	if err := h.service.SignOut(c.Request.Context(), sess.ID); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "SIGNOUT_FAILED", "Failed to sign out")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *Handler) Session(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Sign in required")
		return
	}
	response.Success(c, http.StatusOK, View(sess))
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD",
			"Password must be 8-128 characters with upper and lower case letters, a digit and a special character")
	case errors.Is(err, ErrPasswordMismatch):
		response.Error(c, http.StatusBadRequest, "PASSWORD_MISMATCH", "Passwords do not match")
	case errors.Is(err, ErrInvalidUserType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "user_type must be one of: artist, admin, user")
	case errors.Is(err, ErrInvalidUsername):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username must be 2-64 characters")
	case errors.Is(err, ErrInvalidEmail):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email is required")
	case errors.Is(err, ErrMissingToken):
		response.Error(c, http.StatusBadRequest, "INVALID_RESET_TOKEN", "Invalid or missing token")
	default:
		response.Backend(c, err, fallback)
	}
}

package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts register/login on the public group and the
// profile endpoint on the protected one.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)
	protected.GET("/users/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, ToUserPublic(user))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to login")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		User:  ToUserPublic(user),
		Token: token,
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, ToUserPublic(user))
}

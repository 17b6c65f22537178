package follow

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users/:id/subscribe", h.Subscribe)
	rg.DELETE("/users/:id/subscribe", h.Unsubscribe)
	rg.GET("/users/subscriptions", h.Subscriptions)
}

func (h *Handler) Subscribe(c *gin.Context) {
	toUserID, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Follow(c.Request.Context(), middleware.UserID(c), toUserID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user_id": toUserID})
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	toUserID, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Unfollow(c.Request.Context(), middleware.UserID(c), toUserID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Subscriptions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	// recipes_limit caps the per-user recipe preview; absent means all.
	recipesLimit := -1
	if raw := c.Query("recipes_limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "recipes_limit query param must be an integer")
			return
		}
		recipesLimit = parsed
	}

	followed, total, err := h.service.ListFollowing(
		c.Request.Context(),
		middleware.UserID(c),
		perPage,
		(page-1)*perPage,
		recipesLimit,
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, SubscriptionListResponse{
		Subscriptions: followed,
		Total:         total,
		Page:          page,
		PerPage:       perPage,
	})
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrSelfFollow):
		response.Error(c, http.StatusBadRequest, "SELF_FOLLOW", err.Error())
	case errors.Is(err, ErrAlreadyFollowing):
		response.Error(c, http.StatusBadRequest, "ALREADY_FOLLOWING", err.Error())
	case errors.Is(err, ErrNotFollowing):
		response.Error(c, http.StatusBadRequest, "NOT_FOLLOWING", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

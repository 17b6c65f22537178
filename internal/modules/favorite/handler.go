package favorite

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
	rg.POST("/recipes/:id/favorite", h.Add)
	rg.DELETE("/recipes/:id/favorite", h.Remove)
}

func (h *Handler) Add(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Add(c.Request.Context(), middleware.UserID(c), recipeID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"recipe_id": recipeID})
}

func (h *Handler) Remove(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.UserID(c), recipeID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func recipeIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid recipe id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyFavorited):
		response.Error(c, http.StatusBadRequest, "ALREADY_FAVORITED", err.Error())
	case errors.Is(err, ErrNotFavorited):
		response.Error(c, http.StatusBadRequest, "NOT_FAVORITED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

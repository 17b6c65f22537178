package ingredient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"
)

const autocompleteLimit = 50

// Handler serves the ingredient catalog: the full reference list and
// the name-prefix search backing recipe-editor autocomplete.
type Handler struct {
	repo repository.IngredientRepository
}

func NewHandler(repo repository.IngredientRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ingredients", h.List)
	rg.GET("/ingredients/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	prefix := c.Query("name")

	limit := 0
	if prefix != "" {
		limit = autocompleteLimit
	}

	ingredients, err := h.repo.List(c.Request.Context(), prefix, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list ingredients")
		return
	}
	response.Success(c, http.StatusOK, ingredients)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid ingredient id")
		return
	}

	ingredient, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "ingredient not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to get ingredient")
		return
	}
	response.Success(c, http.StatusOK, ingredient)
}

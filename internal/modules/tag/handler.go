package tag

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"
)

// Handler serves the read-only tag reference data.
type Handler struct {
	repo repository.TagRepository
}

func NewHandler(repo repository.TagRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tags", h.List)
	rg.GET("/tags/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	tags, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list tags")
		return
	}
	response.Success(c, http.StatusOK, tags)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid tag id")
		return
	}

	tag, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "tag not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to get tag")
		return
	}
	response.Success(c, http.StatusOK, tag)
}

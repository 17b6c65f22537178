package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/pdf"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes/:id/shopping_cart", h.Add)
	rg.DELETE("/recipes/:id/shopping_cart", h.Remove)
	rg.GET("/recipes/download_shopping_cart", h.Download)
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

// Download renders the aggregated cart as a PDF attachment. An empty
// cart still downloads: the document carries the placeholder line.
func (h *Handler) Download(c *gin.Context) {
	items, err := h.service.Aggregate(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to aggregate shopping cart")
		return
	}

	rows := make([]pdf.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, pdf.Row{
			Name:            item.Name,
			Amount:          item.Amount,
			MeasurementUnit: item.MeasurementUnit,
		})
	}

	document, err := pdf.ShoppingList(rows)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to render document")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart.pdf"`)
	c.Data(http.StatusOK, "application/pdf", document)
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
	case errors.Is(err, ErrAlreadyInCart):
		response.Error(c, http.StatusBadRequest, "ALREADY_IN_CART", err.Error())
	case errors.Is(err, ErrNotInCart):
		response.Error(c, http.StatusBadRequest, "NOT_IN_CART", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

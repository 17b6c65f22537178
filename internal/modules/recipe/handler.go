package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts reads on the public (optional-auth) group and
// mutations on the protected one.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/recipes", h.List)
	public.GET("/recipes/:id", h.Get)

	protected.POST("/recipes", h.Create)
	protected.PUT("/recipes/:id", h.Update)
	protected.DELETE("/recipes/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	filter, page, perPage, ok := parseFilter(c)
	if !ok {
		return
	}

	views, total, err := h.service.List(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToRecipeListResponse(views, total, page, perPage))
}

func (h *Handler) Get(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), middleware.UserID(c), recipeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToRecipeResponse(view.Recipe, view.IsFavorited, view.InShoppingCart))
}

func (h *Handler) Create(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToRecipeResponse(view.Recipe, view.IsFavorited, view.InShoppingCart))
}

func (h *Handler) Update(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.service.Update(c.Request.Context(), middleware.UserID(c), recipeID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToRecipeResponse(view.Recipe, view.IsFavorited, view.InShoppingCart))
}

func (h *Handler) Delete(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), recipeID); err != nil {
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

// parseFilter reads the list query params: author, tags (repeating
// slug param, multi-select), is_favorited, is_in_shopping_cart,
// page/limit pagination.
func parseFilter(c *gin.Context) (repository.RecipeFilter, int, int, bool) {
	var filter repository.RecipeFilter

	if raw := c.Query("author"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "author must be an integer")
			return filter, 0, 0, false
		}
		filter.AuthorID = &authorID
	}

	filter.TagSlugs = c.QueryArray("tags")

	var ok bool
	if filter.IsFavorited, ok = parseBoolQuery(c, "is_favorited"); !ok {
		return filter, 0, 0, false
	}
	if filter.IsInShoppingCart, ok = parseBoolQuery(c, "is_in_shopping_cart"); !ok {
		return filter, 0, 0, false
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	filter.Limit = perPage
	filter.Offset = (page - 1) * perPage
	return filter, page, perPage, true
}

func parseBoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be a boolean")
		return nil, false
	}
	return &value, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrDuplicateIngredient):
		response.Error(c, http.StatusBadRequest, "DUPLICATE_INGREDIENT", err.Error())
	case errors.Is(err, ErrDuplicateTag):
		response.Error(c, http.StatusBadRequest, "DUPLICATE_TAG", err.Error())
	case errors.Is(err, ErrIngredientNotFound),
		errors.Is(err, ErrTagNotFound),
		errors.Is(err, ErrValidation),
		errors.Is(err, repository.ErrRecipeNameTaken):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

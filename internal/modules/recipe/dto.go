package recipe

import "foodgram/internal/domain"

type LineItemRequest struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// RecipeRequest carries the full recipe state for create and update:
// tags and line items are always supplied as complete sets and replace
// whatever was there before.
type RecipeRequest struct {
	Name        string            `json:"name" binding:"required,max=150"`
	Image       string            `json:"image"`
	Text        string            `json:"text" binding:"required"`
	CookingTime int               `json:"cooking_time" binding:"required,min=1"`
	Tags        []int64           `json:"tags" binding:"required,min=1"`
	Ingredients []LineItemRequest `json:"ingredients" binding:"required,min=1,dive"`
}

type AuthorResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// LineItemResponse flattens a line item with its ingredient: id is the
// ingredient id, unit comes from the catalog entry.
type LineItemResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

type RecipeResponse struct {
	ID               int64              `json:"id"`
	Author           AuthorResponse     `json:"author"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
	Tags             []TagResponse      `json:"tags"`
	Ingredients      []LineItemResponse `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
}

type RecipeListResponse struct {
	Recipes    []RecipeResponse `json:"recipes"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}

func ToRecipeResponse(r *domain.Recipe, isFavorited, inShoppingCart bool) RecipeResponse {
	resp := RecipeResponse{
		ID:               r.ID,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		Tags:             make([]TagResponse, 0, len(r.Tags)),
		Ingredients:      make([]LineItemResponse, 0, len(r.Ingredients)),
		IsFavorited:      isFavorited,
		IsInShoppingCart: inShoppingCart,
	}

	if r.Author != nil {
		resp.Author = AuthorResponse{
			ID:        r.Author.ID,
			Username:  r.Author.Username,
			FirstName: r.Author.FirstName,
			LastName:  r.Author.LastName,
		}
	}

	for _, t := range r.Tags {
		resp.Tags = append(resp.Tags, TagResponse{
			ID:    t.ID,
			Name:  t.Name,
			Color: t.Color,
			Slug:  t.Slug,
		})
	}

	for _, item := range r.Ingredients {
		li := LineItemResponse{
			ID:     item.IngredientID,
			Amount: item.Amount,
		}
		if item.Ingredient != nil {
			li.Name = item.Ingredient.Name
			li.MeasurementUnit = item.Ingredient.MeasurementUnit
		}
		resp.Ingredients = append(resp.Ingredients, li)
	}

	return resp
}

func ToRecipeListResponse(views []RecipeView, total int64, page, perPage int) RecipeListResponse {
	items := make([]RecipeResponse, 0, len(views))
	for _, v := range views {
		items = append(items, ToRecipeResponse(v.Recipe, v.IsFavorited, v.InShoppingCart))
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	return RecipeListResponse{
		Recipes:    items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

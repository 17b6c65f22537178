package cart

import (
	"context"

	"foodgram/internal/domain"
)

type CartRepository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	Contains(ctx context.Context, userID, recipeID int64) (bool, error)
	RecipeIDs(ctx context.Context, userID int64) ([]int64, error)
}

// LineItemSource feeds the aggregator with every line item of the
// recipes currently in the cart.
type LineItemSource interface {
	Exists(ctx context.Context, id int64) (bool, error)
	ListLineItems(ctx context.Context, recipeIDs []int64) ([]domain.RecipeIngredient, error)
}

package recipe

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	Update(ctx context.Context, recipe *domain.Recipe) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context, filter repository.RecipeFilter) ([]domain.Recipe, int64, error)
}

type IngredientCatalog interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
}

type TagCatalog interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}

// MembershipChecker resolves the is_favorited / is_in_shopping_cart
// flags on recipe representations.
type MembershipChecker interface {
	ContainsMany(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

package favorite

import "context"

type FavoriteRepository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	Contains(ctx context.Context, userID, recipeID int64) (bool, error)
}

type RecipeSource interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

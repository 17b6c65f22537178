package follow

import (
	"context"

	"foodgram/internal/domain"
)

type FollowRepository interface {
	Create(ctx context.Context, fromUserID, toUserID int64) error
	Delete(ctx context.Context, fromUserID, toUserID int64) error
	ListFollowing(ctx context.Context, fromUserID int64, limit, offset int) ([]domain.Follow, int64, error)
}

type UserSource interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RecipeSource provides the recipe previews attached to each followed
// user in listings.
type RecipeSource interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

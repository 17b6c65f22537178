package follow

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

type Service struct {
	follows FollowRepository
	users   UserSource
	recipes RecipeSource
}

func NewService(follows FollowRepository, users UserSource, recipes RecipeSource) *Service {
	return &Service{follows: follows, users: users, recipes: recipes}
}

// Follow creates the directed edge fromUserID → toUserID. Self-follows
// are rejected before any lookup; duplicate edges surface as
// ErrAlreadyFollowing through the unique index.
func (s *Service) Follow(ctx context.Context, fromUserID, toUserID int64) error {
	if fromUserID == toUserID {
		return ErrSelfFollow
	}
	if err := s.checkUser(ctx, toUserID); err != nil {
		return err
	}

	err := s.follows.Create(ctx, fromUserID, toUserID)
	if errors.Is(err, repository.ErrAlreadyFollowing) {
		return ErrAlreadyFollowing
	}
	return err
}

func (s *Service) Unfollow(ctx context.Context, fromUserID, toUserID int64) error {
	if err := s.checkUser(ctx, toUserID); err != nil {
		return err
	}

	err := s.follows.Delete(ctx, fromUserID, toUserID)
	if errors.Is(err, repository.ErrNotFollowing) {
		return ErrNotFollowing
	}
	return err
}

// ListFollowing returns the users userID follows, newest edge first,
// each enriched with a recipe preview. recipesLimit < 0 means
// unbounded.
func (s *Service) ListFollowing(ctx context.Context, userID int64, limit, offset, recipesLimit int) ([]FollowedUser, int64, error) {
	edges, total, err := s.follows.ListFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	followed := make([]FollowedUser, 0, len(edges))
	for _, edge := range edges {
		if edge.ToUser == nil {
			continue
		}

		recipes, err := s.recipePreview(ctx, edge.ToUserID, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		count, err := s.recipes.CountByAuthor(ctx, edge.ToUserID)
		if err != nil {
			return nil, 0, err
		}

		followed = append(followed, FollowedUser{
			ID:           edge.ToUser.ID,
			Email:        edge.ToUser.Email,
			Username:     edge.ToUser.Username,
			FirstName:    edge.ToUser.FirstName,
			LastName:     edge.ToUser.LastName,
			Recipes:      toRecipeShorts(recipes),
			RecipesCount: count,
			FollowedAt:   edge.CreatedAt,
		})
	}
	return followed, total, nil
}

// recipePreview fetches up to recipesLimit recipes; a negative limit
// means unbounded, zero means no preview at all.
func (s *Service) recipePreview(ctx context.Context, authorID int64, recipesLimit int) ([]domain.Recipe, error) {
	if recipesLimit == 0 {
		return nil, nil
	}
	if recipesLimit < 0 {
		recipesLimit = 0
	}
	return s.recipes.ListByAuthor(ctx, authorID, recipesLimit)
}

func (s *Service) checkUser(ctx context.Context, userID int64) error {
	_, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

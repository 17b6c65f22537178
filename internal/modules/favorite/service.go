package favorite

import (
	"context"
	"errors"

	"foodgram/internal/repository"
)

type Service struct {
	favorites FavoriteRepository
	recipes   RecipeSource
}

func NewService(favorites FavoriteRepository, recipes RecipeSource) *Service {
	return &Service{favorites: favorites, recipes: recipes}
}

// Add puts the recipe into the user's favorites. A second add of the
// same recipe fails with ErrAlreadyFavorited and leaves the set
// unchanged; concurrent duplicate adds are serialized by the unique
// index underneath.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) error {
	if err := s.checkRecipe(ctx, recipeID); err != nil {
		return err
	}

	err := s.favorites.Add(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrAlreadyMember) {
		return ErrAlreadyFavorited
	}
	return err
}

func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	if err := s.checkRecipe(ctx, recipeID); err != nil {
		return err
	}

	err := s.favorites.Remove(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrNotMember) {
		return ErrNotFavorited
	}
	return err
}

func (s *Service) Contains(ctx context.Context, userID, recipeID int64) (bool, error) {
	return s.favorites.Contains(ctx, userID, recipeID)
}

func (s *Service) checkRecipe(ctx context.Context, recipeID int64) error {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}
	return nil
}

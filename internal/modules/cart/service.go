package cart

import (
	"context"
	"errors"
	"sort"

	"foodgram/internal/repository"
)

// Item is one aggregated shopping-list line: a (name, unit) group with
// the summed amount across every recipe in the cart.
type Item struct {
	Name            string `json:"name"`
	Amount          int64  `json:"amount"`
	MeasurementUnit string `json:"measurement_unit"`
}

type Service struct {
	cart    CartRepository
	recipes LineItemSource
}

func NewService(cart CartRepository, recipes LineItemSource) *Service {
	return &Service{cart: cart, recipes: recipes}
}

func (s *Service) Add(ctx context.Context, userID, recipeID int64) error {
	if err := s.checkRecipe(ctx, recipeID); err != nil {
		return err
	}

	err := s.cart.Add(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrAlreadyMember) {
		return ErrAlreadyInCart
	}
	return err
}

func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	if err := s.checkRecipe(ctx, recipeID); err != nil {
		return err
	}

	err := s.cart.Remove(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrNotMember) {
		return ErrNotInCart
	}
	return err
}

func (s *Service) Contains(ctx context.Context, userID, recipeID int64) (bool, error) {
	return s.cart.Contains(ctx, userID, recipeID)
}

// Aggregate builds the consolidated shopping list for the user's cart.
// Line items are grouped by (ingredient name, measurement unit), not by
// ingredient id, so two catalog rows that collide on name+unit still
// merge. Amounts are summed within each group. An empty cart yields an
// empty list, not an error.
//
// The result is ordered by name, then unit, so repeated downloads of
// the same cart produce identical documents.
func (s *Service) Aggregate(ctx context.Context, userID int64) ([]Item, error) {
	recipeIDs, err := s.cart.RecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recipeIDs) == 0 {
		return []Item{}, nil
	}

	lineItems, err := s.recipes.ListLineItems(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}

	type key struct {
		name string
		unit string
	}
	totals := make(map[key]int64)
	for _, item := range lineItems {
		if item.Ingredient == nil {
			continue
		}
		totals[key{item.Ingredient.Name, item.Ingredient.MeasurementUnit}] += item.Amount
	}

	items := make([]Item, 0, len(totals))
	for k, amount := range totals {
		items = append(items, Item{
			Name:            k.name,
			Amount:          amount,
			MeasurementUnit: k.unit,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items, nil
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

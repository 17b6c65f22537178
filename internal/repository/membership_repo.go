package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// MembershipRepository is the shared contract for the two per-user
// recipe sets (favorites and shopping cart). Both sets are plain join
// rows keyed (user_id, recipe_id); the unique index serializes
// concurrent duplicate adds so at most one succeeds.
type MembershipRepository interface {
	// Add fails with ErrAlreadyMember if the recipe is already in the set.
	Add(ctx context.Context, userID, recipeID int64) error
	// Remove fails with ErrNotMember if the recipe is not in the set.
	Remove(ctx context.Context, userID, recipeID int64) error
	Contains(ctx context.Context, userID, recipeID int64) (bool, error)
	// ContainsMany resolves membership for a batch of recipes at once,
	// used when serializing recipe lists.
	ContainsMany(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
	// RecipeIDs returns every recipe in the user's set, insertion order.
	RecipeIDs(ctx context.Context, userID int64) ([]int64, error)
}

type membershipRepository struct {
	db     *gorm.DB
	newRow func(userID, recipeID int64) any
}

// NewFavoriteRepository returns the membership repository backed by the
// favorite_recipes table.
func NewFavoriteRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{
		db: db,
		newRow: func(userID, recipeID int64) any {
			return &domain.FavoriteRecipe{UserID: userID, RecipeID: recipeID}
		},
	}
}

// NewShoppingCartRepository returns the membership repository backed by
// the shopping_cart_recipes table.
func NewShoppingCartRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{
		db: db,
		newRow: func(userID, recipeID int64) any {
			return &domain.ShoppingCartRecipe{UserID: userID, RecipeID: recipeID}
		},
	}
}

func (r *membershipRepository) Add(ctx context.Context, userID, recipeID int64) error {
	err := r.db.WithContext(ctx).Create(r.newRow(userID, recipeID)).Error
	if isDuplicateKey(err) {
		return ErrAlreadyMember
	}
	return err
}

func (r *membershipRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(r.newRow(0, 0))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotMember
	}
	return nil
}

func (r *membershipRepository) Contains(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(r.newRow(0, 0)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (r *membershipRepository) ContainsMany(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	members := make(map[int64]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return members, nil
	}

	var found []int64
	err := r.db.WithContext(ctx).
		Model(r.newRow(0, 0)).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &found).Error
	if err != nil {
		return nil, err
	}

	for _, id := range found {
		members[id] = true
	}
	return members, nil
}

func (r *membershipRepository) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(r.newRow(0, 0)).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("recipe_id", &ids).Error
	return ids, err
}

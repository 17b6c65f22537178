package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"foodgram/internal/domain"
)

func seedAuthor(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	author := &domain.User{Email: "author@example.com", Username: "author"}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("failed to seed author: %v", err)
	}
	return author
}

func TestRecipeRepository_Create_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	author := seedAuthor(t, db)

	first := &domain.Recipe{AuthorID: author.ID, Name: "Борщ", CookingTime: 90}
	assert.NoError(t, repo.Create(context.Background(), first))

	second := &domain.Recipe{AuthorID: author.ID, Name: "Борщ", CookingTime: 60}
	assert.ErrorIs(t, repo.Create(context.Background(), second), ErrRecipeNameTaken)
}

func TestRecipeRepository_Update_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	author := seedAuthor(t, db)

	first := &domain.Recipe{AuthorID: author.ID, Name: "Борщ", CookingTime: 90}
	assert.NoError(t, repo.Create(context.Background(), first))
	second := &domain.Recipe{AuthorID: author.ID, Name: "Окрошка", CookingTime: 20}
	assert.NoError(t, repo.Create(context.Background(), second))

	second.Name = "Борщ"
	assert.ErrorIs(t, repo.Update(context.Background(), second), ErrRecipeNameTaken)
}

// A duplicate line item trips the (recipe_id, ingredient_id) index, not
// the name index; the conflict must not be reported as a taken name and
// the whole transaction rolls back.
func TestRecipeRepository_Create_DuplicateLineItemRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	author := seedAuthor(t, db)

	flour := &domain.Ingredient{Name: "Мука", MeasurementUnit: "г"}
	assert.NoError(t, db.Create(flour).Error)

	recipe := &domain.Recipe{
		AuthorID:    author.ID,
		Name:        "Блины",
		CookingTime: 30,
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: flour.ID, Amount: 200},
			{IngredientID: flour.ID, Amount: 300},
		},
	}

	err := repo.Create(context.Background(), recipe)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRecipeNameTaken)

	exists, err := repo.Exists(context.Background(), recipe.ID)
	assert.NoError(t, err)
	assert.False(t, exists)
}

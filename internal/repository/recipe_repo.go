package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// RecipeFilter narrows List. UserID is the requesting identity; 0
// means anonymous, for whom membership filters match nothing.
type RecipeFilter struct {
	AuthorID         *int64
	TagSlugs         []string
	IsFavorited      *bool
	IsInShoppingCart *bool
	UserID           int64
	Limit            int
	Offset           int
}

type RecipeRepository interface {
	// Create persists the recipe together with its line items and tag
	// links in one transaction; nothing is written if any row fails.
	Create(ctx context.Context, recipe *domain.Recipe) error
	// Update replaces fields, tags and line items wholesale, atomically.
	Update(ctx context.Context, recipe *domain.Recipe) error
	// Delete removes the recipe and cascades its line items and tag
	// links. The ingredient and tag catalogs are never touched.
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter RecipeFilter) ([]domain.Recipe, int64, error)
	// ListLineItems collects every line item of the given recipes with
	// ingredients preloaded; this is the aggregator's read path.
	ListLineItems(ctx context.Context, recipeIDs []int64) ([]domain.RecipeIngredient, error)
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	tags := recipe.Tags
	items := recipe.Ingredients
	recipe.Tags = nil
	recipe.Ingredients = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return r.writeAssociations(tx, recipe.ID, tags, items)
	})
	if isDuplicateKeyOn(err, "idx_recipe_name", "recipes.name") {
		return ErrRecipeNameTaken
	}
	if err != nil {
		return err
	}

	recipe.Tags = tags
	recipe.Ingredients = items
	return nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	tags := recipe.Tags
	items := recipe.Ingredients

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]any{
				"name":         recipe.Name,
				"image":        recipe.Image,
				"text":         recipe.Text,
				"cooking_time": recipe.CookingTime,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipe.ID).Error; err != nil {
			return err
		}

		return r.writeAssociations(tx, recipe.ID, tags, items)
	})
	if isDuplicateKeyOn(err, "idx_recipe_name", "recipes.name") {
		return ErrRecipeNameTaken
	}
	return err
}

// writeAssociations inserts tag links and line items for a recipe that
// already exists in the transaction. Tag rows are linked, never
// created: the catalog belongs to the administrator.
func (r *recipeRepository) writeAssociations(tx *gorm.DB, recipeID int64, tags []domain.Tag, items []domain.RecipeIngredient) error {
	for _, tag := range tags {
		err := tx.Exec(
			"INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)",
			recipeID, tag.ID,
		).Error
		if err != nil {
			return err
		}
	}

	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].RecipeID = recipeID
	}
	return tx.Create(&items).Error
}

func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.FavoriteRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.ShoppingCartRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Recipe{}, id).Error
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.preloaded(r.db.WithContext(ctx)).First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter) ([]domain.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Recipe{})

	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.Where(
			"recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)",
			filter.TagSlugs,
		)
	}
	query = membershipFilter(query, "favorite_recipes", filter.IsFavorited, filter.UserID)
	query = membershipFilter(query, "shopping_cart_recipes", filter.IsInShoppingCart, filter.UserID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.preloaded(query).Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var recipes []domain.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// membershipFilter restricts the recipe query by presence in a
// membership table. An anonymous user (userID 0) owns no rows, so
// want=true matches nothing and want=false matches everything — the
// same behavior the filters expose for unauthenticated reads.
func membershipFilter(query *gorm.DB, table string, want *bool, userID int64) *gorm.DB {
	if want == nil {
		return query
	}
	sub := "SELECT recipe_id FROM " + table + " WHERE user_id = ?"
	if *want {
		return query.Where("recipes.id IN ("+sub+")", userID)
	}
	return query.Where("recipes.id NOT IN ("+sub+")", userID)
}

// preloaded attaches the associations every read path serializes.
// Line items come back in ingredient-id order so a recipe reads the
// same way every time.
func (r *recipeRepository) preloaded(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredient_id ASC")
		}).
		Preload("Ingredients.Ingredient")
}

func (r *recipeRepository) ListLineItems(ctx context.Context, recipeIDs []int64) ([]domain.RecipeIngredient, error) {
	var items []domain.RecipeIngredient
	if len(recipeIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", recipeIDs).
		Preload("Ingredient").
		Find(&items).Error
	return items, err
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipes []domain.Recipe
	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

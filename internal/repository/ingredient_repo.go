package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

type IngredientRepository interface {
	// List returns the catalog, optionally narrowed to names starting
	// with namePrefix (for autocomplete).
	List(ctx context.Context, namePrefix string, limit int) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
	// BulkCreate inserts fixture records in one batch. Input rows that
	// collide on (name, measurement_unit) with each other or with the
	// catalog are rejected by the unique index — this is a data-quality
	// gate at provisioning time, not a merge point.
	BulkCreate(ctx context.Context, ingredients []domain.Ingredient) error
}

type ingredientRepository struct {
	db              *gorm.DB
	caseInsensitive bool
}

func NewIngredientRepository(db *gorm.DB, caseInsensitive bool) IngredientRepository {
	return &ingredientRepository{db: db, caseInsensitive: caseInsensitive}
}

func (r *ingredientRepository) List(ctx context.Context, namePrefix string, limit int) ([]domain.Ingredient, error) {
	query := r.db.WithContext(ctx).Model(&domain.Ingredient{})

	if namePrefix != "" {
		if r.caseInsensitive {
			// LOWER() works the same on postgres and sqlite; ILIKE does not exist on sqlite.
			query = query.Where("LOWER(name) LIKE LOWER(?)", namePrefix+"%")
		} else {
			query = query.Where("name LIKE ?", namePrefix+"%")
		}
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ingredients []domain.Ingredient
	err := query.Order("name ASC, measurement_unit ASC").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) BulkCreate(ctx context.Context, ingredients []domain.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ingredients).Error
}

package domain

import "time"

// Ingredient is a canonical (name, measurement unit) pair. Rows are
// loaded in bulk at provisioning time and never edited by end users;
// the unique index rejects duplicate fixture entries instead of
// merging them (merging happens only at cart aggregation).
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"not null;uniqueIndex:idx_ingredient_name_unit"`
	MeasurementUnit string `json:"measurement_unit" gorm:"not null;uniqueIndex:idx_ingredient_name_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }

type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null;uniqueIndex"`
	Color string `json:"color" gorm:"not null;uniqueIndex"`
	Slug  string `json:"slug" gorm:"not null;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }

type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex:idx_recipe_name"`
	Image       string    `json:"image"`
	Text        string    `json:"text"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient is one line item of a recipe. The unique index on
// (recipe_id, ingredient_id) enforces "each ingredient at most once
// per recipe" at the storage layer, not just in validation.
type RecipeIngredient struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       int64 `json:"amount" gorm:"not null"`

	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

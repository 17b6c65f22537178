package domain

import "time"

// FavoriteRecipe links a user to a favorited recipe. The set is
// materialized lazily: a user's favorites exist as rows, nothing is
// pre-created. The unique index serializes concurrent duplicate adds.
type FavoriteRecipe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
}

func (FavoriteRecipe) TableName() string { return "favorite_recipes" }

// ShoppingCartRecipe is structurally identical to FavoriteRecipe but a
// semantically distinct set: a recipe may be in both, either or neither.
type ShoppingCartRecipe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
}

func (ShoppingCartRecipe) TableName() string { return "shopping_cart_recipes" }

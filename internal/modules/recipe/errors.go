package recipe

import "errors"

var (
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrTagNotFound         = errors.New("tag not found")
	ErrDuplicateIngredient = errors.New("ingredients have to be unique")
	ErrDuplicateTag        = errors.New("tags have to be unique")
	ErrNotAuthor           = errors.New("only the author can modify a recipe")
	ErrValidation          = errors.New("validation error")
)

package favorite

import "errors"

var (
	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrNotFavorited     = errors.New("recipe not in favorites")
	ErrRecipeNotFound   = errors.New("recipe not found")
)

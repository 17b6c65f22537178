package cart

import "errors"

var (
	ErrAlreadyInCart  = errors.New("recipe already in shopping cart")
	ErrNotInCart      = errors.New("recipe not in shopping cart")
	ErrRecipeNotFound = errors.New("recipe not found")
)

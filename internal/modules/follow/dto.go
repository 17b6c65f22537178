package follow

import (
	"time"

	"foodgram/internal/domain"
)

// RecipeShort is the bounded preview of a followed user's recipe.
type RecipeShort struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type FollowedUser struct {
	ID           int64         `json:"id"`
	Email        string        `json:"email"`
	Username     string        `json:"username"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
	FollowedAt   time.Time     `json:"followed_at"`
}

type SubscriptionListResponse struct {
	Subscriptions []FollowedUser `json:"subscriptions"`
	Total         int64          `json:"total"`
	Page          int            `json:"page"`
	PerPage       int            `json:"per_page"`
}

func toRecipeShorts(recipes []domain.Recipe) []RecipeShort {
	shorts := make([]RecipeShort, 0, len(recipes))
	for _, r := range recipes {
		shorts = append(shorts, RecipeShort{
			ID:          r.ID,
			Name:        r.Name,
			Image:       r.Image,
			CookingTime: r.CookingTime,
		})
	}
	return shorts
}

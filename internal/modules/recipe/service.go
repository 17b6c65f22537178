package recipe

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

// RecipeView is a recipe read through a requesting identity's eyes.
type RecipeView struct {
	Recipe         *domain.Recipe
	IsFavorited    bool
	InShoppingCart bool
}

type Service struct {
	recipes     RecipeRepository
	ingredients IngredientCatalog
	tags        TagCatalog
	favorites   MembershipChecker
	cart        MembershipChecker
}

func NewService(
	recipes RecipeRepository,
	ingredients IngredientCatalog,
	tags TagCatalog,
	favorites MembershipChecker,
	cart MembershipChecker,
) *Service {
	return &Service{
		recipes:     recipes,
		ingredients: ingredients,
		tags:        tags,
		favorites:   favorites,
		cart:        cart,
	}
}

// Create validates the full submission before any write: the whole
// mutation is rejected if a single line item or tag fails.
func (s *Service) Create(ctx context.Context, authorID int64, req RecipeRequest) (*RecipeView, error) {
	tags, items, err := s.resolveAssociations(ctx, req)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Tags:        tags,
		Ingredients: items,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return s.Get(ctx, authorID, recipe.ID)
}

// Update replaces the recipe wholesale. Only the author may mutate.
func (s *Service) Update(ctx context.Context, userID, recipeID int64, req RecipeRequest) (*RecipeView, error) {
	existing, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	tags, items, err := s.resolveAssociations(ctx, req)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		ID:          recipeID,
		AuthorID:    existing.AuthorID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Tags:        tags,
		Ingredients: items,
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, recipeID)
}

// Delete removes the author's recipe; line items and membership rows
// cascade, the ingredient and tag catalogs stay untouched.
func (s *Service) Delete(ctx context.Context, userID, recipeID int64) error {
	existing, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.recipes.Delete(ctx, recipeID)
}

func (s *Service) Get(ctx context.Context, userID, recipeID int64) (*RecipeView, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	views, err := s.withFlags(ctx, userID, []domain.Recipe{*recipe})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) List(ctx context.Context, userID int64, filter repository.RecipeFilter) ([]RecipeView, int64, error) {
	filter.UserID = userID
	recipes, total, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	views, err := s.withFlags(ctx, userID, recipes)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *Service) getRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// resolveAssociations checks the submitted tag and line-item sets and
// materializes them against the catalogs. Duplicate ids and unknown
// references reject the whole request before anything is written.
func (s *Service) resolveAssociations(ctx context.Context, req RecipeRequest) ([]domain.Tag, []domain.RecipeIngredient, error) {
	seenTags := make(map[int64]struct{}, len(req.Tags))
	for _, id := range req.Tags {
		if _, dup := seenTags[id]; dup {
			return nil, nil, ErrDuplicateTag
		}
		seenTags[id] = struct{}{}
	}

	seenIngredients := make(map[int64]struct{}, len(req.Ingredients))
	for _, item := range req.Ingredients {
		if _, dup := seenIngredients[item.ID]; dup {
			return nil, nil, ErrDuplicateIngredient
		}
		seenIngredients[item.ID] = struct{}{}
		if item.Amount < 1 {
			return nil, nil, ErrValidation
		}
	}
	if req.CookingTime < 1 {
		return nil, nil, ErrValidation
	}

	tags, err := s.tags.GetByIDs(ctx, req.Tags)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(req.Tags) {
		return nil, nil, ErrTagNotFound
	}

	ingredientIDs := make([]int64, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		ingredientIDs = append(ingredientIDs, item.ID)
	}
	known, err := s.ingredients.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(known) != len(ingredientIDs) {
		return nil, nil, ErrIngredientNotFound
	}

	items := make([]domain.RecipeIngredient, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		items = append(items, domain.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return tags, items, nil
}

func (s *Service) withFlags(ctx context.Context, userID int64, recipes []domain.Recipe) ([]RecipeView, error) {
	ids := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}

	favorited, err := s.favorites.ContainsMany(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := s.cart.ContainsMany(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, RecipeView{
			Recipe:         &recipes[i],
			IsFavorited:    favorited[recipes[i].ID],
			InShoppingCart: inCart[recipes[i].ID],
		})
	}
	return views, nil
}

package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Add(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockCartRepository) Contains(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockLineItemSource struct {
	mock.Mock
}

func (m *MockLineItemSource) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLineItemSource) ListLineItems(ctx context.Context, recipeIDs []int64) ([]domain.RecipeIngredient, error) {
	args := m.Called(ctx, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecipeIngredient), args.Error(1)
}

func lineItem(recipeID int64, name, unit string, amount int64) domain.RecipeIngredient {
	return domain.RecipeIngredient{
		RecipeID: recipeID,
		Amount:   amount,
		Ingredient: &domain.Ingredient{
			Name:            name,
			MeasurementUnit: unit,
		},
	}
}

func TestService_Aggregate_MergesByNameAndUnit(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	// Recipe 1 and 2 both use flour; recipe 2 adds sugar.
	mockCart.On("RecipeIDs", mock.Anything, int64(7)).Return([]int64{1, 2}, nil)
	mockRecipes.On("ListLineItems", mock.Anything, []int64{1, 2}).Return([]domain.RecipeIngredient{
		lineItem(1, "Мука", "г", 200),
		lineItem(2, "Мука", "г", 300),
		lineItem(2, "Сахар", "г", 50),
	}, nil)

	svc := NewService(mockCart, mockRecipes)
	items, err := svc.Aggregate(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []Item{
		{Name: "Мука", Amount: 500, MeasurementUnit: "г"},
		{Name: "Сахар", Amount: 50, MeasurementUnit: "г"},
	}, items)
}

func TestService_Aggregate_SameNameDifferentUnitStaysSeparate(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	mockCart.On("RecipeIDs", mock.Anything, int64(7)).Return([]int64{1, 2}, nil)
	mockRecipes.On("ListLineItems", mock.Anything, []int64{1, 2}).Return([]domain.RecipeIngredient{
		lineItem(1, "Молоко", "мл", 250),
		lineItem(2, "Молоко", "г", 100),
	}, nil)

	svc := NewService(mockCart, mockRecipes)
	items, err := svc.Aggregate(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []Item{
		{Name: "Молоко", Amount: 100, MeasurementUnit: "г"},
		{Name: "Молоко", Amount: 250, MeasurementUnit: "мл"},
	}, items)
}

// Distinct catalog rows that happen to share name and unit merge into
// one group: grouping is by value, not ingredient identity.
func TestService_Aggregate_DuplicateCatalogEntriesMerge(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	first := domain.RecipeIngredient{
		RecipeID:     1,
		IngredientID: 10,
		Amount:       2,
		Ingredient:   &domain.Ingredient{ID: 10, Name: "Соль", MeasurementUnit: "г"},
	}
	second := domain.RecipeIngredient{
		RecipeID:     2,
		IngredientID: 11,
		Amount:       3,
		Ingredient:   &domain.Ingredient{ID: 11, Name: "Соль", MeasurementUnit: "г"},
	}

	mockCart.On("RecipeIDs", mock.Anything, int64(7)).Return([]int64{1, 2}, nil)
	mockRecipes.On("ListLineItems", mock.Anything, []int64{1, 2}).Return(
		[]domain.RecipeIngredient{first, second}, nil)

	svc := NewService(mockCart, mockRecipes)
	items, err := svc.Aggregate(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []Item{{Name: "Соль", Amount: 5, MeasurementUnit: "г"}}, items)
}

func TestService_Aggregate_ConservesTotals(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	lineItems := []domain.RecipeIngredient{
		lineItem(1, "Рис", "г", 100),
		lineItem(2, "Рис", "г", 250),
		lineItem(3, "Рис", "г", 400),
		lineItem(1, "Курица", "г", 500),
		lineItem(3, "Курица", "г", 300),
	}

	mockCart.On("RecipeIDs", mock.Anything, int64(7)).Return([]int64{1, 2, 3}, nil)
	mockRecipes.On("ListLineItems", mock.Anything, []int64{1, 2, 3}).Return(lineItems, nil)

	svc := NewService(mockCart, mockRecipes)
	items, err := svc.Aggregate(context.Background(), 7)
	assert.NoError(t, err)

	var input, output int64
	for _, li := range lineItems {
		input += li.Amount
	}
	for _, item := range items {
		output += item.Amount
	}
	assert.Equal(t, input, output)
}

func TestService_Aggregate_DeterministicOrdering(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	mockCart.On("RecipeIDs", mock.Anything, int64(7)).Return([]int64{1}, nil)
	mockRecipes.On("ListLineItems", mock.Anything, []int64{1}).Return([]domain.RecipeIngredient{
		lineItem(1, "Укроп", "г", 10),
		lineItem(1, "Вода", "мл", 500),
		lineItem(1, "Картофель", "шт.", 4),
	}, nil)

	svc := NewService(mockCart, mockRecipes)

	first, err := svc.Aggregate(context.Background(), 7)
	assert.NoError(t, err)

	// Map iteration order is random; repeated calls must still agree.
	for i := 0; i < 10; i++ {
		again, err := svc.Aggregate(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}

	assert.Equal(t, "Вода", first[0].Name)
	assert.Equal(t, "Картофель", first[1].Name)
	assert.Equal(t, "Укроп", first[2].Name)
}

func TestService_Aggregate_EmptyCart(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	mockCart.On("RecipeIDs", mock.Anything, int64(7)).Return([]int64{}, nil)

	svc := NewService(mockCart, mockRecipes)
	items, err := svc.Aggregate(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, items)
	mockRecipes.AssertNotCalled(t, "ListLineItems", mock.Anything, mock.Anything)
}

func TestService_Add_RecipeNotFound(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	mockRecipes.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	svc := NewService(mockCart, mockRecipes)
	err := svc.Add(context.Background(), 7, 99)

	assert.ErrorIs(t, err, ErrRecipeNotFound)
	mockCart.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Add_Duplicate(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	mockRecipes.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	mockCart.On("Add", mock.Anything, int64(7), int64(5)).Return(repository.ErrAlreadyMember)

	svc := NewService(mockCart, mockRecipes)
	err := svc.Add(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrAlreadyInCart)
}

func TestService_Remove_NotMember(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockRecipes := new(MockLineItemSource)

	mockRecipes.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	mockCart.On("Remove", mock.Anything, int64(7), int64(5)).Return(repository.ErrNotMember)

	svc := NewService(mockCart, mockRecipes)
	err := svc.Remove(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrNotInCart)
}

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShoppingList_Empty(t *testing.T) {
	data, err := ShoppingList(nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestShoppingList_CyrillicRows(t *testing.T) {
	data, err := ShoppingList([]Row{
		{Name: "Мука пшеничная", Amount: 500, MeasurementUnit: "г"},
		{Name: "Яйца куриные", Amount: 3, MeasurementUnit: "шт."},
	})

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
	// A table of two rows must produce more content than the empty
	// placeholder document.
	empty, err := ShoppingList(nil)
	assert.NoError(t, err)
	assert.Greater(t, len(data), len(empty))
}

func TestShoppingList_ManyRows(t *testing.T) {
	rows := make([]Row, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, Row{Name: "Ингредиент", Amount: int64(i + 1), MeasurementUnit: "г"})
	}

	data, err := ShoppingList(rows)

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

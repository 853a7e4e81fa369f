package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByIngredientCaseInsensitive(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "Salad", Ingredients: []Ingredient{{Name: "Tomato", Quantity: "2"}}},
		{ID: "r2", Title: "Soup", Ingredients: []Ingredient{{Name: "tomato", Quantity: "500g"}}},
	}

	groups := GroupByIngredient(recipes)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "Tomato", g.Name, "first-seen casing wins")
	assert.Equal(t, []string{"2", "500g"}, g.Quantities)
	assert.Equal(t, []string{"Salad", "Soup"}, g.Recipes)
}

func TestGroupByIngredientQuantitiesExact(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{{Name: "Milk", Quantity: "1 cup"}}},
		{ID: "r2", Title: "B", Ingredients: []Ingredient{{Name: "milk", Quantity: "1 Cup"}}},
		{ID: "r3", Title: "C", Ingredients: []Ingredient{{Name: "Milk", Quantity: "1 cup"}}},
	}

	groups := GroupByIngredient(recipes)
	require.Len(t, groups, 1)

	// Names fold case, quantity strings do not.
	assert.Equal(t, []string{"1 cup", "1 Cup"}, groups[0].Quantities)
	assert.Equal(t, []string{"A", "B", "C"}, groups[0].Recipes)
}

func TestGroupByIngredientDedupesTitles(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "Double", Ingredients: []Ingredient{
			{Name: "Salt"},
			{Name: "salt", Quantity: "a pinch"},
		}},
	}

	groups := GroupByIngredient(recipes)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"Double"}, groups[0].Recipes)
	assert.Equal(t, []string{"a pinch"}, groups[0].Quantities)
}

func TestGroupByIngredientSorted(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{
			{Name: "zucchini"},
			{Name: "Apple"},
			{Name: "banana"},
		}},
	}

	groups := GroupByIngredient(recipes)
	require.Len(t, groups, 3)
	assert.Equal(t, "Apple", groups[0].Name)
	assert.Equal(t, "banana", groups[1].Name)
	assert.Equal(t, "zucchini", groups[2].Name)
}

func TestGroupByIngredientSkipsEmptyNames(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{
			{Name: "  "},
			{Name: "Egg", Quantity: "2"},
			{Name: ""},
		}},
	}

	groups := GroupByIngredient(recipes)
	require.Len(t, groups, 1)
	assert.Equal(t, "Egg", groups[0].Name)
}

func TestGroupByIngredientTrimsKey(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{{Name: " Basil ", Quantity: "1 bunch"}}},
		{ID: "r2", Title: "B", Ingredients: []Ingredient{{Name: "basil"}}},
	}

	groups := GroupByIngredient(recipes)
	require.Len(t, groups, 1)
	assert.Equal(t, "Basil", groups[0].Name)
	assert.Equal(t, []string{"A", "B"}, groups[0].Recipes)
}

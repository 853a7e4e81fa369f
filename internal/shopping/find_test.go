package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindIngredients(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "French Toast", Ingredients: []Ingredient{
			{Name: "Crème fraîche", Quantity: "100g"},
			{Name: "Bread"},
		}},
		{ID: "r2", Title: "Tacos", Ingredients: []Ingredient{
			{Name: "Jalapeño", Quantity: "2"},
		}},
	}

	got := FindIngredients(recipes, "creme")
	require.Len(t, got, 1)
	assert.Equal(t, "Crème fraîche", got[0].Name)
	assert.Equal(t, []string{"French Toast"}, got[0].Recipes)

	got = FindIngredients(recipes, "jalapeno")
	require.Len(t, got, 1)
	assert.Equal(t, "Jalapeño", got[0].Name)

	assert.Empty(t, FindIngredients(recipes, "chocolate"))
	assert.Empty(t, FindIngredients(recipes, "   "))
}

func TestFindIngredientsFuzzy(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{{Name: "Ground Cinnamon"}}},
	}

	// Subsequence matching, not substring.
	got := FindIngredients(recipes, "gcinn")
	require.Len(t, got, 1)
	assert.Equal(t, "Ground Cinnamon", got[0].Name)
}

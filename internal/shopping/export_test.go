package shopping

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRecipeMode(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{{Name: "Egg", Quantity: "2"}}},
	}

	got := Serialize(recipes, GroupByRecipeMode)
	assert.Contains(t, got, "A\n")
	assert.Contains(t, got, "- Egg (2)\n")
}

func TestSerializeRecipeModeMultiple(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{{Name: "Egg", Quantity: "2"}, {Name: "Flour"}}},
		{ID: "r2", Title: "B", Ingredients: []Ingredient{{Name: "Sugar", Quantity: "1 cup"}}},
	}

	got := Serialize(recipes, GroupByRecipeMode)
	want := "A\n- Egg (2)\n- Flour\n\nB\n- Sugar (1 cup)\n"
	assert.Equal(t, want, got)
}

func TestSerializeIngredientMode(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{{Name: "Egg", Quantity: "2"}}},
	}

	got := Serialize(recipes, GroupByIngredientMode)
	assert.Equal(t, "- Egg (2)\n  Used in: A\n", got)
}

func TestSerializeIngredientModeMerged(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "Cake", Ingredients: []Ingredient{{Name: "Egg", Quantity: "2"}}},
		{ID: "r2", Title: "Omelette", Ingredients: []Ingredient{{Name: "egg", Quantity: "3"}}},
		{ID: "r3", Title: "Untitled", Ingredients: []Ingredient{{Name: "Water"}}},
	}

	got := Serialize(recipes, GroupByIngredientMode)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "- Egg (2, 3)", lines[0])
	assert.Equal(t, "  Used in: Cake, Omelette", lines[1])
	// No quantities -> no parens.
	assert.Equal(t, "- Water", lines[2])
}

func TestFilename(t *testing.T) {
	day := time.Date(2025, 1, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "shopping-list-2025-01-31.txt", Filename(day))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	recipes := []Recipe{
		{ID: "r1", Title: "A", Ingredients: []Ingredient{{Name: "Egg", Quantity: "2"}}},
	}

	path, err := WriteFile(dir, recipes, GroupByRecipeMode)
	require.NoError(t, err)
	assert.Equal(t, Filename(time.Now()), strings.TrimPrefix(path, dir+string(os.PathSeparator)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Serialize(recipes, GroupByRecipeMode), string(data))
}

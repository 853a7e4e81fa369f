package shopping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// GroupMode selects the layout of the exported text.
type GroupMode string

const (
	// GroupByRecipeMode lists each recipe with its own ingredients.
	GroupByRecipeMode GroupMode = "recipe"
	// GroupByIngredientMode merges ingredients across recipes.
	GroupByIngredientMode GroupMode = "ingredient"
)

// Serialize renders the shopping list as plain text in the given mode.
func Serialize(recipes []Recipe, mode GroupMode) string {
	var b strings.Builder

	switch mode {
	case GroupByIngredientMode:
		for _, g := range GroupByIngredient(recipes) {
			b.WriteString("- " + g.Name)
			if len(g.Quantities) > 0 {
				b.WriteString(" (" + strings.Join(g.Quantities, ", ") + ")")
			}
			b.WriteString("\n")
			if len(g.Recipes) > 0 {
				b.WriteString("  Used in: " + strings.Join(g.Recipes, ", ") + "\n")
			}
		}
	default:
		for i, recipe := range recipes {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(recipe.Title + "\n")
			for _, ing := range recipe.Ingredients {
				if ing.Quantity != "" {
					fmt.Fprintf(&b, "- %s (%s)\n", ing.Name, ing.Quantity)
				} else {
					fmt.Fprintf(&b, "- %s\n", ing.Name)
				}
			}
		}
	}

	return b.String()
}

// Filename returns the export file name for the given day, e.g.
// shopping-list-2025-01-31.txt.
func Filename(t time.Time) string {
	return fmt.Sprintf("shopping-list-%s.txt", t.Format("2006-01-02"))
}

// WriteFile serializes the list and writes it into dir under the
// date-stamped name. It returns the full path of the written file.
func WriteFile(dir string, recipes []Recipe, mode GroupMode) (string, error) {
	path := filepath.Join(dir, Filename(time.Now()))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(Serialize(recipes, mode)); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// CopyToClipboard puts the serialized list on the system clipboard.
// This is the share path for the CLI; a failure here is the only
// export error surfaced to the user.
func CopyToClipboard(recipes []Recipe, mode GroupMode) error {
	if err := clipboard.WriteAll(Serialize(recipes, mode)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

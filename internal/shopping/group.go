package shopping

import (
	"sort"
	"strings"
)

// GroupedIngredient is the derived view of one ingredient across every
// recipe in the list. It is recomputed on demand and never persisted.
type GroupedIngredient struct {
	// Name keeps the casing of the first occurrence.
	Name string
	// Quantities holds the distinct quantity strings, in first-seen
	// order. Comparison is exact: "1 cup" and "1 Cup" stay separate.
	Quantities []string
	// Recipes holds the distinct titles of the contributing recipes.
	Recipes []string
}

// GroupByIngredient merges the ingredients of all recipes, keyed by
// the lowercased, trimmed name. Groups come back sorted by display
// name, case-insensitively.
func GroupByIngredient(recipes []Recipe) []GroupedIngredient {
	groups := make(map[string]*GroupedIngredient)
	var keys []string

	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			key := strings.ToLower(strings.TrimSpace(ing.Name))
			if key == "" {
				continue
			}

			g, ok := groups[key]
			if !ok {
				g = &GroupedIngredient{Name: strings.TrimSpace(ing.Name)}
				groups[key] = g
				keys = append(keys, key)
			}

			if q := ing.Quantity; q != "" && !contains(g.Quantities, q) {
				g.Quantities = append(g.Quantities, q)
			}
			if t := recipe.Title; t != "" && !contains(g.Recipes, t) {
				g.Recipes = append(g.Recipes, t)
			}
		}
	}

	out := make([]GroupedIngredient, 0, len(keys))
	for _, key := range keys {
		out = append(out, *groups[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

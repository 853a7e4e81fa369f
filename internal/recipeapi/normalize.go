package recipeapi

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// The API is served by several backend revisions that disagree on field
// names (title vs name, dish_image_url vs dishImage, ...). Each logical
// field therefore has an ordered candidate list, resolved by a single
// first-present-non-empty rule so the fallback policy lives in one place.

// pickString returns the first candidate key whose value is a non-empty
// string. Numeric values are rendered as text so "servings": 4 and
// "servings": "4" resolve the same way.
func pickString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return formatNumber(v)
		}
	}
	return ""
}

// pickInt returns the first candidate key holding a number, or fallback.
func pickInt(obj map[string]any, fallback int, keys ...string) int {
	for _, key := range keys {
		if v, ok := obj[key].(float64); ok {
			return int(v)
		}
	}
	return fallback
}

// pickList returns the first candidate key holding an array of objects.
func pickList(obj map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		items, ok := obj[key].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NormalizeSummary maps a raw listing payload onto the canonical Recipe
// record. Missing fields never error; they resolve to defined defaults.
func NormalizeSummary(obj map[string]any) Recipe {
	id := pickString(obj, "id", "_id")
	if id == "" {
		id = uuid.NewString()
	}

	title := pickString(obj, "title", "name")
	if title == "" {
		title = "Untitled Recipe"
	}

	return Recipe{
		ID:                 id,
		Title:              title,
		Description:        pickString(obj, "description"),
		Image:              pickString(obj, "dish_image_url", "dishImage", "image"),
		TotalTime:          pickString(obj, "total_time", "totalTime"),
		Servings:           pickString(obj, "servings"),
		Difficulty:         pickString(obj, "difficulty"),
		CaloriesPerServing: pickString(obj, "calories_per_serving", "caloriesPerServing"),
	}
}

// NormalizeDetail maps a raw recipe-detail payload onto RecipeDetail,
// resolving relative image paths against the API base URL.
func NormalizeDetail(obj map[string]any, baseURL string) RecipeDetail {
	detail := RecipeDetail{
		Recipe:   NormalizeSummary(obj),
		Subtitle: pickString(obj, "subtitle"),
		PrepTime: pickString(obj, "prep_time", "prepTime"),
		CookTime: pickString(obj, "cook_time", "cookTime"),
	}
	detail.Image = ResolveImageURL(baseURL, detail.Image)

	if tags, ok := obj["tags"].([]any); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok && s != "" {
				detail.Tags = append(detail.Tags, s)
			}
		}
	}

	for _, raw := range pickList(obj, "ingredients") {
		detail.Ingredients = append(detail.Ingredients, Ingredient{
			ID:       pickString(raw, "id", "_id"),
			Name:     pickString(raw, "name"),
			Image:    ResolveImageURL(baseURL, pickString(raw, "image_url", "image")),
			Quantity: pickString(raw, "quantity"),
		})
	}

	for i, raw := range pickList(obj, "cooking_steps", "cookingSteps", "steps") {
		detail.CookingSteps = append(detail.CookingSteps, Step{
			StepNumber:  pickInt(raw, i+1, "step_number", "stepNumber"),
			Instruction: pickString(raw, "instruction", "text", "description"),
			Image:       ResolveImageURL(baseURL, pickString(raw, "image_url", "step_image", "image")),
		})
	}

	return detail
}

// ResolveImageURL turns an image path into an absolute URL. Paths that
// already carry an http(s) scheme are kept as-is; anything else is
// joined to the base URL with exactly one separator.
func ResolveImageURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return baseURL + path
	}
	return baseURL + "/" + path
}

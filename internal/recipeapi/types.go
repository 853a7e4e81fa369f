package recipeapi

import "errors"

// ErrNotFound is returned when the API answers 404 for a recipe.
var ErrNotFound = errors.New("recipe not found")

// Recipe is the canonical listing record produced by the normalizer.
// Every field is defined; optional fields missing from the payload
// resolve to the empty string.
type Recipe struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`

	// Display metadata, present on some payloads only.
	TotalTime          string `json:"total_time,omitempty"`
	Servings           string `json:"servings,omitempty"`
	Difficulty         string `json:"difficulty,omitempty"`
	CaloriesPerServing string `json:"calories_per_serving,omitempty"`
}

// RecipeDetail is the full per-recipe record.
type RecipeDetail struct {
	Recipe

	Subtitle     string       `json:"subtitle,omitempty"`
	PrepTime     string       `json:"prep_time,omitempty"`
	CookTime     string       `json:"cook_time,omitempty"`
	Tags         []string     `json:"tags"`
	Ingredients  []Ingredient `json:"ingredients"`
	CookingSteps []Step       `json:"cooking_steps"`
}

// Ingredient as it appears on a recipe detail. Name is the join key
// used by the shopping-list aggregation.
type Ingredient struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Quantity string `json:"quantity,omitempty"`
}

// Step is a single cooking instruction.
type Step struct {
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
	Image       string `json:"image,omitempty"`
}

// searchRequest is the body of POST /search-recipes.
type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// searchResponse carries the ranked recipe identifiers.
type searchResponse struct {
	RecipeIDs []string `json:"recipe_ids"`
}

package recipeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListRecipes fetches a page of recipe summaries from GET /recipes.
// The payload may be a bare array or an object wrapping the array in a
// "recipes" or "data" property; any other shape is treated as an empty
// page rather than an error.
func (c *Client) ListRecipes(ctx context.Context, limit, offset int) ([]Recipe, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	raw, err := c.do(ctx, http.MethodGet, "/recipes", params, nil)
	if err != nil {
		return nil, err
	}

	objects := decodeRecipeList(raw)
	recipes := make([]Recipe, 0, len(objects))
	for _, obj := range objects {
		recipes = append(recipes, NormalizeSummary(obj))
	}
	return recipes, nil
}

// SearchRecipes posts a free-text query and returns the recipe
// identifiers in relevance order.
func (c *Client) SearchRecipes(ctx context.Context, query string, topK int) ([]string, error) {
	body := searchRequest{Query: query, TopK: topK}
	raw, err := c.do(ctx, http.MethodPost, "/search-recipes", nil, body)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return resp.RecipeIDs, nil
}

// GetRecipe fetches and normalizes a single recipe from GET /recipe/{id}.
func (c *Client) GetRecipe(ctx context.Context, id string) (*RecipeDetail, error) {
	raw, err := c.do(ctx, http.MethodGet, "/recipe/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode recipe %s: %w", id, err)
	}

	detail := NormalizeDetail(obj, c.baseURL)
	return &detail, nil
}

// decodeRecipeList handles the listing payload shapes: a bare array,
// or an object carrying the array under "recipes" or "data". Anything
// else decodes to an empty list.
func decodeRecipeList(raw json.RawMessage) []map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var wrapper struct {
		Recipes json.RawMessage `json:"recipes"`
		Data    json.RawMessage `json:"data"`
	}
	if json.Unmarshal(raw, &wrapper) == nil {
		if len(wrapper.Recipes) > 0 && json.Unmarshal(wrapper.Recipes, &list) == nil {
			return list
		}
		if len(wrapper.Data) > 0 && json.Unmarshal(wrapper.Data, &list) == nil {
			return list
		}
	}
	return nil
}

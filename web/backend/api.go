// Package backend implements the JSON handlers of the local web UI.
// They expose the same flows as the CLI: listing, search, recipe
// detail, and the shopping list.
package backend

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/JavierMedel/culinairy-webapp/internal/catalog"
	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
	"github.com/JavierMedel/culinairy-webapp/internal/shopping"
)

// RecipeAPI holds the handlers' shared dependencies.
type RecipeAPI struct {
	client   *recipeapi.Client
	store    *shopping.Store
	pageSize int
	topK     int
}

// NewRecipeAPI creates the handler set.
func NewRecipeAPI(client *recipeapi.Client, store *shopping.Store, pageSize, topK int) *RecipeAPI {
	return &RecipeAPI{
		client:   client,
		store:    store,
		pageSize: pageSize,
		topK:     topK,
	}
}

type listResponse struct {
	Recipes []recipeapi.Recipe `json:"recipes"`
	HasMore bool               `json:"has_more"`
}

// HandleRecipes serves GET /api/recipes?limit=L&offset=O. Listing
// failures surface as an empty page, never as a server error.
func (api *RecipeAPI) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := api.pageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	recipes, err := api.client.ListRecipes(r.Context(), limit, offset)
	if err != nil {
		log.Printf("list recipes: %v", err)
		recipes = nil
	}
	if recipes == nil {
		recipes = []recipeapi.Recipe{}
	}

	writeJSON(w, listResponse{Recipes: recipes, HasMore: len(recipes) >= limit})
}

// HandleSearch serves POST /api/search with body {"query": "..."}.
func (api *RecipeAPI) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "Empty query", http.StatusBadRequest)
		return
	}

	var results []recipeapi.Recipe
	ids, err := api.client.SearchRecipes(r.Context(), req.Query, api.topK)
	if err != nil {
		log.Printf("search recipes: %v", err)
	} else {
		results = catalog.FetchRanked(r.Context(), api.client, ids)
	}
	if results == nil {
		results = []recipeapi.Recipe{}
	}

	writeJSON(w, listResponse{Recipes: results})
}

// HandleRecipe serves GET /api/recipe/{id}.
func (api *RecipeAPI) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/recipe/")
	if id == "" {
		http.Error(w, "Missing recipe id", http.StatusBadRequest)
		return
	}

	detail, err := api.client.GetRecipe(r.Context(), id)
	if err != nil {
		log.Printf("fetch recipe %s: %v", id, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	writeJSON(w, detail)
}

// HandleShopping serves /api/shopping: GET lists the stored recipes,
// POST adds one by id (the full detail is fetched server-side and its
// ingredient images stripped), DELETE clears the list.
func (api *RecipeAPI) HandleShopping(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, map[string]any{
			"recipes": api.store.Recipes(),
			"count":   api.store.Len(),
		})

	case http.MethodPost:
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		detail, err := api.client.GetRecipe(r.Context(), req.ID)
		if err != nil {
			log.Printf("fetch recipe %s: %v", req.ID, err)
			http.Error(w, "Recipe not found", http.StatusNotFound)
			return
		}
		if err := api.store.Add(shopping.FromDetail(detail)); err != nil {
			log.Printf("add recipe %s: %v", req.ID, err)
			http.Error(w, "Could not save shopping list", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)

	case http.MethodDelete:
		if err := api.store.Clear(); err != nil {
			log.Printf("clear shopping list: %v", err)
			http.Error(w, "Could not save shopping list", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleShoppingItem serves /api/shopping/{id}: GET reports membership,
// DELETE removes the entry.
func (api *RecipeAPI) HandleShoppingItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/shopping/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Missing recipe id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, map[string]bool{"in_list": api.store.Contains(id)})

	case http.MethodDelete:
		if err := api.store.Remove(id); err != nil {
			log.Printf("remove recipe %s: %v", id, err)
			http.Error(w, "Could not save shopping list", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleShoppingExport serves GET /api/shopping/export?group=recipe|ingredient
// as a downloadable plain-text file.
func (api *RecipeAPI) HandleShoppingExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mode := shopping.GroupByRecipeMode
	if r.URL.Query().Get("group") == string(shopping.GroupByIngredientMode) {
		mode = shopping.GroupByIngredientMode
	}

	text := shopping.Serialize(api.store.Recipes(), mode)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+shopping.Filename(time.Now()))
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

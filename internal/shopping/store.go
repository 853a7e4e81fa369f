// Package shopping implements the persisted shopping list and the
// pure aggregation/export helpers over it. The store is the single
// source of truth for the list; everything else only reads it.
package shopping

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
)

// Ingredient is a shopping-list line item. Images are stripped when a
// recipe enters the list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// Recipe is a shopping-list entry, keyed by recipe id.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Ingredients []Ingredient `json:"ingredients"`
}

// FromDetail builds a shopping-list entry from a fetched recipe,
// keeping names and quantities only.
func FromDetail(detail *recipeapi.RecipeDetail) Recipe {
	r := Recipe{ID: detail.ID, Title: detail.Title}
	for _, ing := range detail.Ingredients {
		r.Ingredients = append(r.Ingredients, Ingredient{Name: ing.Name, Quantity: ing.Quantity})
	}
	return r
}

// blobVersion tags the persisted format. The blob is owned by the
// store; nothing else writes it.
const blobVersion = 1

type blob struct {
	Version int      `json:"version"`
	Recipes []Recipe `json:"recipes"`
}

// Store is the persisted shopping list. Safe for concurrent use.
// Every mutation is written through the adapter immediately.
type Store struct {
	mu      sync.RWMutex
	adapter Adapter
	recipes map[string]Recipe
	order   []string // insertion order of recipe ids
}

// NewStore creates a store backed by the given adapter and loads the
// persisted state. A missing or corrupt blob initializes to empty.
func NewStore(adapter Adapter) *Store {
	s := &Store{
		adapter: adapter,
		recipes: make(map[string]Recipe),
	}

	data, err := adapter.Load()
	if err != nil || len(data) == 0 {
		return s
	}

	var b blob
	if json.Unmarshal(data, &b) != nil {
		return s
	}
	for _, r := range b.Recipes {
		if r.ID == "" {
			continue
		}
		if _, ok := s.recipes[r.ID]; !ok {
			s.order = append(s.order, r.ID)
		}
		s.recipes[r.ID] = r
	}
	return s
}

// Add upserts a recipe by id. Adding the same id again overwrites the
// previous entry (last write wins) without changing its position.
func (s *Store) Add(recipe Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[recipe.ID]; !ok {
		s.order = append(s.order, recipe.ID)
	}
	s.recipes[recipe.ID] = recipe
	return s.persistLocked()
}

// Remove deletes the entry for id. Removing an absent id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return nil
	}
	delete(s.recipes, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.persistLocked()
}

// Clear empties the list.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = make(map[string]Recipe)
	s.order = nil
	return s.persistLocked()
}

// Contains reports whether the recipe id is in the list.
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.recipes[id]
	return ok
}

// Recipes returns the entries in insertion order.
func (s *Store) Recipes() []Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Recipe, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.recipes[id])
	}
	return out
}

// Len returns the number of recipes in the list.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

func (s *Store) persistLocked() error {
	b := blob{Version: blobVersion, Recipes: make([]Recipe, 0, len(s.order))}
	for _, id := range s.order {
		b.Recipes = append(b.Recipes, s.recipes[id])
	}

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal shopping list: %w", err)
	}
	if err := s.adapter.Save(data); err != nil {
		return fmt.Errorf("persist shopping list: %w", err)
	}
	return nil
}

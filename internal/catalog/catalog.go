// Package catalog holds the recipe-listing state and the two fetch
// flows that feed it: paginated browsing and free-text search. All
// network errors are absorbed here; callers only ever see a (possibly
// empty) recipe list.
package catalog

import (
	"context"
	"log"
	"sync"

	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
)

// Catalog is the in-memory recipe listing. Safe for concurrent use;
// at most one fetch runs at a time.
type Catalog struct {
	client   *recipeapi.Client
	pageSize int
	topK     int

	mu      sync.Mutex
	recipes []recipeapi.Recipe
	page    int
	hasMore bool
	loading bool
}

// New creates an empty catalog backed by the given client.
func New(client *recipeapi.Client, pageSize, topK int) *Catalog {
	return &Catalog{
		client:   client,
		pageSize: pageSize,
		topK:     topK,
	}
}

// LoadInitial resets the catalog and fetches the first listing page.
// A transport or HTTP failure leaves the catalog empty.
func (c *Catalog) LoadInitial(ctx context.Context) []recipeapi.Recipe {
	c.mu.Lock()
	if c.loading {
		snapshot := c.snapshotLocked()
		c.mu.Unlock()
		return snapshot
	}
	c.loading = true
	c.mu.Unlock()

	page, err := c.client.ListRecipes(ctx, c.pageSize, 0)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		log.Printf("fetch recipes: %v", err)
		c.recipes = nil
		c.page = 0
		c.hasMore = false
		return nil
	}

	c.recipes = page
	c.page = 1
	c.hasMore = len(page) >= c.pageSize
	return c.snapshotLocked()
}

// LoadMore fetches the next page and appends it. It reports whether a
// page was actually loaded: calls while another fetch is in flight, or
// after the end of data was reached, return false immediately.
func (c *Catalog) LoadMore(ctx context.Context) bool {
	c.mu.Lock()
	if c.loading || !c.hasMore {
		c.mu.Unlock()
		return false
	}
	c.loading = true
	offset := c.page * c.pageSize
	c.mu.Unlock()

	page, err := c.client.ListRecipes(ctx, c.pageSize, offset)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		log.Printf("load more recipes: %v", err)
		return false
	}

	c.recipes = append(c.recipes, page...)
	c.page++
	if len(page) < c.pageSize {
		// Short page means the server ran out. No further load-more
		// until the next full reset.
		c.hasMore = false
	}
	return true
}

// Search runs the two-step search flow: rank recipe ids for the query,
// then fetch every ranked recipe concurrently. The result replaces the
// listing and clears pagination (search results are not paginated).
// Callers must not pass an empty query; validation is theirs.
func (c *Catalog) Search(ctx context.Context, query string) []recipeapi.Recipe {
	c.mu.Lock()
	if c.loading {
		snapshot := c.snapshotLocked()
		c.mu.Unlock()
		return snapshot
	}
	c.loading = true
	c.mu.Unlock()

	var results []recipeapi.Recipe
	ids, err := c.client.SearchRecipes(ctx, query, c.topK)
	if err != nil {
		log.Printf("search recipes: %v", err)
	} else {
		results = FetchRanked(ctx, c.client, ids)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.recipes = results
	c.page = 0
	c.hasMore = false
	return c.snapshotLocked()
}

// FetchRanked fetches the full detail for every id concurrently and
// returns the survivors as summaries in the original rank order. A
// failed fetch is logged and dropped; it never aborts its siblings.
func FetchRanked(ctx context.Context, client *recipeapi.Client, ids []string) []recipeapi.Recipe {
	details := make([]*recipeapi.RecipeDetail, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			detail, err := client.GetRecipe(ctx, id)
			if err != nil {
				log.Printf("fetch recipe %s: %v", id, err)
				return
			}
			details[i] = detail
		}(i, id)
	}
	wg.Wait()

	out := make([]recipeapi.Recipe, 0, len(ids))
	for _, detail := range details {
		if detail != nil {
			out = append(out, detail.Recipe)
		}
	}
	return out
}

// Recipes returns a snapshot of the current listing.
func (c *Catalog) Recipes() []recipeapi.Recipe {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// HasMore reports whether another listing page may be available.
func (c *Catalog) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

func (c *Catalog) snapshotLocked() []recipeapi.Recipe {
	out := make([]recipeapi.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

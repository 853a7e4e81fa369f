package backend_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
	"github.com/JavierMedel/culinairy-webapp/internal/shopping"
	"github.com/JavierMedel/culinairy-webapp/web"
)

func decodeBody(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func readBody(resp *http.Response) (string, error) {
	b, err := io.ReadAll(resp.Body)
	return string(b), err
}

// fakeUpstream serves a minimal recipe API for the handlers to proxy.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/recipes":
			w.Write([]byte(`{"recipes":[{"id":"r1","title":"Pasta"},{"id":"r2","name":"Soup"}]}`))
		case r.URL.Path == "/search-recipes":
			w.Write([]byte(`{"recipe_ids":["r2","r1"]}`))
		case strings.HasPrefix(r.URL.Path, "/recipe/r1"):
			w.Write([]byte(`{"id":"r1","title":"Pasta","ingredients":[{"name":"Flour","quantity":"200g","image_url":"ing/flour.png"}]}`))
		case strings.HasPrefix(r.URL.Path, "/recipe/r2"):
			w.Write([]byte(`{"id":"r2","name":"Soup"}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestServer(t *testing.T) (*httptest.Server, *shopping.Store) {
	t.Helper()
	upstream := fakeUpstream(t)
	t.Cleanup(upstream.Close)

	store := shopping.NewStore(shopping.NewMemoryAdapter(nil))
	mux := web.NewMux(recipeapi.NewClient(upstream.URL), store, 9, 3)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestHandleRecipes(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/recipes?limit=9&offset=0")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Recipes []recipeapi.Recipe `json:"recipes"`
		HasMore bool               `json:"has_more"`
	}
	require.NoError(t, decodeBody(resp, &body))
	require.Len(t, body.Recipes, 2)
	assert.Equal(t, "Pasta", body.Recipes[0].Title)
	assert.Equal(t, "Soup", body.Recipes[1].Title)
	assert.False(t, body.HasMore)
}

func TestHandleSearch(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/search", "application/json", strings.NewReader(`{"query":"soup"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Recipes []recipeapi.Recipe `json:"recipes"`
	}
	require.NoError(t, decodeBody(resp, &body))
	require.Len(t, body.Recipes, 2)
	assert.Equal(t, "r2", body.Recipes[0].ID)
	assert.Equal(t, "r1", body.Recipes[1].ID)
}

func TestHandleSearchEmptyQuery(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/search", "application/json", strings.NewReader(`{"query":"   "}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShoppingLifecycle(t *testing.T) {
	srv, store := newTestServer(t)

	// Add by id: detail is fetched upstream, images stripped.
	resp, err := http.Post(srv.URL+"/api/shopping", "application/json", strings.NewReader(`{"id":"r1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.True(t, store.Contains("r1"))
	entries := store.Recipes()
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Ingredients, 1)
	assert.Equal(t, "Flour", entries[0].Ingredients[0].Name)
	assert.Equal(t, "200g", entries[0].Ingredients[0].Quantity)

	// Membership endpoint.
	resp, err = http.Get(srv.URL + "/api/shopping/r1")
	require.NoError(t, err)
	var membership map[string]bool
	require.NoError(t, decodeBody(resp, &membership))
	resp.Body.Close()
	assert.True(t, membership["in_list"])

	// Export as ingredient groups.
	resp, err = http.Get(srv.URL + "/api/shopping/export?group=ingredient")
	require.NoError(t, err)
	text, err := readBody(resp)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, text, "- Flour (200g)")
	assert.Contains(t, text, "Used in: Pasta")

	// Remove, then clear.
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/shopping/r1", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, store.Contains("r1"))

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/shopping", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, store.Len())
}

func TestHandleRecipeNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/recipe/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Package web runs the local HTTP server exposing the recipe flows
// and the shopping list as JSON endpoints.
package web

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
	"github.com/JavierMedel/culinairy-webapp/internal/shopping"
	"github.com/JavierMedel/culinairy-webapp/web/backend"
)

// NewMux wires the API handlers onto a fresh mux.
func NewMux(client *recipeapi.Client, store *shopping.Store, pageSize, topK int) *http.ServeMux {
	api := backend.NewRecipeAPI(client, store, pageSize, topK)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/recipes", api.HandleRecipes)
	mux.HandleFunc("/api/search", api.HandleSearch)
	mux.HandleFunc("/api/recipe/", api.HandleRecipe)
	mux.HandleFunc("/api/shopping", api.HandleShopping)
	mux.HandleFunc("/api/shopping/export", api.HandleShoppingExport)
	mux.HandleFunc("/api/shopping/", api.HandleShoppingItem)
	return mux
}

// RunServer serves the mux on addr until interrupted, then shuts down
// gracefully.
func RunServer(mux *http.ServeMux, addr string) {
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Printf("Starting server on http://localhost%s/", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen: %v\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

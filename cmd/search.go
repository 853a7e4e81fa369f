package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JavierMedel/culinairy-webapp/internal/catalog"
	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recipes with a free-text query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("empty query")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := recipeapi.NewClient(cfg.BaseURL)
	cat := catalog.New(client, cfg.PageSize, cfg.TopK)

	fmt.Println("--- Searching Recipes ---")

	results := cat.Search(context.Background(), query)
	if len(results) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	fmt.Printf("Got %d recipes.\n\n", len(results))
	printRecipes(results)
	return nil
}

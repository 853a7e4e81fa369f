package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JavierMedel/culinairy-webapp/internal/catalog"
	"github.com/JavierMedel/culinairy-webapp/internal/config"
	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
	"github.com/JavierMedel/culinairy-webapp/internal/shopping"
)

var (
	cfgFile string
	pages   int
)

var rootCmd = &cobra.Command{
	Use:   "culinairy",
	Short: "Browse and search AI-ranked recipes",
	Long: `culinairy is a client for the CulinAIry recipe API. It browses the
recipe catalog, searches it with free-text queries, and keeps a
persisted shopping list aggregated from the recipes you pick.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(pages)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)

	rootCmd.Flags().IntVarP(
		&pages,
		"pages",
		"p",
		1,
		"number of listing pages to fetch",
	)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openStore(cfg config.Config) *shopping.Store {
	return shopping.NewStore(shopping.NewFileAdapter(cfg.StoragePath))
}

func runBrowse(pages int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := recipeapi.NewClient(cfg.BaseURL)
	cat := catalog.New(client, cfg.PageSize, cfg.TopK)
	ctx := context.Background()

	fmt.Println("--- Fetching Recipes ---")

	cat.LoadInitial(ctx)
	for i := 1; i < pages && cat.HasMore(); i++ {
		cat.LoadMore(ctx)
	}

	recipes := cat.Recipes()
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	fmt.Printf("Got %d recipes.\n\n", len(recipes))
	printRecipes(recipes)

	if cat.HasMore() {
		fmt.Println("\nMore recipes available. Re-run with --pages to fetch more.")
	}
	return nil
}

func printRecipes(recipes []recipeapi.Recipe) {
	for i, r := range recipes {
		fmt.Printf("%2d. %s  [%s]\n", i+1, r.Title, r.ID)
		if r.Description != "" {
			fmt.Printf("    %s\n", r.Description)
		}
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JavierMedel/culinairy-webapp/internal/shopping"
)

var (
	exportGroup string
	exportCopy  bool
	exportDir   string
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Manage the persisted shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShoppingList()
	},
}

var shoppingRemoveCmd = &cobra.Command{
	Use:   "remove <recipe-id>",
	Short: "Remove a recipe from the shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := openStore(cfg)
		if !store.Contains(args[0]) {
			fmt.Printf("Recipe %s is not in the list.\n", args[0])
			return nil
		}
		if err := store.Remove(args[0]); err != nil {
			return err
		}
		fmt.Println("Removed.")
		return nil
	},
}

var shoppingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := openStore(cfg).Clear(); err != nil {
			return err
		}
		fmt.Println("Shopping list cleared.")
		return nil
	},
}

var shoppingExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the shopping list as text",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShoppingExport()
	},
}

var shoppingFindCmd = &cobra.Command{
	Use:   "find <term>",
	Short: "Fuzzy-find an ingredient across the shopping list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShoppingFind(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
	shoppingCmd.AddCommand(shoppingRemoveCmd)
	shoppingCmd.AddCommand(shoppingClearCmd)
	shoppingCmd.AddCommand(shoppingExportCmd)
	shoppingCmd.AddCommand(shoppingFindCmd)

	shoppingExportCmd.Flags().StringVarP(
		&exportGroup,
		"group",
		"g",
		string(shopping.GroupByRecipeMode),
		"grouping: recipe or ingredient",
	)
	shoppingExportCmd.Flags().BoolVar(
		&exportCopy,
		"copy",
		false,
		"copy to the clipboard instead of writing a file",
	)
	shoppingExportCmd.Flags().StringVarP(
		&exportDir,
		"out",
		"o",
		".",
		"directory for the exported file",
	)
}

func runShoppingList() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)

	recipes := store.Recipes()
	if len(recipes) == 0 {
		fmt.Println("Your shopping list is empty.")
		return nil
	}

	fmt.Printf("%d recipes in your list.\n\n", len(recipes))
	fmt.Print(shopping.Serialize(recipes, shopping.GroupByRecipeMode))
	return nil
}

func runShoppingExport() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)

	mode := shopping.GroupByRecipeMode
	if exportGroup == string(shopping.GroupByIngredientMode) {
		mode = shopping.GroupByIngredientMode
	}

	if exportCopy {
		if err := shopping.CopyToClipboard(store.Recipes(), mode); err != nil {
			return err
		}
		fmt.Println("Shopping list copied to the clipboard.")
		return nil
	}

	path, err := shopping.WriteFile(exportDir, store.Recipes(), mode)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runShoppingFind(term string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)

	groups := shopping.FindIngredients(store.Recipes(), term)
	if len(groups) == 0 {
		fmt.Printf("No ingredient matching %q.\n", term)
		return nil
	}

	for _, g := range groups {
		if len(g.Quantities) > 0 {
			fmt.Printf("- %s (%s)\n", g.Name, strings.Join(g.Quantities, ", "))
		} else {
			fmt.Printf("- %s\n", g.Name)
		}
		if len(g.Recipes) > 0 {
			fmt.Printf("  Used in: %s\n", strings.Join(g.Recipes, ", "))
		}
	}
	return nil
}

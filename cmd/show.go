package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
	"github.com/JavierMedel/culinairy-webapp/internal/shopping"
)

var addToList bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show the full detail of one recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(args[0], addToList)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVarP(
		&addToList,
		"add",
		"a",
		false,
		"add the recipe to the shopping list",
	)
}

func runShow(id string, add bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := recipeapi.NewClient(cfg.BaseURL)
	detail, err := client.GetRecipe(context.Background(), id)
	if err != nil {
		return fmt.Errorf("fetch recipe: %w", err)
	}

	fmt.Println(detail.Title)
	if detail.Subtitle != "" {
		fmt.Println(detail.Subtitle)
	}
	if detail.Description != "" {
		fmt.Printf("\n%s\n", detail.Description)
	}
	if len(detail.Tags) > 0 {
		fmt.Printf("\nTags: %v\n", detail.Tags)
	}

	if len(detail.Ingredients) > 0 {
		fmt.Println("\nIngredients:")
		for _, ing := range detail.Ingredients {
			if ing.Quantity != "" {
				fmt.Printf("- %s (%s)\n", ing.Name, ing.Quantity)
			} else {
				fmt.Printf("- %s\n", ing.Name)
			}
		}
	}

	if len(detail.CookingSteps) > 0 {
		fmt.Println("\nSteps:")
		for _, step := range detail.CookingSteps {
			fmt.Printf("%2d. %s\n", step.StepNumber, step.Instruction)
		}
	}

	if add {
		store := openStore(cfg)
		if err := store.Add(shopping.FromDetail(detail)); err != nil {
			return fmt.Errorf("add to shopping list: %w", err)
		}
		fmt.Printf("\nAdded %q to the shopping list.\n", detail.Title)
	}
	return nil
}

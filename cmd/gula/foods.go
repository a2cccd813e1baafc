package gula

import (
	"fmt"
	"strings"

	"github.com/Qodor04/gula-cli/internal/catalog"
	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Browse the food catalog",
}

var foodsCategory string

var foodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods := catalog.All()
		if foodsCategory != "" {
			foods = catalog.ByCategory(foodsCategory)
			if len(foods) == 0 {
				return fmt.Errorf("unknown category %q (see: gula foods categories)", foodsCategory)
			}
		}
		printFoods(cmd, foods)
		return nil
	},
}

var foodsSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the catalog by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")
		foods := catalog.Search(term)
		if len(foods) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No foods match %q\n", term)
			return nil
		}
		printFoods(cmd, foods)
		return nil
	},
}

var foodsShowCmd = &cobra.Command{
	Use:   "show <food>",
	Short: "Show a single catalog entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		food, ok := catalog.Lookup(name)
		if !ok {
			return fmt.Errorf("food %q not found in catalog", name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", food.DisplayName())
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", food.Category)
		fmt.Fprintf(cmd.OutOrStdout(), "Sugar: %.1f g per 100 g\n", food.SugarPer100G)
		if food.ServingUnit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Typical serving: 1 %s = %.0f g\n", food.ServingUnit, food.ServingMassG)
		}
		return nil
	},
}

var foodsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range catalog.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func printFoods(cmd *cobra.Command, foods []catalog.Food) {
	fmt.Fprintln(cmd.OutOrStdout(), "NAME\tCATEGORY\tSUGAR/100G\tSERVING")
	for _, f := range foods {
		serving := "-"
		if f.ServingUnit != "" {
			serving = fmt.Sprintf("1 %s = %.0f g", f.ServingUnit, f.ServingMassG)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\t%s\n", f.DisplayName(), f.Category, f.SugarPer100G, serving)
	}
}

func init() {
	rootCmd.AddCommand(foodsCmd)
	foodsCmd.AddCommand(foodsListCmd)
	foodsCmd.AddCommand(foodsSearchCmd)
	foodsCmd.AddCommand(foodsShowCmd)
	foodsCmd.AddCommand(foodsCategoriesCmd)
	foodsListCmd.Flags().StringVar(&foodsCategory, "category", "", "Filter by category")
}

// Package catalog provides the catalog management subcommands.
package catalog

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"platewise/internal/application/catalog/dto"
	"platewise/internal/application/catalog/usecases"
	"platewise/internal/infrastructure/repository"
	"platewise/internal/interfaces/cli"
)

var (
	configPath string
	itemName   string
	itemCost   float64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the food catalog",
		Long:  `Add, list, search, update and delete the food items available for order plans.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newAddCommand(),
		newListCommand(),
		newSearchCommand(),
		newUpdateCommand(),
		newDeleteCommand(),
	)

	return cmd
}

func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a food item",
		RunE:  runAdd,
	}

	cmd.Flags().StringVarP(&itemName, "name", "n", "", "Item name (required)")
	cmd.Flags().Float64Var(&itemCost, "cost", 0, "Item cost, must be positive (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("cost")

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all food items",
		RunE:  runList,
	}
}

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <substring>",
		Short: "Search food items by name",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
}

func newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a food item's name and cost",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}

	cmd.Flags().StringVarP(&itemName, "name", "n", "", "New item name (required)")
	cmd.Flags().Float64Var(&itemCost, "cost", 0, "New item cost, must be positive (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("cost")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a food item and its plan entries",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewAddFoodItemUseCase(repository.NewFoodItemRepository(env.DB, env.Logger), env.Logger)
	item, err := uc.Execute(cmd.Context(), dto.AddFoodItemRequest{Name: itemName, Cost: itemCost})
	if err != nil {
		return err
	}

	fmt.Printf("added #%d %s (%.2f)\n", item.ID, item.Name, item.Cost)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewListFoodItemsUseCase(repository.NewFoodItemRepository(env.DB, env.Logger), env.Logger)
	items, err := uc.Execute(cmd.Context())
	if err != nil {
		return err
	}

	printItems(items)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewSearchFoodItemsUseCase(repository.NewFoodItemRepository(env.DB, env.Logger), env.Logger)
	items, err := uc.Execute(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printItems(items)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewUpdateFoodItemUseCase(repository.NewFoodItemRepository(env.DB, env.Logger), env.Logger)
	item, err := uc.Execute(cmd.Context(), dto.UpdateFoodItemRequest{ID: id, Name: itemName, Cost: itemCost})
	if err != nil {
		return err
	}

	fmt.Printf("updated #%d %s (%.2f)\n", item.ID, item.Name, item.Cost)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewDeleteFoodItemUseCase(repository.NewFoodItemRepository(env.DB, env.Logger), env.Logger)
	if err := uc.Execute(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("deleted #%d\n", id)
	return nil
}

func printItems(items []dto.FoodItemResponse) {
	if len(items) == 0 {
		fmt.Println("no food items")
		return
	}
	for _, item := range items {
		fmt.Printf("#%-4d %-30s %8.2f\n", item.ID, item.Name, item.Cost)
	}
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return uint(id), nil
}

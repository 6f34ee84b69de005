// Package plan provides the order plan subcommands.
package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"platewise/internal/application/plan/dto"
	"platewise/internal/application/plan/usecases"
	"platewise/internal/infrastructure/repository"
	"platewise/internal/interfaces/cli"
)

var (
	configPath string
	planDate   string
	planBudget float64
	planItems  string
	replace    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and inspect order plans",
		Long:  `Save budget-constrained order plans per date, show their joined costs, list plan dates and delete plans.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newSaveCommand(),
		newShowCommand(),
		newDatesCommand(),
		newDeleteCommand(),
	)

	return cmd
}

func newSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the order plan for a date",
		Long:  `Select catalog items against a target budget and save them as the plan for a date. Items that would push the total past the budget are skipped and reported. Saving over an existing plan replaces it entirely and requires --replace.`,
		RunE:  runSave,
	}

	cmd.Flags().StringVarP(&planDate, "date", "d", "", "Plan date in YYYY-MM-DD form (default: today)")
	cmd.Flags().Float64VarP(&planBudget, "budget", "b", 0, "Target budget for the plan")
	cmd.Flags().StringVarP(&planItems, "items", "i", "", "Comma-separated food item IDs to select, in order")
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace an existing plan for the date without asking")

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <date>",
		Short: "Show the plan for a date",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func newDatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List dates that have a plan, most recent first",
		RunE:  runDates,
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete the plan for a date",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runSave(cmd *cobra.Command, args []string) error {
	itemIDs, err := parseItemIDs(planItems)
	if err != nil {
		return err
	}

	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewSavePlanUseCase(
		repository.NewFoodItemRepository(env.DB, env.Logger),
		repository.NewPlanRepository(env.DB, env.Logger),
		env.Logger,
	)

	result, err := uc.Execute(cmd.Context(), dto.SavePlanRequest{
		Date:           planDate,
		Budget:         planBudget,
		ItemIDs:        itemIDs,
		ConfirmReplace: replace,
	})
	if err != nil {
		return err
	}

	for _, s := range result.Skipped {
		fmt.Printf("skipped #%d: %s\n", s.FoodItemID, s.Reason)
	}

	if !result.Saved {
		fmt.Printf("plan not saved: %s\n", result.Refusal)
		return nil
	}

	fmt.Printf("plan saved for %s: %d items, %.2f of %.2f (%.2f remaining)\n",
		result.Date, len(result.Selected), result.ActualCost, result.TargetCost, result.Remaining)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewGetPlanUseCase(repository.NewPlanRepository(env.DB, env.Logger), env.Logger)
	plan, err := uc.Execute(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("plan for %s (budget %.2f)\n", plan.Date, plan.TargetCost)
	for _, e := range plan.Entries {
		fmt.Printf("  #%-4d %-30s %8.2f\n", e.FoodItemID, e.FoodItemName, e.FoodItemCost)
	}
	fmt.Printf("total %.2f, remaining %.2f\n", plan.ActualCost, plan.Remaining)
	return nil
}

func runDates(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewListPlanDatesUseCase(repository.NewPlanRepository(env.DB, env.Logger), env.Logger)
	dates, err := uc.Execute(cmd.Context())
	if err != nil {
		return err
	}

	if len(dates) == 0 {
		fmt.Println("no plans saved")
		return nil
	}
	for _, d := range dates {
		fmt.Println(d)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, true)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewDeletePlanUseCase(repository.NewPlanRepository(env.DB, env.Logger), env.Logger)
	result, err := uc.Execute(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("deleted plan for %s (%d entries)\n", result.Date, result.Removed)
	return nil
}

func parseItemIDs(s string) ([]uint, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid item id %q", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"platewise/internal/interfaces/cli/catalog"
	"platewise/internal/interfaces/cli/migrate"
	"platewise/internal/interfaces/cli/plan"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "platewise",
		Short: "Platewise - a budget-aware meal order planner",
		Long:  `Platewise keeps a local food catalog and builds per-date order plans against a target budget, stored in an embedded SQLite database.`,
	}

	rootCmd.AddCommand(
		catalog.NewCommand(),
		plan.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package migrate provides the schema migration subcommands.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"platewise/internal/infrastructure/migration"
	"platewise/internal/infrastructure/persistence/seeds"
	"platewise/internal/interfaces/cli"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply pending schema migrations or show the migration status of the embedded store.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, false)
	if err != nil {
		return err
	}
	defer env.Close()

	firstRun, err := migration.Up(env.DB)
	if err != nil {
		return err
	}

	if firstRun {
		if err := seeds.SeedMenu(env.DB, env.Config.Database.SeedFile); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
		fmt.Println("schema created and catalog seeded")
		return nil
	}

	fmt.Println("migrations up to date")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup(configPath, false)
	if err != nil {
		return err
	}
	defer env.Close()

	return migration.Status(env.DB)
}

// Package migration manages the SQLite schema with goose, using SQL
// scripts embedded in the binary.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"platewise/internal/shared/constants"
)

//go:embed scripts/*.sql
var embedMigrations embed.FS

// Up applies all pending migrations. It reports whether this was the first
// initialization of the schema, which is when the menu seed runs.
func Up(db *gorm.DB) (firstRun bool, err error) {
	firstRun = !db.Migrator().HasTable(constants.TableFoodItems)

	sqlDB, err := db.DB()
	if err != nil {
		return false, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return false, fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return false, fmt.Errorf("failed to run migrations: %w", err)
	}

	return firstRun, nil
}

// Status prints the migration status of the store.
func Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	return goose.Status(sqlDB, "scripts")
}

// Package cli hosts the command-line surface of the planner and the
// shared bootstrap that wires config, logging and the embedded store.
package cli

import (
	"fmt"

	"gorm.io/gorm"

	"platewise/internal/infrastructure/config"
	"platewise/internal/infrastructure/database"
	"platewise/internal/infrastructure/migration"
	"platewise/internal/infrastructure/persistence/seeds"
	"platewise/internal/shared/logger"
)

// Env carries the wired dependencies of one CLI invocation.
type Env struct {
	Config *config.Config
	DB     *gorm.DB
	Logger logger.Interface
}

// Setup loads configuration, initializes logging and opens the store.
// When migrate is true pending schema migrations run, and on the very
// first initialization the catalog is seeded with the starter menu.
func Setup(configPath string, migrate bool) (*Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB := database.Get()

	if migrate {
		firstRun, err := migration.Up(gormDB)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		if firstRun {
			if err := seeds.SeedMenu(gormDB, cfg.Database.SeedFile); err != nil {
				return nil, fmt.Errorf("failed to seed menu: %w", err)
			}
			logger.Info("catalog seeded with starter menu")
		}
	}

	return &Env{
		Config: cfg,
		DB:     gormDB,
		Logger: logger.NewLogger(),
	}, nil
}

// Close releases the store connection.
func (e *Env) Close() {
	if err := database.Close(); err != nil {
		e.Logger.Errorw("failed to close database", "error", err)
	}
}

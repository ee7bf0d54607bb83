package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/neonx/internal/repositories"
	"github.com/desertthunder/neonx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase initializes the database, runs migrations and seeds the catalog table.
//
// With --rollback it reverts the latest migration instead.
//
// The seed is the config catalog override when present, else the built-in tracks. Existing rows
// are replaced.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("db")
	if path == "" {
		path = r.config.Database.Path
	}

	r.logger.Info("initializing database", "path", path)

	db, err := shared.NewDatabase(path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if cmd.Bool("rollback") {
		m, err := shared.RollbackMigration(db)
		if err != nil {
			return err
		}
		r.logger.Info("migration rolled back", "version", m.Version, "name", m.Name)
		return r.writePlain("✓ Rolled back %04d_%s\n", m.Version, m.Name)
	}

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	catalog, err := r.configuredCatalog()
	if err != nil {
		return err
	}

	repo := repositories.NewTrackRepository(db)
	if err := repo.Seed(catalog.Tracks()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", path)
	return r.writePlain("✓ Seeded %d tracks into %s\n", catalog.Len(), path)
}

// SetupConfig writes the example configuration to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		return fmt.Errorf("%w: --config", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Wrote %s\n", path)
}

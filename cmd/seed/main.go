package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cashmemo/config"
	"cashmemo/internal/infra/auth"
	logs "cashmemo/internal/infra/log"
	"cashmemo/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

// Seeds the plan catalogue and the first admin account. Re-running is safe:
// plans are upserted by slug and an existing admin is left untouched.
func main() {
	migrate := flag.Bool("migrate", false, "Create or update the schema before seeding")
	skipAdmin := flag.Bool("skip-admin", false, "Only seed the plan catalogue")
	flag.Parse()

	if err := run(context.Background(), *migrate, *skipAdmin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, migrate, skipAdmin bool) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	if migrate {
		logger.Info("Running schema migration")
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}

	if err := seedPlans(ctx, postgres.NewPlanRepository(db), logger); err != nil {
		return err
	}

	if skipAdmin {
		return nil
	}

	creds := adminCredentials{
		Name:     os.Getenv("SEED_ADMIN_NAME"),
		Email:    os.Getenv("SEED_ADMIN_EMAIL"),
		Password: os.Getenv("SEED_ADMIN_PASSWORD"),
	}

	return seedAdmin(ctx, postgres.NewAdminRepository(db), auth.NewBcryptHasher(cfg), creds, logger.With(slog.String("email", creds.Email)))
}

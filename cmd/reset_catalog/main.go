package main

import (
	"context"
	"fmt"
	"os"

	"varlife/config"
	"varlife/pkg/logger"
	"varlife/service"
	"varlife/storage/postgres"
)

// Replaces the ride options and areas in Postgres with the built-in catalog.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("catalog reset failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log logger.ILogger) error {
	pg, err := postgres.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pg.Close()

	catalog := service.NewCatalogService(pg, log)
	if err := catalog.Reseed(ctx); err != nil {
		return err
	}

	loaded, err := catalog.Load(ctx)
	if err != nil {
		return fmt.Errorf("reseeded catalog does not load: %w", err)
	}
	log.Info("catalog reset",
		logger.Int("ride_options", len(loaded.RideOptions)),
		logger.Int("areas", len(loaded.Areas)),
	)
	return nil
}

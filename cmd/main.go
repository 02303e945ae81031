package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"varlife/config"
	"varlife/pkg/api"
	"varlife/pkg/bot"
	"varlife/pkg/clock"
	"varlife/pkg/logger"
	"varlife/service"
	"varlife/storage"
	"varlife/storage/memory"
	"varlife/storage/postgres"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("VarLife stopped with error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is done or the HTTP server fails. It returns only after
// every started component has been shut down.
func run(ctx context.Context, cfg config.Config, log logger.ILogger) error {
	// 3. Catalog storage
	stg, err := openStorage(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open catalog storage: %w", err)
	}
	defer stg.Close()

	// 4. Services
	svc, err := service.New(ctx, stg, cfg, clock.Real(), log)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	defer svc.Session().CloseAll()
	defer svc.APISession().CloseAll()

	// 5. Telegram bot, optional
	var tgBot *bot.Bot
	if cfg.TelegramBotToken != "" {
		tgBot, err = bot.New(&cfg, svc, log)
		if err != nil {
			return fmt.Errorf("init telegram bot: %w", err)
		}
	} else {
		log.Warning("TG_BOT_TOKEN is empty, telegram bot disabled")
	}

	// 6. HTTP API
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: api.NewServer(svc, log),
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP API listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	if tgBot != nil {
		go tgBot.Start()
	}

	log.Info("🚀 VarLife is running", logger.String("catalog", cfg.CatalogSource))

	// 7. Graceful shutdown
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down...")
	case err := <-serveErr:
		runErr = fmt.Errorf("http server: %w", err)
	}

	if tgBot != nil {
		tgBot.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown failed", logger.Error(err))
	}
	return runErr
}

func openStorage(ctx context.Context, cfg config.Config, log logger.ILogger) (storage.IStorage, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		pg, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case config.CatalogSourceMemory, "":
		log.Info("using built-in catalog")
		return memory.New(), nil
	}
	return nil, errors.New("unknown CATALOG_SOURCE " + strconv.Quote(cfg.CatalogSource))
}

// Command worker runs the scheduled news search: on each cron tick it
// performs one search-and-persist pass using the same use case as the HTTP
// gateway. A side server exposes health and metrics.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"postforge/internal/config"
	pgRepo "postforge/internal/infra/adapter/persistence/postgres"
	"postforge/internal/infra/db"
	"postforge/internal/infra/searcher"
	"postforge/internal/infra/worker"
	newsUC "postforge/internal/usecase/news"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	logger := initLogger()
	cronCfg := config.LoadCronConfig()
	searchCfg := config.LoadSearchConfig()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Error("DATABASE_URL must be set; the worker exists to persist search results")
		os.Exit(1)
	}
	database, err := db.Open(dsn)
	if err != nil {
		logger.Error("failed to open news store", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate news store", slog.Any("error", err))
		os.Exit(1)
	}

	svc := &newsUC.Service{
		Searcher:     searcher.NewFromConfig(searchCfg),
		Repo:         pgRepo.NewNewsRepo(database),
		DefaultQuery: config.DefaultSearchQuery,
	}
	if svc.Searcher == nil {
		logger.Error("PERPLEXITY_API_KEY must be set for scheduled searches")
		os.Exit(1)
	}

	runner := &worker.Runner{Svc: svc, Cfg: cronCfg, Logger: logger, Version: version}
	health := worker.NewHealthServer(fmt.Sprintf(":%d", cronCfg.HealthPort), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return health.Start(gctx) })
	g.Go(func() error {
		health.SetReady(true)
		return runner.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("worker failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}

func initLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

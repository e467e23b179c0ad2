// Command api serves the marketing gateway: post generation, news search
// and news fetch endpoints, plus health and metrics.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"postforge/internal/config"
	hhttp "postforge/internal/handler/http"
	pgRepo "postforge/internal/infra/adapter/persistence/postgres"
	"postforge/internal/infra/db"
	"postforge/internal/infra/generator"
	"postforge/internal/infra/searcher"
	newsUC "postforge/internal/usecase/news"
	postUC "postforge/internal/usecase/post"
)

var version = "dev"

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := initLogger()

	srvCfg := config.LoadServerConfig()
	genCfg := config.LoadGeneratorConfig()
	searchCfg := config.LoadSearchConfig()
	cronCfg := config.LoadCronConfig()

	database := openStore(logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	postSvc := &postUC.Service{Gen: generator.New(genCfg)}
	if postSvc.Gen == nil {
		logger.Warn("no generator credential configured; generate-post will return a configuration error")
	}

	newsSvc := &newsUC.Service{
		Searcher:     searcher.NewFromConfig(searchCfg),
		DefaultQuery: config.DefaultSearchQuery,
	}
	if database != nil {
		newsSvc.Repo = pgRepo.NewNewsRepo(database)
	}

	handler := hhttp.NewMux(hhttp.Deps{
		PostSvc:    postSvc,
		NewsSvc:    newsSvc,
		DB:         database,
		CronSecret: cronCfg.Secret,
		Version:    version,
		Logger:     logger,
		RateLimit:  hhttp.NewRateLimiter(5, 10),
	})

	run(logger, srvCfg, handler)
}

// initLogger configures the process-wide structured logger.
func initLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// openStore opens the news store when DATABASE_URL is set. The store is
// optional: without it the news endpoints report a configuration error per
// request while post generation keeps working.
func openStore(logger *slog.Logger) *sql.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Warn("DATABASE_URL not set; news store disabled")
		return nil
	}

	database, err := db.Open(dsn)
	if err != nil {
		logger.Error("failed to open news store", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate news store", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// run starts the HTTP server and blocks until a signal triggers graceful
// shutdown.
func run(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

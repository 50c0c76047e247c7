package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	log := zapLogger.With(logger.NewField("app", "migrate"))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		log.Error("database", logger.NewField("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		log.Error("migrate", logger.NewField("error", err))
		os.Exit(1) //nolint:gocritic // deferred pool.Close is not needed on exit
	}
	log.Info("schema is up to date")
}

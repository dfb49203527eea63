package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Deepsoni5/kucash-sub001/internal/config"
	"github.com/Deepsoni5/kucash-sub001/internal/db"
	"github.com/Deepsoni5/kucash-sub001/internal/jobs"
	"github.com/Deepsoni5/kucash-sub001/internal/messaging"
	"github.com/Deepsoni5/kucash-sub001/internal/observability"
	postgresrepo "github.com/Deepsoni5/kucash-sub001/internal/repository/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect postgres", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	sender, err := messaging.NewSenderFromConfig(cfg)
	if err != nil {
		logger.Error("invalid messaging config", "err", err)
		os.Exit(1)
	}

	worker := jobs.NewWorker(
		postgresrepo.NewOutboxRepository(pool),
		db.NewAuthRepository(pool),
		sender,
	)

	interval := cfg.WorkerPollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("worker started", "interval", interval.String(), "batch_size", cfg.WorkerBatchSize)
	for {
		select {
		case <-sigCtx.Done():
			logger.Info("worker stopped")
			return
		case <-ticker.C:
			runCtx, runCancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := worker.RunOnce(runCtx, cfg.WorkerBatchSize)
			runCancel()
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("worker run failed", "err", err)
			}
		}
	}
}

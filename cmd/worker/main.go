package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"recruit_portal_backend/internal/events"
	"recruit_portal_backend/internal/leads/insights"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/internal/leads/rules"
	"recruit_portal_backend/internal/leads/service"
	"recruit_portal_backend/internal/notify"
	"recruit_portal_backend/internal/scheduler"
	"recruit_portal_backend/platform/cache"
	"recruit_portal_backend/platform/config"
	"recruit_portal_backend/platform/db"
	"recruit_portal_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "queue", cfg.GetAsynqQueueName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	redisCache, err := cache.New(cfg)
	if err != nil {
		log.Warn("redis cache unavailable", "error", err)
	}
	if redisCache != nil {
		defer redisCache.Close()
	}

	eventBus := events.NewInMemoryBus(log)
	repo := repository.New(pool)

	registry := rules.DefaultRegistry()
	if err := rules.LoadOverrides(registry, cfg.GetRuleOverridesPath()); err != nil {
		log.Error("failed to load rule overrides", "error", err)
		panic("failed to load rule overrides: " + err.Error())
	}

	scoringSvc := service.NewScoringService(repo, registry, eventBus, log)
	insightSvc := insights.NewService(repo, redisCache, cfg.GetInsightsCacheTTL(), log)
	digest := notify.NewDigestSender(cfg)

	worker, err := scheduler.NewWorker(cfg, scoringSvc, insightSvc, digest, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	log.Info("worker running")
	if err := worker.Run(ctx); err != nil {
		log.Error("worker stopped with error", "error", err)
		panic("worker stopped with error: " + err.Error())
	}
	log.Info("worker shut down")
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("%s: %w", name, lastErr)
}

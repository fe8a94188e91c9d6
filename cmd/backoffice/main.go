package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/backoffice/internal/config"
	"github.com/nikolayk812/backoffice/internal/db/migrations"
	"github.com/nikolayk812/backoffice/internal/event"
	"github.com/nikolayk812/backoffice/internal/httpapi"
	"github.com/nikolayk812/backoffice/internal/idempotency"
	"github.com/nikolayk812/backoffice/internal/logger"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/nikolayk812/backoffice/internal/repository"
	"github.com/nikolayk812/backoffice/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger.New: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("backoffice stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	if err := migrations.Apply(ctx, pool); err != nil {
		return fmt.Errorf("migrations.Apply: %w", err)
	}

	guard := idempotency.NewNoopGuard()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close redis client")
			}
		}()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("rdb.Ping: %w", err)
		}
		guard = idempotency.NewRedisGuard(rdb, cfg.IdempotencyTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("idempotency keys stored in redis")
	}

	var events port.EventPublisher = event.NewNoopPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		writer := event.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := writer.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close kafka writer")
			}
		}()

		events = event.NewKafkaPublisher(writer)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("order events published to kafka")
	}

	orderRepo := repository.NewOrder(pool)
	routeRepo := repository.NewDeliveryRoute(pool)
	reviewRepo := repository.NewReview(pool)
	catalogRepo := repository.NewCatalog(pool)

	handler := httpapi.NewHandler(
		service.NewOrderService(orderRepo, catalogRepo, events, guard, log),
		service.NewRouteService(orderRepo, routeRepo, events, log, cfg.StrictRouteEligibility),
		service.NewReviewService(orderRepo, reviewRepo, events, log),
		service.NewStatsService(repository.NewStatsSource(pool), cfg.StatsLocation, log),
		pool,
	)

	statsLimiter := rate.NewLimiter(rate.Limit(cfg.StatsRatePerSec), cfg.StatsBurst)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, catalogRepo, log, statsLimiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}

	return nil
}

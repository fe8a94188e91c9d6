package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	// RedisAddr and KafkaBrokers are optional; an empty value disables the integration.
	RedisAddr      string
	IdempotencyTTL time.Duration
	KafkaBrokers   []string
	KafkaTopic     string

	LogLevel  string
	LogPretty bool

	StatsLocation   *time.Location
	StatsRatePerSec float64
	StatsBurst      int

	StrictRouteEligibility bool
}

func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	getEnv := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	var (
		cfg  Config
		errs []error
	)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "order-events")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.KafkaBrokers = lo.Compact(lo.Map(strings.Split(getEnv("KAFKA_BROKERS", ""), ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))

	var err error

	if cfg.LogPretty, err = strconv.ParseBool(getEnv("LOG_PRETTY", "false")); err != nil {
		errs = append(errs, fmt.Errorf("LOG_PRETTY: %w", err))
	}
	if cfg.StrictRouteEligibility, err = strconv.ParseBool(getEnv("STRICT_ROUTE_ELIGIBILITY", "false")); err != nil {
		errs = append(errs, fmt.Errorf("STRICT_ROUTE_ELIGIBILITY: %w", err))
	}
	if cfg.IdempotencyTTL, err = time.ParseDuration(getEnv("IDEMPOTENCY_TTL", "24h")); err != nil {
		errs = append(errs, fmt.Errorf("IDEMPOTENCY_TTL: %w", err))
	}
	if cfg.StatsLocation, err = time.LoadLocation(getEnv("STATS_TIMEZONE", "UTC")); err != nil {
		errs = append(errs, fmt.Errorf("STATS_TIMEZONE: %w", err))
	}
	if cfg.StatsRatePerSec, err = strconv.ParseFloat(getEnv("STATS_RATE_PER_SEC", "1"), 64); err != nil {
		errs = append(errs, fmt.Errorf("STATS_RATE_PER_SEC: %w", err))
	}
	if cfg.StatsBurst, err = strconv.Atoi(getEnv("STATS_BURST", "5")); err != nil {
		errs = append(errs, fmt.Errorf("STATS_BURST: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is empty")
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR is empty")
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return errors.New("KAFKA_TOPIC is empty")
	}
	if c.IdempotencyTTL <= 0 {
		return errors.New("IDEMPOTENCY_TTL must be positive")
	}
	if c.StatsRatePerSec <= 0 {
		return errors.New("STATS_RATE_PER_SEC must be positive")
	}
	if c.StatsBurst < 1 {
		return errors.New("STATS_BURST must be at least 1")
	}
	return nil
}

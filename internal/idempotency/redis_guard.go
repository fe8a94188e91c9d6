package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency-key:"

type redisGuard struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisGuard(rdb redis.Cmdable, ttl time.Duration) port.IdempotencyGuard {
	return &redisGuard{rdb: rdb, ttl: ttl}
}

// Claim sets the key only if it is absent, so concurrent requests with the same key get exactly one winner.
func (g *redisGuard) Claim(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key is empty")
	}

	ok, err := g.rdb.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("rdb.SetNX: %w", err)
	}

	return ok, nil
}

func (g *redisGuard) Release(ctx context.Context, key string) error {
	if err := g.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("rdb.Del: %w", err)
	}
	return nil
}

type noopGuard struct{}

// NewNoopGuard accepts every key. Used when redis is not configured.
func NewNoopGuard() port.IdempotencyGuard {
	return noopGuard{}
}

func (noopGuard) Claim(context.Context, string) (bool, error) {
	return true, nil
}

func (noopGuard) Release(context.Context, string) error {
	return nil
}

package port

import (
	"context"

	"github.com/nikolayk812/backoffice/internal/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

// IdempotencyGuard claims a client supplied key once within its TTL.
type IdempotencyGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
	// Release frees a claimed key so a failed request can be retried.
	Release(ctx context.Context, key string) error
}

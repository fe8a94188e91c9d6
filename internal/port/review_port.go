package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
)

type ReviewRepository interface {
	// InsertReview stores the review and flags the matching order items as
	// reviewed in one transaction. A second review for the same order and
	// product fails with domain.ErrConflict.
	InsertReview(ctx context.Context, review domain.Review) (domain.Review, error)

	GetReview(ctx context.Context, orderID, productID uuid.UUID) (domain.Review, error)
	ListReviewsByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Review, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/backoffice/internal/db"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/samber/lo"
)

type reviewRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewReview(pool *pgxpool.Pool) port.ReviewRepository {
	return &reviewRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func NewReviewWithTx(tx pgx.Tx) port.ReviewRepository {
	return &reviewRepository{
		q:    db.New(tx),
		dbtx: tx,
	}
}

func (r *reviewRepository) InsertReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	if review.OrderID == uuid.Nil || review.ProductID == uuid.Nil || review.UserID == uuid.Nil {
		return domain.Review{}, errors.New("orderID, productID and userID are required")
	}

	inserted, err := withTx(ctx, r.dbtx, func(q *db.Queries) (domain.Review, error) {
		row, err := q.InsertReview(ctx, db.InsertReviewParams{
			OrderID:   review.OrderID,
			ProductID: review.ProductID,
			UserID:    review.UserID,
			Rating:    int32(review.Rating),
			Comment:   review.Comment,
			Images:    lo.Ternary(review.Images == nil, []string{}, review.Images),
		})
		if err != nil {
			switch {
			case hasPgCode(err, pgUniqueViolation):
				return domain.Review{}, fmt.Errorf("q.InsertReview: %w", ErrReviewExists)
			case hasPgCode(err, pgForeignKeyViolation):
				return domain.Review{}, fmt.Errorf("q.InsertReview: %w: order or user", domain.ErrNotFound)
			}
			return domain.Review{}, fmt.Errorf("q.InsertReview: %w", err)
		}

		marked, err := q.MarkOrderItemsReviewed(ctx, db.MarkOrderItemsReviewedParams{
			OrderID:   review.OrderID,
			ProductID: review.ProductID,
		})
		if err != nil {
			return domain.Review{}, fmt.Errorf("q.MarkOrderItemsReviewed: %w", err)
		}
		if marked == 0 {
			return domain.Review{}, fmt.Errorf("q.MarkOrderItemsReviewed: %w: order is not delivered or item already reviewed",
				domain.ErrInvalidState)
		}

		result := review
		result.ID = row.ID
		result.CreatedAt = row.CreatedAt

		return result, nil
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("withTx: %w", err)
	}

	return inserted, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, orderID, productID uuid.UUID) (domain.Review, error) {
	dbReview, err := r.q.GetReviewByOrderProduct(ctx, db.GetReviewByOrderProductParams{
		OrderID:   orderID,
		ProductID: productID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Review{}, fmt.Errorf("q.GetReviewByOrderProduct: %w", ErrReviewNotFound)
		}
		return domain.Review{}, fmt.Errorf("q.GetReviewByOrderProduct: %w", err)
	}

	return mapDBReviewToDomain(dbReview), nil
}

func (r *reviewRepository) ListReviewsByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Review, error) {
	dbReviews, err := r.q.ListReviewsByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("q.ListReviewsByOrder: %w", err)
	}

	return lo.Map(dbReviews, func(r db.Review, _ int) domain.Review {
		return mapDBReviewToDomain(r)
	}), nil
}

func mapDBReviewToDomain(r db.Review) domain.Review {
	return domain.Review{
		ID:        r.ID,
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    int(r.Rating),
		Comment:   r.Comment,
		Images:    r.Images,
		CreatedAt: r.CreatedAt,
	}
}

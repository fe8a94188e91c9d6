package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type SubmitReviewInput struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
	Images    []string
}

type ReviewService struct {
	orders  port.OrderRepository
	reviews port.ReviewRepository
	events  port.EventPublisher
	log     zerolog.Logger
	now     func() time.Time
}

func NewReviewService(
	orders port.OrderRepository,
	reviews port.ReviewRepository,
	events port.EventPublisher,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		orders:  orders,
		reviews: reviews,
		events:  events,
		log:     log.With().Str("component", "review_service").Logger(),
		now:     time.Now,
	}
}

// SubmitReview records one review per order and product. Only the owner of a
// delivered order may review, and each product only once.
func (s *ReviewService) SubmitReview(ctx context.Context, user domain.CurrentUser, in SubmitReviewInput) (domain.Review, error) {
	if user.IsAnonymous() {
		return domain.Review{}, fmt.Errorf("%w: sign in to review", domain.ErrAuthorization)
	}

	// an unknown order is reported the same way as someone else's order
	order, err := s.orders.GetOrder(ctx, in.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Review{}, fmt.Errorf("%w: order does not belong to user", domain.ErrAuthorization)
		}
		return domain.Review{}, fmt.Errorf("orders.GetOrder: %w", err)
	}
	if order.OwnerID != user.ID {
		return domain.Review{}, fmt.Errorf("%w: order does not belong to user", domain.ErrAuthorization)
	}

	positions := order.ItemsForProduct(in.ProductID)
	if len(positions) == 0 {
		return domain.Review{}, fmt.Errorf("%w: product %s is not in order", domain.ErrNotFound, in.ProductID)
	}

	reviewable := lo.SomeBy(positions, func(idx int) bool {
		return domain.CanReview(order, order.Items[idx])
	})
	if !reviewable {
		return domain.Review{}, fmt.Errorf("%w: product cannot be reviewed while order is %s or already reviewed",
			domain.ErrInvalidState, order.Status)
	}

	review := domain.Review{
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		UserID:    user.ID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Images:    in.Images,
	}
	if err := review.ValidateContent(); err != nil {
		return domain.Review{}, err
	}

	created, err := s.reviews.InsertReview(ctx, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("reviews.InsertReview: %w", err)
	}

	s.log.Info().
		Stringer("order_id", created.OrderID).
		Stringer("product_id", created.ProductID).
		Int("rating", created.Rating).
		Msg("review submitted")

	event := domain.NewOrderEvent(domain.OrderEventReviewSubmitted, order, s.now())
	event.ProductID = lo.ToPtr(created.ProductID)
	publish(ctx, s.events, s.log, event)

	return created, nil
}

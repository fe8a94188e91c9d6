package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type CreateOrderItem struct {
	ProductID      uuid.UUID
	Quantity       int
	Customizations []domain.CustomizationChoice
}

type CreateOrderInput struct {
	Items           []CreateOrderItem
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	CouponCode      string
	// IdempotencyKey is optional; a repeated key within its TTL is rejected.
	IdempotencyKey string
}

// OrderView is an order with its owner and the products it references resolved.
// Owner is nil and products are missing when they were deleted after checkout.
type OrderView struct {
	domain.Order
	Owner    *domain.User
	Products map[uuid.UUID]domain.Product
}

type OrderService struct {
	orders  port.OrderRepository
	catalog port.CatalogReader
	events  port.EventPublisher
	guard   port.IdempotencyGuard
	log     zerolog.Logger
	now     func() time.Time
}

func NewOrderService(
	orders port.OrderRepository,
	catalog port.CatalogReader,
	events port.EventPublisher,
	guard port.IdempotencyGuard,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:  orders,
		catalog: catalog,
		events:  events,
		guard:   guard,
		log:     log.With().Str("component", "order_service").Logger(),
		now:     time.Now,
	}
}

// CreateOrder prices the items from the current catalog and stores a pending order.
func (s *OrderService) CreateOrder(ctx context.Context, user domain.CurrentUser, in CreateOrderInput) (_ domain.Order, err error) {
	if user.IsAnonymous() {
		return domain.Order{}, fmt.Errorf("%w: sign in to place an order", domain.ErrAuthorization)
	}

	if in.IdempotencyKey != "" {
		claimed, err := s.guard.Claim(ctx, in.IdempotencyKey)
		if err != nil {
			return domain.Order{}, fmt.Errorf("guard.Claim: %w", err)
		}
		if !claimed {
			return domain.Order{}, fmt.Errorf("%w: request with this idempotency key was already processed", domain.ErrConflict)
		}

		defer func() {
			if err == nil {
				return
			}
			if releaseErr := s.guard.Release(context.WithoutCancel(ctx), in.IdempotencyKey); releaseErr != nil {
				s.log.Error().Err(releaseErr).Str("key", in.IdempotencyKey).Msg("failed to release idempotency key")
			}
		}()
	}

	order, err := s.buildOrder(ctx, user, in)
	if err != nil {
		return domain.Order{}, err
	}

	orderID, err := s.orders.InsertOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.InsertOrder: %w", err)
	}

	created, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	s.log.Info().
		Stringer("order_id", created.ID).
		Stringer("owner_id", created.OwnerID).
		Str("total", created.TotalPrice.String()).
		Msg("order created")

	s.publish(ctx, domain.NewOrderEvent(domain.OrderEventCreated, created, s.now()))

	return created, nil
}

func (s *OrderService) buildOrder(ctx context.Context, user domain.CurrentUser, in CreateOrderInput) (domain.Order, error) {
	var o domain.Order

	if len(in.Items) == 0 {
		return o, fmt.Errorf("%w: no items in order", domain.ErrValidation)
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return o, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
		}
	}
	if err := validateShippingAddress(in.ShippingAddress); err != nil {
		return o, err
	}

	paymentMethod, err := domain.ToPaymentMethod(in.PaymentMethod)
	if err != nil {
		return o, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	productIDs := lo.Map(in.Items, func(item CreateOrderItem, _ int) uuid.UUID { return item.ProductID })

	products, err := s.catalog.GetProducts(ctx, productIDs)
	if err != nil {
		return o, fmt.Errorf("catalog.GetProducts: %w", err)
	}
	byID := lo.KeyBy(products, func(p domain.Product) uuid.UUID { return p.ID })

	var orderCurrency currency.Unit
	items := make([]domain.OrderItem, 0, len(in.Items))

	for idx, item := range in.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return o, fmt.Errorf("%w: unknown product %s", domain.ErrValidation, item.ProductID)
		}

		if idx == 0 {
			orderCurrency = product.Price.Currency
		} else if product.Price.Currency != orderCurrency {
			return o, fmt.Errorf("%w: mixed currencies %s and %s", domain.ErrValidation, orderCurrency, product.Price.Currency)
		}

		unitPrice, customizations, err := domain.UnitPrice(product, item.Customizations)
		if err != nil {
			return o, fmt.Errorf("domain.UnitPrice: %w", err)
		}

		items = append(items, domain.OrderItem{
			ProductID:              product.ID,
			Quantity:               item.Quantity,
			SelectedCustomizations: customizations,
			PriceAtPurchase:        unitPrice,
		})
	}

	discountPercentage, couponCode, err := s.resolveCoupon(ctx, in.CouponCode)
	if err != nil {
		return o, err
	}

	totals, err := domain.PriceItems(items, discountPercentage)
	if err != nil {
		return o, fmt.Errorf("domain.PriceItems: %w", err)
	}

	return domain.Order{
		OwnerID:            user.ID,
		Items:              items,
		Subtotal:           totals.Subtotal,
		Discount:           totals.Discount,
		DiscountPercentage: totals.DiscountPercentage,
		TotalPrice:         totals.TotalPrice,
		Currency:           orderCurrency,
		Status:             domain.OrderStatusPending,
		PaymentMethod:      paymentMethod,
		CouponCode:         couponCode,
		ShippingAddress:    in.ShippingAddress,
	}, nil
}

func (s *OrderService) resolveCoupon(ctx context.Context, code string) (decimal.Decimal, *string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return decimal.Zero, nil, nil
	}

	coupon, err := s.catalog.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, nil, fmt.Errorf("%w: unknown coupon %s", domain.ErrValidation, code)
		}
		return decimal.Zero, nil, fmt.Errorf("catalog.GetCouponByCode: %w", err)
	}

	if !coupon.IsActive {
		return decimal.Zero, nil, fmt.Errorf("%w: coupon %s is not active", domain.ErrValidation, code)
	}

	return coupon.DiscountPercentage, &coupon.Code, nil
}

func validateShippingAddress(a domain.ShippingAddress) error {
	required := map[string]string{
		"firstName":     a.FirstName,
		"lastName":      a.LastName,
		"streetAddress": a.StreetAddress,
		"city":          a.City,
		"phone":         a.Phone,
	}

	for _, field := range []string{"firstName", "lastName", "streetAddress", "city", "phone"} {
		if strings.TrimSpace(required[field]) == "" {
			return fmt.Errorf("%w: shipping address %s is empty", domain.ErrValidation, field)
		}
	}

	return nil
}

// GetOrdersForUser returns the owner's orders split into those still awaiting
// a review and those whose every item has been reviewed.
func (s *OrderService) GetOrdersForUser(ctx context.Context, user domain.CurrentUser, ownerID uuid.UUID) (withoutReview, withReview []domain.Order, err error) {
	if user.IsAnonymous() {
		return nil, nil, fmt.Errorf("%w: sign in to view orders", domain.ErrAuthorization)
	}
	if ownerID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: owner is empty", domain.ErrValidation)
	}
	if user.ID != ownerID && !user.IsAdmin() {
		return nil, nil, fmt.Errorf("%w: orders belong to another user", domain.ErrAuthorization)
	}

	orders, err := s.orders.SearchOrders(ctx, domain.OrderFilter{OwnerIDs: []uuid.UUID{ownerID}})
	if err != nil {
		return nil, nil, fmt.Errorf("orders.SearchOrders: %w", err)
	}

	withoutReview, withReview = domain.PartitionByReview(orders)

	return withoutReview, withReview, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, user domain.CurrentUser, orderID uuid.UUID, newStatus string) (OrderView, error) {
	if !user.IsAdmin() {
		return OrderView{}, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	target, err := domain.ToOrderStatus(newStatus)
	if err != nil {
		return OrderView{}, fmt.Errorf("%w: %v %q", domain.ErrValidation, err, newStatus)
	}

	previous, err := s.orders.TransitionOrderStatus(ctx, orderID, target)
	if err != nil {
		return OrderView{}, fmt.Errorf("orders.TransitionOrderStatus: %w", err)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return OrderView{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	s.log.Info().
		Stringer("order_id", orderID).
		Str("from", string(previous)).
		Str("to", string(target)).
		Stringer("admin_id", user.ID).
		Msg("order status changed")

	event := domain.NewOrderEvent(domain.OrderEventStatusChanged, order, s.now())
	event.PreviousStatus = previous
	s.publish(ctx, event)

	views, err := s.populate(ctx, []domain.Order{order})
	if err != nil {
		return OrderView{}, fmt.Errorf("s.populate: %w", err)
	}

	return views[0], nil
}

func (s *OrderService) ListAllOrders(ctx context.Context, user domain.CurrentUser) ([]OrderView, error) {
	if !user.IsAdmin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	views, err := s.populate(ctx, orders)
	if err != nil {
		return nil, fmt.Errorf("s.populate: %w", err)
	}

	return views, nil
}

// DeleteOrder removes the order with its items and reviews.
func (s *OrderService) DeleteOrder(ctx context.Context, user domain.CurrentUser, orderID uuid.UUID) error {
	if !user.IsAdmin() {
		return fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("orders.GetOrder: %w", err)
	}

	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("orders.DeleteOrder: %w", err)
	}

	s.log.Info().Stringer("order_id", orderID).Stringer("admin_id", user.ID).Msg("order deleted")

	s.publish(ctx, domain.NewOrderEvent(domain.OrderEventDeleted, order, s.now()))

	return nil
}

func (s *OrderService) populate(ctx context.Context, orders []domain.Order) ([]OrderView, error) {
	ownerIDs := lo.Uniq(lo.Map(orders, func(o domain.Order, _ int) uuid.UUID { return o.OwnerID }))
	productIDs := lo.Uniq(lo.FlatMap(orders, func(o domain.Order, _ int) []uuid.UUID {
		return lo.Map(o.Items, func(item domain.OrderItem, _ int) uuid.UUID { return item.ProductID })
	}))

	users, err := s.catalog.GetUsers(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetUsers: %w", err)
	}
	products, err := s.catalog.GetProducts(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetProducts: %w", err)
	}

	usersByID := lo.KeyBy(users, func(u domain.User) uuid.UUID { return u.ID })
	productsByID := lo.KeyBy(products, func(p domain.Product) uuid.UUID { return p.ID })

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{
			Order:    o,
			Products: make(map[uuid.UUID]domain.Product, len(o.Items)),
		}
		if owner, ok := usersByID[o.OwnerID]; ok {
			view.Owner = &owner
		}
		for _, item := range o.Items {
			if p, ok := productsByID[item.ProductID]; ok {
				view.Products[item.ProductID] = p
			}
		}
		views = append(views, view)
	}

	return views, nil
}

// publish never fails the caller: the change is already committed.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	publish(ctx, s.events, s.log, event)
}

func publish(ctx context.Context, events port.EventPublisher, log zerolog.Logger, event domain.OrderEvent) {
	if err := events.Publish(ctx, event); err != nil {
		log.Error().Err(err).
			Str("event", string(event.Type)).
			Stringer("order_id", event.OrderID).
			Msg("failed to publish order event")
	}
}

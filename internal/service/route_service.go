package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type RouteInput struct {
	City         string
	DeliveryDate *time.Time
	Status       string
}

type RouteService struct {
	orders port.OrderRepository
	routes port.DeliveryRouteRepository
	events port.EventPublisher
	log    zerolog.Logger
	now    func() time.Time

	// strict rejects assignments to routes that are already shipped or delivered.
	strict bool
}

func NewRouteService(
	orders port.OrderRepository,
	routes port.DeliveryRouteRepository,
	events port.EventPublisher,
	log zerolog.Logger,
	strictEligibility bool,
) *RouteService {
	return &RouteService{
		orders: orders,
		routes: routes,
		events: events,
		log:    log.With().Str("component", "route_service").Logger(),
		now:    time.Now,
		strict: strictEligibility,
	}
}

// Assign binds the order to the route and snapshots the route's delivery date.
// A requestedDate, when given, must match the route's date.
func (s *RouteService) Assign(ctx context.Context, user domain.CurrentUser, orderID, routeID uuid.UUID, requestedDate *time.Time) (domain.Order, error) {
	if !user.IsAdmin() {
		return domain.Order{}, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	route, err := s.routes.GetRoute(ctx, routeID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("routes.GetRoute: %w", err)
	}

	if route.DeliveryDate == nil {
		return domain.Order{}, fmt.Errorf("%w: route %s has no delivery date", domain.ErrValidation, route.ID)
	}
	deliveryDate := domain.DateOf(*route.DeliveryDate)

	if requestedDate != nil && !domain.SameDate(*requestedDate, deliveryDate) {
		return domain.Order{}, fmt.Errorf("%w: delivery date %s does not match route date %s",
			domain.ErrValidation, requestedDate.Format(time.DateOnly), deliveryDate.Format(time.DateOnly))
	}

	if s.strict && !route.AcceptsAssignments() {
		return domain.Order{}, fmt.Errorf("%w: route %s is %s", domain.ErrInvalidState, route.ID, route.Status)
	}

	if err := s.orders.SetDeliveryRoute(ctx, orderID, &route.ID, &deliveryDate); err != nil {
		return domain.Order{}, fmt.Errorf("orders.SetDeliveryRoute: %w", err)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	s.log.Info().
		Stringer("order_id", orderID).
		Stringer("route_id", routeID).
		Str("delivery_date", deliveryDate.Format(time.DateOnly)).
		Msg("order assigned to route")

	publish(ctx, s.events, s.log, domain.NewOrderEvent(domain.OrderEventRouteAssigned, order, s.now()))

	return order, nil
}

func (s *RouteService) Unassign(ctx context.Context, user domain.CurrentUser, orderID uuid.UUID) (domain.Order, error) {
	if !user.IsAdmin() {
		return domain.Order{}, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	if err := s.orders.SetDeliveryRoute(ctx, orderID, nil, nil); err != nil {
		return domain.Order{}, fmt.Errorf("orders.SetDeliveryRoute: %w", err)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	s.log.Info().Stringer("order_id", orderID).Msg("order removed from route")

	publish(ctx, s.events, s.log, domain.NewOrderEvent(domain.OrderEventRouteUnassigned, order, s.now()))

	return order, nil
}

func (s *RouteService) EligibleRoutes(ctx context.Context, user domain.CurrentUser) ([]domain.DeliveryRoute, error) {
	return s.ListRoutes(ctx, user, true)
}

func (s *RouteService) ListRoutes(ctx context.Context, user domain.CurrentUser, eligibleOnly bool) ([]domain.DeliveryRoute, error) {
	if !user.IsAdmin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	routes, err := s.routes.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("routes.ListRoutes: %w", err)
	}

	return lo.Ternary(eligibleOnly, domain.EligibleRoutes(routes), routes), nil
}

func (s *RouteService) CreateRoute(ctx context.Context, user domain.CurrentUser, in RouteInput) (domain.DeliveryRoute, error) {
	if !user.IsAdmin() {
		return domain.DeliveryRoute{}, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	route, err := buildRoute(uuid.Nil, in)
	if err != nil {
		return domain.DeliveryRoute{}, err
	}

	routeID, err := s.routes.InsertRoute(ctx, route)
	if err != nil {
		return domain.DeliveryRoute{}, fmt.Errorf("routes.InsertRoute: %w", err)
	}

	created, err := s.routes.GetRoute(ctx, routeID)
	if err != nil {
		return domain.DeliveryRoute{}, fmt.Errorf("routes.GetRoute: %w", err)
	}

	s.log.Info().Stringer("route_id", routeID).Str("city", created.City).Msg("route created")

	return created, nil
}

// UpdateRoute overwrites the route. Orders already assigned keep their date snapshot.
func (s *RouteService) UpdateRoute(ctx context.Context, user domain.CurrentUser, routeID uuid.UUID, in RouteInput) (domain.DeliveryRoute, error) {
	if !user.IsAdmin() {
		return domain.DeliveryRoute{}, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	route, err := buildRoute(routeID, in)
	if err != nil {
		return domain.DeliveryRoute{}, err
	}

	if err := s.routes.UpdateRoute(ctx, route); err != nil {
		return domain.DeliveryRoute{}, fmt.Errorf("routes.UpdateRoute: %w", err)
	}

	updated, err := s.routes.GetRoute(ctx, routeID)
	if err != nil {
		return domain.DeliveryRoute{}, fmt.Errorf("routes.GetRoute: %w", err)
	}

	s.log.Info().Stringer("route_id", routeID).Str("status", string(updated.Status)).Msg("route updated")

	return updated, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, user domain.CurrentUser, routeID uuid.UUID) error {
	if !user.IsAdmin() {
		return fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	if err := s.routes.DeleteRoute(ctx, routeID); err != nil {
		return fmt.Errorf("routes.DeleteRoute: %w", err)
	}

	s.log.Info().Stringer("route_id", routeID).Msg("route deleted")

	return nil
}

func buildRoute(routeID uuid.UUID, in RouteInput) (domain.DeliveryRoute, error) {
	route := domain.DeliveryRoute{
		ID:     routeID,
		City:   in.City,
		Status: domain.RouteStatus(lo.CoalesceOrEmpty(in.Status, string(domain.RouteStatusPending))),
	}
	if in.DeliveryDate != nil {
		route.DeliveryDate = lo.ToPtr(domain.DateOf(*in.DeliveryDate))
	}

	if err := route.Validate(); err != nil {
		return domain.DeliveryRoute{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return route, nil
}

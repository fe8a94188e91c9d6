package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/service"
)

type fakeUsers map[uuid.UUID]domain.User

func (f fakeUsers) GetUser(_ context.Context, userID uuid.UUID) (domain.User, error) {
	u, ok := f[userID]
	if !ok {
		return domain.User{}, fmt.Errorf("user %w", domain.ErrNotFound)
	}
	return u, nil
}

func (f fakeUsers) GetUsers(_ context.Context, userIDs []uuid.UUID) ([]domain.User, error) {
	var result []domain.User
	for _, id := range userIDs {
		if u, ok := f[id]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

type fakeOrderService struct {
	createOrder       func(user domain.CurrentUser, in service.CreateOrderInput) (domain.Order, error)
	getOrdersForUser  func(user domain.CurrentUser, ownerID uuid.UUID) ([]domain.Order, []domain.Order, error)
	updateOrderStatus func(user domain.CurrentUser, orderID uuid.UUID, status string) (service.OrderView, error)
	listAllOrders     func(user domain.CurrentUser) ([]service.OrderView, error)
	deleteOrder       func(user domain.CurrentUser, orderID uuid.UUID) error
}

func (f fakeOrderService) CreateOrder(_ context.Context, user domain.CurrentUser, in service.CreateOrderInput) (domain.Order, error) {
	return f.createOrder(user, in)
}

func (f fakeOrderService) GetOrdersForUser(_ context.Context, user domain.CurrentUser, ownerID uuid.UUID) ([]domain.Order, []domain.Order, error) {
	return f.getOrdersForUser(user, ownerID)
}

func (f fakeOrderService) UpdateOrderStatus(_ context.Context, user domain.CurrentUser, orderID uuid.UUID, status string) (service.OrderView, error) {
	return f.updateOrderStatus(user, orderID, status)
}

func (f fakeOrderService) ListAllOrders(_ context.Context, user domain.CurrentUser) ([]service.OrderView, error) {
	return f.listAllOrders(user)
}

func (f fakeOrderService) DeleteOrder(_ context.Context, user domain.CurrentUser, orderID uuid.UUID) error {
	return f.deleteOrder(user, orderID)
}

type fakeRouteService struct {
	assign      func(user domain.CurrentUser, orderID, routeID uuid.UUID, requestedDate *time.Time) (domain.Order, error)
	unassign    func(user domain.CurrentUser, orderID uuid.UUID) (domain.Order, error)
	listRoutes  func(user domain.CurrentUser, eligibleOnly bool) ([]domain.DeliveryRoute, error)
	createRoute func(user domain.CurrentUser, in service.RouteInput) (domain.DeliveryRoute, error)
	updateRoute func(user domain.CurrentUser, routeID uuid.UUID, in service.RouteInput) (domain.DeliveryRoute, error)
	deleteRoute func(user domain.CurrentUser, routeID uuid.UUID) error
}

func (f fakeRouteService) Assign(_ context.Context, user domain.CurrentUser, orderID, routeID uuid.UUID, requestedDate *time.Time) (domain.Order, error) {
	return f.assign(user, orderID, routeID, requestedDate)
}

func (f fakeRouteService) Unassign(_ context.Context, user domain.CurrentUser, orderID uuid.UUID) (domain.Order, error) {
	return f.unassign(user, orderID)
}

func (f fakeRouteService) ListRoutes(_ context.Context, user domain.CurrentUser, eligibleOnly bool) ([]domain.DeliveryRoute, error) {
	return f.listRoutes(user, eligibleOnly)
}

func (f fakeRouteService) CreateRoute(_ context.Context, user domain.CurrentUser, in service.RouteInput) (domain.DeliveryRoute, error) {
	return f.createRoute(user, in)
}

func (f fakeRouteService) UpdateRoute(_ context.Context, user domain.CurrentUser, routeID uuid.UUID, in service.RouteInput) (domain.DeliveryRoute, error) {
	return f.updateRoute(user, routeID, in)
}

func (f fakeRouteService) DeleteRoute(_ context.Context, user domain.CurrentUser, routeID uuid.UUID) error {
	return f.deleteRoute(user, routeID)
}

type fakeReviewService func(user domain.CurrentUser, in service.SubmitReviewInput) (domain.Review, error)

func (f fakeReviewService) SubmitReview(_ context.Context, user domain.CurrentUser, in service.SubmitReviewInput) (domain.Review, error) {
	return f(user, in)
}

type fakeStatsService func(user domain.CurrentUser) (domain.Stats, time.Time, error)

func (f fakeStatsService) GetStats(_ context.Context, user domain.CurrentUser) (domain.Stats, time.Time, error) {
	return f(user)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

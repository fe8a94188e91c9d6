package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
)

type OrderRepository interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)

	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)

	InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error)

	// TransitionOrderStatus locks the order, checks the move against the
	// status machine and writes it in one transaction. It returns the
	// status the order had before the change.
	TransitionOrderStatus(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus) (domain.OrderStatus, error)

	// SetDeliveryRoute writes the route and date together. Both nil clears the assignment.
	SetDeliveryRoute(ctx context.Context, orderID uuid.UUID, routeID *uuid.UUID, deliveryDate *time.Time) error

	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

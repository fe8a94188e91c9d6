package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
)

type DeliveryRouteRepository interface {
	GetRoute(ctx context.Context, routeID uuid.UUID) (domain.DeliveryRoute, error)
	ListRoutes(ctx context.Context) ([]domain.DeliveryRoute, error)

	InsertRoute(ctx context.Context, route domain.DeliveryRoute) (uuid.UUID, error)
	UpdateRoute(ctx context.Context, route domain.DeliveryRoute) error

	// DeleteRoute clears the route from every order referencing it before deleting it.
	DeleteRoute(ctx context.Context, routeID uuid.UUID) error
}

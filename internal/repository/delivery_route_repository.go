package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/backoffice/internal/db"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/samber/lo"
)

type deliveryRouteRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewDeliveryRoute(pool *pgxpool.Pool) port.DeliveryRouteRepository {
	return &deliveryRouteRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func NewDeliveryRouteWithTx(tx pgx.Tx) port.DeliveryRouteRepository {
	return &deliveryRouteRepository{
		q:    db.New(tx),
		dbtx: tx,
	}
}

func (r *deliveryRouteRepository) GetRoute(ctx context.Context, routeID uuid.UUID) (domain.DeliveryRoute, error) {
	dbRoute, err := r.q.GetDeliveryRoute(ctx, routeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DeliveryRoute{}, fmt.Errorf("q.GetDeliveryRoute: %w", ErrRouteNotFound)
		}
		return domain.DeliveryRoute{}, fmt.Errorf("q.GetDeliveryRoute: %w", err)
	}

	route, err := mapDBDeliveryRouteToDomain(dbRoute)
	if err != nil {
		return domain.DeliveryRoute{}, fmt.Errorf("mapDBDeliveryRouteToDomain: %w", err)
	}

	return route, nil
}

func (r *deliveryRouteRepository) ListRoutes(ctx context.Context) ([]domain.DeliveryRoute, error) {
	dbRoutes, err := r.q.ListDeliveryRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListDeliveryRoutes: %w", err)
	}

	routes := make([]domain.DeliveryRoute, 0, len(dbRoutes))
	for _, dbRoute := range dbRoutes {
		route, err := mapDBDeliveryRouteToDomain(dbRoute)
		if err != nil {
			return nil, fmt.Errorf("mapDBDeliveryRouteToDomain[%s]: %w", dbRoute.ID, err)
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func (r *deliveryRouteRepository) InsertRoute(ctx context.Context, route domain.DeliveryRoute) (uuid.UUID, error) {
	if err := route.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("route.Validate: %w", err)
	}

	routeID, err := r.q.InsertDeliveryRoute(ctx, db.InsertDeliveryRouteParams{
		City:         route.City,
		DeliveryDate: dateOrNil(route.DeliveryDate),
		Status:       string(route.Status),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertDeliveryRoute: %w", err)
	}

	return routeID, nil
}

func (r *deliveryRouteRepository) UpdateRoute(ctx context.Context, route domain.DeliveryRoute) error {
	if route.ID == uuid.Nil {
		return errors.New("routeID is empty")
	}
	if err := route.Validate(); err != nil {
		return fmt.Errorf("route.Validate: %w", err)
	}

	cmdTag, err := r.q.UpdateDeliveryRoute(ctx, db.UpdateDeliveryRouteParams{
		ID:           route.ID,
		City:         route.City,
		DeliveryDate: dateOrNil(route.DeliveryDate),
		Status:       string(route.Status),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateDeliveryRoute: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.UpdateDeliveryRoute: %w", ErrRouteNotFound)
	}

	return nil
}

func (r *deliveryRouteRepository) DeleteRoute(ctx context.Context, routeID uuid.UUID) error {
	if routeID == uuid.Nil {
		return errors.New("routeID is empty")
	}

	if err := execTx(ctx, r.dbtx, func(q *db.Queries) error {
		// Assignments to this route wait on the row lock until the delete commits.
		if _, err := q.LockDeliveryRoute(ctx, routeID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("q.LockDeliveryRoute: %w", ErrRouteNotFound)
			}
			return fmt.Errorf("q.LockDeliveryRoute: %w", err)
		}

		if _, err := q.ClearDeliveryRouteFromOrders(ctx, routeID); err != nil {
			return fmt.Errorf("q.ClearDeliveryRouteFromOrders: %w", err)
		}

		cmdTag, err := q.DeleteDeliveryRoute(ctx, routeID)
		if err != nil {
			return fmt.Errorf("q.DeleteDeliveryRoute: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("q.DeleteDeliveryRoute: %w", ErrRouteNotFound)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapDBDeliveryRouteToDomain(dbRoute db.DeliveryRoute) (domain.DeliveryRoute, error) {
	status, err := domain.ToRouteStatus(dbRoute.Status)
	if err != nil {
		return domain.DeliveryRoute{}, fmt.Errorf("domain.ToRouteStatus[%s]: %w", dbRoute.Status, err)
	}

	return domain.DeliveryRoute{
		ID:           dbRoute.ID,
		City:         dbRoute.City,
		DeliveryDate: dbRoute.DeliveryDate,
		Status:       status,
		CreatedAt:    dbRoute.CreatedAt,
		UpdatedAt:    dbRoute.UpdatedAt,
	}, nil
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return lo.ToPtr(domain.DateOf(*t))
}

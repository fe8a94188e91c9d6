package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/nikolayk812/backoffice/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/time/rate"
)

type OrderService interface {
	CreateOrder(ctx context.Context, user domain.CurrentUser, in service.CreateOrderInput) (domain.Order, error)
	GetOrdersForUser(ctx context.Context, user domain.CurrentUser, ownerID uuid.UUID) (withoutReview, withReview []domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, user domain.CurrentUser, orderID uuid.UUID, newStatus string) (service.OrderView, error)
	ListAllOrders(ctx context.Context, user domain.CurrentUser) ([]service.OrderView, error)
	DeleteOrder(ctx context.Context, user domain.CurrentUser, orderID uuid.UUID) error
}

type RouteService interface {
	Assign(ctx context.Context, user domain.CurrentUser, orderID, routeID uuid.UUID, requestedDate *time.Time) (domain.Order, error)
	Unassign(ctx context.Context, user domain.CurrentUser, orderID uuid.UUID) (domain.Order, error)
	ListRoutes(ctx context.Context, user domain.CurrentUser, eligibleOnly bool) ([]domain.DeliveryRoute, error)
	CreateRoute(ctx context.Context, user domain.CurrentUser, in service.RouteInput) (domain.DeliveryRoute, error)
	UpdateRoute(ctx context.Context, user domain.CurrentUser, routeID uuid.UUID, in service.RouteInput) (domain.DeliveryRoute, error)
	DeleteRoute(ctx context.Context, user domain.CurrentUser, routeID uuid.UUID) error
}

type ReviewService interface {
	SubmitReview(ctx context.Context, user domain.CurrentUser, in service.SubmitReviewInput) (domain.Review, error)
}

type StatsService interface {
	GetStats(ctx context.Context, user domain.CurrentUser) (domain.Stats, time.Time, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	orders  OrderService
	routes  RouteService
	reviews ReviewService
	stats   StatsService
	db      Pinger
}

func NewHandler(orders OrderService, routes RouteService, reviews ReviewService, stats StatsService, db Pinger) *Handler {
	return &Handler{
		orders:  orders,
		routes:  routes,
		reviews: reviews,
		stats:   stats,
		db:      db,
	}
}

// NewRouter wires the API. statsLimiter throttles the statistics endpoint, which scans every collection.
func NewRouter(h *Handler, users port.UserReader, log zerolog.Logger, statsLimiter *rate.Limiter) http.Handler {
	r := chi.NewRouter()

	r.Use(hlog.NewHandler(log))
	r.Use(hlog.RequestIDHandler("request_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(currentUser(users))

		r.Get("/orders", h.GetOrdersForUser)
		r.Post("/orders", h.CreateOrder)
		r.Patch("/orders/{id}", h.UpdateOrderStatus)

		r.Post("/reviews", h.SubmitReview)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)

			r.Get("/orders", h.ListAllOrders)
			r.Patch("/orders", h.AssignRoute)
			r.Delete("/orders/{id}", h.DeleteOrder)

			r.Get("/routes", h.ListRoutes)
			r.Post("/routes", h.CreateRoute)
			r.Patch("/routes/{id}", h.UpdateRoute)
			r.Delete("/routes/{id}", h.DeleteRoute)

			r.With(rateLimit(statsLimiter)).Get("/stats", h.GetStats)
		})
	})

	return r
}

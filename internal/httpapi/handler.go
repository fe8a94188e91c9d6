package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/service"
	"github.com/samber/lo"
)

const idempotencyKeyHeader = "Idempotency-Key"

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			writeError(w, r, fmt.Errorf("db.Ping: %w", err))
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), userFromContext(r.Context()), req.toInput(r.Header.Get(idempotencyKeyHeader)))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"order":   mapOrderToResponse(order),
	})
}

// GetOrdersForUser lists the owner's orders split by review state.
func (h *Handler) GetOrdersForUser(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	ownerID := user.ID
	if raw := r.URL.Query().Get("owner"); raw != "" {
		var err error
		if ownerID, err = parseUUID("owner", raw); err != nil {
			writeError(w, r, err)
			return
		}
	}

	withoutReview, withReview, err := h.orders.GetOrdersForUser(r.Context(), user, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":             true,
		"ordersWithoutReview": mapOrdersToResponse(withoutReview),
		"ordersWithReview":    mapOrdersToResponse(withReview),
	})
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.orders.UpdateOrderStatus(r.Context(), userFromContext(r.Context()), orderID, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   mapOrderViewToResponse(view),
	})
}

func (h *Handler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.orders.ListAllOrders(r.Context(), userFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(views),
		"orders":  lo.Map(views, func(v service.OrderView, _ int) populatedOrderResponse { return mapOrderViewToResponse(v) }),
	})
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), userFromContext(r.Context()), orderID); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// AssignRoute adds an order to a delivery route or removes it, depending on the action.
func (h *Handler) AssignRoute(w http.ResponseWriter, r *http.Request) {
	var req routeAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.OrderID == uuid.Nil {
		writeError(w, r, fmt.Errorf("%w: orderId is required", domain.ErrValidation))
		return
	}

	user := userFromContext(r.Context())

	var (
		order domain.Order
		err   error
	)

	switch req.Action {
	case "add":
		routeID, parseErr := parseUUID("routeId", req.RouteID)
		if parseErr != nil {
			writeError(w, r, parseErr)
			return
		}

		if req.DeliveryDate == "" {
			writeError(w, r, fmt.Errorf("%w: deliveryDate is required", domain.ErrValidation))
			return
		}

		date, parseErr := domain.ParseDeliveryDate(req.DeliveryDate)
		if parseErr != nil {
			writeError(w, r, parseErr)
			return
		}

		order, err = h.routes.Assign(r.Context(), user, req.OrderID, routeID, &date)
	case "remove":
		order, err = h.routes.Unassign(r.Context(), user, req.OrderID)
	default:
		err = fmt.Errorf("%w: unknown action %q", domain.ErrValidation, req.Action)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   mapOrderToResponse(order),
	})
}

func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	eligibleOnly := false
	if raw := r.URL.Query().Get("eligible"); raw != "" {
		var err error
		if eligibleOnly, err = strconv.ParseBool(raw); err != nil {
			writeError(w, r, fmt.Errorf("%w: eligible must be a boolean", domain.ErrValidation))
			return
		}
	}

	routes, err := h.routes.ListRoutes(r.Context(), userFromContext(r.Context()), eligibleOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(routes),
		"routes":  lo.Map(routes, func(route domain.DeliveryRoute, _ int) routeResponse { return mapRouteToResponse(route) }),
	})
}

func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	in, err := decodeRouteInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	route, err := h.routes.CreateRoute(r.Context(), userFromContext(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"route":   mapRouteToResponse(route),
	})
}

func (h *Handler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	in, err := decodeRouteInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	route, err := h.routes.UpdateRoute(r.Context(), userFromContext(r.Context()), routeID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"route":   mapRouteToResponse(route),
	})
}

func (h *Handler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.routes.DeleteRoute(r.Context(), userFromContext(r.Context()), routeID); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.reviews.SubmitReview(r.Context(), userFromContext(r.Context()), service.SubmitReviewInput{
		OrderID:   req.Order,
		ProductID: req.Product,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Images:    req.Images,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"review":  mapReviewToResponse(review),
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, at, err := h.stats.GetStats(r.Context(), userFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"data":      mapStatsToResponse(stats),
		"timestamp": at,
	})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json: %v", domain.ErrValidation, err)
	}
	return nil
}

func decodeRouteInput(r *http.Request) (service.RouteInput, error) {
	var req routeRequest
	if err := decodeJSON(r, &req); err != nil {
		return service.RouteInput{}, err
	}

	in := service.RouteInput{City: req.City, Status: req.Status}
	if req.DeliveryDate != "" {
		date, err := domain.ParseDeliveryDate(req.DeliveryDate)
		if err != nil {
			return service.RouteInput{}, err
		}
		in.DeliveryDate = &date
	}

	return in, nil
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", domain.ErrValidation, field)
	}
	return id, nil
}

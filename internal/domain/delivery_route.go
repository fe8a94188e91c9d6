package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RouteStatus string

const (
	RouteStatusPending    RouteStatus = "pending"
	RouteStatusProcessing RouteStatus = "processing"
	RouteStatusShipped    RouteStatus = "shipped"
	RouteStatusDelivered  RouteStatus = "delivered"
)

var validRouteStatuses = map[RouteStatus]struct{}{
	RouteStatusPending:    {},
	RouteStatusProcessing: {},
	RouteStatusShipped:    {},
	RouteStatusDelivered:  {},
}

func ToRouteStatus(s string) (RouteStatus, error) {
	status := RouteStatus(s)
	if _, ok := validRouteStatuses[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid route status")
}

type DeliveryRoute struct {
	ID           uuid.UUID
	City         string
	DeliveryDate *time.Time
	Status       RouteStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsAssignments reports whether new orders may be attached to the route.
func (r DeliveryRoute) AcceptsAssignments() bool {
	return r.Status != RouteStatusShipped && r.Status != RouteStatusDelivered
}

func (r DeliveryRoute) Validate() error {
	if r.City == "" {
		return errors.New("city is empty")
	}
	if _, err := ToRouteStatus(string(r.Status)); err != nil {
		return err
	}
	return nil
}

// EligibleRoutes keeps the routes that still accept assignments.
func EligibleRoutes(routes []DeliveryRoute) []DeliveryRoute {
	result := make([]DeliveryRoute, 0, len(routes))
	for _, r := range routes {
		if r.AcceptsAssignments() {
			result = append(result, r)
		}
	}
	return result
}

// ParseDeliveryDate accepts a calendar date or an RFC 3339 timestamp and
// truncates it to a UTC calendar date.
func ParseDeliveryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: delivery date is empty", ErrValidation)
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: invalid delivery date format %q", ErrValidation, s)
}

func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

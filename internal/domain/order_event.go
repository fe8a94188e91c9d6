package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderEventType string

const (
	OrderEventCreated         OrderEventType = "created"
	OrderEventStatusChanged   OrderEventType = "status_changed"
	OrderEventRouteAssigned   OrderEventType = "route_assigned"
	OrderEventRouteUnassigned OrderEventType = "route_unassigned"
	OrderEventReviewSubmitted OrderEventType = "review_submitted"
	OrderEventDeleted         OrderEventType = "deleted"
)

// OrderEvent is emitted after a committed change to an order.
type OrderEvent struct {
	Type            OrderEventType
	OrderID         uuid.UUID
	OwnerID         uuid.UUID
	Status          OrderStatus
	PreviousStatus  OrderStatus
	DeliveryRouteID *uuid.UUID
	DeliveryDate    *time.Time
	ProductID       *uuid.UUID
	OccurredAt      time.Time
}

func NewOrderEvent(typ OrderEventType, order Order, now time.Time) OrderEvent {
	return OrderEvent{
		Type:            typ,
		OrderID:         order.ID,
		OwnerID:         order.OwnerID,
		Status:          order.Status,
		DeliveryRouteID: order.DeliveryRouteID,
		DeliveryDate:    order.DeliveryDate,
		OccurredAt:      now,
	}
}

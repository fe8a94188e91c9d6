package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Order struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Items   []OrderItem

	Subtotal           decimal.Decimal
	Discount           decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalPrice         decimal.Decimal
	Currency           currency.Unit

	Status        OrderStatus
	PaymentMethod PaymentMethod
	CouponCode    *string

	// DeliveryDate is a snapshot of the route's date taken at assignment.
	// Both fields are set or cleared together.
	DeliveryRouteID *uuid.UUID
	DeliveryDate    *time.Time

	ShippingAddress ShippingAddress

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ProductID              uuid.UUID
	Quantity               int
	SelectedCustomizations []Customization
	// PriceAtPurchase is the unit price including customization extras.
	PriceAtPurchase decimal.Decimal
	IsReviewed      bool
}

type Customization struct {
	Type       string
	Option     string
	ExtraPrice decimal.Decimal
}

type ShippingAddress struct {
	FirstName     string
	LastName      string
	StreetAddress string
	City          string
	PostalCode    string
	Phone         string
	Email         string
	Notes         string
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CanReview is recomputed on every read and never stored.
func CanReview(order Order, item OrderItem) bool {
	return order.Status == OrderStatusDelivered && !item.IsReviewed
}

func (o Order) FullyReviewed() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, item := range o.Items {
		if !item.IsReviewed {
			return false
		}
	}
	return true
}

// ItemsForProduct returns the positions of the items referencing productID.
func (o Order) ItemsForProduct(productID uuid.UUID) []int {
	var positions []int
	for idx, item := range o.Items {
		if item.ProductID == productID {
			positions = append(positions, idx)
		}
	}
	return positions
}

func (o Order) HasDeliveryRoute() bool {
	return o.DeliveryRouteID != nil
}

// PartitionByReview splits orders into those with at least one unreviewed
// item and those whose every item has been reviewed.
func PartitionByReview(orders []Order) (withoutReview, withReview []Order) {
	withoutReview = make([]Order, 0, len(orders))
	withReview = make([]Order, 0)

	for _, o := range orders {
		if o.FullyReviewed() {
			withReview = append(withReview, o)
			continue
		}
		withoutReview = append(withoutReview, o)
	}

	return withoutReview, withReview
}

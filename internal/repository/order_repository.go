package repository

import (
	"context"
	"encoding/json"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return newOrderRepository(pool)
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return newOrderRepository(tx)
}

func newOrderRepository(dbtx db.DBTX) *orderRepository {
	return &orderRepository{
		q:    db.New(dbtx),
		dbtx: dbtx,
	}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	order, err := withTx(ctx, r.dbtx, func(q *db.Queries) (domain.Order, error) {
		var o domain.Order

		dbOrder, err := q.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return o, fmt.Errorf("q.GetOrder: %w", ErrOrderNotFound)
			}
			return o, fmt.Errorf("q.GetOrder: %w", err)
		}

		dbOrderItems, err := q.GetOrderItems(ctx, orderID)
		if err != nil {
			return o, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		o, err = mapDBOrderToDomain(dbOrder, dbOrderItems)
		if err != nil {
			return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}

		return o, nil
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("withTx: %w", err)
	}

	return order, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	if len(order.Items) == 0 {
		return uuid.Nil, errors.New("no items in order")
	}
	if order.OwnerID == uuid.Nil {
		return uuid.Nil, errors.New("ownerID is empty")
	}

	shippingAddress, err := json.Marshal(mapDomainShippingAddressToRecord(order.ShippingAddress))
	if err != nil {
		return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
	}

	orderID, err := withTx(ctx, r.dbtx, func(q *db.Queries) (uuid.UUID, error) {
		orderID, err := q.InsertOrder(ctx, db.InsertOrderParams{
			OwnerID:            order.OwnerID,
			Subtotal:           order.Subtotal,
			Discount:           order.Discount,
			DiscountPercentage: order.DiscountPercentage,
			TotalPrice:         order.TotalPrice,
			Currency:           order.Currency.String(),
			PaymentMethod:      string(lo.CoalesceOrEmpty(order.PaymentMethod, domain.PaymentMethodCOD)),
			CouponCode:         order.CouponCode,
			ShippingAddress:    shippingAddress,
		})
		if err != nil {
			if hasPgCode(err, pgForeignKeyViolation) {
				return uuid.Nil, fmt.Errorf("q.InsertOrder: %w", ErrUserNotFound)
			}
			return uuid.Nil, fmt.Errorf("q.InsertOrder: %w", err)
		}

		// TODO: switch to CopyFrom once orders carry more than a handful of items
		for position, item := range order.Items {
			customizations, err := json.Marshal(mapDomainCustomizationsToRecords(item.SelectedCustomizations))
			if err != nil {
				return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
			}

			arg := db.InsertOrderItemParams{
				OrderID:         orderID,
				Position:        int32(position),
				ProductID:       item.ProductID,
				Quantity:        int32(item.Quantity),
				Customizations:  customizations,
				PriceAtPurchase: item.PriceAtPurchase,
			}
			if err := q.InsertOrderItem(ctx, arg); err != nil {
				return uuid.Nil, fmt.Errorf("q.InsertOrderItem: %w", err)
			}
		}

		return orderID, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("withTx: %w", err)
	}

	return orderID, nil
}

func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	dbOrders, err := r.q.SearchOrders(ctx, mapDomainOrderFilterToDBFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("q.SearchOrders: %w", err)
	}

	orders, err := r.withItems(ctx, dbOrders)
	if err != nil {
		return nil, fmt.Errorf("r.withItems: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	dbOrders, err := r.q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders, err := r.withItems(ctx, dbOrders)
	if err != nil {
		return nil, fmt.Errorf("r.withItems: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) TransitionOrderStatus(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus) (domain.OrderStatus, error) {
	if orderID == uuid.Nil {
		return "", errors.New("orderID is empty")
	}
	if target == "" {
		return "", errors.New("status is empty")
	}

	previous, err := withTx(ctx, r.dbtx, func(q *db.Queries) (domain.OrderStatus, error) {
		dbOrder, err := q.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", fmt.Errorf("q.GetOrderForUpdate: %w", ErrOrderNotFound)
			}
			return "", fmt.Errorf("q.GetOrderForUpdate: %w", err)
		}

		current, err := domain.ToOrderStatus(dbOrder.Status)
		if err != nil {
			return "", fmt.Errorf("domain.ToOrderStatus[%s]: %w", dbOrder.Status, err)
		}

		if _, err := current.Transition(target); err != nil {
			return "", err
		}

		cmdTag, err := q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
			ID:     orderID,
			Status: string(target),
		})
		if err != nil {
			return "", fmt.Errorf("q.UpdateOrderStatus: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return "", fmt.Errorf("q.UpdateOrderStatus: %w", ErrOrderNotFound)
		}

		return current, nil
	})
	if err != nil {
		return "", fmt.Errorf("withTx: %w", err)
	}

	return previous, nil
}

func (r *orderRepository) SetDeliveryRoute(ctx context.Context, orderID uuid.UUID, routeID *uuid.UUID, deliveryDate *time.Time) error {
	if orderID == uuid.Nil {
		return errors.New("orderID is empty")
	}
	if (routeID == nil) != (deliveryDate == nil) {
		return errors.New("route and delivery date must be set together")
	}

	cmdTag, err := r.q.SetOrderDeliveryRoute(ctx, db.SetOrderDeliveryRouteParams{
		DeliveryRouteID: routeID,
		DeliveryDate:    dateOrNil(deliveryDate),
		ID:              orderID,
	})
	if err != nil {
		if hasPgCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("q.SetOrderDeliveryRoute: %w", ErrRouteNotFound)
		}
		return fmt.Errorf("q.SetOrderDeliveryRoute: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.SetOrderDeliveryRoute: %w", ErrOrderNotFound)
	}

	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errors.New("orderID is empty")
	}

	if err := execTx(ctx, r.dbtx, func(q *db.Queries) error {
		if _, err := q.DeleteOrderItems(ctx, orderID); err != nil {
			return fmt.Errorf("q.DeleteOrderItems: %w", err)
		}

		cmdTag, err := q.DeleteOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("q.DeleteOrder: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("q.DeleteOrder: %w", ErrOrderNotFound)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

// withItems loads the items of all orders with one query and keeps the order of dbOrders.
func (r *orderRepository) withItems(ctx context.Context, dbOrders []db.Order) ([]domain.Order, error) {
	if len(dbOrders) == 0 {
		return []domain.Order{}, nil
	}

	orderIDs := lo.Map(dbOrders, func(o db.Order, _ int) uuid.UUID { return o.ID })

	dbItems, err := r.q.GetOrderItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("q.GetOrderItemsByOrderIDs: %w", err)
	}

	itemsByOrder := lo.GroupBy(dbItems, func(item db.OrderItem) uuid.UUID { return item.OrderID })

	orders := make([]domain.Order, 0, len(dbOrders))
	for _, dbOrder := range dbOrders {
		order, err := mapDBOrderToDomain(dbOrder, itemsByOrder[dbOrder.ID])
		if err != nil {
			return nil, fmt.Errorf("mapDBOrderToDomain[%s]: %w", dbOrder.ID, err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func mapDomainOrderFilterToDBFilter(filter domain.OrderFilter) db.SearchOrdersParams {
	statuses := lo.Map(filter.Statuses, func(s domain.OrderStatus, _ int) string { return string(s) })

	var createdAfter, createdBefore *time.Time

	if filter.CreatedAt != nil {
		createdAfter = filter.CreatedAt.After
		createdBefore = filter.CreatedAt.Before
	}

	return db.SearchOrdersParams{
		Ids:           nilSliceIfEmpty(filter.IDs),
		OwnerIds:      nilSliceIfEmpty(filter.OwnerIDs),
		Statuses:      nilSliceIfEmpty(statuses),
		CreatedAfter:  createdAfter,
		CreatedBefore: createdBefore,
	}
}

type customizationRecord struct {
	Type       string          `json:"type"`
	Option     string          `json:"option"`
	ExtraPrice decimal.Decimal `json:"extraPrice"`
}

type shippingAddressRecord struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Notes         string `json:"notes,omitempty"`
}

func mapDomainCustomizationsToRecords(customizations []domain.Customization) []customizationRecord {
	return lo.Map(customizations, func(c domain.Customization, _ int) customizationRecord {
		return customizationRecord{Type: c.Type, Option: c.Option, ExtraPrice: c.ExtraPrice}
	})
}

func mapDomainShippingAddressToRecord(a domain.ShippingAddress) shippingAddressRecord {
	return shippingAddressRecord(a)
}

func mapDBOrderItemToDomain(row db.OrderItem) (domain.OrderItem, error) {
	var records []customizationRecord
	if len(row.Customizations) > 0 {
		if err := json.Unmarshal(row.Customizations, &records); err != nil {
			return domain.OrderItem{}, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	return domain.OrderItem{
		ProductID: row.ProductID,
		Quantity:  int(row.Quantity),
		SelectedCustomizations: lo.Map(records, func(c customizationRecord, _ int) domain.Customization {
			return domain.Customization(c)
		}),
		PriceAtPurchase: row.PriceAtPurchase,
		IsReviewed:      row.IsReviewed,
	}, nil
}

func mapDBOrderToDomain(dbOrder db.Order, dbOrderItems []db.OrderItem) (domain.Order, error) {
	var o domain.Order

	items := make([]domain.OrderItem, 0, len(dbOrderItems))
	for _, row := range dbOrderItems {
		item, err := mapDBOrderItemToDomain(row)
		if err != nil {
			return o, fmt.Errorf("mapDBOrderItemToDomain: %w", err)
		}
		items = append(items, item)
	}

	parsedCurrency, err := currency.ParseISO(dbOrder.Currency)
	if err != nil {
		return o, fmt.Errorf("currency[%s] is not valid: %w", dbOrder.Currency, err)
	}

	status, err := domain.ToOrderStatus(dbOrder.Status)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", dbOrder.Status, err)
	}

	paymentMethod, err := domain.ToPaymentMethod(dbOrder.PaymentMethod)
	if err != nil {
		return o, fmt.Errorf("domain.ToPaymentMethod[%s]: %w", dbOrder.PaymentMethod, err)
	}

	var address shippingAddressRecord
	if len(dbOrder.ShippingAddress) > 0 {
		if err := json.Unmarshal(dbOrder.ShippingAddress, &address); err != nil {
			return o, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	return domain.Order{
		ID:                 dbOrder.ID,
		OwnerID:            dbOrder.OwnerID,
		Items:              items,
		Subtotal:           dbOrder.Subtotal,
		Discount:           dbOrder.Discount,
		DiscountPercentage: dbOrder.DiscountPercentage,
		TotalPrice:         dbOrder.TotalPrice,
		Currency:           parsedCurrency,
		Status:             status,
		PaymentMethod:      paymentMethod,
		CouponCode:         dbOrder.CouponCode,
		DeliveryRouteID:    dbOrder.DeliveryRouteID,
		DeliveryDate:       dbOrder.DeliveryDate,
		ShippingAddress:    domain.ShippingAddress(address),
		CreatedAt:          dbOrder.CreatedAt,
		UpdatedAt:          dbOrder.UpdatedAt,
	}, nil
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

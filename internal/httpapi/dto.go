package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/service"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type createOrderRequest struct {
	Items           []createOrderItemRequest `json:"items"`
	ShippingAddress shippingAddressDTO       `json:"shippingAddress"`
	PaymentMethod   string                   `json:"paymentMethod"`
	CouponCode      string                   `json:"couponCode"`
}

type createOrderItemRequest struct {
	Product        uuid.UUID                `json:"product"`
	Quantity       int                      `json:"quantity"`
	Customizations []customizationChoiceDTO `json:"customizations"`
}

type customizationChoiceDTO struct {
	Type   string `json:"type"`
	Option string `json:"option"`
}

type shippingAddressDTO struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type routeAssignmentRequest struct {
	OrderID      uuid.UUID `json:"orderId"`
	Action       string    `json:"action"`
	RouteID      string    `json:"routeId"`
	DeliveryDate string    `json:"deliveryDate"`
}

type routeRequest struct {
	City         string `json:"city"`
	DeliveryDate string `json:"deliveryDate"`
	Status       string `json:"status"`
}

type submitReviewRequest struct {
	Product uuid.UUID `json:"product"`
	Order   uuid.UUID `json:"order"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Images  []string  `json:"images"`
}

type orderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Owner              uuid.UUID           `json:"owner"`
	Items              []orderItemResponse `json:"items"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	Discount           decimal.Decimal     `json:"discount"`
	DiscountPercentage decimal.Decimal     `json:"discountPercentage"`
	TotalPrice         decimal.Decimal     `json:"totalPrice"`
	Currency           string              `json:"currency"`
	Status             string              `json:"status"`
	PaymentMethod      string              `json:"paymentMethod"`
	CouponCode         *string             `json:"couponCode,omitempty"`
	DeliveryRoute      *uuid.UUID          `json:"deliveryRoute"`
	DeliveryDate       *string             `json:"deliveryDate"`
	ShippingAddress    shippingAddressDTO  `json:"shippingAddress"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

type orderItemResponse struct {
	Product                uuid.UUID          `json:"product"`
	ProductDetails         *productResponse   `json:"productDetails,omitempty"`
	Quantity               int                `json:"quantity"`
	SelectedCustomizations []customizationDTO `json:"selectedCustomizations"`
	PriceAtPurchase        decimal.Decimal    `json:"priceAtPurchase"`
	IsReviewed             bool               `json:"isReviewed"`
	CanReview              bool               `json:"canReview"`
}

type customizationDTO struct {
	Type       string          `json:"type"`
	Option     string          `json:"option"`
	ExtraPrice decimal.Decimal `json:"extraPrice"`
}

// populatedOrderResponse replaces the owner id with the owner record.
type populatedOrderResponse struct {
	orderResponse
	Owner *userResponse `json:"owner"`
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type productResponse struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Images   []string        `json:"images"`
}

type routeResponse struct {
	ID           uuid.UUID `json:"id"`
	City         string    `json:"city"`
	DeliveryDate *string   `json:"deliveryDate"`
	Status       string    `json:"status"`
	Eligible     bool      `json:"eligible"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type reviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Order     uuid.UUID `json:"order"`
	Product   uuid.UUID `json:"product"`
	User      uuid.UUID `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

type statsResponse struct {
	Overview         statsOverviewResponse `json:"overview"`
	OrderStatus      map[string]int        `json:"orderStatus"`
	UserStats        userStatsResponse     `json:"userStats"`
	ProductStats     productStatsResponse  `json:"productStats"`
	BlogStats        blogStatsResponse     `json:"blogStats"`
	PaymentStats     map[string]int        `json:"paymentStats"`
	RecentActivities []activityResponse    `json:"recentActivities"`
	Trends           trendsResponse        `json:"trends"`
}

type statsOverviewResponse struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalOrders     int             `json:"totalOrders"`
	TotalUsers      int             `json:"totalUsers"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalCategories int             `json:"totalCategories"`
	TotalBlogs      int             `json:"totalBlogs"`
	ActiveCoupons   int             `json:"activeCoupons"`
	TodayOrders     int             `json:"todayOrders"`
	TodayRevenue    decimal.Decimal `json:"todayRevenue"`
	MonthlyOrders   int             `json:"monthlyOrders"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	WeeklyOrders    int             `json:"weeklyOrders"`
	WeeklyRevenue   decimal.Decimal `json:"weeklyRevenue"`
}

type userStatsResponse struct {
	Total     int `json:"total"`
	Admins    int `json:"admins"`
	Customers int `json:"customers"`
}

type productStatsResponse struct {
	Total      int                     `json:"total"`
	Categories []categoryCountResponse `json:"categories"`
}

type categoryCountResponse struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
}

type blogStatsResponse struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
}

type activityResponse struct {
	Type    string           `json:"type"`
	Message string           `json:"message"`
	Time    time.Time        `json:"time"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
}

type trendsResponse struct {
	DailyGrowth   float64 `json:"dailyGrowth"`
	RevenueGrowth float64 `json:"revenueGrowth"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (r createOrderRequest) toInput(idempotencyKey string) service.CreateOrderInput {
	return service.CreateOrderInput{
		Items: lo.Map(r.Items, func(item createOrderItemRequest, _ int) service.CreateOrderItem {
			return service.CreateOrderItem{
				ProductID: item.Product,
				Quantity:  item.Quantity,
				Customizations: lo.Map(item.Customizations, func(c customizationChoiceDTO, _ int) domain.CustomizationChoice {
					return domain.CustomizationChoice(c)
				}),
			}
		}),
		ShippingAddress: domain.ShippingAddress(r.ShippingAddress),
		PaymentMethod:   r.PaymentMethod,
		CouponCode:      r.CouponCode,
		IdempotencyKey:  idempotencyKey,
	}
}

func mapOrderToResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:    o.ID,
		Owner: o.OwnerID,
		Items: lo.Map(o.Items, func(item domain.OrderItem, _ int) orderItemResponse {
			return mapOrderItemToResponse(o, item)
		}),
		Subtotal:           o.Subtotal,
		Discount:           o.Discount,
		DiscountPercentage: o.DiscountPercentage,
		TotalPrice:         o.TotalPrice,
		Currency:           o.Currency.String(),
		Status:             string(o.Status),
		PaymentMethod:      string(o.PaymentMethod),
		CouponCode:         o.CouponCode,
		DeliveryRoute:      o.DeliveryRouteID,
		DeliveryDate:       formatDate(o.DeliveryDate),
		ShippingAddress:    shippingAddressDTO(o.ShippingAddress),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func mapOrderItemToResponse(o domain.Order, item domain.OrderItem) orderItemResponse {
	customizations := make([]customizationDTO, 0, len(item.SelectedCustomizations))
	for _, c := range item.SelectedCustomizations {
		customizations = append(customizations, customizationDTO(c))
	}

	return orderItemResponse{
		Product:                item.ProductID,
		Quantity:               item.Quantity,
		SelectedCustomizations: customizations,
		PriceAtPurchase:        item.PriceAtPurchase,
		IsReviewed:             item.IsReviewed,
		CanReview:              domain.CanReview(o, item),
	}
}

func mapOrdersToResponse(orders []domain.Order) []orderResponse {
	return lo.Map(orders, func(o domain.Order, _ int) orderResponse { return mapOrderToResponse(o) })
}

func mapOrderViewToResponse(v service.OrderView) populatedOrderResponse {
	resp := populatedOrderResponse{orderResponse: mapOrderToResponse(v.Order)}

	if v.Owner != nil {
		resp.Owner = &userResponse{
			ID:    v.Owner.ID,
			Name:  v.Owner.Name,
			Email: v.Owner.Email,
			Role:  string(v.Owner.Role),
		}
	}

	for idx := range resp.Items {
		p, ok := v.Products[resp.Items[idx].Product]
		if !ok {
			continue
		}
		resp.Items[idx].ProductDetails = &productResponse{
			ID:       p.ID,
			Title:    p.Title,
			Price:    p.Price.Amount,
			Currency: p.Price.Currency.String(),
			Images:   lo.CoalesceSliceOrEmpty(p.Images),
		}
	}

	return resp
}

func mapRouteToResponse(r domain.DeliveryRoute) routeResponse {
	return routeResponse{
		ID:           r.ID,
		City:         r.City,
		DeliveryDate: formatDate(r.DeliveryDate),
		Status:       string(r.Status),
		Eligible:     r.AcceptsAssignments(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func mapReviewToResponse(r domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		Order:     r.OrderID,
		Product:   r.ProductID,
		User:      r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    lo.CoalesceSliceOrEmpty(r.Images),
		CreatedAt: r.CreatedAt,
	}
}

func mapStatsToResponse(s domain.Stats) statsResponse {
	return statsResponse{
		Overview: statsOverviewResponse(s.Overview),
		OrderStatus: lo.MapEntries(s.OrderStatus, func(k domain.OrderStatus, v int) (string, int) {
			return string(k), v
		}),
		UserStats: userStatsResponse(s.UserStats),
		ProductStats: productStatsResponse{
			Total: s.ProductStats.Total,
			Categories: lo.Map(s.ProductStats.Categories, func(c domain.CategoryCount, _ int) categoryCountResponse {
				return categoryCountResponse{ID: c.CategoryID, Name: c.Name, Count: c.Count}
			}),
		},
		BlogStats: blogStatsResponse(s.BlogStats),
		PaymentStats: lo.MapEntries(s.PaymentStats, func(k domain.PaymentMethod, v int) (string, int) {
			return string(k), v
		}),
		RecentActivities: lo.Map(s.RecentActivities, func(a domain.Activity, _ int) activityResponse {
			return activityResponse{Type: string(a.Type), Message: a.Message, Time: a.Time, Amount: a.Amount}
		}),
		Trends: trendsResponse(s.Trends),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.Format(time.DateOnly))
}

package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats_Windows(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	ten := decimal.NewFromInt(10)

	at := func(day, hour int) time.Time {
		return time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
	}

	var orders []Order
	// three orders today, four earlier this week
	for _, created := range []time.Time{at(15, 9), at(15, 10), at(15, 11), at(10, 8), at(11, 8), at(12, 8), at(13, 8)} {
		orders = append(orders, Order{ID: uuid.New(), TotalPrice: ten, Status: OrderStatusPending, CreatedAt: created})
	}
	// last month, outside every window except the totals
	orders = append(orders, Order{
		ID:            uuid.New(),
		TotalPrice:    decimal.NewFromInt(100),
		Status:        OrderStatusDelivered,
		PaymentMethod: PaymentMethodCard,
		CreatedAt:     time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC),
	})

	stats := ComputeStats(StatsSnapshot{Orders: orders}, now)

	o := stats.Overview
	assert.Equal(t, 8, o.TotalOrders)
	assert.True(t, decimal.NewFromInt(170).Equal(o.TotalRevenue), o.TotalRevenue.String())
	assert.Equal(t, 3, o.TodayOrders)
	assert.True(t, decimal.NewFromInt(30).Equal(o.TodayRevenue))
	assert.Equal(t, 7, o.MonthlyOrders)
	assert.True(t, decimal.NewFromInt(70).Equal(o.MonthlyRevenue))
	assert.Equal(t, 7, o.WeeklyOrders)
	assert.True(t, decimal.NewFromInt(70).Equal(o.WeeklyRevenue))

	// 3 today against a daily average of 7/7 = 1
	assert.InDelta(t, 200.0, stats.Trends.DailyGrowth, 1e-9)
	// 30 today against a daily average of 70/7 = 10
	assert.InDelta(t, 200.0, stats.Trends.RevenueGrowth, 1e-9)

	assert.Equal(t, 7, stats.OrderStatus[OrderStatusPending])
	assert.Equal(t, 1, stats.OrderStatus[OrderStatusDelivered])
	assert.Len(t, stats.OrderStatus, 6)

	assert.Equal(t, map[PaymentMethod]int{PaymentMethodCOD: 7, PaymentMethodCard: 1}, stats.PaymentStats)
}

func TestComputeStats_TodayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 3, 15, 1, 0, 0, 0, loc)

	// 21:30 UTC on the 14th is 00:30 on the 15th in loc, after the local midnight
	orders := []Order{
		{ID: uuid.New(), TotalPrice: decimal.NewFromInt(1), CreatedAt: time.Date(2025, 3, 14, 21, 30, 0, 0, time.UTC)},
		{ID: uuid.New(), TotalPrice: decimal.NewFromInt(1), CreatedAt: time.Date(2025, 3, 14, 20, 30, 0, 0, time.UTC)},
	}

	stats := ComputeStats(StatsSnapshot{Orders: orders}, now)

	assert.Equal(t, 1, stats.Overview.TodayOrders)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(StatsSnapshot{}, time.Now())

	assert.Zero(t, stats.Overview.TotalOrders)
	assert.True(t, stats.Overview.TotalRevenue.IsZero())
	assert.Zero(t, stats.Trends.DailyGrowth)
	assert.Zero(t, stats.Trends.RevenueGrowth)
	assert.Empty(t, stats.RecentActivities)
	assert.Empty(t, stats.PaymentStats)

	for _, status := range OrderStatuses() {
		count, ok := stats.OrderStatus[status]
		assert.True(t, ok, status)
		assert.Zero(t, count)
	}
}

func TestComputeStats_GrowthFloor(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	// one order this week, placed today: average is floored at 1
	orders := []Order{{ID: uuid.New(), TotalPrice: decimal.NewFromInt(5), CreatedAt: now.Add(-time.Hour)}}

	stats := ComputeStats(StatsSnapshot{Orders: orders}, now)

	assert.InDelta(t, 0.0, stats.Trends.DailyGrowth, 1e-9)
	assert.InDelta(t, 400.0, stats.Trends.RevenueGrowth, 1e-9)
}

func TestComputeStats_Catalog(t *testing.T) {
	gifts := Category{ID: uuid.New(), Name: "Gifts"}
	mugs := Category{ID: uuid.New(), Name: "Mugs"}

	products := []Product{
		{ID: uuid.New(), CategoryID: &gifts.ID},
		{ID: uuid.New(), CategoryID: &gifts.ID},
		{ID: uuid.New(), CategoryID: &mugs.ID},
		{ID: uuid.New()},
	}

	snapshot := StatsSnapshot{
		Products:   products,
		Categories: []Category{gifts, mugs},
		Users: []User{
			{ID: uuid.New(), Role: RoleAdmin},
			{ID: uuid.New(), Role: RoleCustomer},
			{ID: uuid.New(), Role: RoleCustomer},
		},
		Blogs: []Blog{
			{ID: uuid.New(), Status: BlogStatusPublished},
			{ID: uuid.New(), Status: BlogStatusDraft},
		},
		Coupons: []Coupon{{IsActive: true}, {IsActive: false}, {IsActive: true}},
	}

	stats := ComputeStats(snapshot, time.Now())

	assert.Equal(t, UserStats{Total: 3, Admins: 1, Customers: 2}, stats.UserStats)
	assert.Equal(t, BlogStats{Total: 2, Published: 1, Draft: 1}, stats.BlogStats)
	assert.Equal(t, 2, stats.Overview.ActiveCoupons)
	assert.Equal(t, 2, stats.Overview.TotalCategories)
	assert.Equal(t, 4, stats.ProductStats.Total)
	assert.Equal(t, []CategoryCount{
		{CategoryID: gifts.ID, Name: "Gifts", Count: 2},
		{CategoryID: mugs.ID, Name: "Mugs", Count: 1},
	}, stats.ProductStats.Categories)
}

func TestComputeStats_RecentActivities(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	var snapshot StatsSnapshot
	for i := 0; i < 8; i++ {
		snapshot.Orders = append(snapshot.Orders, Order{
			ID:         uuid.New(),
			TotalPrice: decimal.NewFromInt(int64(i)),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	for i := 0; i < 4; i++ {
		snapshot.Products = append(snapshot.Products, Product{
			ID:        uuid.New(),
			Title:     fmt.Sprintf("P%d", i),
			CreatedAt: base.Add(time.Duration(100+i) * time.Hour),
		})
	}
	for i := 0; i < 3; i++ {
		snapshot.Blogs = append(snapshot.Blogs, Blog{
			ID:        uuid.New(),
			Title:     fmt.Sprintf("B%d", i),
			CreatedAt: base.Add(time.Duration(50+i) * time.Hour),
		})
	}

	activities := ComputeStats(snapshot, base.AddDate(0, 1, 0)).RecentActivities

	require.Len(t, activities, 10)

	counts := lo.CountValuesBy(activities, func(a Activity) ActivityType { return a.Type })
	assert.Equal(t, map[ActivityType]int{ActivityOrder: 5, ActivityProduct: 3, ActivityBlog: 2}, counts)

	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].Time.After(activities[i-1].Time), "activities are newest first")
	}

	assert.Equal(t, "Product 'P3' added", activities[0].Message)
	assert.Equal(t, "Blog post 'B2' published", activities[3].Message)

	newestOrder := snapshot.Orders[7]
	id := newestOrder.ID.String()
	assert.Equal(t, fmt.Sprintf("New order #%s received", id[len(id)-4:]), activities[5].Message)
	require.NotNil(t, activities[5].Amount)
	assert.True(t, newestOrder.TotalPrice.Equal(*activities[5].Amount))
}

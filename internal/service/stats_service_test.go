package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestStatsService_GetStats(t *testing.T) {
	defer goleak.VerifyNone(t)

	loc := time.FixedZone("CEST", 2*60*60)
	now := time.Date(2024, 5, 15, 0, 30, 0, 0, loc)
	admin := domain.CurrentUser{ID: uuid.New(), Role: domain.RoleAdmin}

	source := fakeStatsSource{snapshot: domain.StatsSnapshot{
		Orders: []domain.Order{
			// 00:10 local on the 15th is 22:10 UTC on the 14th
			{ID: uuid.New(), TotalPrice: decimal.NewFromInt(30), Status: domain.OrderStatusPending, CreatedAt: now.Add(-20 * time.Minute).UTC()},
			{ID: uuid.New(), TotalPrice: decimal.NewFromInt(70), Status: domain.OrderStatusDelivered, PaymentMethod: domain.PaymentMethodCard, CreatedAt: now.Add(-48 * time.Hour)},
		},
		Users: []domain.User{
			{ID: uuid.New(), Role: domain.RoleAdmin},
			{ID: uuid.New(), Role: domain.RoleCustomer},
		},
		Coupons: []domain.Coupon{{IsActive: true}, {IsActive: false}},
	}}

	svc := NewStatsService(source, loc, zerolog.Nop())
	svc.now = func() time.Time { return now.UTC() }

	stats, at, err := svc.GetStats(t.Context(), admin)
	require.NoError(t, err)

	assert.True(t, at.Equal(now))
	assert.Equal(t, loc, at.Location())

	assert.Equal(t, 2, stats.Overview.TotalOrders)
	assert.Equal(t, 1, stats.Overview.TodayOrders)
	assert.True(t, decimal.NewFromInt(30).Equal(stats.Overview.TodayRevenue))
	assert.True(t, decimal.NewFromInt(100).Equal(stats.Overview.TotalRevenue))
	assert.Equal(t, 1, stats.Overview.ActiveCoupons)
	assert.Equal(t, 1, stats.UserStats.Admins)
	assert.Equal(t, 1, stats.OrderStatus[domain.OrderStatusPending])
	assert.Equal(t, 1, stats.PaymentStats[domain.PaymentMethodCOD])
	assert.Equal(t, 1, stats.PaymentStats[domain.PaymentMethodCard])
	assert.Len(t, stats.RecentActivities, 2)
}

func TestStatsService_GetStats_Errors(t *testing.T) {
	defer goleak.VerifyNone(t)

	admin := domain.CurrentUser{ID: uuid.New(), Role: domain.RoleAdmin}

	_, _, err := NewStatsService(fakeStatsSource{}, nil, zerolog.Nop()).
		GetStats(t.Context(), domain.CurrentUser{ID: uuid.New(), Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, domain.ErrAuthorization)

	for _, collection := range []string{"orders", "products", "users", "categories", "blogs", "coupons"} {
		t.Run(collection, func(t *testing.T) {
			svc := NewStatsService(fakeStatsSource{failOn: collection}, nil, zerolog.Nop())

			_, _, err := svc.GetStats(t.Context(), admin)
			assert.ErrorIs(t, err, domain.ErrAggregation)
			assert.ErrorIs(t, err, errSourceDown)
		})
	}
}

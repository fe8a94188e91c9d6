package port

import (
	"context"

	"github.com/nikolayk812/backoffice/internal/domain"
)

// StatsSource is the read side the statistics aggregation scans.
type StatsSource interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListBlogs(ctx context.Context) ([]domain.Blog, error)
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
}

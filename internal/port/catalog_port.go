package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductReader interface {
	// GetProducts returns the products found; missing ids are skipped.
	GetProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error)
}

type UserReader interface {
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	GetUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.User, error)
}

type CouponReader interface {
	GetCouponByCode(ctx context.Context, code string) (domain.Coupon, error)
}

type CatalogReader interface {
	ProductReader
	UserReader
	CouponReader
}

// CatalogRepository owns the peripheral collections the order core reads from.
type CatalogRepository interface {
	CatalogReader

	InsertUser(ctx context.Context, user domain.User) (uuid.UUID, error)
	InsertCategory(ctx context.Context, category domain.Category) (uuid.UUID, error)
	InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error)
	UpdateProductPrice(ctx context.Context, productID uuid.UUID, price decimal.Decimal) error
	InsertBlog(ctx context.Context, blog domain.Blog) (uuid.UUID, error)
	InsertCoupon(ctx context.Context, coupon domain.Coupon) (uuid.UUID, error)
}

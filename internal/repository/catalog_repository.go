package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return newCatalogRepository(pool)
}

func newCatalogRepository(dbtx db.DBTX) *catalogRepository {
	return &catalogRepository{q: db.New(dbtx)}
}

func (r *catalogRepository) GetProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return []domain.Product{}, nil
	}

	dbProducts, err := r.q.GetProductsByIDs(ctx, lo.Uniq(productIDs))
	if err != nil {
		return nil, fmt.Errorf("q.GetProductsByIDs: %w", err)
	}

	products, err := mapDBProductsToDomain(dbProducts)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	dbProducts, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products, err := mapDBProductsToDomain(dbProducts)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error) {
	if product.Title == "" {
		return uuid.Nil, errors.New("title is empty")
	}

	customizations, err := json.Marshal(lo.Map(product.Customizations, func(c domain.CustomizationOption, _ int) customizationRecord {
		return customizationRecord(c)
	}))
	if err != nil {
		return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
	}

	productID, err := r.q.InsertProduct(ctx, db.InsertProductParams{
		Title:          product.Title,
		PriceAmount:    product.Price.Amount,
		PriceCurrency:  product.Price.Currency.String(),
		CategoryID:     product.CategoryID,
		Images:         lo.Ternary(product.Images == nil, []string{}, product.Images),
		Customizations: customizations,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertProduct: %w", err)
	}

	return productID, nil
}

func (r *catalogRepository) UpdateProductPrice(ctx context.Context, productID uuid.UUID, price decimal.Decimal) error {
	cmdTag, err := r.q.UpdateProductPrice(ctx, db.UpdateProductPriceParams{
		ID:          productID,
		PriceAmount: price,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateProductPrice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.UpdateProductPrice: product %w", domain.ErrNotFound)
	}

	return nil
}

func (r *catalogRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	dbUser, err := r.q.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("q.GetUser: %w", ErrUserNotFound)
		}
		return domain.User{}, fmt.Errorf("q.GetUser: %w", err)
	}

	user, err := mapDBUserToDomain(dbUser)
	if err != nil {
		return domain.User{}, fmt.Errorf("mapDBUserToDomain: %w", err)
	}

	return user, nil
}

func (r *catalogRepository) GetUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.User, error) {
	if len(userIDs) == 0 {
		return []domain.User{}, nil
	}

	dbUsers, err := r.q.GetUsersByIDs(ctx, lo.Uniq(userIDs))
	if err != nil {
		return nil, fmt.Errorf("q.GetUsersByIDs: %w", err)
	}

	users, err := mapDBUsersToDomain(dbUsers)
	if err != nil {
		return nil, fmt.Errorf("mapDBUsersToDomain: %w", err)
	}

	return users, nil
}

func (r *catalogRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	dbUsers, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListUsers: %w", err)
	}

	users, err := mapDBUsersToDomain(dbUsers)
	if err != nil {
		return nil, fmt.Errorf("mapDBUsersToDomain: %w", err)
	}

	return users, nil
}

func (r *catalogRepository) InsertUser(ctx context.Context, user domain.User) (uuid.UUID, error) {
	if _, err := domain.ToRole(string(user.Role)); err != nil {
		return uuid.Nil, fmt.Errorf("domain.ToRole[%s]: %w", user.Role, err)
	}

	userID, err := r.q.InsertUser(ctx, db.InsertUserParams{
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertUser: %w", err)
	}

	return userID, nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	dbCategories, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	return lo.Map(dbCategories, func(c db.Category, _ int) domain.Category {
		return domain.Category(c)
	}), nil
}

func (r *catalogRepository) InsertCategory(ctx context.Context, category domain.Category) (uuid.UUID, error) {
	categoryID, err := r.q.InsertCategory(ctx, category.Name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertCategory: %w", err)
	}

	return categoryID, nil
}

func (r *catalogRepository) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	dbBlogs, err := r.q.ListBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListBlogs: %w", err)
	}

	blogs := make([]domain.Blog, 0, len(dbBlogs))
	for _, b := range dbBlogs {
		status, err := domain.ToBlogStatus(b.Status)
		if err != nil {
			return nil, fmt.Errorf("domain.ToBlogStatus[%s]: %w", b.Status, err)
		}

		blogs = append(blogs, domain.Blog{
			ID:        b.ID,
			Title:     b.Title,
			Slug:      b.Slug,
			Status:    status,
			CreatedAt: b.CreatedAt,
		})
	}

	return blogs, nil
}

func (r *catalogRepository) InsertBlog(ctx context.Context, blog domain.Blog) (uuid.UUID, error) {
	blogID, err := r.q.InsertBlog(ctx, db.InsertBlogParams{
		Title:  blog.Title,
		Slug:   blog.Slug,
		Status: string(lo.CoalesceOrEmpty(blog.Status, domain.BlogStatusDraft)),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertBlog: %w", err)
	}

	return blogID, nil
}

func (r *catalogRepository) GetCouponByCode(ctx context.Context, code string) (domain.Coupon, error) {
	dbCoupon, err := r.q.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Coupon{}, fmt.Errorf("q.GetCouponByCode: %w", ErrCouponNotFound)
		}
		return domain.Coupon{}, fmt.Errorf("q.GetCouponByCode: %w", err)
	}

	return domain.Coupon(dbCoupon), nil
}

func (r *catalogRepository) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	dbCoupons, err := r.q.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCoupons: %w", err)
	}

	return lo.Map(dbCoupons, func(c db.Coupon, _ int) domain.Coupon {
		return domain.Coupon(c)
	}), nil
}

func (r *catalogRepository) InsertCoupon(ctx context.Context, coupon domain.Coupon) (uuid.UUID, error) {
	if coupon.Code == "" {
		return uuid.Nil, errors.New("code is empty")
	}

	couponID, err := r.q.InsertCoupon(ctx, db.InsertCouponParams{
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
		IsActive:           coupon.IsActive,
	})
	if err != nil {
		if hasPgCode(err, pgUniqueViolation) {
			return uuid.Nil, fmt.Errorf("q.InsertCoupon: %w: coupon code %s", domain.ErrConflict, coupon.Code)
		}
		return uuid.Nil, fmt.Errorf("q.InsertCoupon: %w", err)
	}

	return couponID, nil
}

func mapDBProductsToDomain(dbProducts []db.Product) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(dbProducts))

	for _, p := range dbProducts {
		parsedCurrency, err := currency.ParseISO(p.PriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", p.PriceCurrency, err)
		}

		var records []customizationRecord
		if len(p.Customizations) > 0 {
			if err := json.Unmarshal(p.Customizations, &records); err != nil {
				return nil, fmt.Errorf("json.Unmarshal[%s]: %w", p.ID, err)
			}
		}

		products = append(products, domain.Product{
			ID:         p.ID,
			Title:      p.Title,
			Price:      domain.Money{Amount: p.PriceAmount, Currency: parsedCurrency},
			CategoryID: p.CategoryID,
			Images:     p.Images,
			Customizations: lo.Map(records, func(c customizationRecord, _ int) domain.CustomizationOption {
				return domain.CustomizationOption(c)
			}),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	return products, nil
}

func mapDBUserToDomain(u db.User) (domain.User, error) {
	role, err := domain.ToRole(u.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("domain.ToRole[%s]: %w", u.Role, err)
	}

	return domain.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      role,
		CreatedAt: u.CreatedAt,
	}, nil
}

func mapDBUsersToDomain(dbUsers []db.User) ([]domain.User, error) {
	users := make([]domain.User, 0, len(dbUsers))
	for _, u := range dbUsers {
		user, err := mapDBUserToDomain(u)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

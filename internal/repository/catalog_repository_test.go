package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/nikolayk812/backoffice/internal/repository"
	"github.com/nikolayk812/backoffice/internal/testutil"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

type catalogRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	container testcontainers.Container

	repo   port.CatalogRepository
	orders port.OrderRepository
	stats  port.StatsSource
}

func TestCatalogRepositorySuite(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(catalogRepositorySuite))
}

func (suite *catalogRepositorySuite) SetupSuite() {
	var err error

	suite.pool, suite.container, err = testutil.StartPostgres(suite.T().Context())
	suite.Require().NoError(err)

	suite.repo = repository.NewCatalog(suite.pool)
	suite.orders = repository.NewOrder(suite.pool)
	suite.stats = repository.NewStatsSource(suite.pool)
}

func (suite *catalogRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *catalogRepositorySuite) TearDownTest() {
	suite.Require().NoError(testutil.Truncate(suite.T().Context(), suite.pool))
}

func (suite *catalogRepositorySuite) TestProducts() {
	t := suite.T()
	ctx := t.Context()

	categoryID, err := suite.repo.InsertCategory(ctx, domain.Category{Name: gofakeit.ProductCategory()})
	require.NoError(t, err)

	product := randomProduct(currency.EUR)
	product.CategoryID = &categoryID

	productID, err := suite.repo.InsertProduct(ctx, product)
	require.NoError(t, err)
	product.ID = productID

	products, err := suite.repo.GetProducts(ctx, []uuid.UUID{productID, productID, uuid.MustParse(gofakeit.UUID())})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assertProduct(t, product, products[0])

	newPrice := decimal.RequireFromString("12.34")
	require.NoError(t, suite.repo.UpdateProductPrice(ctx, productID, newPrice))

	products, err = suite.repo.GetProducts(ctx, []uuid.UUID{productID})
	require.NoError(t, err)
	assert.True(t, newPrice.Equal(products[0].Price.Amount))

	err = suite.repo.UpdateProductPrice(ctx, uuid.MustParse(gofakeit.UUID()), newPrice)
	require.ErrorIs(t, err, domain.ErrNotFound)

	empty, err := suite.repo.GetProducts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func (suite *catalogRepositorySuite) TestUsers() {
	t := suite.T()
	ctx := t.Context()

	adminID := seedUser(t, suite.repo, domain.RoleAdmin)
	customerID := seedUser(t, suite.repo, domain.RoleCustomer)

	admin, err := suite.repo.GetUser(ctx, adminID)
	require.NoError(t, err)
	assert.True(t, admin.AsCurrentUser().IsAdmin())

	users, err := suite.repo.GetUsers(ctx, []uuid.UUID{adminID, customerID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{adminID, customerID}, lo.Map(users, func(u domain.User, _ int) uuid.UUID { return u.ID }))

	_, err = suite.repo.GetUser(ctx, uuid.MustParse(gofakeit.UUID()))
	require.EqualError(t, err, "q.GetUser: user not found")

	_, err = suite.repo.InsertUser(ctx, domain.User{Name: "x", Email: "x@example.com", Role: "root"})
	require.EqualError(t, err, "domain.ToRole[root]: invalid role")
}

func (suite *catalogRepositorySuite) TestCoupons() {
	t := suite.T()
	ctx := t.Context()

	coupon := domain.Coupon{
		Code:               "SPRING10",
		DiscountPercentage: decimal.NewFromInt(10),
		IsActive:           true,
	}

	_, err := suite.repo.InsertCoupon(ctx, coupon)
	require.NoError(t, err)

	_, err = suite.repo.InsertCoupon(ctx, coupon)
	require.ErrorIs(t, err, domain.ErrConflict)

	stored, err := suite.repo.GetCouponByCode(ctx, "SPRING10")
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
	assert.True(t, stored.DiscountPercentage.Equal(coupon.DiscountPercentage))

	_, err = suite.repo.GetCouponByCode(ctx, "NOPE")
	require.ErrorIs(t, err, repository.ErrCouponNotFound)
}

func (suite *catalogRepositorySuite) TestStatsSource() {
	t := suite.T()
	ctx := t.Context()

	ownerID := seedUser(t, suite.repo, domain.RoleCustomer)
	_, err := suite.orders.InsertOrder(ctx, randomOrder(ownerID))
	require.NoError(t, err)

	_, err = suite.repo.InsertCategory(ctx, domain.Category{Name: "Gifts"})
	require.NoError(t, err)
	_, err = suite.repo.InsertProduct(ctx, randomProduct(currency.USD))
	require.NoError(t, err)
	_, err = suite.repo.InsertBlog(ctx, domain.Blog{Title: "Hello", Slug: "hello", Status: domain.BlogStatusPublished})
	require.NoError(t, err)
	_, err = suite.repo.InsertBlog(ctx, domain.Blog{Title: "Draft", Slug: "draft"})
	require.NoError(t, err)
	_, err = suite.repo.InsertCoupon(ctx, domain.Coupon{Code: "OFF", DiscountPercentage: decimal.NewFromInt(5)})
	require.NoError(t, err)

	orders, err := suite.stats.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	products, err := suite.stats.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	users, err := suite.stats.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	categories, err := suite.stats.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	blogs, err := suite.stats.ListBlogs(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
	assert.Equal(t, 1, lo.CountBy(blogs, func(b domain.Blog) bool { return b.Status == domain.BlogStatusDraft }))

	coupons, err := suite.stats.ListCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.False(t, coupons[0].IsActive)
}

func assertProduct(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, currencyComparer, opts)
	assert.Empty(t, diff)
}

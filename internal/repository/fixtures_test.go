package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func seedUser(t *testing.T, catalog port.CatalogRepository, role domain.Role) uuid.UUID {
	t.Helper()

	userID, err := catalog.InsertUser(t.Context(), domain.User{
		Name:  gofakeit.Name(),
		Email: uuid.NewString() + "@example.com",
		Role:  role,
	})
	require.NoError(t, err)

	return userID
}

func randomProduct(currencyUnit currency.Unit) domain.Product {
	var customizations []domain.CustomizationOption
	for i := 0; i < gofakeit.Number(0, 3); i++ {
		customizations = append(customizations, domain.CustomizationOption{
			Type:       gofakeit.RandomString([]string{"size", "color", "engraving"}),
			Option:     gofakeit.Word() + uuid.NewString()[:4],
			ExtraPrice: decimal.NewFromInt(int64(gofakeit.Number(0, 20))),
		})
	}

	return domain.Product{
		Title:          gofakeit.ProductName(),
		Price:          domain.Money{Amount: decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2), Currency: currencyUnit},
		Images:         []string{gofakeit.URL()},
		Customizations: customizations,
	}
}

// randomOrder builds a priced, pending order with 1 to 5 items.
func randomOrder(ownerID uuid.UUID) domain.Order {
	currencyUnit := randomCurrency()

	var items []domain.OrderItem
	for i := 0; i < gofakeit.Number(1, 5); i++ {
		items = append(items, randomOrderItem())
	}

	pct := decimal.NewFromInt(int64(gofakeit.RandomInt([]int{0, 10, 25})))
	totals, err := domain.PriceItems(items, pct)
	if err != nil {
		panic(err)
	}

	return domain.Order{
		OwnerID:            ownerID,
		Items:              items,
		Subtotal:           totals.Subtotal,
		Discount:           totals.Discount,
		DiscountPercentage: totals.DiscountPercentage,
		TotalPrice:         totals.TotalPrice,
		Currency:           currencyUnit,
		Status:             domain.OrderStatusPending,
		PaymentMethod:      domain.PaymentMethod(gofakeit.RandomString([]string{"cod", "card", "paypal"})),
		CouponCode:         lo.Ternary(pct.IsZero(), nil, lo.ToPtr(gofakeit.LetterN(8))),
		ShippingAddress: domain.ShippingAddress{
			FirstName:     gofakeit.FirstName(),
			LastName:      gofakeit.LastName(),
			StreetAddress: gofakeit.Street(),
			City:          gofakeit.City(),
			PostalCode:    gofakeit.Zip(),
			Phone:         gofakeit.Phone(),
			Email:         gofakeit.Email(),
		},
	}
}

func randomOrderItem() domain.OrderItem {
	var customizations []domain.Customization
	if gofakeit.Bool() {
		customizations = append(customizations, domain.Customization{
			Type:       "size",
			Option:     gofakeit.RandomString([]string{"S", "M", "L"}),
			ExtraPrice: decimal.NewFromInt(int64(gofakeit.Number(0, 5))),
		})
	}

	return domain.OrderItem{
		ProductID:              uuid.MustParse(gofakeit.UUID()),
		Quantity:               gofakeit.Number(1, 4),
		SelectedCustomizations: customizations,
		PriceAtPurchase:        decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Order{}, "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, currencyComparer, opts)
	assert.Empty(t, diff)
}

func assertOrders(t *testing.T, expected, actual []domain.Order) {
	t.Helper()

	require.Len(t, actual, len(expected))

	byID := lo.KeyBy(actual, func(o domain.Order) uuid.UUID { return o.ID })
	for _, e := range expected {
		a, ok := byID[e.ID]
		require.True(t, ok, "order %s not found", e.ID)
		assertOrder(t, e, a)
	}
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type OrderTotals struct {
	Subtotal           decimal.Decimal
	Discount           decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalPrice         decimal.Decimal
}

// PriceItems sums the line totals and applies the discount percentage,
// clamping the discount to [0, subtotal].
func PriceItems(items []OrderItem, discountPercentage decimal.Decimal) (OrderTotals, error) {
	var t OrderTotals

	if len(items) == 0 {
		return t, fmt.Errorf("%w: no items in order", ErrValidation)
	}
	if discountPercentage.IsNegative() {
		return t, fmt.Errorf("%w: discount percentage is negative", ErrValidation)
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return t, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		if item.PriceAtPurchase.IsNegative() {
			return t, fmt.Errorf("%w: price at purchase is negative", ErrValidation)
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	discount := subtotal.Mul(discountPercentage).Div(hundred)
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return OrderTotals{
		Subtotal:           subtotal,
		Discount:           discount,
		DiscountPercentage: discountPercentage,
		TotalPrice:         subtotal.Sub(discount),
	}, nil
}

// UnitPrice resolves the selected customizations against the product's
// options and returns the base price plus all extras.
func UnitPrice(product Product, selected []CustomizationChoice) (decimal.Decimal, []Customization, error) {
	price := product.Price.Amount
	resolved := make([]Customization, 0, len(selected))

	for _, choice := range selected {
		option, ok := product.FindCustomization(choice.Type, choice.Option)
		if !ok {
			return decimal.Zero, nil, fmt.Errorf("%w: product %s has no customization %s/%s",
				ErrValidation, product.ID, choice.Type, choice.Option)
		}
		if option.ExtraPrice.IsNegative() {
			return decimal.Zero, nil, fmt.Errorf("%w: customization %s/%s has a negative extra price",
				ErrValidation, choice.Type, choice.Option)
		}

		price = price.Add(option.ExtraPrice)
		resolved = append(resolved, Customization{
			Type:       option.Type,
			Option:     option.Option,
			ExtraPrice: option.ExtraPrice,
		})
	}

	return price, resolved, nil
}

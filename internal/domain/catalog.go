package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uuid.UUID
	Title          string
	Price          Money
	CategoryID     *uuid.UUID
	Images         []string
	Customizations []CustomizationOption

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CustomizationOption struct {
	Type       string
	Option     string
	ExtraPrice decimal.Decimal
}

// CustomizationChoice is what a customer picks at checkout; the price is
// always resolved from the product.
type CustomizationChoice struct {
	Type   string
	Option string
}

func (p Product) FindCustomization(typ, option string) (CustomizationOption, bool) {
	for _, c := range p.Customizations {
		if c.Type == typ && c.Option == option {
			return c, true
		}
	}
	return CustomizationOption{}, false
}

type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

func ToBlogStatus(s string) (BlogStatus, error) {
	switch BlogStatus(s) {
	case BlogStatusDraft, BlogStatusPublished:
		return BlogStatus(s), nil
	}
	return "", errors.New("invalid blog status")
}

type Blog struct {
	ID        uuid.UUID
	Title     string
	Slug      string
	Status    BlogStatus
	CreatedAt time.Time
}

type Coupon struct {
	ID                 uuid.UUID
	Code               string
	DiscountPercentage decimal.Decimal
	IsActive           bool
	CreatedAt          time.Time
}

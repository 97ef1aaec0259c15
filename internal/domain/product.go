package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "pasteleria/internal/errors"
)

const DefaultProductCategory = "wedding_cake"

type Product struct {
	ID          uint
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Category    string
	Available   bool
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInput holds the caller-supplied fields of a new catalog entry.
// Nil flags take the catalog defaults (available, not featured).
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description *string
	ImageURL    *string
	Category    string
	Available   *bool
	Featured    *bool
}

func NewProduct(in ProductInput) (Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Product{}, apperrors.NewFieldError("name", "name is required")
	}
	if in.Price.IsNegative() {
		return Product{}, apperrors.NewFieldError("price", "price must be non-negative")
	}
	if !HasMoneyPrecision(in.Price) {
		return Product{}, apperrors.NewFieldError("price", "price must have at most 2 decimal places")
	}
	if !WithinMoneyRange(in.Price) {
		return Product{}, apperrors.NewFieldError("price", "price must not exceed "+FormatMoney(MaxMoney))
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultProductCategory
	}

	p := Product{
		Name:        name,
		Description: trimmedOrNil(in.Description),
		Price:       in.Price,
		ImageURL:    trimmedOrNil(in.ImageURL),
		Category:    category,
		Available:   true,
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

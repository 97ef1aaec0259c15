package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "pasteleria/internal/errors"
)

type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   *uint
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
	CreatedAt   time.Time
}

type OrderItemInput struct {
	ProductID   *uint
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// NewOrderItem validates a line and freezes its subtotal. The subtotal is
// never recomputed afterwards.
func NewOrderItem(orderID uint, in OrderItemInput) (OrderItem, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return OrderItem{}, apperrors.NewFieldError("productName", "product name is required")
	}
	if !in.UnitPrice.IsPositive() {
		return OrderItem{}, apperrors.NewFieldError("unitPrice", "unit price must be greater than zero")
	}
	if !HasMoneyPrecision(in.UnitPrice) {
		return OrderItem{}, apperrors.NewFieldError("unitPrice", "unit price must have at most 2 decimal places")
	}
	if !WithinMoneyRange(in.UnitPrice) {
		return OrderItem{}, apperrors.NewFieldError("unitPrice", "unit price must not exceed "+FormatMoney(MaxMoney))
	}
	if in.Quantity <= 0 {
		return OrderItem{}, apperrors.NewFieldError("quantity", "quantity must be greater than zero")
	}
	if in.Quantity > MaxQuantity {
		return OrderItem{}, apperrors.NewFieldError("quantity", fmt.Sprintf("quantity must not exceed %d", MaxQuantity))
	}

	subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
	if !WithinMoneyRange(subtotal) {
		return OrderItem{}, apperrors.NewFieldError("quantity", "line subtotal must not exceed "+FormatMoney(MaxMoney))
	}

	return OrderItem{
		OrderID:     orderID,
		ProductID:   in.ProductID,
		ProductName: name,
		UnitPrice:   in.UnitPrice,
		Quantity:    in.Quantity,
		Subtotal:    subtotal,
	}, nil
}

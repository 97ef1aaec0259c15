package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "pasteleria/internal/errors"
)

type Order struct {
	ID            uint
	CustomerName  string
	CustomerEmail string
	OrderCode     string
	Status        string
	Total         decimal.Decimal
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	OrderStatusPending       = "pending"
	OrderStatusConfirmed     = "confirmed"
	OrderStatusInPreparation = "in_preparation"
	OrderStatusCompleted     = "completed"
	OrderStatusCancelled     = "cancelled"
)

var orderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInPreparation,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func OrderStatuses() []string {
	return append([]string(nil), orderStatuses...)
}

func IsValidOrderStatus(status string) bool {
	for _, s := range orderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderCode derives the permanent, human readable code of an order from its
// identity and the year it was placed in.
func OrderCode(id uint, placedAt time.Time) string {
	return fmt.Sprintf("ORD-%d-%06d", placedAt.Year(), id)
}

// PlaceholderOrderCode is written on insert, before the identity is known.
// It is unique so concurrent inserts never collide on the order_code index.
func PlaceholderOrderCode() string {
	return "TMP-" + uuid.NewString()
}

// NewOrder validates and normalizes the customer data of a fresh order.
func NewOrder(customerName, customerEmail string) (Order, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return Order{}, apperrors.NewFieldError("customerName", "customer name is required")
	}
	email := strings.ToLower(strings.TrimSpace(customerEmail))
	if !strings.Contains(email, "@") {
		return Order{}, apperrors.NewFieldError("customerEmail", "invalid email")
	}

	return Order{
		CustomerName:  name,
		CustomerEmail: email,
		OrderCode:     PlaceholderOrderCode(),
		Status:        OrderStatusPending,
		Total:         decimal.Zero,
	}, nil
}

// ItemsTotal is the sum of the frozen subtotals of the loaded items.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	return total
}

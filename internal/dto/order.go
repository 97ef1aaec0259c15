package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pasteleria/internal/domain"
)

type CreateOrderRequest struct {
	CustomerName  string `json:"customerName" validate:"required,max=255"`
	CustomerEmail string `json:"customerEmail" validate:"required,max=255"`
}

// AddOrderItemRequest carries one line. Rule checks beyond field lengths
// happen in the domain so their order is fixed.
type AddOrderItemRequest struct {
	ProductID   *uint           `json:"productId"`
	ProductName string          `json:"productName" validate:"max=255"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

func (r AddOrderItemRequest) ToInput() domain.OrderItemInput {
	return domain.OrderItemInput{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderItemResponse struct {
	ID          uint      `json:"id"`
	OrderID     uint      `json:"orderId"`
	ProductID   *uint     `json:"productId"`
	ProductName string    `json:"productName"`
	UnitPrice   string    `json:"unitPrice"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	OrderCode     string              `json:"orderCode"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	Status        string              `json:"status"`
	Total         string              `json:"total"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func NewOrderItemResponse(item domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          item.ID,
		OrderID:     item.OrderID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		UnitPrice:   domain.FormatMoney(item.UnitPrice),
		Quantity:    item.Quantity,
		Subtotal:    domain.FormatMoney(item.Subtotal),
		CreatedAt:   item.CreatedAt,
	}
}

func NewOrderResponse(o domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		OrderCode:     o.OrderCode,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		Total:         domain.FormatMoney(o.Total),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Items != nil {
		resp.Items = make([]OrderItemResponse, len(o.Items))
		for i, item := range o.Items {
			resp.Items[i] = NewOrderItemResponse(item)
		}
	}
	return resp
}

func NewOrderListResponse(orders []domain.Order) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = NewOrderResponse(o)
	}
	return resp
}

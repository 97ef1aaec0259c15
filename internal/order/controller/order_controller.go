package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"pasteleria/internal/commons"
	"pasteleria/internal/domain"
	"pasteleria/internal/dto"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, customerName, customerEmail string) (*domain.Order, error)
	AddItem(ctx context.Context, orderID uint, in domain.OrderItemInput) (*domain.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	var req dto.CreateOrderRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}
	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	order, err := c.useCase.CreateOrder(r.Context(), req.CustomerName, req.CustomerEmail)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewOrderResponse(*order), c.logger)
}

func (c *OrderController) AddItem(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := commons.PathID(r, "orderId")
	if err != nil {
		logger.Warn("invalid orderId in path", zap.Error(err))
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	var req dto.AddOrderItemRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteError(w, traceID, err, c.logger)
		return
	}
	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	item, err := c.useCase.AddItem(r.Context(), orderID, req.ToInput())
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewOrderItemResponse(*item), c.logger)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	orderID, err := commons.PathID(r, "orderId")
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	var req dto.UpdateStatusRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}
	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	order, err := c.useCase.UpdateOrderStatus(r.Context(), orderID, req.Status)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderResponse(*order), c.logger)
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.useCase.ListOrders(r.Context())
	if err != nil {
		commons.WriteError(w, commons.TraceID(r), err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderListResponse(orders), c.logger)
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	orderID, err := commons.PathID(r, "orderId")
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	order, err := c.useCase.GetOrder(r.Context(), orderID)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderResponse(*order), c.logger)
}

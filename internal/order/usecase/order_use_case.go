package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"pasteleria/internal/domain"
	apperrors "pasteleria/internal/errors"
	"pasteleria/internal/infrastructure/database"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	AddItem(ctx context.Context, item domain.OrderItem) (*domain.OrderItem, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id uint) (*domain.Order, error)
}

// Backoff before attempt 2, 3, ... Later attempts reuse the last value.
var backoffs = []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}

type OrderUseCase struct {
	svc              OrderService
	logger           *zap.Logger
	maxRetryAttempts int
	sleep            func(ctx context.Context, d time.Duration) error
}

func NewOrderUseCase(svc OrderService, logger *zap.Logger, maxRetryAttempts int) *OrderUseCase {
	return &OrderUseCase{
		svc:              svc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
		sleep:            sleepCtx,
	}
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, customerName, customerEmail string) (*domain.Order, error) {
	order, err := domain.NewOrder(customerName, customerEmail)
	if err != nil {
		return nil, err
	}

	return withRetry(ctx, uc, "create order", func() (*domain.Order, error) {
		return uc.svc.CreateOrder(ctx, order)
	})
}

// AddItem validates the line before anything is persisted, then adds it
// retrying on lock conflicts.
func (uc *OrderUseCase) AddItem(ctx context.Context, orderID uint, in domain.OrderItemInput) (*domain.OrderItem, error) {
	item, err := domain.NewOrderItem(orderID, in)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("add item started", zap.Uint("orderId", orderID), zap.Int("quantity", item.Quantity))

	return withRetry(ctx, uc, "add item", func() (*domain.OrderItem, error) {
		return uc.svc.AddItem(ctx, item)
	})
}

func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, id uint, status string) (*domain.Order, error) {
	status = strings.TrimSpace(status)
	if !domain.IsValidOrderStatus(status) {
		return nil, apperrors.NewFieldError("status",
			fmt.Sprintf("status must be one of %s", strings.Join(domain.OrderStatuses(), ", ")))
	}

	return withRetry(ctx, uc, "update order status", func() (*domain.Order, error) {
		return uc.svc.UpdateStatus(ctx, id, status)
	})
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return uc.svc.ListOrders(ctx)
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	return uc.svc.GetOrder(ctx, id)
}

func withRetry[T any](ctx context.Context, uc *OrderUseCase, op string, fn func() (T, error)) (T, error) {
	var zero T

	for attempt := 1; attempt <= uc.maxRetryAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !database.IsRetryable(err) {
			return zero, err
		}
		if attempt == uc.maxRetryAttempts {
			break
		}

		wait := jittered(backoffs[min(attempt, len(backoffs))-1])
		uc.logger.Warn("lock conflict, retrying",
			zap.String("operation", op),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", uc.maxRetryAttempts),
			zap.Duration("backoff", wait),
		)
		if err := uc.sleep(ctx, wait); err != nil {
			return zero, err
		}
	}

	uc.logger.Error("lock conflict retries exhausted", zap.String("operation", op), zap.Int("attempts", uc.maxRetryAttempts))
	return zero, apperrors.NewDeadlockError("max retries exceeded")
}

// jittered spreads d by ±20%.
func jittered(d time.Duration) time.Duration {
	return time.Duration(float64(d) * (0.8 + rand.Float64()*0.4))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

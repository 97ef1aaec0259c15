package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pasteleria/internal/domain"
	"pasteleria/internal/infrastructure/database"
)

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	UpdateCode(ctx context.Context, tx *sql.Tx, id uint, code string) error
	AddToTotal(ctx context.Context, tx *sql.Tx, id uint, amount decimal.Decimal, at time.Time) error
	UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string, at time.Time) error
	FindByID(ctx context.Context, q database.Querier, id uint) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByOrderID(ctx context.Context, q database.Querier, orderID uint) ([]domain.OrderItem, error)
}

// OrderService owns every write to orders and order_items. Each operation
// runs in one transaction bounded by txTimeout.
type OrderService struct {
	db            database.TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	clock         func() time.Time
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewOrderService(
	db database.TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	clock func() time.Time,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderService {
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		clock:         clock,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

func (s *OrderService) now() time.Time {
	return s.clock().UTC().Truncate(time.Second)
}

// CreateOrder persists a validated order and assigns its permanent code.
// The placeholder insert and the code update commit together, so no reader
// ever sees the placeholder.
func (s *OrderService) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	now := s.now()
	order.CreatedAt = now
	order.UpdatedAt = now

	err := database.RunInTx(txCtx, s.db, func(tx *sql.Tx) error {
		id, err := s.orderRepo.Insert(txCtx, tx, order)
		if err != nil {
			return err
		}

		code := domain.OrderCode(id, now)
		if err := s.orderRepo.UpdateCode(txCtx, tx, id, code); err != nil {
			return err
		}

		order.ID = id
		order.OrderCode = code
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create order", zap.String("customerEmail", order.CustomerEmail), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created", zap.Uint("orderId", order.ID), zap.String("orderCode", order.OrderCode))
	return &order, nil
}

// AddItem records a validated line and adds its subtotal to the order total
// in the same transaction. A missing order aborts before the insert.
func (s *OrderService) AddItem(ctx context.Context, item domain.OrderItem) (*domain.OrderItem, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	item.CreatedAt = s.now()

	err := database.RunInTx(txCtx, s.db, func(tx *sql.Tx) error {
		if err := s.orderRepo.AddToTotal(txCtx, tx, item.OrderID, item.Subtotal, item.CreatedAt); err != nil {
			return err
		}

		id, err := s.orderItemRepo.Insert(txCtx, tx, item)
		if err != nil {
			return err
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order item added",
		zap.Uint("orderId", item.OrderID),
		zap.Uint("itemId", item.ID),
		zap.String("subtotal", domain.FormatMoney(item.Subtotal)),
	)
	return &item, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var order *domain.Order
	err := database.RunInTx(txCtx, s.db, func(tx *sql.Tx) error {
		if err := s.orderRepo.UpdateStatus(txCtx, tx, id, status, s.now()); err != nil {
			return err
		}
		var err error
		order, err = s.orderRepo.FindByID(txCtx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated", zap.Uint("orderId", id), zap.String("status", status))
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// GetOrder loads an order together with its items. Both reads share one
// transaction so the total always matches the items returned.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var order *domain.Order
	err := database.RunInTx(txCtx, s.db, func(tx *sql.Tx) error {
		var err error
		order, err = s.orderRepo.FindByID(txCtx, tx, id)
		if err != nil {
			return err
		}

		order.Items, err = s.orderItemRepo.FindByOrderID(txCtx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	if itemsTotal := order.ItemsTotal(); !order.Total.Equal(itemsTotal) {
		s.logger.Error("order total does not match its items",
			zap.Uint("orderId", id),
			zap.String("total", domain.FormatMoney(order.Total)),
			zap.String("itemsTotal", domain.FormatMoney(itemsTotal)),
		)
	}

	return order, nil
}

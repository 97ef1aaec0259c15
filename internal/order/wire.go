package order

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"pasteleria/internal/config"
	"pasteleria/internal/order/controller"
	orderrepo "pasteleria/internal/order/repository"
	"pasteleria/internal/order/service"
	"pasteleria/internal/order/usecase"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewSQLOrderRepository(db)
	orderItemRepo := orderrepo.NewSQLOrderItemRepository()

	orderSvc := service.NewOrderService(
		db,
		orderRepo,
		orderItemRepo,
		time.Now,
		logger,
		cfg.Order.TxTimeout,
	)

	uc := usecase.NewOrderUseCase(orderSvc, logger, cfg.Order.MaxRetryAttempts)
	return controller.NewOrderController(uc, logger)
}

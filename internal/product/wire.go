package product

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"pasteleria/internal/product/controller"
	"pasteleria/internal/product/repository"
	"pasteleria/internal/product/service"
)

// NewModule wires the catalog store. The service is returned as well so
// the seeding command can create products without going through HTTP.
func NewModule(db *sql.DB, logger *zap.Logger) (*controller.Controller, *service.CatalogService) {
	repo := repository.NewSQLRepository(db)
	svc := service.NewCatalogService(repo, time.Now, logger)
	return controller.NewController(svc, logger), svc
}

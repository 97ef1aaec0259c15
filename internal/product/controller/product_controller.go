package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"pasteleria/internal/commons"
	"pasteleria/internal/domain"
	"pasteleria/internal/dto"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uint) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

type Controller struct {
	service CatalogService
	logger  *zap.Logger
}

func NewController(service CatalogService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) ListProducts(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	products, err := c.service.ListProducts(r.Context())
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewProductListResponse(products), c.logger)
}

func (c *Controller) GetProduct(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	id, err := commons.PathID(r, "productId")
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	p, err := c.service.GetProduct(r.Context(), id)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewProductResponse(*p), c.logger)
}

func (c *Controller) CreateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	var req dto.CreateProductRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		c.logger.Warn("invalid product body", zap.String("traceId", traceID), zap.Error(err))
		commons.WriteError(w, traceID, err, c.logger)
		return
	}
	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	p, err := c.service.CreateProduct(r.Context(), req.ToInput())
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewProductResponse(*p), c.logger)
}

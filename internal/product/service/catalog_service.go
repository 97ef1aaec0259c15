package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pasteleria/internal/domain"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (uint, error)
}

type CatalogService struct {
	repo   ProductRepository
	clock  func() time.Time
	logger *zap.Logger
}

func NewCatalogService(repo ProductRepository, clock func() time.Time, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	p, err := domain.NewProduct(in)
	if err != nil {
		return nil, err
	}

	now := s.clock().UTC().Truncate(time.Second)
	p.CreatedAt = now
	p.UpdatedAt = now

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.logger.Error("failed to insert product", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}
	p.ID = id

	s.logger.Info("product created", zap.Uint("productId", id), zap.String("category", p.Category))
	return &p, nil
}

package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pasteleria/internal/domain"
	"pasteleria/internal/dto"
	apperrors "pasteleria/internal/errors"
)

type mockCatalogService struct {
	ListProductsFunc  func(ctx context.Context) ([]domain.Product, error)
	GetProductFunc    func(ctx context.Context, id uint) (*domain.Product, error)
	CreateProductFunc func(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return m.ListProductsFunc(ctx)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return m.GetProductFunc(ctx, id)
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	return m.CreateProductFunc(ctx, in)
}

func newRouter(svc CatalogService) http.Handler {
	c := NewController(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/products", c.ListProducts)
	r.Post("/products", c.CreateProduct)
	r.Get("/products/{productId}", c.GetProduct)
	return r
}

func TestCreateProduct_Created(t *testing.T) {
	var got domain.ProductInput
	svc := &mockCatalogService{
		CreateProductFunc: func(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
			got = in
			p, err := domain.NewProduct(in)
			p.ID = 1
			return &p, err
		},
	}

	body := `{"name":"Chocolate cake","price":45.9,"category":"birthday"}`
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "45.90", resp.Price)
	assert.Equal(t, "birthday", resp.Category)
	assert.True(t, resp.Available)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("45.9")))
}

func TestCreateProduct_MissingPrice(t *testing.T) {
	svc := &mockCatalogService{}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Cake"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Equal(t, "price", resp.Details[0].Field)
	assert.NotEmpty(t, resp.TraceID)
}

func TestCreateProduct_InvalidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&mockCatalogService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := &mockCatalogService{
		GetProductFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product with id 9 not found")
		},
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/9", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Equal(t, "product with id 9 not found", resp.Message)
}

func TestGetProduct_BadID(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&mockCatalogService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProducts_InternalErrorHidesCause(t *testing.T) {
	svc := &mockCatalogService{
		ListProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
			return nil, apperrors.NewInternalError("querying products", context.DeadlineExceeded)
		},
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "deadline")
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pasteleria/internal/domain"
)

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,max=500"`
	Category    string           `json:"category" validate:"max=100"`
	Available   *bool            `json:"available"`
	Featured    *bool            `json:"featured"`
}

func (r CreateProductRequest) ToInput() domain.ProductInput {
	in := domain.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Available:   r.Available,
		Featured:    r.Featured,
	}
	if r.Price != nil {
		in.Price = *r.Price
	}
	return in
}

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	ImageURL    *string   `json:"imageUrl"`
	Category    string    `json:"category"`
	Available   bool      `json:"available"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       domain.FormatMoney(p.Price),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Available:   p.Available,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductListResponse(products []domain.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = NewProductResponse(p)
	}
	return resp
}

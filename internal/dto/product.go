package dto

import (
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to stock a new product.
type CreateProductRequest struct {
	ShelfID string          `json:"shelfID" binding:"required"`
	Price   decimal.Decimal `json:"price" binding:"dgte=0"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	ShelfID   string          `json:"shelfID"`
	Price     decimal.Decimal `json:"price"`
	Code      string          `json:"code"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		ShelfID:   p.ShelfID,
		Price:     p.Price,
		Code:      p.Code,
		CreatedAt: p.CreatedAt,
	}
}

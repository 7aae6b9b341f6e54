package services

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/reolmarked/shelf_market_app/internal/dto"
)

// ProductSvcFacade defines the product catalog operations.
type ProductSvcFacade interface {
	// CreateProduct stocks a product on a shelf and assigns its label code in
	// the same insert.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// GetProductByCode resolves a product from its scanned label code.
	GetProductByCode(ctx context.Context, code string) (*domain.Product, error)
}

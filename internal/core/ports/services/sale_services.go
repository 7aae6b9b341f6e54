package services

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/reolmarked/shelf_market_app/internal/dto"
)

// SaleSvcFacade defines the sale recorder: it freezes the commission rate of
// the shelf's active lease agreement onto every recorded sale.
type SaleSvcFacade interface {
	RegisterSale(ctx context.Context, req dto.RegisterSaleRequest) (*domain.Sale, error)

	// RegisterSaleByCode records a sale from a scanned product code, using the
	// product's current price and the current date.
	RegisterSaleByCode(ctx context.Context, code string) (*domain.Sale, error)
}

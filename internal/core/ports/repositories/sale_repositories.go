package repositories

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// SaleReader defines read operations for sale data.
type SaleReader interface {
	// FindSalesByShelvesInPeriod retrieves the sales dated within the period
	// whose product belongs to one of the given shelves.
	FindSalesByShelvesInPeriod(ctx context.Context, shelfIDs []string, period domain.Period) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data. Sales are write-once.
type SaleWriter interface {
	// SaveSale persists a new sale with its frozen commission percentage.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

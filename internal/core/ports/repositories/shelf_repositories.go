package repositories

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// ShelfReader defines read operations for shelf data.
type ShelfReader interface {
	// FindShelfByID retrieves a shelf by its unique identifier.
	FindShelfByID(ctx context.Context, shelfID string) (*domain.Shelf, error)

	// ListShelves retrieves all shelves.
	ListShelves(ctx context.Context) ([]domain.Shelf, error)
}

// ShelfWriter defines write operations for shelf data.
type ShelfWriter interface {
	// SaveShelf persists a new shelf.
	SaveShelf(ctx context.Context, shelf domain.Shelf) error
}

// ShelfRepositoryFacade combines all shelf repository interfaces.
type ShelfRepositoryFacade interface {
	ShelfReader
	ShelfWriter
}

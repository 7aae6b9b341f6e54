package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reolmarked/shelf_market_app/internal/apperrors"
	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
)

type PgxShelfRepository struct {
	pool *pgxpool.Pool
}

// NewPgxShelfRepository creates a new repository for shelf data.
func NewPgxShelfRepository(pool *pgxpool.Pool) portsrepo.ShelfRepositoryFacade {
	return &PgxShelfRepository{pool: pool}
}

func (r *PgxShelfRepository) SaveShelf(ctx context.Context, shelf domain.Shelf) error {
	query := `
		INSERT INTO shelves (shelf_id, type_label, created_at)
		VALUES ($1, $2, $3);
	`
	_, err := r.pool.Exec(ctx, query, shelf.ShelfID, shelf.TypeLabel, shelf.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shelf %s: %w", shelf.ShelfID, err)
	}
	return nil
}

func (r *PgxShelfRepository) FindShelfByID(ctx context.Context, shelfID string) (*domain.Shelf, error) {
	query := `
		SELECT shelf_id, type_label, created_at
		FROM shelves
		WHERE shelf_id = $1;
	`
	var shelf domain.Shelf
	err := r.pool.QueryRow(ctx, query, shelfID).Scan(&shelf.ShelfID, &shelf.TypeLabel, &shelf.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shelf by ID %s: %w", shelfID, err)
	}
	return &shelf, nil
}

func (r *PgxShelfRepository) ListShelves(ctx context.Context) ([]domain.Shelf, error) {
	query := `
		SELECT shelf_id, type_label, created_at
		FROM shelves
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shelves: %w", err)
	}
	defer rows.Close()

	shelves := []domain.Shelf{}
	for rows.Next() {
		var shelf domain.Shelf
		if err := rows.Scan(&shelf.ShelfID, &shelf.TypeLabel, &shelf.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shelf row: %w", err)
		}
		shelves = append(shelves, shelf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shelf rows: %w", err)
	}
	return shelves, nil
}

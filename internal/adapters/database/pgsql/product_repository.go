package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reolmarked/shelf_market_app/internal/apperrors"
	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProductRepository creates a new repository for product data.
func NewPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, shelf_id, price, code, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query,
		product.ProductID,
		product.ShelfID,
		product.Price,
		product.Code,
		product.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product code %s already exists", apperrors.ErrDuplicate, product.Code)
		}
		return fmt.Errorf("failed to insert product %s: %w", product.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, shelf_id, price, code, created_at
		FROM products
		WHERE product_id = $1;
	`
	return r.findProduct(ctx, query, productID)
}

func (r *PgxProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	query := `
		SELECT product_id, shelf_id, price, code, created_at
		FROM products
		WHERE code = $1;
	`
	return r.findProduct(ctx, query, code)
}

func (r *PgxProductRepository) findProduct(ctx context.Context, query string, arg any) (*domain.Product, error) {
	var product domain.Product
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&product.ProductID,
		&product.ShelfID,
		&product.Price,
		&product.Code,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

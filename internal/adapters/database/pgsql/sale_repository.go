package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
)

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSaleRepository creates a new repository for sale data.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{pool: pool}
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (sale_id, product_id, sale_date, price, commission_percent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		sale.SaleID,
		sale.ProductID,
		sale.SaleDate,
		sale.Price,
		sale.CommissionPercent,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale %s: %w", sale.SaleID, err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSalesByShelvesInPeriod(ctx context.Context, shelfIDs []string, period domain.Period) ([]domain.Sale, error) {
	query := `
		SELECT s.sale_id, s.product_id, s.sale_date, s.price, s.commission_percent, s.created_at
		FROM sales s
		JOIN products p ON p.product_id = s.product_id
		WHERE p.shelf_id = ANY($1)
		  AND s.sale_date >= $2
		  AND s.sale_date <= $3
		ORDER BY s.sale_date, s.sale_id;
	`
	rows, err := r.pool.Query(ctx, query, shelfIDs, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales for period: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.SaleID,
			&sale.ProductID,
			&sale.SaleDate,
			&sale.Price,
			&sale.CommissionPercent,
			&sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return sales, nil
}

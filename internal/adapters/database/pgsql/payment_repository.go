package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
)

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPaymentRepository creates a new repository for payment data.
func NewPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{pool: pool}
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		INSERT INTO payments (payment_id, tenant_id, payment_date, amount, method, note)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		payment.PaymentID,
		payment.TenantID,
		payment.PaymentDate,
		payment.Amount,
		payment.Method,
		payment.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, tenant_id, payment_date, amount, method, note
		FROM payments
		WHERE tenant_id = $1
		ORDER BY payment_date DESC, payment_id;
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.PaymentID,
			&payment.TenantID,
			&payment.PaymentDate,
			&payment.Amount,
			&payment.Method,
			&payment.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

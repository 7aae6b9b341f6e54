package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
)

type PgxLeaseRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLeaseRepository creates a new repository for lease agreement data.
func NewPgxLeaseRepository(pool *pgxpool.Pool) portsrepo.LeaseRepositoryFacade {
	return &PgxLeaseRepository{pool: pool}
}

const leaseColumns = `agreement_id, tenant_id, shelf_id, start_date, end_date, monthly_rent, commission_percent, created_at`

func (r *PgxLeaseRepository) SaveAgreement(ctx context.Context, agreement domain.LeaseAgreement) error {
	query := `
		INSERT INTO lease_agreements (agreement_id, tenant_id, shelf_id, start_date, end_date, monthly_rent, commission_percent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		agreement.AgreementID,
		agreement.TenantID,
		agreement.ShelfID,
		agreement.StartDate,
		agreement.EndDate,
		agreement.MonthlyRent,
		agreement.CommissionPercent,
		agreement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lease agreement %s: %w", agreement.AgreementID, err)
	}
	return nil
}

func (r *PgxLeaseRepository) FindAgreementsByShelf(ctx context.Context, shelfID string) ([]domain.LeaseAgreement, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM lease_agreements
		WHERE shelf_id = $1
		ORDER BY start_date;
	`
	rows, err := r.pool.Query(ctx, query, shelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to query agreements for shelf %s: %w", shelfID, err)
	}
	defer rows.Close()
	return scanAgreements(rows)
}

func (r *PgxLeaseRepository) FindAgreementsActiveOn(ctx context.Context, shelfID string, date time.Time) ([]domain.LeaseAgreement, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM lease_agreements
		WHERE shelf_id = $1
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY start_date DESC;
	`
	rows, err := r.pool.Query(ctx, query, shelfID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query active agreements for shelf %s: %w", shelfID, err)
	}
	defer rows.Close()
	return scanAgreements(rows)
}

func (r *PgxLeaseRepository) FindAgreementsByTenantIntersecting(ctx context.Context, tenantID string, period domain.Period) ([]domain.LeaseAgreement, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM lease_agreements
		WHERE tenant_id = $1
		  AND start_date <= $3
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY start_date;
	`
	rows, err := r.pool.Query(ctx, query, tenantID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query agreements for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()
	return scanAgreements(rows)
}

func (r *PgxLeaseRepository) ListAgreementsByTenant(ctx context.Context, tenantID string) ([]domain.LeaseAgreement, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM lease_agreements
		WHERE tenant_id = $1
		ORDER BY start_date;
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query agreements for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()
	return scanAgreements(rows)
}

func scanAgreements(rows pgx.Rows) ([]domain.LeaseAgreement, error) {
	agreements := []domain.LeaseAgreement{}
	for rows.Next() {
		var a domain.LeaseAgreement
		if err := rows.Scan(
			&a.AgreementID,
			&a.TenantID,
			&a.ShelfID,
			&a.StartDate,
			&a.EndDate,
			&a.MonthlyRent,
			&a.CommissionPercent,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lease agreement row: %w", err)
		}
		agreements = append(agreements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lease agreement rows: %w", err)
	}
	return agreements, nil
}

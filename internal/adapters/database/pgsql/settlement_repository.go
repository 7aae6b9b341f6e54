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

type PgxSettlementRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSettlementRepository creates a new repository for settlement data.
func NewPgxSettlementRepository(pool *pgxpool.Pool) portsrepo.SettlementRepositoryFacade {
	return &PgxSettlementRepository{pool: pool}
}

// SaveSettlement inserts the settlement and its lines in one transaction.
// The unique index on (tenant_id, period_start, period_end) rejects a second
// settlement for the same month.
func (r *PgxSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	headQuery := `
		INSERT INTO settlements (settlement_id, tenant_id, period_start, period_end, total_sales, total_commission, total_rent, net_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, headQuery,
		settlement.SettlementID,
		settlement.TenantID,
		settlement.PeriodStart,
		settlement.PeriodEnd,
		settlement.TotalSales,
		settlement.TotalCommission,
		settlement.TotalRent,
		settlement.NetAmount,
		settlement.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: settlement already exists for tenant %s in period %s", apperrors.ErrConflict, settlement.TenantID, settlement.PeriodLabel())
		}
		return fmt.Errorf("failed to insert settlement %s: %w", settlement.SettlementID, err)
	}

	lineQuery := `
		INSERT INTO settlement_lines (line_id, settlement_id, position, kind, description, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for i, line := range settlement.Lines {
		batch.Queue(lineQuery, line.LineID, line.SettlementID, i, line.Kind, line.Description, line.Amount)
	}
	results := tx.SendBatch(ctx, batch)
	for range settlement.Lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert settlement line: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close settlement line batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit settlement transaction: %w", err)
	}
	return nil
}

func (r *PgxSettlementRepository) FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	query := `
		SELECT settlement_id, tenant_id, period_start, period_end, total_sales, total_commission, total_rent, net_amount, created_at
		FROM settlements
		WHERE settlement_id = $1;
	`
	return r.findSettlement(ctx, query, settlementID)
}

func (r *PgxSettlementRepository) FindSettlementByTenantAndPeriod(ctx context.Context, tenantID string, period domain.Period) (*domain.Settlement, error) {
	query := `
		SELECT settlement_id, tenant_id, period_start, period_end, total_sales, total_commission, total_rent, net_amount, created_at
		FROM settlements
		WHERE tenant_id = $1 AND period_start = $2 AND period_end = $3;
	`
	return r.findSettlement(ctx, query, tenantID, period.Start, period.End)
}

func (r *PgxSettlementRepository) findSettlement(ctx context.Context, query string, args ...any) (*domain.Settlement, error) {
	var settlement domain.Settlement
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&settlement.SettlementID,
		&settlement.TenantID,
		&settlement.PeriodStart,
		&settlement.PeriodEnd,
		&settlement.TotalSales,
		&settlement.TotalCommission,
		&settlement.TotalRent,
		&settlement.NetAmount,
		&settlement.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settlement: %w", err)
	}

	lines, err := r.loadLines(ctx, settlement.SettlementID)
	if err != nil {
		return nil, err
	}
	settlement.Lines = lines
	return &settlement, nil
}

func (r *PgxSettlementRepository) loadLines(ctx context.Context, settlementID string) ([]domain.SettlementLine, error) {
	query := `
		SELECT line_id, settlement_id, kind, description, amount
		FROM settlement_lines
		WHERE settlement_id = $1
		ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, query, settlementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlement lines for %s: %w", settlementID, err)
	}
	defer rows.Close()

	lines := []domain.SettlementLine{}
	for rows.Next() {
		var line domain.SettlementLine
		if err := rows.Scan(
			&line.LineID,
			&line.SettlementID,
			&line.Kind,
			&line.Description,
			&line.Amount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement line row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settlement line rows: %w", err)
	}
	return lines, nil
}

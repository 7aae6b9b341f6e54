package repositories

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// SettlementReader defines read operations for settlement data.
type SettlementReader interface {
	// FindSettlementByID retrieves a settlement with its lines.
	FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error)

	// FindSettlementByTenantAndPeriod retrieves the settlement persisted for
	// the tenant and exact period bounds, if any.
	FindSettlementByTenantAndPeriod(ctx context.Context, tenantID string, period domain.Period) (*domain.Settlement, error)
}

// SettlementWriter defines write operations for settlement data.
type SettlementWriter interface {
	// SaveSettlement persists a settlement and its lines atomically in one
	// database transaction. The (tenant, period) uniqueness constraint is
	// enforced here as the final backstop.
	SaveSettlement(ctx context.Context, settlement domain.Settlement) error
}

// SettlementRepositoryFacade combines all settlement repository interfaces.
type SettlementRepositoryFacade interface {
	SettlementReader
	SettlementWriter
}

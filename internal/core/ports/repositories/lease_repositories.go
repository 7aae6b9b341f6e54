package repositories

import (
	"context"
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// LeaseReader defines read operations for lease agreement data.
type LeaseReader interface {
	// FindAgreementsByShelf retrieves every agreement ever made for a shelf.
	// Used by the overlap guard, which must inspect all intervals.
	FindAgreementsByShelf(ctx context.Context, shelfID string) ([]domain.LeaseAgreement, error)

	// FindAgreementsActiveOn retrieves the agreements covering the given date
	// for a shelf, ordered by start date descending.
	FindAgreementsActiveOn(ctx context.Context, shelfID string, date time.Time) ([]domain.LeaseAgreement, error)

	// FindAgreementsByTenantIntersecting retrieves the tenant's agreements whose
	// interval intersects the given period (open ends treated as unbounded).
	FindAgreementsByTenantIntersecting(ctx context.Context, tenantID string, period domain.Period) ([]domain.LeaseAgreement, error)

	// ListAgreementsByTenant retrieves all agreements held by a tenant.
	ListAgreementsByTenant(ctx context.Context, tenantID string) ([]domain.LeaseAgreement, error)
}

// LeaseWriter defines write operations for lease agreement data.
// Agreements are write-once; there is deliberately no update or delete.
type LeaseWriter interface {
	// SaveAgreement persists a new lease agreement.
	SaveAgreement(ctx context.Context, agreement domain.LeaseAgreement) error
}

// LeaseRepositoryFacade combines all lease repository interfaces.
type LeaseRepositoryFacade interface {
	LeaseReader
	LeaseWriter
}

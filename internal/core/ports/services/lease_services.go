package services

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/reolmarked/shelf_market_app/internal/dto"
)

// LeaseSvcFacade defines the lease registry: tenants, shelves and the
// overlap-guarded creation of lease agreements.
type LeaseSvcFacade interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*domain.Tenant, error)
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)

	CreateShelf(ctx context.Context, req dto.CreateShelfRequest) (*domain.Shelf, error)
	GetShelfByID(ctx context.Context, shelfID string) (*domain.Shelf, error)
	ListShelves(ctx context.Context) ([]domain.Shelf, error)

	// CreateLeaseAgreement creates a write-once agreement after verifying that
	// its interval does not overlap any existing agreement on the same shelf.
	CreateLeaseAgreement(ctx context.Context, req dto.CreateLeaseAgreementRequest) (*domain.LeaseAgreement, error)
	ListLeaseAgreementsByTenant(ctx context.Context, tenantID string) ([]domain.LeaseAgreement, error)
}

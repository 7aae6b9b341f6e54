package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reolmarked/shelf_market_app/internal/apperrors"
	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
	portssvc "github.com/reolmarked/shelf_market_app/internal/core/ports/services"
	"github.com/reolmarked/shelf_market_app/internal/dto"
	"github.com/reolmarked/shelf_market_app/internal/middleware"
	"github.com/reolmarked/shelf_market_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// leaseService implements the lease registry: tenants, shelves and the
// overlap-guarded creation of lease agreements.
type leaseService struct {
	tenantRepo portsrepo.TenantRepositoryFacade
	shelfRepo  portsrepo.ShelfRepositoryFacade
	leaseRepo  portsrepo.LeaseRepositoryFacade

	// Serializes the overlap check-then-insert per shelf. Without this, two
	// concurrent creations can both pass the check and insert overlapping
	// intervals.
	shelfLocks *keyedMutex
}

// NewLeaseService creates a new lease registry service.
func NewLeaseService(tenantRepo portsrepo.TenantRepositoryFacade, shelfRepo portsrepo.ShelfRepositoryFacade, leaseRepo portsrepo.LeaseRepositoryFacade) portssvc.LeaseSvcFacade {
	return &leaseService{
		tenantRepo: tenantRepo,
		shelfRepo:  shelfRepo,
		leaseRepo:  leaseRepo,
		shelfLocks: newKeyedMutex(),
	}
}

var _ portssvc.LeaseSvcFacade = (*leaseService)(nil)

func (s *leaseService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: tenant name is required", apperrors.ErrValidation)
	}

	tenant := domain.Tenant{
		TenantID:  uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		logger.Error("Failed to save tenant", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	return &tenant, nil
}

func (s *leaseService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	return tenant, nil
}

func (s *leaseService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

func (s *leaseService) CreateShelf(ctx context.Context, req dto.CreateShelfRequest) (*domain.Shelf, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TypeLabel == "" {
		return nil, fmt.Errorf("%w: shelf type label is required", apperrors.ErrValidation)
	}

	shelf := domain.Shelf{
		ShelfID:   uuid.NewString(),
		TypeLabel: req.TypeLabel,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.shelfRepo.SaveShelf(ctx, shelf); err != nil {
		logger.Error("Failed to save shelf", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save shelf: %w", err)
	}

	logger.Info("Shelf created", slog.String("shelf_id", shelf.ShelfID))
	return &shelf, nil
}

func (s *leaseService) GetShelfByID(ctx context.Context, shelfID string) (*domain.Shelf, error) {
	shelf, err := s.shelfRepo.FindShelfByID(ctx, shelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shelf %s: %w", shelfID, err)
	}
	return shelf, nil
}

func (s *leaseService) ListShelves(ctx context.Context) ([]domain.Shelf, error) {
	shelves, err := s.shelfRepo.ListShelves(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelves: %w", err)
	}
	return shelves, nil
}

// CreateLeaseAgreement creates a write-once lease agreement. The interval
// [start, end] (nil end = open) must not intersect any existing agreement on
// the same shelf; the check and insert run under a per-shelf lock.
func (s *leaseService) CreateLeaseAgreement(ctx context.Context, req dto.CreateLeaseAgreementRequest) (*domain.LeaseAgreement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAgreementRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID); err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", req.TenantID, err)
	}
	if _, err := s.shelfRepo.FindShelfByID(ctx, req.ShelfID); err != nil {
		return nil, fmt.Errorf("failed to find shelf %s: %w", req.ShelfID, err)
	}

	start := domain.DateOnly(req.StartDate)
	var end *time.Time
	if req.EndDate != nil {
		e := domain.DateOnly(*req.EndDate)
		end = &e
	}
	interval := domain.Period{Start: start, End: end}

	s.shelfLocks.Lock(req.ShelfID)
	defer s.shelfLocks.Unlock(req.ShelfID)

	existing, err := s.leaseRepo.FindAgreementsByShelf(ctx, req.ShelfID)
	if err != nil {
		logger.Error("Failed to load agreements for overlap check", slog.String("error", err.Error()), slog.String("shelf_id", req.ShelfID))
		return nil, fmt.Errorf("failed to load agreements for shelf %s: %w", req.ShelfID, err)
	}
	for _, a := range existing {
		if a.Interval().Intersects(interval) {
			logger.Warn("Overlapping lease agreement rejected",
				slog.String("shelf_id", req.ShelfID),
				slog.String("conflicting_agreement_id", a.AgreementID))
			return nil, fmt.Errorf("%w: shelf %s already has an agreement covering part of the interval", apperrors.ErrConflict, req.ShelfID)
		}
	}

	agreement := domain.LeaseAgreement{
		AgreementID:       uuid.NewString(),
		TenantID:          req.TenantID,
		ShelfID:           req.ShelfID,
		StartDate:         start,
		EndDate:           end,
		MonthlyRent:       req.MonthlyRent,
		CommissionPercent: req.CommissionPercent,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.leaseRepo.SaveAgreement(ctx, agreement); err != nil {
		logger.Error("Failed to save lease agreement", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save lease agreement: %w", err)
	}

	metrics.LeaseAgreementsCreated.Inc()
	logger.Info("Lease agreement created",
		slog.String("agreement_id", agreement.AgreementID),
		slog.String("tenant_id", agreement.TenantID),
		slog.String("shelf_id", agreement.ShelfID))
	return &agreement, nil
}

func (s *leaseService) ListLeaseAgreementsByTenant(ctx context.Context, tenantID string) ([]domain.LeaseAgreement, error) {
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	agreements, err := s.leaseRepo.ListAgreementsByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements for tenant %s: %w", tenantID, err)
	}
	return agreements, nil
}

func validateAgreementRequest(req dto.CreateLeaseAgreementRequest) error {
	if req.MonthlyRent.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: monthly rent must not be negative", apperrors.ErrValidation)
	}
	hundred := decimal.NewFromInt(100)
	if req.CommissionPercent.LessThan(decimal.Zero) || req.CommissionPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: commission percent must be between 0 and 100", apperrors.ErrValidation)
	}
	if req.EndDate != nil && domain.DateOnly(*req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	return nil
}

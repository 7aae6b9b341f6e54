package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
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

// Fixed line descriptions of the settlement breakdown.
const (
	descRevenue    = "Sales revenue for the period"
	descCommission = "Shop commission"
	descRent       = "Shelf rent (prorated)"
)

// settlementService implements the monthly settlement engine. The
// computation is a pure function of the rows fetched for one tenant and one
// month; only the optional persistence step writes.
type settlementService struct {
	tenantRepo     portsrepo.TenantReader
	leaseRepo      portsrepo.LeaseReader
	saleRepo       portsrepo.SaleReader
	settlementRepo portsrepo.SettlementRepositoryFacade

	// Serializes persist runs per (tenant, period) so at most one settlement
	// is stored per period even under concurrent requests. The database
	// uniqueness constraint is the final backstop.
	periodLocks *keyedMutex
}

// NewSettlementService creates a new settlement engine.
func NewSettlementService(tenantRepo portsrepo.TenantReader, leaseRepo portsrepo.LeaseReader, saleRepo portsrepo.SaleReader, settlementRepo portsrepo.SettlementRepositoryFacade) portssvc.SettlementSvcFacade {
	return &settlementService{
		tenantRepo:     tenantRepo,
		leaseRepo:      leaseRepo,
		saleRepo:       saleRepo,
		settlementRepo: settlementRepo,
		periodLocks:    newKeyedMutex(),
	}
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

func (s *settlementService) RunSettlement(ctx context.Context, req dto.RunSettlementRequest) (*dto.SettlementResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month %d is out of range", apperrors.ErrValidation, req.Month)
	}
	if req.Year < 1 {
		return nil, fmt.Errorf("%w: year %d is out of range", apperrors.ErrValidation, req.Year)
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", req.TenantID, err)
	}

	period := domain.MonthPeriod(req.Year, time.Month(req.Month))

	settlement, err := s.compute(ctx, tenant.TenantID, period)
	if err != nil {
		logger.Error("Settlement computation failed", slog.String("error", err.Error()), slog.String("tenant_id", tenant.TenantID))
		return nil, err
	}

	if req.Persist {
		if err := s.persist(ctx, settlement); err != nil {
			return nil, err
		}
		logger.Info("Settlement persisted",
			slog.String("settlement_id", settlement.SettlementID),
			slog.String("tenant_id", settlement.TenantID),
			slog.String("period", settlement.PeriodLabel()),
			slog.String("net_amount", settlement.NetAmount.String()))
	}

	metrics.SettlementsRun.WithLabelValues(strconv.FormatBool(req.Persist)).Inc()
	return dto.ToSettlementResult(settlement, tenant), nil
}

// compute reconstructs the tenant's leases and sales for the period and
// derives the four totals and the three breakdown lines. It performs no
// writes and is deterministic for a fixed data set.
func (s *settlementService) compute(ctx context.Context, tenantID string, period domain.Period) (*domain.Settlement, error) {
	agreements, err := s.leaseRepo.FindAgreementsByTenantIntersecting(ctx, tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load agreements for tenant %s: %w", tenantID, err)
	}

	shelfIDs := distinctShelfIDs(agreements)

	var sales []domain.Sale
	if len(shelfIDs) > 0 {
		sales, err = s.saleRepo.FindSalesByShelvesInPeriod(ctx, shelfIDs, period)
		if err != nil {
			return nil, fmt.Errorf("failed to load sales for tenant %s: %w", tenantID, err)
		}
	}

	revenue := decimal.Zero
	commission := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.Price)
		// Commission is rounded per sale, then summed. Summing first and
		// rounding once gives different totals for rates like 33.33%.
		commission = commission.Add(sale.Commission())
	}

	rent := decimal.Zero
	for _, a := range agreements {
		rent = rent.Add(a.ProratedRent(period))
	}

	net := revenue.Sub(commission).Sub(rent)

	return &domain.Settlement{
		TenantID:        tenantID,
		PeriodStart:     period.Start,
		PeriodEnd:       *period.End,
		TotalSales:      revenue,
		TotalCommission: commission,
		TotalRent:       rent,
		NetAmount:       net,
		Lines: []domain.SettlementLine{
			{Kind: domain.LineRevenue, Description: descRevenue, Amount: revenue},
			{Kind: domain.LineCommission, Description: descCommission, Amount: commission.Neg()},
			{Kind: domain.LineRent, Description: descRent, Amount: rent.Neg()},
		},
	}, nil
}

// persist stores the settlement exactly once per (tenant, period). A period
// that is already settled fails fast with a conflict; the settlement is
// never overwritten.
func (s *settlementService) persist(ctx context.Context, settlement *domain.Settlement) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	lockKey := settlement.TenantID + "|" + settlement.PeriodLabel()
	s.periodLocks.Lock(lockKey)
	defer s.periodLocks.Unlock(lockKey)

	period := domain.Period{Start: settlement.PeriodStart, End: &settlement.PeriodEnd}
	existing, err := s.settlementRepo.FindSettlementByTenantAndPeriod(ctx, settlement.TenantID, period)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing settlement", slog.String("error", err.Error()))
		return fmt.Errorf("failed to check for existing settlement: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: period %s is already settled for tenant %s", apperrors.ErrConflict, settlement.PeriodLabel(), settlement.TenantID)
	}

	settlement.SettlementID = uuid.NewString()
	settlement.CreatedAt = time.Now().UTC()
	for i := range settlement.Lines {
		settlement.Lines[i].LineID = uuid.NewString()
		settlement.Lines[i].SettlementID = settlement.SettlementID
	}

	if err := s.settlementRepo.SaveSettlement(ctx, *settlement); err != nil {
		logger.Error("Failed to save settlement", slog.String("error", err.Error()), slog.String("tenant_id", settlement.TenantID))
		return fmt.Errorf("failed to save settlement: %w", err)
	}
	return nil
}

func (s *settlementService) GetSettlementByID(ctx context.Context, settlementID string) (*dto.SettlementResult, error) {
	settlement, err := s.settlementRepo.FindSettlementByID(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find settlement %s: %w", settlementID, err)
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, settlement.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", settlement.TenantID, err)
	}
	return dto.ToSettlementResult(settlement, tenant), nil
}

func distinctShelfIDs(agreements []domain.LeaseAgreement) []string {
	seen := make(map[string]struct{}, len(agreements))
	ids := make([]string, 0, len(agreements))
	for _, a := range agreements {
		if _, ok := seen[a.ShelfID]; !ok {
			seen[a.ShelfID] = struct{}{}
			ids = append(ids, a.ShelfID)
		}
	}
	return ids
}

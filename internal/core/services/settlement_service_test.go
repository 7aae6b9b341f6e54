package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reolmarked/shelf_market_app/internal/apperrors"
	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portssvc "github.com/reolmarked/shelf_market_app/internal/core/ports/services"
	"github.com/reolmarked/shelf_market_app/internal/core/services"
	"github.com/reolmarked/shelf_market_app/internal/dto"
)

type settlementFixture struct {
	tenantRepo     *MockTenantRepository
	leaseRepo      *MockLeaseRepository
	saleRepo       *MockSaleRepository
	settlementRepo *MockSettlementRepository
	tenant         *domain.Tenant
}

func newSettlementFixture() *settlementFixture {
	return &settlementFixture{
		tenantRepo:     new(MockTenantRepository),
		leaseRepo:      new(MockLeaseRepository),
		saleRepo:       new(MockSaleRepository),
		settlementRepo: new(MockSettlementRepository),
		tenant:         &domain.Tenant{TenantID: uuid.NewString(), Name: "Anna"},
	}
}

func (f *settlementFixture) service() portssvc.SettlementSvcFacade {
	return services.NewSettlementService(f.tenantRepo, f.leaseRepo, f.saleRepo, f.settlementRepo)
}

func saleOn(shelfDate time.Time, price string, commissionPct int64) domain.Sale {
	return domain.Sale{
		SaleID:            uuid.NewString(),
		ProductID:         uuid.NewString(),
		SaleDate:          shelfDate,
		Price:             decimal.RequireFromString(price),
		CommissionPercent: decimal.NewFromInt(commissionPct),
	}
}

func TestRunSettlement_FullMonthLeaseSingleSale(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	shelfID := uuid.NewString()
	agreement := domain.LeaseAgreement{
		AgreementID:       uuid.NewString(),
		TenantID:          f.tenant.TenantID,
		ShelfID:           shelfID,
		StartDate:         date(2025, time.January, 1),
		MonthlyRent:       decimal.RequireFromString("250.00"),
		CommissionPercent: decimal.NewFromInt(25),
	}
	sale := saleOn(date(2025, time.March, 12), "79.95", 25)

	f.tenantRepo.On("FindTenantByID", ctx, f.tenant.TenantID).Return(f.tenant, nil)
	f.leaseRepo.On("FindAgreementsByTenantIntersecting", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return([]domain.LeaseAgreement{agreement}, nil)
	f.saleRepo.On("FindSalesByShelvesInPeriod", ctx, []string{shelfID}, mock.AnythingOfType("domain.Period")).
		Return([]domain.Sale{sale}, nil)

	result, err := svc.RunSettlement(ctx, dto.RunSettlementRequest{
		TenantID: f.tenant.TenantID,
		Year:     2025,
		Month:    3,
	})

	assert.NoError(t, err)
	assert.Equal(t, "79.95", result.TotalSales.StringFixed(2))
	assert.Equal(t, "19.99", result.TotalCommission.StringFixed(2))
	assert.Equal(t, "250.00", result.TotalRent.StringFixed(2))
	assert.Equal(t, "-190.04", result.NetAmount.StringFixed(2))
	assert.Equal(t, "2025-03", result.PeriodLabel)
	assert.Equal(t, "Anna", result.TenantName)
	assert.False(t, result.Persisted)
	assert.Empty(t, result.SettlementID)

	// Breakdown lines in fixed order, commission and rent negated.
	if assert.Len(t, result.Lines, 3) {
		assert.Equal(t, "Revenue", result.Lines[0].Kind)
		assert.Equal(t, "79.95", result.Lines[0].Amount.StringFixed(2))
		assert.Equal(t, "Commission", result.Lines[1].Kind)
		assert.Equal(t, "-19.99", result.Lines[1].Amount.StringFixed(2))
		assert.Equal(t, "Rent", result.Lines[2].Kind)
		assert.Equal(t, "-250.00", result.Lines[2].Amount.StringFixed(2))
	}

	f.settlementRepo.AssertNotCalled(t, "SaveSettlement", mock.Anything, mock.Anything)
}

func TestRunSettlement_CommissionRoundedPerSale(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	shelfID := uuid.NewString()
	agreement := domain.LeaseAgreement{
		AgreementID: uuid.NewString(),
		TenantID:    f.tenant.TenantID,
		ShelfID:     shelfID,
		StartDate:   date(2025, time.January, 1),
		MonthlyRent: decimal.Zero,
	}

	// 10.00 at 33.33% is 3.333 per sale, rounded to 3.33. Three sales give
	// 9.99; rounding the aggregate 9.999 once would give 10.00 instead.
	rate := decimal.RequireFromString("33.33")
	sales := make([]domain.Sale, 3)
	for i := range sales {
		sales[i] = domain.Sale{
			SaleID:            uuid.NewString(),
			SaleDate:          date(2025, time.March, 5+i),
			Price:             decimal.RequireFromString("10.00"),
			CommissionPercent: rate,
		}
	}

	f.tenantRepo.On("FindTenantByID", ctx, f.tenant.TenantID).Return(f.tenant, nil)
	f.leaseRepo.On("FindAgreementsByTenantIntersecting", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return([]domain.LeaseAgreement{agreement}, nil)
	f.saleRepo.On("FindSalesByShelvesInPeriod", ctx, []string{shelfID}, mock.AnythingOfType("domain.Period")).
		Return(sales, nil)

	result, err := svc.RunSettlement(ctx, dto.RunSettlementRequest{
		TenantID: f.tenant.TenantID,
		Year:     2025,
		Month:    3,
	})

	assert.NoError(t, err)
	assert.Equal(t, "30.00", result.TotalSales.StringFixed(2))
	assert.Equal(t, "9.99", result.TotalCommission.StringFixed(2))
}

func TestRunSettlement_ProratesRentForPartialMonth(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	shelfID := uuid.NewString()
	// June has 30 days; active June 16-30 is 15 days, half the rent.
	agreement := domain.LeaseAgreement{
		AgreementID: uuid.NewString(),
		TenantID:    f.tenant.TenantID,
		ShelfID:     shelfID,
		StartDate:   date(2025, time.June, 16),
		MonthlyRent: decimal.RequireFromString("300.00"),
	}

	f.tenantRepo.On("FindTenantByID", ctx, f.tenant.TenantID).Return(f.tenant, nil)
	f.leaseRepo.On("FindAgreementsByTenantIntersecting", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return([]domain.LeaseAgreement{agreement}, nil)
	f.saleRepo.On("FindSalesByShelvesInPeriod", ctx, []string{shelfID}, mock.AnythingOfType("domain.Period")).
		Return([]domain.Sale{}, nil)

	result, err := svc.RunSettlement(ctx, dto.RunSettlementRequest{
		TenantID: f.tenant.TenantID,
		Year:     2025,
		Month:    6,
	})

	assert.NoError(t, err)
	assert.Equal(t, "150.00", result.TotalRent.StringFixed(2))
	assert.Equal(t, "-150.00", result.NetAmount.StringFixed(2))
}

func TestRunSettlement_NoLeasesYieldsZeroes(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	f.tenantRepo.On("FindTenantByID", ctx, f.tenant.TenantID).Return(f.tenant, nil)
	f.leaseRepo.On("FindAgreementsByTenantIntersecting", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return([]domain.LeaseAgreement{}, nil)

	result, err := svc.RunSettlement(ctx, dto.RunSettlementRequest{
		TenantID: f.tenant.TenantID,
		Year:     2025,
		Month:    3,
	})

	assert.NoError(t, err)
	assert.True(t, result.TotalSales.IsZero())
	assert.True(t, result.TotalCommission.IsZero())
	assert.True(t, result.TotalRent.IsZero())
	assert.True(t, result.NetAmount.IsZero())
	// No shelves, so the sales query is skipped entirely.
	f.saleRepo.AssertNotCalled(t, "FindSalesByShelvesInPeriod", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunSettlement_PersistStoresOnce(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	shelfID := uuid.NewString()
	agreement := domain.LeaseAgreement{
		AgreementID: uuid.NewString(),
		TenantID:    f.tenant.TenantID,
		ShelfID:     shelfID,
		StartDate:   date(2025, time.January, 1),
		MonthlyRent: decimal.RequireFromString("250.00"),
	}

	f.tenantRepo.On("FindTenantByID", ctx, f.tenant.TenantID).Return(f.tenant, nil)
	f.leaseRepo.On("FindAgreementsByTenantIntersecting", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return([]domain.LeaseAgreement{agreement}, nil)
	f.saleRepo.On("FindSalesByShelvesInPeriod", ctx, []string{shelfID}, mock.AnythingOfType("domain.Period")).
		Return([]domain.Sale{}, nil)
	f.settlementRepo.On("FindSettlementByTenantAndPeriod", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return(nil, apperrors.ErrNotFound)

	var saved domain.Settlement
	f.settlementRepo.On("SaveSettlement", ctx, mock.AnythingOfType("domain.Settlement")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Settlement)
	}).Return(nil)

	result, err := svc.RunSettlement(ctx, dto.RunSettlementRequest{
		TenantID: f.tenant.TenantID,
		Year:     2025,
		Month:    3,
		Persist:  true,
	})

	assert.NoError(t, err)
	assert.True(t, result.Persisted)
	assert.NotEmpty(t, result.SettlementID)
	assert.NotEmpty(t, saved.SettlementID)
	assert.Len(t, saved.Lines, 3)
	for _, line := range saved.Lines {
		assert.NotEmpty(t, line.LineID)
		assert.Equal(t, saved.SettlementID, line.SettlementID)
	}
}

func TestRunSettlement_DuplicatePeriodConflicts(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	f.tenantRepo.On("FindTenantByID", ctx, f.tenant.TenantID).Return(f.tenant, nil)
	f.leaseRepo.On("FindAgreementsByTenantIntersecting", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return([]domain.LeaseAgreement{}, nil)

	existing := &domain.Settlement{SettlementID: uuid.NewString(), TenantID: f.tenant.TenantID}
	f.settlementRepo.On("FindSettlementByTenantAndPeriod", ctx, f.tenant.TenantID, mock.AnythingOfType("domain.Period")).
		Return(existing, nil)

	result, err := svc.RunSettlement(ctx, dto.RunSettlementRequest{
		TenantID: f.tenant.TenantID,
		Year:     2025,
		Month:    3,
		Persist:  true,
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, result)
	f.settlementRepo.AssertNotCalled(t, "SaveSettlement", mock.Anything, mock.Anything)
}

func TestRunSettlement_ValidatesMonthAndTenant(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	_, err := svc.RunSettlement(ctx, dto.RunSettlementRequest{TenantID: f.tenant.TenantID, Year: 2025, Month: 13})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	f.tenantRepo.On("FindTenantByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)
	_, err = svc.RunSettlement(ctx, dto.RunSettlementRequest{TenantID: "missing", Year: 2025, Month: 3})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetSettlementByID(t *testing.T) {
	f := newSettlementFixture()
	svc := f.service()
	ctx := context.Background()

	settlement := &domain.Settlement{
		SettlementID: uuid.NewString(),
		TenantID:     f.tenant.TenantID,
		PeriodStart:  date(2025, time.March, 1),
		PeriodEnd:    date(2025, time.March, 31),
		NetAmount:    decimal.RequireFromString("-190.04"),
	}

	f.settlementRepo.On("FindSettlementByID", ctx, settlement.SettlementID).Return(settlement, nil)
	f.tenantRepo.On("FindTenantByID", ctx, f.tenant.TenantID).Return(f.tenant, nil)

	result, err := svc.GetSettlementByID(ctx, settlement.SettlementID)

	assert.NoError(t, err)
	assert.Equal(t, settlement.SettlementID, result.SettlementID)
	assert.Equal(t, "2025-03", result.PeriodLabel)
	assert.True(t, result.Persisted)
}

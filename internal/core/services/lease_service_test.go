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
	"github.com/reolmarked/shelf_market_app/internal/core/services"
	"github.com/reolmarked/shelf_market_app/internal/dto"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func newLeaseFixture() (*MockTenantRepository, *MockShelfRepository, *MockLeaseRepository, *domain.Tenant, *domain.Shelf) {
	tenantRepo := new(MockTenantRepository)
	shelfRepo := new(MockShelfRepository)
	leaseRepo := new(MockLeaseRepository)
	tenant := &domain.Tenant{TenantID: uuid.NewString(), Name: "Anna"}
	shelf := &domain.Shelf{ShelfID: uuid.NewString(), TypeLabel: "Standard"}
	return tenantRepo, shelfRepo, leaseRepo, tenant, shelf
}

func TestCreateLeaseAgreement_Success(t *testing.T) {
	tenantRepo, shelfRepo, leaseRepo, tenant, shelf := newLeaseFixture()
	svc := services.NewLeaseService(tenantRepo, shelfRepo, leaseRepo)
	ctx := context.Background()

	tenantRepo.On("FindTenantByID", ctx, tenant.TenantID).Return(tenant, nil)
	shelfRepo.On("FindShelfByID", ctx, shelf.ShelfID).Return(shelf, nil)
	leaseRepo.On("FindAgreementsByShelf", ctx, shelf.ShelfID).Return([]domain.LeaseAgreement{}, nil)
	leaseRepo.On("SaveAgreement", ctx, mock.AnythingOfType("domain.LeaseAgreement")).Return(nil)

	agreement, err := svc.CreateLeaseAgreement(ctx, dto.CreateLeaseAgreementRequest{
		TenantID:          tenant.TenantID,
		ShelfID:           shelf.ShelfID,
		StartDate:         date(2025, time.March, 1),
		EndDate:           datePtr(2025, time.March, 31),
		MonthlyRent:       decimal.NewFromInt(250),
		CommissionPercent: decimal.NewFromInt(25),
	})

	assert.NoError(t, err)
	assert.NotNil(t, agreement)
	assert.NotEmpty(t, agreement.AgreementID)
	assert.Equal(t, tenant.TenantID, agreement.TenantID)
	leaseRepo.AssertCalled(t, "SaveAgreement", ctx, mock.AnythingOfType("domain.LeaseAgreement"))
}

func TestCreateLeaseAgreement_RejectsOverlap(t *testing.T) {
	tenantRepo, shelfRepo, leaseRepo, tenant, shelf := newLeaseFixture()
	svc := services.NewLeaseService(tenantRepo, shelfRepo, leaseRepo)
	ctx := context.Background()

	existing := domain.LeaseAgreement{
		AgreementID: uuid.NewString(),
		TenantID:    uuid.NewString(),
		ShelfID:     shelf.ShelfID,
		StartDate:   date(2025, time.March, 10),
		EndDate:     datePtr(2025, time.April, 10),
	}

	tenantRepo.On("FindTenantByID", ctx, tenant.TenantID).Return(tenant, nil)
	shelfRepo.On("FindShelfByID", ctx, shelf.ShelfID).Return(shelf, nil)
	leaseRepo.On("FindAgreementsByShelf", ctx, shelf.ShelfID).Return([]domain.LeaseAgreement{existing}, nil)

	agreement, err := svc.CreateLeaseAgreement(ctx, dto.CreateLeaseAgreementRequest{
		TenantID:          tenant.TenantID,
		ShelfID:           shelf.ShelfID,
		StartDate:         date(2025, time.March, 1),
		EndDate:           datePtr(2025, time.March, 31),
		MonthlyRent:       decimal.NewFromInt(250),
		CommissionPercent: decimal.NewFromInt(25),
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, agreement)
	leaseRepo.AssertNotCalled(t, "SaveAgreement", mock.Anything, mock.Anything)
}

func TestCreateLeaseAgreement_RejectsOverlapWithOpenEnded(t *testing.T) {
	tenantRepo, shelfRepo, leaseRepo, tenant, shelf := newLeaseFixture()
	svc := services.NewLeaseService(tenantRepo, shelfRepo, leaseRepo)
	ctx := context.Background()

	// Open-ended agreement runs forever, so any later interval collides.
	existing := domain.LeaseAgreement{
		AgreementID: uuid.NewString(),
		ShelfID:     shelf.ShelfID,
		StartDate:   date(2024, time.January, 1),
		EndDate:     nil,
	}

	tenantRepo.On("FindTenantByID", ctx, tenant.TenantID).Return(tenant, nil)
	shelfRepo.On("FindShelfByID", ctx, shelf.ShelfID).Return(shelf, nil)
	leaseRepo.On("FindAgreementsByShelf", ctx, shelf.ShelfID).Return([]domain.LeaseAgreement{existing}, nil)

	_, err := svc.CreateLeaseAgreement(ctx, dto.CreateLeaseAgreementRequest{
		TenantID:          tenant.TenantID,
		ShelfID:           shelf.ShelfID,
		StartDate:         date(2030, time.June, 1),
		EndDate:           datePtr(2030, time.June, 30),
		MonthlyRent:       decimal.NewFromInt(250),
		CommissionPercent: decimal.NewFromInt(25),
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	leaseRepo.AssertNotCalled(t, "SaveAgreement", mock.Anything, mock.Anything)
}

func TestCreateLeaseAgreement_AllowsTouchingIntervals(t *testing.T) {
	tenantRepo, shelfRepo, leaseRepo, tenant, shelf := newLeaseFixture()
	svc := services.NewLeaseService(tenantRepo, shelfRepo, leaseRepo)
	ctx := context.Background()

	// Ends March 31; a new agreement starting April 1 does not overlap.
	existing := domain.LeaseAgreement{
		AgreementID: uuid.NewString(),
		ShelfID:     shelf.ShelfID,
		StartDate:   date(2025, time.March, 1),
		EndDate:     datePtr(2025, time.March, 31),
	}

	tenantRepo.On("FindTenantByID", ctx, tenant.TenantID).Return(tenant, nil)
	shelfRepo.On("FindShelfByID", ctx, shelf.ShelfID).Return(shelf, nil)
	leaseRepo.On("FindAgreementsByShelf", ctx, shelf.ShelfID).Return([]domain.LeaseAgreement{existing}, nil)
	leaseRepo.On("SaveAgreement", ctx, mock.AnythingOfType("domain.LeaseAgreement")).Return(nil)

	agreement, err := svc.CreateLeaseAgreement(ctx, dto.CreateLeaseAgreementRequest{
		TenantID:          tenant.TenantID,
		ShelfID:           shelf.ShelfID,
		StartDate:         date(2025, time.April, 1),
		MonthlyRent:       decimal.NewFromInt(250),
		CommissionPercent: decimal.NewFromInt(25),
	})

	assert.NoError(t, err)
	assert.NotNil(t, agreement)
}

func TestCreateLeaseAgreement_Validation(t *testing.T) {
	tenantRepo, shelfRepo, leaseRepo, tenant, shelf := newLeaseFixture()
	svc := services.NewLeaseService(tenantRepo, shelfRepo, leaseRepo)
	ctx := context.Background()

	testCases := []struct {
		name string
		req  dto.CreateLeaseAgreementRequest
	}{
		{
			name: "negative rent",
			req: dto.CreateLeaseAgreementRequest{
				TenantID:          tenant.TenantID,
				ShelfID:           shelf.ShelfID,
				StartDate:         date(2025, time.March, 1),
				MonthlyRent:       decimal.NewFromInt(-1),
				CommissionPercent: decimal.NewFromInt(25),
			},
		},
		{
			name: "commission above 100",
			req: dto.CreateLeaseAgreementRequest{
				TenantID:          tenant.TenantID,
				ShelfID:           shelf.ShelfID,
				StartDate:         date(2025, time.March, 1),
				MonthlyRent:       decimal.NewFromInt(250),
				CommissionPercent: decimal.NewFromInt(101),
			},
		},
		{
			name: "end before start",
			req: dto.CreateLeaseAgreementRequest{
				TenantID:          tenant.TenantID,
				ShelfID:           shelf.ShelfID,
				StartDate:         date(2025, time.March, 15),
				EndDate:           datePtr(2025, time.March, 1),
				MonthlyRent:       decimal.NewFromInt(250),
				CommissionPercent: decimal.NewFromInt(25),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateLeaseAgreement(ctx, tc.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	leaseRepo.AssertNotCalled(t, "SaveAgreement", mock.Anything, mock.Anything)
}

func TestCreateTenant_RequiresName(t *testing.T) {
	tenantRepo, shelfRepo, leaseRepo, _, _ := newLeaseFixture()
	svc := services.NewLeaseService(tenantRepo, shelfRepo, leaseRepo)

	_, err := svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: ""})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	tenantRepo.AssertNotCalled(t, "SaveTenant", mock.Anything, mock.Anything)
}

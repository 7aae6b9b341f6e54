package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	var tenants []domain.Tenant
	if args.Get(0) != nil {
		tenants = args.Get(0).([]domain.Tenant)
	}
	return tenants, args.Error(1)
}

// --- Mock ShelfRepository ---

type MockShelfRepository struct {
	mock.Mock
}

func (m *MockShelfRepository) SaveShelf(ctx context.Context, shelf domain.Shelf) error {
	args := m.Called(ctx, shelf)
	return args.Error(0)
}

func (m *MockShelfRepository) FindShelfByID(ctx context.Context, shelfID string) (*domain.Shelf, error) {
	args := m.Called(ctx, shelfID)
	var shelf *domain.Shelf
	if args.Get(0) != nil {
		shelf = args.Get(0).(*domain.Shelf)
	}
	return shelf, args.Error(1)
}

func (m *MockShelfRepository) ListShelves(ctx context.Context) ([]domain.Shelf, error) {
	args := m.Called(ctx)
	var shelves []domain.Shelf
	if args.Get(0) != nil {
		shelves = args.Get(0).([]domain.Shelf)
	}
	return shelves, args.Error(1)
}

// --- Mock LeaseRepository ---

type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) SaveAgreement(ctx context.Context, agreement domain.LeaseAgreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockLeaseRepository) FindAgreementsByShelf(ctx context.Context, shelfID string) ([]domain.LeaseAgreement, error) {
	args := m.Called(ctx, shelfID)
	var agreements []domain.LeaseAgreement
	if args.Get(0) != nil {
		agreements = args.Get(0).([]domain.LeaseAgreement)
	}
	return agreements, args.Error(1)
}

func (m *MockLeaseRepository) FindAgreementsActiveOn(ctx context.Context, shelfID string, date time.Time) ([]domain.LeaseAgreement, error) {
	args := m.Called(ctx, shelfID, date)
	var agreements []domain.LeaseAgreement
	if args.Get(0) != nil {
		agreements = args.Get(0).([]domain.LeaseAgreement)
	}
	return agreements, args.Error(1)
}

func (m *MockLeaseRepository) FindAgreementsByTenantIntersecting(ctx context.Context, tenantID string, period domain.Period) ([]domain.LeaseAgreement, error) {
	args := m.Called(ctx, tenantID, period)
	var agreements []domain.LeaseAgreement
	if args.Get(0) != nil {
		agreements = args.Get(0).([]domain.LeaseAgreement)
	}
	return agreements, args.Error(1)
}

func (m *MockLeaseRepository) ListAgreementsByTenant(ctx context.Context, tenantID string) ([]domain.LeaseAgreement, error) {
	args := m.Called(ctx, tenantID)
	var agreements []domain.LeaseAgreement
	if args.Get(0) != nil {
		agreements = args.Get(0).([]domain.LeaseAgreement)
	}
	return agreements, args.Error(1)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	args := m.Called(ctx, code)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSalesByShelvesInPeriod(ctx context.Context, shelfIDs []string, period domain.Period) ([]domain.Sale, error) {
	args := m.Called(ctx, shelfIDs, period)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

// --- Mock SettlementRepository ---

type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockSettlementRepository) FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	args := m.Called(ctx, settlementID)
	var settlement *domain.Settlement
	if args.Get(0) != nil {
		settlement = args.Get(0).(*domain.Settlement)
	}
	return settlement, args.Error(1)
}

func (m *MockSettlementRepository) FindSettlementByTenantAndPeriod(ctx context.Context, tenantID string, period domain.Period) (*domain.Settlement, error) {
	args := m.Called(ctx, tenantID, period)
	var settlement *domain.Settlement
	if args.Get(0) != nil {
		settlement = args.Get(0).(*domain.Settlement)
	}
	return settlement, args.Error(1)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

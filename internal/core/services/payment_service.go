package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
	portssvc "github.com/reolmarked/shelf_market_app/internal/core/ports/services"
	"github.com/reolmarked/shelf_market_app/internal/dto"
	"github.com/reolmarked/shelf_market_app/internal/middleware"
)

// defaultPaymentMethod applies when the operator does not pick one.
const defaultPaymentMethod = "MobilePay"

// paymentService implements the payment ledger. Pure storage; settlements
// and payments are reconciled manually.
type paymentService struct {
	tenantRepo  portsrepo.TenantReader
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new payment ledger service.
func NewPaymentService(tenantRepo portsrepo.TenantReader, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RegisterPayment(ctx context.Context, req dto.RegisterPaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID); err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", req.TenantID, err)
	}

	method := req.Method
	if method == "" {
		method = defaultPaymentMethod
	}
	paymentDate := time.Now().UTC()
	if req.Date != nil {
		paymentDate = *req.Date
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		TenantID:    req.TenantID,
		PaymentDate: domain.DateOnly(paymentDate),
		Amount:      req.Amount,
		Method:      method,
		Note:        req.Note,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()), slog.String("tenant_id", req.TenantID))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("tenant_id", payment.TenantID))
	return &payment, nil
}

func (s *paymentService) ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	payments, err := s.paymentRepo.ListPaymentsByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for tenant %s: %w", tenantID, err)
	}
	return payments, nil
}

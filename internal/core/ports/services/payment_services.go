package services

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/reolmarked/shelf_market_app/internal/dto"
)

// PaymentSvcFacade defines the payment ledger. Storage only; settlements and
// payments are reconciled manually by the shop.
type PaymentSvcFacade interface {
	RegisterPayment(ctx context.Context, req dto.RegisterPaymentRequest) (*domain.Payment, error)
	ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
}

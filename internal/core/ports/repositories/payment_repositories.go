package repositories

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// ListPaymentsByTenant retrieves all payments for a tenant, newest first.
	ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePayment persists a new payment. Pure append, no business rules.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a standalone money transfer between shop and tenant.
// Positive amounts mean the shop pays the tenant, negative the reverse.
// Payments are not reconciled against settlements by the system.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	TenantID    string          `json:"tenantID"`
	PaymentDate time.Time       `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"` // MobilePay, Bank, Cash...
	Note        string          `json:"note"`   // Optional
}

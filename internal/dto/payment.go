package dto

import (
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest defines the data needed to record a payment.
// Amount is signed: positive means the shop pays the tenant. Method defaults
// to MobilePay and Date to today when omitted.
type RegisterPaymentRequest struct {
	TenantID string          `json:"tenantID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Method   string          `json:"method"`
	Note     string          `json:"note"`
	Date     *time.Time      `json:"date" time_format:"2006-01-02"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	TenantID    string          `json:"tenantID"`
	PaymentDate time.Time       `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Note        string          `json:"note"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		TenantID:    p.TenantID,
		PaymentDate: p.PaymentDate,
		Amount:      p.Amount,
		Method:      p.Method,
		Note:        p.Note,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}

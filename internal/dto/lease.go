package dto

import (
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeaseAgreementRequest defines the data needed to create a lease
// agreement. Dates carry no time-of-day; EndDate nil means open-ended.
type CreateLeaseAgreementRequest struct {
	TenantID          string          `json:"tenantID" binding:"required"`
	ShelfID           string          `json:"shelfID" binding:"required"`
	StartDate         time.Time       `json:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate           *time.Time      `json:"endDate" time_format:"2006-01-02"`
	MonthlyRent       decimal.Decimal `json:"monthlyRent" binding:"dgte=0"`
	CommissionPercent decimal.Decimal `json:"commissionPercent" binding:"dgte=0,dlte=100"`
}

// LeaseAgreementResponse defines the data returned for a lease agreement.
type LeaseAgreementResponse struct {
	AgreementID       string          `json:"agreementID"`
	TenantID          string          `json:"tenantID"`
	ShelfID           string          `json:"shelfID"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"`
	MonthlyRent       decimal.Decimal `json:"monthlyRent"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToLeaseAgreementResponse converts a domain.LeaseAgreement to its DTO.
func ToLeaseAgreementResponse(a *domain.LeaseAgreement) LeaseAgreementResponse {
	return LeaseAgreementResponse{
		AgreementID:       a.AgreementID,
		TenantID:          a.TenantID,
		ShelfID:           a.ShelfID,
		StartDate:         a.StartDate,
		EndDate:           a.EndDate,
		MonthlyRent:       a.MonthlyRent,
		CommissionPercent: a.CommissionPercent,
		CreatedAt:         a.CreatedAt,
	}
}

// ToLeaseAgreementResponses converts a slice of agreements to DTOs.
func ToLeaseAgreementResponses(agreements []domain.LeaseAgreement) []LeaseAgreementResponse {
	responses := make([]LeaseAgreementResponse, len(agreements))
	for i, a := range agreements {
		responses[i] = ToLeaseAgreementResponse(&a)
	}
	return responses
}

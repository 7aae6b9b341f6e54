package dto

import (
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunSettlementRequest defines the parameters of a settlement run.
// Persist=false computes and returns without writing anything.
type RunSettlementRequest struct {
	TenantID string `json:"tenantID" binding:"required"`
	Year     int    `json:"year" binding:"required,gte=2000,lte=2200"`
	Month    int    `json:"month" binding:"required,gte=1,lte=12"`
	Persist  bool   `json:"persist"`
}

// SettlementLineResponse is one signed breakdown row of a settlement.
type SettlementLineResponse struct {
	Kind        string          `json:"kind"` // Revenue | Commission | Rent
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SettlementResult is the hand-off shape for external rendering: tenant
// label, period label, the three ordered lines and the four totals.
// SettlementID is empty when the run was not persisted.
type SettlementResult struct {
	SettlementID    string                   `json:"settlementID,omitempty"`
	TenantID        string                   `json:"tenantID"`
	TenantName      string                   `json:"tenantName"`
	PeriodLabel     string                   `json:"periodLabel"` // "YYYY-MM"
	PeriodStart     time.Time                `json:"periodStart"`
	PeriodEnd       time.Time                `json:"periodEnd"`
	TotalSales      decimal.Decimal          `json:"totalSales"`
	TotalCommission decimal.Decimal          `json:"totalCommission"`
	TotalRent       decimal.Decimal          `json:"totalRent"`
	NetAmount       decimal.Decimal          `json:"netAmount"`
	Persisted       bool                     `json:"persisted"`
	Lines           []SettlementLineResponse `json:"lines"`
}

// ToSettlementResult converts a domain.Settlement plus its tenant into the
// rendering hand-off DTO.
func ToSettlementResult(s *domain.Settlement, tenant *domain.Tenant) *SettlementResult {
	lines := make([]SettlementLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = SettlementLineResponse{
			Kind:        string(l.Kind),
			Description: l.Description,
			Amount:      l.Amount,
		}
	}
	return &SettlementResult{
		SettlementID:    s.SettlementID,
		TenantID:        s.TenantID,
		TenantName:      tenant.Name,
		PeriodLabel:     s.PeriodLabel(),
		PeriodStart:     s.PeriodStart,
		PeriodEnd:       s.PeriodEnd,
		TotalSales:      s.TotalSales,
		TotalCommission: s.TotalCommission,
		TotalRent:       s.TotalRent,
		NetAmount:       s.NetAmount,
		Persisted:       s.SettlementID != "",
		Lines:           lines,
	}
}

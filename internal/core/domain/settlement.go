package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementLineKind tags a settlement line with what it represents.
type SettlementLineKind string

const (
	LineRevenue    SettlementLineKind = "Revenue"
	LineCommission SettlementLineKind = "Commission"
	LineRent       SettlementLineKind = "Rent"
)

// Settlement is the derived monthly financial summary for one tenant:
// sales revenue, the shop's commission, prorated shelf rent and the net
// amount payable. A settlement is produced once and never mutated; at most
// one persisted settlement exists per (tenant, period).
type Settlement struct {
	SettlementID    string           `json:"settlementID"` // Empty when computed but not persisted
	TenantID        string           `json:"tenantID"`
	PeriodStart     time.Time        `json:"periodStart"`
	PeriodEnd       time.Time        `json:"periodEnd"`
	TotalSales      decimal.Decimal  `json:"totalSales"`
	TotalCommission decimal.Decimal  `json:"totalCommission"`
	TotalRent       decimal.Decimal  `json:"totalRent"`
	NetAmount       decimal.Decimal  `json:"netAmount"` // TotalSales - TotalCommission - TotalRent
	CreatedAt       time.Time        `json:"createdAt"`
	Lines           []SettlementLine `json:"lines"`
}

// SettlementLine is one row of the human-auditable breakdown. Amounts are
// signed: revenue positive, commission and rent negative. Lines are kept for
// traceability only and feed no further computation.
type SettlementLine struct {
	LineID       string             `json:"lineID"`
	SettlementID string             `json:"settlementID"`
	Kind         SettlementLineKind `json:"kind"`
	Description  string             `json:"description"`
	Amount       decimal.Decimal    `json:"amount"`
}

// PeriodLabel renders the settled month as "YYYY-MM".
func (s Settlement) PeriodLabel() string {
	return s.PeriodStart.Format("2006-01")
}

package services

import (
	"context"

	"github.com/reolmarked/shelf_market_app/internal/dto"
)

// SettlementSvcFacade defines the monthly settlement engine.
type SettlementSvcFacade interface {
	// RunSettlement reconstructs the tenant's leases and sales for one
	// calendar month and computes revenue, commission, prorated rent and the
	// net amount. With Persist set it stores the settlement exactly once per
	// (tenant, period); a second persist for the same period fails.
	RunSettlement(ctx context.Context, req dto.RunSettlementRequest) (*dto.SettlementResult, error)

	// GetSettlementByID retrieves a previously persisted settlement.
	GetSettlementByID(ctx context.Context, settlementID string) (*dto.SettlementResult, error)
}

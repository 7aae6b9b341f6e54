package dto

import (
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterSaleRequest defines the data needed to record a sale by product id.
// SaleDate defaults to today when omitted.
type RegisterSaleRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"dgte=0"`
	SaleDate  *time.Time      `json:"saleDate" time_format:"2006-01-02"`
}

// RegisterSaleByCodeRequest records a sale by scanning a product code;
// the product's current price and the current date apply.
type RegisterSaleByCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// SaleResponse defines the data returned for a recorded sale.
type SaleResponse struct {
	SaleID            string          `json:"saleID"`
	ProductID         string          `json:"productID"`
	SaleDate          time.Time       `json:"saleDate"`
	Price             decimal.Decimal `json:"price"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:            s.SaleID,
		ProductID:         s.ProductID,
		SaleDate:          s.SaleDate,
		Price:             s.Price,
		CommissionPercent: s.CommissionPercent,
	}
}

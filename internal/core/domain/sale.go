package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a single sold product. CommissionPercent is copied from the
// lease agreement active on the shelf at the time of sale and never changes
// afterwards, so later settlements always bill the rate that applied when
// the item went over the counter.
type Sale struct {
	SaleID            string          `json:"saleID"`
	ProductID         string          `json:"productID"`
	SaleDate          time.Time       `json:"saleDate"`
	Price             decimal.Decimal `json:"price"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Commission returns the shop's cut of this sale, rounded to 2 digits.
// Rounding happens per sale, not on the aggregate.
func (s Sale) Commission() decimal.Decimal {
	return RoundMoney(s.Price.Mul(s.CommissionPercent).Div(decimal.NewFromInt(100)))
}

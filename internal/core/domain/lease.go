package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaseAgreement binds one tenant to one shelf for a date interval with a
// monthly rent and a commission rate. Agreements are write-once: there is no
// update or delete operation, which is what lets sales freeze the commission
// rate by copying it.
type LeaseAgreement struct {
	AgreementID       string          `json:"agreementID"`
	TenantID          string          `json:"tenantID"`
	ShelfID           string          `json:"shelfID"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"` // nil = open-ended
	MonthlyRent       decimal.Decimal `json:"monthlyRent"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"` // 0-100, e.g. 25.00 = 25%
	CreatedAt         time.Time       `json:"createdAt"`
}

// Interval returns the agreement's active period.
func (a LeaseAgreement) Interval() Period {
	return Period{Start: a.StartDate, End: a.EndDate}
}

// ActiveOn reports whether the agreement covers the given date.
func (a LeaseAgreement) ActiveOn(d time.Time) bool {
	return a.Interval().Contains(d)
}

// ProratedRent computes the agreement's rent contribution for one settlement
// month: the monthly rent scaled by the fraction of the month the agreement
// was active, rounded to 2 digits. Contributions of agreements that do not
// touch the period are zero.
func (a LeaseAgreement) ProratedRent(period Period) decimal.Decimal {
	effStart := DateOnly(a.StartDate)
	if effStart.Before(period.Start) {
		effStart = period.Start
	}
	effEnd := *period.End
	if a.EndDate != nil && DateOnly(*a.EndDate).Before(effEnd) {
		effEnd = DateOnly(*a.EndDate)
	}
	if effEnd.Before(effStart) {
		return decimal.Zero
	}

	activeDays := decimal.NewFromInt(int64(InclusiveDays(effStart, effEnd)))
	daysInMonth := decimal.NewFromInt(int64(DaysInMonth(period.Start.Year(), period.Start.Month())))
	return RoundMoney(a.MonthlyRent.Mul(activeDays).Div(daysInMonth))
}

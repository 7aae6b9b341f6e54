package domain_test

import (
	"testing"
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestMonthPeriod(t *testing.T) {
	p := domain.MonthPeriod(2025, time.February)
	assert.Equal(t, date(2025, time.February, 1), p.Start)
	assert.Equal(t, date(2025, time.February, 28), *p.End)

	leap := domain.MonthPeriod(2024, time.February)
	assert.Equal(t, date(2024, time.February, 29), *leap.End)
}

func TestPeriodIntersects(t *testing.T) {
	september := domain.MonthPeriod(2025, time.September)

	tests := []struct {
		name string
		p    domain.Period
		want bool
	}{
		{"fully inside", domain.Period{Start: date(2025, time.September, 10), End: datePtr(2025, time.September, 20)}, true},
		{"covers the month", domain.Period{Start: date(2025, time.January, 1), End: datePtr(2025, time.December, 31)}, true},
		{"open-ended starting before", domain.Period{Start: date(2025, time.March, 1)}, true},
		{"open-ended starting after", domain.Period{Start: date(2025, time.October, 1)}, false},
		{"ends on first day", domain.Period{Start: date(2025, time.August, 1), End: datePtr(2025, time.September, 1)}, true},
		{"ends the day before", domain.Period{Start: date(2025, time.August, 1), End: datePtr(2025, time.August, 31)}, false},
		{"starts on last day", domain.Period{Start: date(2025, time.September, 30)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Intersects(september))
			assert.Equal(t, tt.want, september.Intersects(tt.p), "intersection must be symmetric")
		})
	}
}

func TestPeriodContains(t *testing.T) {
	open := domain.Period{Start: date(2025, time.June, 15)}
	assert.True(t, open.Contains(date(2025, time.June, 15)))
	assert.True(t, open.Contains(date(2030, time.January, 1)))
	assert.False(t, open.Contains(date(2025, time.June, 14)))

	closed := domain.Period{Start: date(2025, time.June, 1), End: datePtr(2025, time.June, 30)}
	assert.True(t, closed.Contains(date(2025, time.June, 30)))
	assert.False(t, closed.Contains(date(2025, time.July, 1)))
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 1, domain.InclusiveDays(date(2025, time.April, 5), date(2025, time.April, 5)))
	assert.Equal(t, 15, domain.InclusiveDays(date(2025, time.April, 16), date(2025, time.April, 30)))
	assert.Equal(t, 0, domain.InclusiveDays(date(2025, time.April, 10), date(2025, time.April, 9)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, domain.DaysInMonth(2025, time.January))
	assert.Equal(t, 28, domain.DaysInMonth(2025, time.February))
	assert.Equal(t, 29, domain.DaysInMonth(2024, time.February))
	assert.Equal(t, 30, domain.DaysInMonth(2025, time.April))
}

func TestProratedRent(t *testing.T) {
	april := domain.MonthPeriod(2025, time.April) // 30 days

	t.Run("full month equals monthly rent", func(t *testing.T) {
		a := domain.LeaseAgreement{
			StartDate:   date(2025, time.January, 1),
			MonthlyRent: decimal.RequireFromString("250.00"),
		}
		assert.True(t, a.ProratedRent(april).Equal(decimal.RequireFromString("250.00")))
	})

	t.Run("mid-month start", func(t *testing.T) {
		a := domain.LeaseAgreement{
			StartDate:   date(2025, time.April, 16),
			MonthlyRent: decimal.RequireFromString("300.00"),
		}
		// 15 active days of 30 -> exactly half the rent.
		assert.True(t, a.ProratedRent(april).Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("ends before the period", func(t *testing.T) {
		a := domain.LeaseAgreement{
			StartDate:   date(2025, time.January, 1),
			EndDate:     datePtr(2025, time.March, 31),
			MonthlyRent: decimal.RequireFromString("300.00"),
		}
		assert.True(t, a.ProratedRent(april).IsZero())
	})

	t.Run("single active day rounds half away from zero", func(t *testing.T) {
		a := domain.LeaseAgreement{
			StartDate:   date(2025, time.April, 30),
			MonthlyRent: decimal.RequireFromString("100.00"),
		}
		// 100 * 1/30 = 3.333... -> 3.33
		assert.True(t, a.ProratedRent(april).Equal(decimal.RequireFromString("3.33")))
	})
}

func TestSaleCommissionRoundsPerSale(t *testing.T) {
	s := domain.Sale{
		Price:             decimal.RequireFromString("79.95"),
		CommissionPercent: decimal.RequireFromString("25.00"),
	}
	assert.True(t, s.Commission().Equal(decimal.RequireFromString("19.99")))
}

func TestBuildProductCode(t *testing.T) {
	code := domain.BuildProductCode(
		"0b1e7c3a-9f2d-4e5b-8a6c-112233445566",
		"f00dcafe-0000-4111-8222-333344445555",
		decimal.RequireFromString("149.5"),
	)
	assert.Equal(t, "R0b1e7c3a-Pf00dcafe-149.50", code)
}

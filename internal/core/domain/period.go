package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a calendar date interval, inclusive on both ends.
// A nil End means the interval is open-ended (unbounded towards the future).
type Period struct {
	Start time.Time
	End   *time.Time
}

// MonthPeriod returns the closed period covering one calendar month:
// the first through the last day of (year, month).
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Period{Start: start, End: &end}
}

// Intersects reports whether two periods share at least one day.
// Open ends are treated as extending to +infinity on both sides of the test.
func (p Period) Intersects(other Period) bool {
	if other.End != nil && p.Start.After(*other.End) {
		return false
	}
	if p.End != nil && other.Start.After(*p.End) {
		return false
	}
	return true
}

// Contains reports whether the given date falls within the period.
func (p Period) Contains(d time.Time) bool {
	d = DateOnly(d)
	if d.Before(DateOnly(p.Start)) {
		return false
	}
	return p.End == nil || !d.After(DateOnly(*p.End))
}

// DaysInMonth returns the number of calendar days in (year, month).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// InclusiveDays returns the day count of [from, to], counting both endpoints.
// Returns 0 when to precedes from.
func InclusiveDays(from, to time.Time) int {
	from, to = DateOnly(from), DateOnly(to)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RoundMoney rounds a monetary amount to 2 fractional digits,
// half away from zero. All per-line rounding in the settlement
// engine goes through here so the convention stays in one place.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

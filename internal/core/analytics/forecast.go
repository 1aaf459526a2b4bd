package analytics

import (
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ForecastMonth projects month-end spend linearly from the spend recorded up
// to asOf: the daily average so far times the number of days in the month.
func ForecastMonth(spentSoFar decimal.Decimal, asOf time.Time) domain.Forecast {
	if asOf.IsZero() {
		return emptyForecast()
	}
	asOf = asOf.UTC()
	elapsed := asOf.Day()
	days := daysIn(asOf.Year(), asOf.Month())

	daily := spentSoFar.Div(decimal.NewFromInt(int64(elapsed)))
	return domain.Forecast{
		AsOf:               asOf,
		DaysElapsed:        elapsed,
		DaysInMonth:        days,
		DailyAverage:       daily.Round(2),
		ProjectedTotal:     daily.Mul(decimal.NewFromInt(int64(days))).Round(2),
		Income:             decimal.Zero,
		ProjectedOverspend: decimal.Zero,
	}
}

// ForecastFor forecasts month as seen from now. A past month is complete, so
// its projection equals its spend; a future month has nothing to project.
func ForecastFor(month domain.MonthKey, spent decimal.Decimal, now time.Time) domain.Forecast {
	current := domain.MonthKeyOf(now)
	switch {
	case month > current:
		return emptyForecast()
	case month < current:
		_, end := month.Range()
		return ForecastMonth(spent, end.Add(-time.Nanosecond))
	default:
		return ForecastMonth(spent, now)
	}
}

// AgainstIncome records income on f and derives the projected overspend:
// the projected total above income, or zero when income is not positive or
// covers the projection.
func AgainstIncome(f domain.Forecast, income decimal.Decimal) domain.Forecast {
	f.Income = income
	f.ProjectedOverspend = decimal.Zero
	if !income.IsPositive() {
		return f
	}
	if over := f.ProjectedTotal.Sub(income); over.IsPositive() {
		f.ProjectedOverspend = over.Round(2)
	}
	return f
}

// IncomeTotal sums the positive Income amounts in txs.
func IncomeTotal(txs []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.TransactionType == domain.Income && tx.Amount.IsPositive() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// EvaluateForecastAlert returns a forecast_overspend alert when f projects
// spend above income, and nil otherwise.
func EvaluateForecastAlert(userID string, month domain.MonthKey, f domain.Forecast, now time.Time) *domain.BudgetAlert {
	if !f.ProjectedOverspend.IsPositive() || !f.Income.IsPositive() {
		return nil
	}
	return &domain.BudgetAlert{
		UserID:      userID,
		Month:       month,
		Level:       domain.AlertForecastOverspend,
		Spent:       f.ProjectedTotal,
		Limit:       f.Income,
		PercentUsed: f.ProjectedTotal.Div(f.Income).Mul(hundred).Round(1),
		RaisedAt:    now,
	}
}

func emptyForecast() domain.Forecast {
	return domain.Forecast{
		DailyAverage:       decimal.Zero,
		ProjectedTotal:     decimal.Zero,
		Income:             decimal.Zero,
		ProjectedOverspend: decimal.Zero,
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

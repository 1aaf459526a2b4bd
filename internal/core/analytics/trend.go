package analytics

import (
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateTrend derives month-over-month change for an ascending month
// series. The first point has no predecessor and reports zero change; a
// change against a non-positive predecessor reports a zero percentage.
func CalculateTrend(months []domain.MonthSummary) domain.TrendReport {
	points := make([]domain.TrendPoint, len(months))
	sum := decimal.Zero

	for i, month := range months {
		sum = sum.Add(month.Total)
		point := domain.TrendPoint{
			MonthKey:      month.MonthKey,
			Total:         month.Total,
			Change:        decimal.Zero,
			ChangePercent: decimal.Zero,
		}
		if i > 0 {
			prev := months[i-1].Total
			point.Change = month.Total.Sub(prev)
			point.ChangePercent = percentOf(point.Change, prev, 2)
		}
		points[i] = point
	}

	average := decimal.Zero
	if len(months) > 0 {
		average = sum.Div(decimal.NewFromInt(int64(len(months)))).Round(2)
	}

	return domain.TrendReport{Points: points, AverageMonthlySpend: average}
}

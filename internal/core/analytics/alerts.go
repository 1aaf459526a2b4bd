package analytics

import (
	"sort"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AlertWarningRatio is the utilization at which a warning alert is raised.
var AlertWarningRatio = decimal.RequireFromString("0.9")

// EvaluateAlerts raises one alert per category whose spend is close to or
// past its limit: exceeded once spend is strictly above the limit, warning
// from AlertWarningRatio up to and including the limit. Categories without a
// positive limit never alert. Alerts are ordered by category.
func EvaluateAlerts(userID string, month domain.MonthKey, limits domain.BudgetLimits, spent map[string]decimal.Decimal, now time.Time) []domain.BudgetAlert {
	categories := make([]string, 0, len(limits))
	for category := range limits {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var alerts []domain.BudgetAlert
	for _, category := range categories {
		limit := limits.LimitFor(category)
		if !limit.IsPositive() {
			continue
		}
		current := spent[category]
		ratio := current.Div(limit)

		var level domain.AlertLevel
		switch {
		case current.GreaterThan(limit):
			level = domain.AlertExceeded
		case ratio.GreaterThanOrEqual(AlertWarningRatio):
			level = domain.AlertWarning
		default:
			continue
		}
		alerts = append(alerts, domain.BudgetAlert{
			UserID:      userID,
			Month:       month,
			Category:    category,
			Level:       level,
			Spent:       current,
			Limit:       limit,
			PercentUsed: ratio.Mul(hundred).Round(1),
			RaisedAt:    now,
		})
	}
	return alerts
}

package analytics

import (
	"sort"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Utilization thresholds. Ratios at or below OnTrackThreshold are on track,
// at or below WarningThreshold are a warning, anything higher is over.
var (
	OnTrackThreshold = decimal.RequireFromString("0.5")
	WarningThreshold = decimal.RequireFromString("0.75")
)

// ClassifyRatio maps a utilization ratio to its status.
func ClassifyRatio(ratio decimal.Decimal) domain.ProgressStatus {
	switch {
	case ratio.LessThanOrEqual(OnTrackThreshold):
		return domain.StatusOnTrack
	case ratio.LessThanOrEqual(WarningThreshold):
		return domain.StatusWarning
	default:
		return domain.StatusOver
	}
}

// EvaluateProgress compares the month's spend against each limit. The ratio
// is capped at 1 and is 0 whenever the limit is unset or zero, so a category
// without a limit never reports overflow. Spend in categories that have no
// limit entry at all is returned under Unbudgeted.
func EvaluateProgress(limits domain.BudgetLimits, spent map[string]decimal.Decimal) domain.BudgetProgress {
	categories := make([]string, 0, len(limits))
	for category := range limits {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	progress := make([]domain.CategoryProgress, 0, len(categories))
	for _, category := range categories {
		limit := limits.LimitFor(category)
		current := spent[category]

		ratio := decimal.Zero
		if limit.IsPositive() {
			ratio = decimal.Min(current.Div(limit), decimal.NewFromInt(1))
		}
		progress = append(progress, domain.CategoryProgress{
			Category: category,
			Limit:    limit,
			Spent:    current,
			Ratio:    ratio,
			Status:   ClassifyRatio(ratio),
		})
	}

	var unbudgeted map[string]decimal.Decimal
	for category, amount := range spent {
		if _, ok := limits[category]; ok || !amount.IsPositive() {
			continue
		}
		if unbudgeted == nil {
			unbudgeted = make(map[string]decimal.Decimal)
		}
		unbudgeted[category] = amount
	}

	return domain.BudgetProgress{Categories: progress, Unbudgeted: unbudgeted}
}

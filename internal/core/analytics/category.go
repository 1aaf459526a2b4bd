package analytics

import (
	"sort"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AggregateByCategory sums contributing transactions per category and ranks
// the result by amount, highest first. Equal amounts keep first-seen order.
// Blank categories are bucketed as "Uncategorized".
func AggregateByCategory(txs []domain.Transaction, filter SpendFilter) domain.CategoryBreakdown {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	total := decimal.Zero

	for _, tx := range txs {
		if !filter.Contributes(tx) {
			continue
		}
		category := tx.CategoryOrDefault()
		current, seen := totals[category]
		if !seen {
			order = append(order, category)
		}
		totals[category] = current.Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	summaries := make([]domain.CategorySummary, 0, len(order))
	for _, category := range order {
		amount := totals[category]
		summaries = append(summaries, domain.CategorySummary{
			Category:          category,
			Amount:            amount,
			PercentageOfTotal: percentOf(amount, total, 1),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Amount.GreaterThan(summaries[j].Amount)
	})

	return domain.CategoryBreakdown{Categories: summaries, Total: total}
}

// percentOf returns part/whole*100 rounded half-up to places, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal, places int32) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(places)
}

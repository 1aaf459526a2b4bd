package analytics

import (
	"sort"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTopCategories is the number of ranked categories charted when the
// caller passes a non-positive topN.
const DefaultTopCategories = 5

// AggregateByMonth buckets contributing transactions by UTC month key and
// returns the months in ascending order. For the first topN entries of
// rankedCategories it also builds a per-month series aligned index for index
// with the month list, with zero for months where the category has no spend.
func AggregateByMonth(txs []domain.Transaction, rankedCategories []string, topN int, filter SpendFilter) domain.MonthlySeries {
	if topN <= 0 {
		topN = DefaultTopCategories
	}

	byMonth := make(map[domain.MonthKey]*domain.MonthSummary)
	for _, tx := range txs {
		if !filter.Contributes(tx) {
			continue
		}
		key := domain.MonthKeyOf(tx.Date)
		summary, ok := byMonth[key]
		if !ok {
			summary = &domain.MonthSummary{
				MonthKey:          key,
				DisplayLabel:      key.Label(),
				Total:             decimal.Zero,
				PerCategoryTotals: make(map[string]decimal.Decimal),
			}
			byMonth[key] = summary
		}
		category := tx.CategoryOrDefault()
		summary.Total = summary.Total.Add(tx.Amount)
		summary.PerCategoryTotals[category] = summary.PerCategoryTotals[category].Add(tx.Amount)
	}

	months := make([]domain.MonthSummary, 0, len(byMonth))
	for _, summary := range byMonth {
		months = append(months, *summary)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].MonthKey < months[j].MonthKey
	})

	if len(rankedCategories) > topN {
		rankedCategories = rankedCategories[:topN]
	}
	series := make([]domain.CategorySeries, 0, len(rankedCategories))
	for _, category := range rankedCategories {
		values := make([]decimal.Decimal, len(months))
		for i, month := range months {
			values[i] = month.PerCategoryTotals[category]
		}
		series = append(series, domain.CategorySeries{Category: category, Values: values})
	}

	return domain.MonthlySeries{Months: months, CategorySeries: series}
}

package dto

import (
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyAnalysisResponse is the combined analysis of a transaction window.
type MonthlyAnalysisResponse struct {
	Transactions    []TransactionResponse      `json:"transactions"`
	CategorySummary map[string]decimal.Decimal `json:"categorySummary"`
	MonthlySummary  []domain.MonthSummary      `json:"monthlySummary"`
}

// CategoryAnalyticsResponse is the ranked category breakdown of a window.
type CategoryAnalyticsResponse struct {
	Categories []domain.CategorySummary `json:"categories"`
	TotalSpent decimal.Decimal          `json:"totalSpent"`
}

// MonthlyAnalyticsResponse is the month series of a window plus its trend.
type MonthlyAnalyticsResponse struct {
	Months              []domain.MonthSummary   `json:"months"`
	CategorySeries      []domain.CategorySeries `json:"categorySeries"`
	Trend               []domain.TrendPoint     `json:"trend"`
	AverageMonthlySpend decimal.Decimal         `json:"averageMonthlySpend"`
}

// BudgetSummaryResponse combines a month's budget with its actual spend.
type BudgetSummaryResponse struct {
	Success  bool                       `json:"success"`
	Month    domain.MonthKey            `json:"month"`
	Spent    map[string]decimal.Decimal `json:"spent"`
	Budget   *BudgetResponse            `json:"budget"`
	Progress domain.BudgetProgress      `json:"progress"`
	Forecast *domain.Forecast           `json:"forecast,omitempty"`
}

// ToMonthlyAnalysisResponse flattens a domain.MonthlyAnalysis into its wire shape
func ToMonthlyAnalysisResponse(a *domain.MonthlyAnalysis) MonthlyAnalysisResponse {
	return MonthlyAnalysisResponse{
		Transactions:    ToListTransactionResponse(a.Transactions),
		CategorySummary: a.Categories.SpentByCategory(),
		MonthlySummary:  a.Series.Months,
	}
}

// ToCategoryAnalyticsResponse converts a breakdown to its wire shape
func ToCategoryAnalyticsResponse(b *domain.CategoryBreakdown) CategoryAnalyticsResponse {
	return CategoryAnalyticsResponse{Categories: b.Categories, TotalSpent: b.Total}
}

// ToMonthlyAnalyticsResponse converts series and trend to their wire shape
func ToMonthlyAnalyticsResponse(a *domain.MonthlyAnalysis) MonthlyAnalyticsResponse {
	return MonthlyAnalyticsResponse{
		Months:              a.Series.Months,
		CategorySeries:      a.Series.CategorySeries,
		Trend:               a.Trend.Points,
		AverageMonthlySpend: a.Trend.AverageMonthlySpend,
	}
}

// ToBudgetSummaryResponse converts a domain.BudgetSummary to its wire shape
func ToBudgetSummaryResponse(s *domain.BudgetSummary) BudgetSummaryResponse {
	res := BudgetSummaryResponse{
		Success:  true,
		Month:    s.Month,
		Spent:    s.Spent,
		Progress: s.Progress,
		Forecast: s.Forecast,
	}
	if s.Budget != nil {
		b := ToBudgetResponse(s.Budget)
		res.Budget = &b
	}
	return res
}

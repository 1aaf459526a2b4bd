package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySummary is one category's share of an aggregation window.
type CategorySummary struct {
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	PercentageOfTotal decimal.Decimal `json:"percentage"`
}

// CategoryBreakdown is the ranked (amount descending) category summary of a window.
type CategoryBreakdown struct {
	Categories []CategorySummary `json:"categories"`
	Total      decimal.Decimal   `json:"totalSpent"`
}

// RankedCategories returns the category names in ranking order.
func (b CategoryBreakdown) RankedCategories() []string {
	out := make([]string, len(b.Categories))
	for i, c := range b.Categories {
		out[i] = c.Category
	}
	return out
}

// SpentByCategory flattens the breakdown into a category → amount map.
func (b CategoryBreakdown) SpentByCategory() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(b.Categories))
	for _, c := range b.Categories {
		out[c.Category] = c.Amount
	}
	return out
}

// MonthSummary is the spend of one calendar month.
type MonthSummary struct {
	MonthKey          MonthKey                   `json:"rawMonth"`
	DisplayLabel      string                     `json:"month"`
	Total             decimal.Decimal            `json:"total"`
	PerCategoryTotals map[string]decimal.Decimal `json:"categories"`
}

// CategorySeries is one category's per-month spend, aligned index for index
// with MonthlySeries.Months.
type CategorySeries struct {
	Category string            `json:"category"`
	Values   []decimal.Decimal `json:"data"`
}

// MonthlySeries is the chronologically sorted month list plus aligned
// per-category series for the top-ranked categories.
type MonthlySeries struct {
	Months         []MonthSummary   `json:"months"`
	CategorySeries []CategorySeries `json:"categorySeries"`
}

// MonthKeys returns the month keys of the series in order.
func (s MonthlySeries) MonthKeys() []MonthKey {
	out := make([]MonthKey, len(s.Months))
	for i, m := range s.Months {
		out[i] = m.MonthKey
	}
	return out
}

// TrendPoint is the month-over-month change of one month.
type TrendPoint struct {
	MonthKey      MonthKey        `json:"rawMonth"`
	Total         decimal.Decimal `json:"total"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// TrendReport is the trend over a month series.
type TrendReport struct {
	Points              []TrendPoint    `json:"points"`
	AverageMonthlySpend decimal.Decimal `json:"averageMonthlySpend"`
}

// ResolutionState is the terminal state of a budget resolution.
type ResolutionState string

const (
	ResolvedCurrent ResolutionState = "RESOLVED_CURRENT"
	ResolvedCarried ResolutionState = "RESOLVED_CARRIED"
	ResolvedEmpty   ResolutionState = "RESOLVED_EMPTY"
)

// BudgetResolution is the outcome of resolving the budget for a target month.
// Carried and empty resolutions are suggestions only; they are never persisted
// until the user saves them explicitly.
type BudgetResolution struct {
	State       ResolutionState `json:"state"`
	TargetMonth MonthKey        `json:"month"`
	SourceMonth MonthKey        `json:"sourceMonth,omitempty"`
	Limits      BudgetLimits    `json:"budgets"`
	Editable    bool            `json:"editable"`
	FirstTime   bool            `json:"firstTime"`
}

// ProgressStatus classifies budget utilization.
type ProgressStatus string

const (
	StatusOnTrack ProgressStatus = "on-track"
	StatusWarning ProgressStatus = "warning"
	StatusOver    ProgressStatus = "over"
)

// Color returns the indicator color for the status.
func (s ProgressStatus) Color() string {
	switch s {
	case StatusWarning:
		return "yellow"
	case StatusOver:
		return "red"
	default:
		return "green"
	}
}

// CategoryProgress is the utilization of one budgeted category.
type CategoryProgress struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Ratio    decimal.Decimal `json:"ratio"`
	Status   ProgressStatus  `json:"status"`
}

// BudgetProgress is the progress of all budgeted categories for a month.
type BudgetProgress struct {
	Categories []CategoryProgress         `json:"categories"`
	Unbudgeted map[string]decimal.Decimal `json:"unbudgeted,omitempty"`
}

// Forecast is a linear projection of month-end spend, compared against the
// month's income. ProjectedOverspend is zero when income is not positive.
type Forecast struct {
	AsOf               time.Time       `json:"asOf"`
	DaysElapsed        int             `json:"daysElapsed"`
	DaysInMonth        int             `json:"daysInMonth"`
	DailyAverage       decimal.Decimal `json:"dailyAverage"`
	ProjectedTotal     decimal.Decimal `json:"projectedTotal"`
	Income             decimal.Decimal `json:"income"`
	ProjectedOverspend decimal.Decimal `json:"projectedOverspend"`
}

// BudgetSummary combines a month's budget, actual spend and derived progress.
type BudgetSummary struct {
	Month    MonthKey                   `json:"month"`
	Budget   *BudgetRecord              `json:"budget,omitempty"`
	Spent    map[string]decimal.Decimal `json:"spent"`
	Progress BudgetProgress             `json:"progress"`
	Forecast *Forecast                  `json:"forecast,omitempty"`
}

// MonthlyAnalysis is everything derived from one transaction window.
type MonthlyAnalysis struct {
	Transactions []Transaction     `json:"transactions"`
	Categories   CategoryBreakdown `json:"categorySummary"`
	Series       MonthlySeries     `json:"monthlySummary"`
	Trend        TrendReport       `json:"trend"`
}

// Dashboard is the full fetch, aggregate, resolve and evaluate result for one
// selected month.
type Dashboard struct {
	Month      MonthKey          `json:"month"`
	Sequence   uint64            `json:"sequence"`
	Resolution BudgetResolution  `json:"resolution"`
	Categories CategoryBreakdown `json:"categories"`
	Progress   BudgetProgress    `json:"progress"`
	Series     MonthlySeries     `json:"series"`
	Trend      TrendReport       `json:"trend"`
	Forecast   Forecast          `json:"forecast"`
}

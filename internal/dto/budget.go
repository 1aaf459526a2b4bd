package dto

import (
	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// SaveBudgetRequest is the upsert body for a month's budget. Limit values may
// be numbers, numeric strings (non-numeric characters are stripped), "" or null.
type SaveBudgetRequest struct {
	Month   string              `json:"month" binding:"required,monthkey"`
	Budgets domain.BudgetLimits `json:"budgets" binding:"required"`
}

// BudgetResponse defines the data returned for a month's budget.
type BudgetResponse struct {
	Month   domain.MonthKey     `json:"month"`
	Budgets domain.BudgetLimits `json:"budgets"`
}

// GetBudgetResponse wraps a single month lookup. A missing budget is a
// successful call with Success false.
type GetBudgetResponse struct {
	Success bool            `json:"success"`
	Budget  *BudgetResponse `json:"budget,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ListBudgetsResponse maps month keys to budgets.
type ListBudgetsResponse struct {
	Success bool                      `json:"success"`
	Budgets map[string]BudgetResponse `json:"budgets"`
}

// SaveBudgetResponse acknowledges an upsert.
type SaveBudgetResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Budget  BudgetResponse `json:"budget"`
}

// ResolveBudgetResponse is the budget resolution for a month.
type ResolveBudgetResponse struct {
	Success    bool                    `json:"success"`
	Resolution domain.BudgetResolution `json:"resolution"`
}

// ToBudgetResponse converts a domain.BudgetRecord to BudgetResponse DTO
func ToBudgetResponse(b *domain.BudgetRecord) BudgetResponse {
	return BudgetResponse{Month: b.Month, Budgets: b.Limits}
}

// ToListBudgetsResponse keys budgets by month
func ToListBudgetsResponse(budgets []domain.BudgetRecord) ListBudgetsResponse {
	res := ListBudgetsResponse{Success: true, Budgets: make(map[string]BudgetResponse, len(budgets))}
	for i := range budgets {
		res.Budgets[budgets[i].Month.String()] = ToBudgetResponse(&budgets[i])
	}
	return res
}

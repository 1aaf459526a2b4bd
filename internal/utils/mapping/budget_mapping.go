package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/SscSPs/spendcheck/internal/models"
)

// ToModelBudget converts a domain BudgetRecord to a model Budget
func ToModelBudget(d domain.BudgetRecord) (models.Budget, error) {
	limits := d.Limits
	if limits == nil {
		limits = domain.BudgetLimits{}
	}
	raw, err := json.Marshal(limits)
	if err != nil {
		return models.Budget{}, fmt.Errorf("failed to encode budget limits: %w", err)
	}
	return models.Budget{
		UserID:      d.UserID,
		Month:       d.Month.String(),
		Limits:      raw,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainBudget converts a model Budget to a domain BudgetRecord
func ToDomainBudget(m models.Budget) (domain.BudgetRecord, error) {
	limits := domain.BudgetLimits{}
	if len(m.Limits) > 0 {
		if err := json.Unmarshal(m.Limits, &limits); err != nil {
			return domain.BudgetRecord{}, fmt.Errorf("failed to decode limits for budget %s: %w", m.Month, err)
		}
	}
	return domain.BudgetRecord{
		UserID:      m.UserID,
		Month:       domain.MonthKey(m.Month),
		Limits:      limits,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainBudgetSlice converts a slice of model Budgets to domain BudgetRecords
func ToDomainBudgetSlice(ms []models.Budget) ([]domain.BudgetRecord, error) {
	out := make([]domain.BudgetRecord, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainBudget(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

package analytics

import (
	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// ResolveBudget picks the limits that apply to target given every budget
// record the user has. An exact match resolves as current; otherwise the
// latest record before target is offered as a carry-forward suggestion;
// otherwise the default empty template is returned.
//
// Carried and empty results are suggestions: nothing is written back.
// A month is editable when it is the current month or later.
func ResolveBudget(target, current domain.MonthKey, records []domain.BudgetRecord) domain.BudgetResolution {
	res := domain.BudgetResolution{
		TargetMonth: target,
		Editable:    target >= current,
	}

	var carried *domain.BudgetRecord
	for i := range records {
		rec := &records[i]
		if rec.Month == target {
			res.State = domain.ResolvedCurrent
			res.SourceMonth = rec.Month
			res.Limits = rec.Limits.Clone()
			return res
		}
		if rec.Month < target && (carried == nil || rec.Month > carried.Month) {
			carried = rec
		}
	}

	res.FirstTime = true
	if carried != nil {
		res.State = domain.ResolvedCarried
		res.SourceMonth = carried.Month
		res.Limits = carried.Limits.Clone()
		return res
	}

	res.State = domain.ResolvedEmpty
	res.Limits = domain.EmptyBudgetLimits()
	return res
}

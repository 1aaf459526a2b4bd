package services

import (
	"context"
	"errors"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/analytics"
	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// resolveBudget runs the resolver against a budget store. The exact month is
// asked for first; only a confirmed absence (ErrNotFound) falls through to the
// full list. Any other failure is returned as is and never replaced by the
// empty template.
func resolveBudget(
	ctx context.Context,
	target, current domain.MonthKey,
	find func(context.Context) (*domain.BudgetRecord, error),
	list func(context.Context) ([]domain.BudgetRecord, error),
) (*domain.BudgetResolution, error) {
	rec, err := find(ctx)
	if err == nil && rec != nil {
		res := analytics.ResolveBudget(target, current, []domain.BudgetRecord{*rec})
		return &res, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	all, err := list(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	res := analytics.ResolveBudget(target, current, all)
	return &res, nil
}

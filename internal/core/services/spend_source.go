package services

import (
	"context"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
)

// repositorySpendSource serves dashboard inputs straight from the local repositories.
type repositorySpendSource struct {
	txRepo     portsrepo.TransactionReader
	budgetRepo portsrepo.BudgetReader
}

// NewRepositorySpendSource adapts the repositories to the SpendSource port.
func NewRepositorySpendSource(txRepo portsrepo.TransactionReader, budgetRepo portsrepo.BudgetReader) portsrepo.SpendSource {
	return &repositorySpendSource{txRepo: txRepo, budgetRepo: budgetRepo}
}

var _ portsrepo.SpendSource = (*repositorySpendSource)(nil)

func (r *repositorySpendSource) FetchTransactions(ctx context.Context, session domain.Session, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if !session.Valid() {
		return nil, apperrors.ErrAuthRequired
	}
	return r.txRepo.ListTransactions(ctx, session.UserID, filter)
}

func (r *repositorySpendSource) FetchBudget(ctx context.Context, session domain.Session, month domain.MonthKey) (*domain.BudgetRecord, error) {
	if !session.Valid() {
		return nil, apperrors.ErrAuthRequired
	}
	return r.budgetRepo.FindBudget(ctx, session.UserID, month)
}

func (r *repositorySpendSource) FetchBudgets(ctx context.Context, session domain.Session) ([]domain.BudgetRecord, error) {
	if !session.Valid() {
		return nil, apperrors.ErrAuthRequired
	}
	return r.budgetRepo.ListBudgets(ctx, session.UserID)
}

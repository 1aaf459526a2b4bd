// Package analytics holds the budget-vs-spend aggregation engine. Every
// function here is pure: it takes its full input and returns a fresh result,
// so calls are safe to run concurrently and to repeat.
package analytics

import (
	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// SpendFilter decides which transactions count as spend. The zero value
// excludes Income; IncludeIncome restores the legacy behaviour of treating
// every positive amount as spend.
type SpendFilter struct {
	IncludeIncome bool
}

// Contributes reports whether tx is counted by the aggregators.
func (f SpendFilter) Contributes(tx domain.Transaction) bool {
	if !tx.Amount.IsPositive() {
		return false
	}
	if tx.TransactionType == domain.Income && !f.IncludeIncome {
		return false
	}
	return true
}

// InMonth returns the transactions dated inside month (UTC).
func InMonth(txs []domain.Transaction, month domain.MonthKey) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if domain.MonthKeyOf(tx.Date) == month {
			out = append(out, tx)
		}
	}
	return out
}

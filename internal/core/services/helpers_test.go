package services_test

import (
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

func limits(kv map[string]int64) domain.BudgetLimits {
	out := make(domain.BudgetLimits, len(kv))
	for k, v := range kv {
		out[k] = decimal.NewNullDecimal(decimal.NewFromInt(v))
	}
	return out
}

func expenseOn(category string, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		ID:              category + date.Format("0102"),
		TransactionType: domain.Expense,
		Category:        category,
		Amount:          decimal.NewFromInt(amount),
		Date:            date,
	}
}

func incomeOn(amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		ID:              "income" + date.Format("0102"),
		TransactionType: domain.Income,
		Category:        "Salary",
		Amount:          decimal.NewFromInt(amount),
		Date:            date,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

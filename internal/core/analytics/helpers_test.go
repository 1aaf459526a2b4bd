package analytics_test

import (
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(category, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionType: domain.Expense,
		Category:        category,
		Amount:          dec(amount),
		Date:            date,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func limitsOf(kv map[string]string) domain.BudgetLimits {
	out := make(domain.BudgetLimits, len(kv))
	for k, v := range kv {
		if v == "" {
			out[k] = decimal.NullDecimal{}
			continue
		}
		out[k] = decimal.NewNullDecimal(dec(v))
	}
	return out
}

package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_CategoryOrDefault(t *testing.T) {
	assert.Equal(t, "Food", domain.Transaction{Category: " Food "}.CategoryOrDefault())
	assert.Equal(t, domain.UncategorizedCategory, domain.Transaction{}.CategoryOrDefault())
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid expense",
			tx: domain.Transaction{
				Amount:          decimal.NewFromFloat(42.5),
				TransactionType: domain.Expense,
				Category:        "Food",
				PaymentMethod:   "UPI",
				Date:            now,
			},
		},
		{
			name: "valid income without category",
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(5000),
				TransactionType: domain.Income,
				Date:            now,
			},
		},
		{
			name: "expense without category",
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(10),
				TransactionType: domain.Expense,
				Date:            now,
			},
			wantErr: true,
			errMsg:  "category is required",
		},
		{
			name: "negative amount",
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(-1),
				TransactionType: domain.Expense,
				Category:        "Food",
				Date:            now,
			},
			wantErr: true,
			errMsg:  "must not be negative",
		},
		{
			name: "unknown type",
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(1),
				TransactionType: "Transfer",
				Date:            now,
			},
			wantErr: true,
			errMsg:  "Income or Expense",
		},
		{
			name: "income with payment method",
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(1),
				TransactionType: domain.Income,
				PaymentMethod:   "Card",
				Date:            now,
			},
			wantErr: true,
			errMsg:  "payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionFilter_Matches(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	f := domain.TransactionFilter{Category: "Food", StartDate: &start, EndDate: &end}

	assert.True(t, f.Matches(domain.Transaction{Category: "Food", Date: start.AddDate(0, 0, 3)}))
	assert.False(t, f.Matches(domain.Transaction{Category: "Bills", Date: start.AddDate(0, 0, 3)}))
	assert.False(t, f.Matches(domain.Transaction{Category: "Food", Date: end.Add(time.Second)}))
	assert.True(t, domain.TransactionFilter{}.Matches(domain.Transaction{}))
}

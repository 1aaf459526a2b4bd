package analytics_test

import (
	"testing"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/analytics"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastMonth(t *testing.T) {
	got := analytics.ForecastMonth(dec("300"), day(2025, 4, 10))

	assert.Equal(t, 10, got.DaysElapsed)
	assert.Equal(t, 30, got.DaysInMonth)
	assert.True(t, got.DailyAverage.Equal(dec("30")))
	assert.True(t, got.ProjectedTotal.Equal(dec("900")))
}

func TestForecastMonth_LeapFebruary(t *testing.T) {
	got := analytics.ForecastMonth(dec("100"), day(2024, 2, 3))

	assert.Equal(t, 29, got.DaysInMonth)
	assert.True(t, got.DailyAverage.Equal(dec("33.33")))
	assert.True(t, got.ProjectedTotal.Equal(dec("966.67")))
}

func TestForecastMonth_ZeroTime(t *testing.T) {
	got := analytics.ForecastMonth(dec("100"), time.Time{})
	assert.Zero(t, got.DaysElapsed)
	assert.True(t, got.ProjectedTotal.IsZero())
}

func TestForecastFor(t *testing.T) {
	now := day(2025, 3, 15)

	past := analytics.ForecastFor("2025-02", dec("280"), now)
	assert.Equal(t, 28, past.DaysElapsed)
	assert.True(t, past.ProjectedTotal.Equal(dec("280")))

	future := analytics.ForecastFor("2025-04", dec("0"), now)
	assert.True(t, future.ProjectedTotal.IsZero())

	current := analytics.ForecastFor("2025-03", dec("150"), now)
	assert.Equal(t, 15, current.DaysElapsed)
	assert.True(t, current.ProjectedTotal.Equal(dec("310")))
}

func TestAgainstIncome(t *testing.T) {
	projected := analytics.ForecastMonth(dec("400"), day(2025, 4, 10)) // 1200 by month end

	tests := []struct {
		name      string
		income    string
		overspend string
	}{
		{name: "projection above income", income: "1000", overspend: "200"},
		{name: "projection inside income", income: "1500", overspend: "0"},
		{name: "projection equals income", income: "1200", overspend: "0"},
		{name: "no income", income: "0", overspend: "0"},
		{name: "negative income", income: "-50", overspend: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.AgainstIncome(projected, dec(tt.income))

			assert.True(t, got.Income.Equal(dec(tt.income)))
			assert.True(t, got.ProjectedOverspend.Equal(dec(tt.overspend)), "overspend %s", got.ProjectedOverspend)
			assert.True(t, got.ProjectedTotal.Equal(dec("1200")))
		})
	}
}

func TestIncomeTotal(t *testing.T) {
	txs := []domain.Transaction{
		{TransactionType: domain.Income, Amount: dec("1000"), Date: day(2025, 4, 1)},
		{TransactionType: domain.Income, Amount: dec("250.50"), Date: day(2025, 4, 15)},
		{TransactionType: domain.Income, Amount: dec("-20"), Date: day(2025, 4, 16)},
		expense("Food", "300", day(2025, 4, 2)),
	}

	assert.True(t, analytics.IncomeTotal(txs).Equal(dec("1250.5")))
	assert.True(t, analytics.IncomeTotal(nil).IsZero())
}

func TestEvaluateForecastAlert(t *testing.T) {
	now := day(2025, 4, 10)
	forecast := analytics.ForecastMonth(dec("400"), now)

	tests := []struct {
		name   string
		income string
		alert  bool
	}{
		{name: "overspend", income: "1000", alert: true},
		{name: "no overspend", income: "2000", alert: false},
		{name: "zero income", income: "0", alert: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.EvaluateForecastAlert("user-1", "2025-04", analytics.AgainstIncome(forecast, dec(tt.income)), now)
			if !tt.alert {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, domain.AlertForecastOverspend, got.Level)
			assert.Empty(t, got.Category)
			assert.True(t, got.Spent.Equal(dec("1200")))
			assert.True(t, got.Limit.Equal(dec("1000")))
			assert.True(t, got.PercentUsed.Equal(dec("120")))
			assert.Equal(t, now, got.RaisedAt)
		})
	}
}

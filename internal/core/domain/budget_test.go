package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthKey(t *testing.T) {
	m, err := domain.ParseMonthKey("2025-03")
	require.NoError(t, err)
	assert.Equal(t, domain.MonthKey("2025-03"), m)
	assert.Equal(t, "Mar 2025", m.Label())

	_, err = domain.ParseMonthKey("2025-13")
	assert.ErrorIs(t, err, apperrors.ErrMalformedInput)

	_, err = domain.ParseMonthKey("March")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMonthKeyOf_NormalisesToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 1 Feb 03:00 in IST is still 31 Jan in UTC.
	local := time.Date(2025, 2, 1, 3, 0, 0, 0, ist)
	assert.Equal(t, domain.MonthKey("2025-01"), domain.MonthKeyOf(local))
}

func TestMonthKey_Range(t *testing.T) {
	start, end := domain.MonthKey("2024-12").Range()
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		valid   bool
		wantErr bool
	}{
		{name: "plain number", raw: "250", want: "250", valid: true},
		{name: "thousands separator", raw: "1,200", want: "1200", valid: true},
		{name: "currency symbol", raw: "₹300.50", want: "300.5", valid: true},
		{name: "empty placeholder", raw: "", valid: false},
		{name: "letters only", raw: "abc", valid: false},
		{name: "two decimal points", raw: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseLimit(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Decimal))
			}
		})
	}
}

func TestBudgetLimits_UnmarshalJSON(t *testing.T) {
	var limits domain.BudgetLimits
	err := json.Unmarshal([]byte(`{"Food":"1,200","Bills":250,"Shopping":"","Travel":null}`), &limits)
	require.NoError(t, err)

	assert.True(t, limits.LimitFor("Food").Equal(decimal.NewFromInt(1200)))
	assert.True(t, limits.LimitFor("Bills").Equal(decimal.NewFromInt(250)))
	assert.False(t, limits["Shopping"].Valid)
	assert.False(t, limits["Travel"].Valid)
	assert.True(t, limits.LimitFor("Missing").IsZero())
}

func TestBudgetLimits_UnmarshalJSON_RejectsNegative(t *testing.T) {
	var limits domain.BudgetLimits
	err := json.Unmarshal([]byte(`{"Food":-5}`), &limits)
	assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
}

func TestEmptyBudgetLimits(t *testing.T) {
	limits := domain.EmptyBudgetLimits()
	assert.Len(t, limits, len(domain.DefaultBudgetCategories))
	for _, c := range domain.DefaultBudgetCategories {
		v, ok := limits[c]
		assert.True(t, ok, c)
		assert.False(t, v.Valid, c)
	}
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultBudgetCategories seeds an empty budget template.
var DefaultBudgetCategories = []string{"Food", "Transportation", "Entertainment", "Shopping", "Bills", "Healthcare"}

const monthKeyLayout = "2006-01"

// MonthKey identifies a calendar month as YYYY-MM. Lexicographic order of
// month keys is chronological order.
type MonthKey string

// ParseMonthKey validates s as a YYYY-MM month key.
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse(monthKeyLayout, s); err != nil {
		return "", fmt.Errorf("%w: month must be YYYY-MM, got %q", apperrors.ErrMalformedInput, s)
	}
	return MonthKey(s), nil
}

// MonthKeyOf derives the month key of t. Dates are normalised to UTC first,
// so a transaction is always assigned to the same month regardless of the
// caller's location.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.UTC().Format(monthKeyLayout))
}

// Valid reports whether m is a well-formed YYYY-MM key.
func (m MonthKey) Valid() bool {
	_, err := time.Parse(monthKeyLayout, string(m))
	return err == nil
}

// String implements fmt.Stringer.
func (m MonthKey) String() string {
	return string(m)
}

// Label renders the month for display, e.g. "Jan 2025". Malformed keys are
// returned verbatim.
func (m MonthKey) Label() string {
	t, err := time.Parse(monthKeyLayout, string(m))
	if err != nil {
		return string(m)
	}
	return t.Format("Jan 2006")
}

// Range returns the half-open UTC interval [start, end) covered by the month.
func (m MonthKey) Range() (time.Time, time.Time) {
	start, err := time.Parse(monthKeyLayout, string(m))
	if err != nil {
		return time.Time{}, time.Time{}
	}
	return start, start.AddDate(0, 1, 0)
}

// BudgetLimits maps a category to its monthly ceiling. An invalid
// NullDecimal is an unset placeholder the user has not filled in yet.
type BudgetLimits map[string]decimal.NullDecimal

// LimitFor returns the ceiling for category, or zero when unset or absent.
func (l BudgetLimits) LimitFor(category string) decimal.Decimal {
	v, ok := l[category]
	if !ok || !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// Clone returns an independent copy of the limits.
func (l BudgetLimits) Clone() BudgetLimits {
	out := make(BudgetLimits, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// UnmarshalJSON accepts numbers, numeric strings (sanitized with ParseLimit),
// empty strings and null for each category.
func (l *BudgetLimits) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(BudgetLimits, len(raw))
	for category, value := range raw {
		value = bytes.TrimSpace(value)
		switch {
		case len(value) == 0 || bytes.Equal(value, []byte("null")):
			out[category] = decimal.NullDecimal{}
		case value[0] == '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return err
			}
			parsed, err := ParseLimit(s)
			if err != nil {
				return fmt.Errorf("limit for %q: %w", category, err)
			}
			out[category] = parsed
		default:
			d, err := decimal.NewFromString(string(value))
			if err != nil || d.IsNegative() {
				return fmt.Errorf("limit for %q: %w: %s", category, apperrors.ErrMalformedInput, value)
			}
			out[category] = decimal.NewNullDecimal(d)
		}
	}
	*l = out
	return nil
}

// ParseLimit sanitizes free-text budget input by dropping everything except
// digits and the decimal point. Empty input yields an unset limit.
func ParseLimit(raw string) (decimal.NullDecimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q is not a number", apperrors.ErrMalformedInput, raw)
	}
	return decimal.NewNullDecimal(d), nil
}

// EmptyBudgetLimits returns the default category template with every limit unset.
func EmptyBudgetLimits() BudgetLimits {
	out := make(BudgetLimits, len(DefaultBudgetCategories))
	for _, c := range DefaultBudgetCategories {
		out[c] = decimal.NullDecimal{}
	}
	return out
}

// BudgetRecord holds a user's declared limits for one month. Month is the
// natural key; there is at most one record per user per month.
type BudgetRecord struct {
	UserID string       `json:"userId,omitempty"`
	Month  MonthKey     `json:"month"`
	Limits BudgetLimits `json:"budgets"`
	AuditFields
}

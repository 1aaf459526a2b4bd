package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertLevel is the severity of a budget alert.
type AlertLevel string

const (
	AlertWarning  AlertLevel = "warning"
	AlertExceeded AlertLevel = "exceeded"
	// AlertForecastOverspend means projected month-end spend is above the
	// month's income. Such alerts carry no category.
	AlertForecastOverspend AlertLevel = "forecast_overspend"
)

// BudgetAlert is a one-way trigger for the notification pipeline.
type BudgetAlert struct {
	UserID      string          `json:"userId"`
	Month       MonthKey        `json:"month"`
	Category    string          `json:"category"`
	Level       AlertLevel      `json:"level"`
	Spent       decimal.Decimal `json:"spent"`
	Limit       decimal.Decimal `json:"limit"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	RaisedAt    time.Time       `json:"raisedAt"`
}

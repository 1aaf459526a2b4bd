// Command spendcheck_report loads the dashboard for one month through the
// backend API and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/spendcheck/internal/adapters/backendapi"
	"github.com/SscSPs/spendcheck/internal/core/analytics"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/SscSPs/spendcheck/internal/core/services"
	"github.com/SscSPs/spendcheck/internal/platform/config"
	"github.com/shopspring/decimal"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	monthFlag := flag.String("month", domain.MonthKeyOf(time.Now()).String(), "month to report (YYYY-MM)")
	topN := flag.Int("top", analytics.DefaultTopCategories, "categories per monthly series")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	month, err := domain.ParseMonthKey(*monthFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	session := domain.Session{UserID: cfg.SessionUserID, Token: cfg.SessionToken}
	client := backendapi.NewClient(cfg.BackendBaseURL)
	dashboard := services.NewDashboardService(client,
		services.WithDashboardSpendFilter(analytics.SpendFilter{IncludeIncome: cfg.IncludeIncomeInSpend}),
		services.WithTopCategories(*topN),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := dashboard.LoadMonth(ctx, session, month)
	if err != nil {
		logger.Error("Failed to load dashboard", slog.String("month", month.String()), slog.String("error", err.Error()))
		os.Exit(1)
	}

	decimal.MarshalJSONWithoutQuotes = true
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

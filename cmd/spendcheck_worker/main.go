// Command spendcheck_worker periodically checks every budget of the current
// month and publishes alert triggers to AMQP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/spendcheck/internal/adapters/notify"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/core/services"
	"github.com/SscSPs/spendcheck/internal/platform/config"
	"github.com/SscSPs/spendcheck/internal/repositories/database/pgsql"
	"github.com/SscSPs/spendcheck/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	publisher, err := notify.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
	if err != nil {
		logger.Error("Failed to connect to AMQP", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer publisher.Close()

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), publisher)

	logger.Info("Alert worker started", slog.Duration("interval", cfg.AlertCheckInterval))
	run(ctx, logger, container.Alert, cfg.AlertCheckInterval)
	logger.Info("Alert worker stopped")
}

// run checks once immediately and then on every tick until ctx is cancelled.
func run(ctx context.Context, logger *slog.Logger, alerts portssvc.AlertSvc, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		check(ctx, logger, alerts)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func check(ctx context.Context, logger *slog.Logger, alerts portssvc.AlertSvc) {
	now := time.Now()
	month := domain.MonthKeyOf(now)
	sent, err := alerts.CheckMonth(ctx, month, now)
	if err != nil {
		logger.Error("Alert check failed", slog.String("month", month.String()), slog.Int("published", sent), slog.String("error", err.Error()))
		return
	}
	logger.Info("Alert check completed", slog.String("month", month.String()), slog.Int("published", sent))
}

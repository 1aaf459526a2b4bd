package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/SscSPs/spendcheck/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock overrides time.Now; nil means the wall clock.
	Clock func() time.Time
}

// Now returns the current time from Clock, or time.Now when unset.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RequireUser fails with apperrors.ErrAuthRequired when no user is known for the call.
func (s *BaseService) RequireUser(ctx context.Context, userID string) error {
	if userID == "" {
		s.LogDebug(ctx, "Call rejected without an authenticated user")
		return apperrors.ErrAuthRequired
	}
	return nil
}

// RequireMonth fails with apperrors.ErrMalformedInput when month is not YYYY-MM.
func (s *BaseService) RequireMonth(month domain.MonthKey) error {
	if !month.Valid() {
		return fmt.Errorf("%w: month must be YYYY-MM, got %q", apperrors.ErrMalformedInput, string(month))
	}
	return nil
}

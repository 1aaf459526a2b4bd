package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps the apperrors taxonomy onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAuthRequired), errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes it as a JSON error body. Server-side
// failures are reported with failMsg instead of the internal error text.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failMsg})
		return
	}
	logger.Warn(failMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

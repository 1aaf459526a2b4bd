package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/dto"
	"github.com/SscSPs/spendcheck/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler serves the category and monthly aggregations.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvc
}

// RegisterAnalyticsRoutes registers routes related to spend analytics.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, as portssvc.AnalyticsSvc) {
	h := &analyticsHandler{analyticsService: as}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/categories", h.categoryBreakdown)
		analytics.GET("/monthly", h.monthlyTrend)
	}
}

// categoryBreakdown godoc
// @Summary Spend by category
// @Description Ranks categories by spend (descending) with their share of the total
// @Tags analytics
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   startDate query string false "Inclusive start (YYYY-MM-DD or RFC3339)"
// @Param   endDate query string false "Inclusive end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.CategoryAnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to aggregate categories"
// @Security BearerAuth
// @Router /users/{userId}/analytics/categories [get]
func (h *analyticsHandler) categoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	_, filter, err := bindTransactionFilter(c)
	if err != nil {
		logger.Warn("Failed to bind query params for CategoryBreakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	breakdown, err := h.analyticsService.CategoryBreakdown(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, logger, err, "Failed to aggregate categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryAnalyticsResponse(breakdown))
}

// monthlyTrend godoc
// @Summary Spend by month
// @Description Chronological monthly totals, per-category series for the top categories and month-over-month trend
// @Tags analytics
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   startDate query string false "Inclusive start (YYYY-MM-DD or RFC3339)"
// @Param   endDate query string false "Inclusive end (YYYY-MM-DD or RFC3339)"
// @Param   topN query int false "Categories per series" default(5)
// @Success 200 {object} dto.MonthlyAnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to aggregate months"
// @Security BearerAuth
// @Router /users/{userId}/analytics/monthly [get]
func (h *analyticsHandler) monthlyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	params, filter, err := bindTransactionFilter(c)
	if err != nil {
		logger.Warn("Failed to bind query params for MonthlyTrend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	analysis, err := h.analyticsService.MonthlyAnalysis(c.Request.Context(), userID, filter, params.TopN)
	if err != nil {
		respondError(c, logger, err, "Failed to aggregate months")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyAnalyticsResponse(analysis))
}

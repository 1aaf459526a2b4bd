package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/dto"
	"github.com/SscSPs/spendcheck/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to monthly budgets.
type budgetHandler struct {
	budgetService    portssvc.BudgetSvcFacade
	analyticsService portssvc.AnalyticsSvc
	now              func() time.Time
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade, as portssvc.AnalyticsSvc, now func() time.Time) *budgetHandler {
	if now == nil {
		now = time.Now
	}
	return &budgetHandler{budgetService: bs, analyticsService: as, now: now}
}

// RegisterBudgetRoutes registers routes related to budgets. now supplies the
// "current month" for resolution and forecasts; nil means the wall clock.
func RegisterBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvcFacade, as portssvc.AnalyticsSvc, now func() time.Time) {
	h := newBudgetHandler(bs, as, now)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.saveBudget)
		budgets.GET("/:month", h.getBudget)
		budgets.DELETE("/:month", h.deleteBudget)
		budgets.GET("/:month/resolve", h.resolveBudget)
	}
	rg.GET("/get_budget_summary/:month", h.budgetSummary)
}

// monthParam parses the :month path parameter, answering 400 when malformed.
func monthParam(c *gin.Context, logger *slog.Logger) (domain.MonthKey, bool) {
	month, err := domain.ParseMonthKey(c.Param("month"))
	if err != nil {
		logger.Warn("Invalid month path parameter", slog.String("month", c.Param("month")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return month, true
}

// getBudget godoc
// @Summary Get a month's budget
// @Description Retrieves the budget for one month. A month without a budget answers 200 with success=false.
// @Tags budgets
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.GetBudgetResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to retrieve budget"
// @Security BearerAuth
// @Router /users/{userId}/budgets/{month} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)
	month, ok := monthParam(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), userID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("No budget for month", slog.String("month", month.String()))
			c.JSON(http.StatusOK, dto.GetBudgetResponse{Success: false, Message: "No budget found for " + month.String()})
			return
		}
		respondError(c, logger, err, "Failed to retrieve budget")
		return
	}

	res := dto.ToBudgetResponse(budget)
	c.JSON(http.StatusOK, dto.GetBudgetResponse{Success: true, Budget: &res})
}

// listBudgets godoc
// @Summary List budgets
// @Description Retrieves every saved budget keyed by month
// @Tags budgets
// @Produce  json
// @Param   userId path string true "User ID"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Security BearerAuth
// @Router /users/{userId}/budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets))
}

// saveBudget godoc
// @Summary Save a month's budget
// @Description Creates or replaces the budget of a month. Limits may be numbers, numeric strings, "" or null.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   budget body dto.SaveBudgetRequest true "Budget"
// @Success 200 {object} dto.SaveBudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to save budget"
// @Security BearerAuth
// @Router /users/{userId}/budgets [post]
func (h *budgetHandler) saveBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.SaveBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save budget")
		return
	}

	logger.Info("Budget saved", slog.String("month", budget.Month.String()), slog.Int("categories", len(budget.Limits)))
	c.JSON(http.StatusOK, dto.SaveBudgetResponse{
		Success: true,
		Message: "Budget saved for " + budget.Month.String(),
		Budget:  dto.ToBudgetResponse(budget),
	})
}

// deleteBudget godoc
// @Summary Delete a month's budget
// @Tags budgets
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to delete budget"
// @Security BearerAuth
// @Router /users/{userId}/budgets/{month} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)
	month, ok := monthParam(c, logger)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, month); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}

	logger.Info("Budget deleted", slog.String("month", month.String()))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Budget deleted for " + month.String()})
}

// resolveBudget godoc
// @Summary Resolve the budget that applies to a month
// @Description Returns the month's own budget, the most recent earlier budget carried forward, or an empty default template
// @Tags budgets
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.ResolveBudgetResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to resolve budget"
// @Security BearerAuth
// @Router /users/{userId}/budgets/{month}/resolve [get]
func (h *budgetHandler) resolveBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)
	month, ok := monthParam(c, logger)
	if !ok {
		return
	}

	resolution, err := h.budgetService.ResolveBudget(c.Request.Context(), userID, month, h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to resolve budget")
		return
	}

	logger.Info("Budget resolved", slog.String("month", month.String()), slog.String("state", string(resolution.State)))
	c.JSON(http.StatusOK, dto.ResolveBudgetResponse{Success: true, Resolution: *resolution})
}

// budgetSummary godoc
// @Summary Budget vs actual for a month
// @Description Returns spend per category for the month alongside its budget, per-category progress and a month-end forecast
// @Tags budgets
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to build budget summary"
// @Security BearerAuth
// @Router /users/{userId}/get_budget_summary/{month} [get]
func (h *budgetHandler) budgetSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)
	month, ok := monthParam(c, logger)
	if !ok {
		return
	}

	summary, err := h.analyticsService.BudgetSummary(c.Request.Context(), userID, month, h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to build budget summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(summary))
}

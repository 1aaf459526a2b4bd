package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/dto"
	"github.com/SscSPs/spendcheck/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	analyticsService   portssvc.AnalyticsSvc
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, as portssvc.AnalyticsSvc) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		analyticsService:   as,
	}
}

// RegisterTransactionRoutes registers routes related to transactions on a
// group already scoped to /users/:userId.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, as portssvc.AnalyticsSvc) {
	h := newTransactionHandler(ts, as)

	txs := rg.Group("/transactions")
	{
		txs.GET("", h.listTransactions)
		txs.POST("", h.createTransaction)
		txs.POST("/from-suggestion", h.createFromSuggestion)
		txs.GET("/monthly-analysis", h.monthlyAnalysis)
	}
}

// bindTransactionFilter reads the category/startDate/endDate query into a filter.
func bindTransactionFilter(c *gin.Context) (dto.ListTransactionsParams, domain.TransactionFilter, error) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, domain.TransactionFilter{}, err
	}
	filter := domain.TransactionFilter{Category: params.Category}
	if params.StartDate != "" {
		start, err := parseDateParam(params.StartDate, false)
		if err != nil {
			return params, filter, err
		}
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, err := parseDateParam(params.EndDate, true)
		if err != nil {
			return params, filter, err
		}
		filter.EndDate = &end
	}
	return params, filter, nil
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves the user's transactions, newest first, optionally filtered by category and date window
// @Tags transactions
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   category query string false "Exact category"
// @Param   startDate query string false "Inclusive start (YYYY-MM-DD or RFC3339)"
// @Param   endDate query string false "Inclusive end (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /users/{userId}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	_, filter, err := bindTransactionFilter(c)
	if err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txs, err := h.transactionService.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(txs)))
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txs))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an Income or Expense transaction; Expense requires a category
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /users/{userId}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", tx.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// createFromSuggestion godoc
// @Summary Accept a suggested transaction
// @Description Records an Expense proposed by bill extraction or voice parsing, snapping its category onto a known one
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   suggestion body dto.TransactionSuggestionRequest true "Suggested transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /users/{userId}/transactions/from-suggestion [post]
func (h *transactionHandler) createFromSuggestion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.TransactionSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFromSuggestion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.transactionService.CreateFromSuggestion(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Suggested transaction recorded",
		slog.String("transaction_id", tx.ID),
		slog.String("source", req.Source),
		slog.String("category", tx.Category),
	)
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// monthlyAnalysis godoc
// @Summary Monthly analysis
// @Description Returns the window's transactions with the per-category totals and the per-month summary
// @Tags transactions
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   startDate query string false "Inclusive start (YYYY-MM-DD or RFC3339)"
// @Param   endDate query string false "Inclusive end (YYYY-MM-DD or RFC3339)"
// @Param   topN query int false "Categories per monthly series" default(5)
// @Success 200 {object} dto.MonthlyAnalysisResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to analyse transactions"
// @Security BearerAuth
// @Router /users/{userId}/transactions/monthly-analysis [get]
func (h *transactionHandler) monthlyAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	params, filter, err := bindTransactionFilter(c)
	if err != nil {
		logger.Warn("Failed to bind query params for MonthlyAnalysis", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	analysis, err := h.analyticsService.MonthlyAnalysis(c.Request.Context(), userID, filter, params.TopN)
	if err != nil {
		respondError(c, logger, err, "Failed to analyse transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyAnalysisResponse(analysis))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/dto"
	"github.com/fynlens/fynlens_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
	}
}

// listTransactions godoc
// @Summary List transactions matching a filter
// @Description Applies the filter pipeline to the snapshot's transactions, newest first
// @Tags transactions
// @Produce  json
// @Param   accountId query []string false "Account IDs" collectionFormat(multi)
// @Param   categoryId query []string false "Category IDs" collectionFormat(multi)
// @Param   spendingGroupId query []string false "Spending group IDs" collectionFormat(multi)
// @Param   tagId query []string false "Tag IDs" collectionFormat(multi)
// @Param   pendingOnly query bool false "Only pending transactions"
// @Param   unseenOnly query bool false "Only unread transactions"
// @Param   uncategorizedOnly query bool false "Only uncategorized transactions"
// @Param   currentBudgetOnly query bool false "Only the current pay period, excluding transfers"
// @Param   fromDate query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   toDate query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   minAmount query string false "Minimum absolute amount"
// @Param   maxAmount query string false "Maximum absolute amount"
// @Param   search query string false "Free-text search"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		logger.Warn("Invalid transaction filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.transactionService.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoAggregate) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Aggregate data not available yet"})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, filter))
}

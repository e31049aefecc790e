package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/dto"
	"github.com/fynlens/fynlens_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService    portssvc.BudgetSvcFacade
	payPeriodService portssvc.PayPeriodSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade, ps portssvc.PayPeriodSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService:    bs,
		payPeriodService: ps,
	}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, payPeriodService portssvc.PayPeriodSvcFacade) {
	h := newBudgetHandler(budgetService, payPeriodService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("/summary", h.getSummary)
		budgets.GET("/groups", h.getGroupBreakdown)
	}
}

// resolvePayPeriod reads the optional payPeriod query parameter, falling back
// to the current pay period when absent. Writes the error response on failure.
func (h *budgetHandler) resolvePayPeriod(c *gin.Context) (int, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw := c.Query("payPeriod")
	if raw == "" {
		info, err := h.payPeriodService.CurrentPeriod(c.Request.Context())
		if err != nil {
			if errors.Is(err, apperrors.ErrNoAggregate) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Aggregate data not available yet"})
				return 0, false
			}
			logger.Error("Failed to resolve current pay period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve current pay period"})
			return 0, false
		}
		return info.Period, true
	}

	period, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Invalid payPeriod parameter", slog.String("payPeriod", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payPeriod: must be YYYYMM"})
		return 0, false
	}
	return period, true
}

// getSummary godoc
// @Summary Get the budget summary for a pay period
// @Description Overall budgeted-vs-spent position with the income group excluded
// @Tags budgets
// @Produce  json
// @Param   payPeriod query int false "Pay period (YYYYMM), defaults to the current period"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 400 {object} map[string]string "Invalid pay period"
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /budgets/summary [get]
func (h *budgetHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := h.resolvePayPeriod(c)
	if !ok {
		return
	}

	summary, err := h.budgetService.Summary(c.Request.Context(), period)
	if err != nil {
		handleBudgetError(c, logger, err, "Failed to compute budget summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(summary))
}

// getGroupBreakdown godoc
// @Summary Get per-spending-group rollups for a pay period
// @Description Budgeted-vs-actual per spending group, in the fixed group sort order
// @Tags budgets
// @Produce  json
// @Param   payPeriod query int false "Pay period (YYYYMM), defaults to the current period"
// @Success 200 {array} dto.GroupSummaryResponse
// @Failure 400 {object} map[string]string "Invalid pay period"
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /budgets/groups [get]
func (h *budgetHandler) getGroupBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := h.resolvePayPeriod(c)
	if !ok {
		return
	}

	groups, err := h.budgetService.GroupBreakdown(c.Request.Context(), period)
	if err != nil {
		handleBudgetError(c, logger, err, "Failed to compute group breakdown")
		return
	}

	responses := make([]dto.GroupSummaryResponse, len(groups))
	for i, g := range groups {
		responses[i] = dto.ToGroupSummaryResponse(g, domain.AlertLevelFor(g.Actual, g.Target))
	}

	c.JSON(http.StatusOK, responses)
}

// handleBudgetError maps service errors to HTTP responses.
func handleBudgetError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoAggregate):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Aggregate data not available yet"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

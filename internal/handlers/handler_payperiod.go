package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/dto"
	"github.com/fynlens/fynlens_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payPeriodHandler handles HTTP requests related to pay periods.
type payPeriodHandler struct {
	payPeriodService portssvc.PayPeriodSvcFacade
}

// newPayPeriodHandler creates a new payPeriodHandler.
func newPayPeriodHandler(ps portssvc.PayPeriodSvcFacade) *payPeriodHandler {
	return &payPeriodHandler{
		payPeriodService: ps,
	}
}

// registerPayPeriodRoutes registers routes related to pay periods.
func registerPayPeriodRoutes(rg *gin.RouterGroup, payPeriodService portssvc.PayPeriodSvcFacade) {
	h := newPayPeriodHandler(payPeriodService)

	payPeriods := rg.Group("/payperiods")
	{
		payPeriods.GET("/current", h.getCurrentPeriod)
		payPeriods.GET("/:period", h.getPeriod)
	}
}

// getCurrentPeriod godoc
// @Summary Get the current pay period
// @Description Describes the pay period containing today, per the customer's day of month paid
// @Tags payperiods
// @Produce  json
// @Success 200 {object} dto.PayPeriodResponse
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /payperiods/current [get]
func (h *payPeriodHandler) getCurrentPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	info, err := h.payPeriodService.CurrentPeriod(c.Request.Context())
	if err != nil {
		handleBudgetError(c, logger, err, "Failed to compute current pay period")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayPeriodResponse(info))
}

// getPeriod godoc
// @Summary Describe a specific pay period
// @Description Boundaries and days remaining for an arbitrary YYYYMM period
// @Tags payperiods
// @Produce  json
// @Param   period path int true "Pay period (YYYYMM)"
// @Success 200 {object} dto.PayPeriodResponse
// @Failure 400 {object} map[string]string "Invalid pay period"
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /payperiods/{period} [get]
func (h *payPeriodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := strconv.Atoi(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period: must be YYYYMM"})
		return
	}

	info, err := h.payPeriodService.PeriodInfo(c.Request.Context(), period)
	if err != nil {
		handleBudgetError(c, logger, err, "Failed to describe pay period")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayPeriodResponse(info))
}

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

// netWorthHandler handles HTTP requests related to net worth.
type netWorthHandler struct {
	netWorthService portssvc.NetWorthSvcFacade
}

// newNetWorthHandler creates a new netWorthHandler.
func newNetWorthHandler(ns portssvc.NetWorthSvcFacade) *netWorthHandler {
	return &netWorthHandler{
		netWorthService: ns,
	}
}

// registerNetWorthRoutes registers routes related to net worth.
func registerNetWorthRoutes(rg *gin.RouterGroup, netWorthService portssvc.NetWorthSvcFacade) {
	h := newNetWorthHandler(netWorthService)

	rg.GET("/networth", h.getNetWorth)
}

// getNetWorth godoc
// @Summary Get the customer's net worth
// @Description Sums asset and liability legs across eligible accounts in the requested currency
// @Tags networth
// @Produce  json
// @Param   currency query string false "Target currency code, defaults to the customer's currency"
// @Success 200 {object} dto.NetWorthResponse
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /networth [get]
func (h *netWorthHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.netWorthService.NetWorth(c.Request.Context(), c.Query("currency"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNoAggregate) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Aggregate data not available yet"})
			return
		}
		logger.Error("Failed to compute net worth", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute net worth"})
		return
	}

	c.JSON(http.StatusOK, dto.ToNetWorthResponse(summary))
}

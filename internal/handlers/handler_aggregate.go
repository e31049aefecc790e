package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/dto"
	"github.com/fynlens/fynlens_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// aggregateHandler handles HTTP requests related to the aggregate snapshot.
type aggregateHandler struct {
	aggregateService portssvc.AggregateSvcFacade
}

// newAggregateHandler creates a new aggregateHandler.
func newAggregateHandler(as portssvc.AggregateSvcFacade) *aggregateHandler {
	return &aggregateHandler{
		aggregateService: as,
	}
}

// registerAggregateRoutes registers routes related to the aggregate snapshot.
func registerAggregateRoutes(rg *gin.RouterGroup, aggregateService portssvc.AggregateSvcFacade) {
	h := newAggregateHandler(aggregateService)

	aggregate := rg.Group("/aggregate")
	{
		aggregate.POST("/refresh", h.refreshAggregate)
	}
}

// refreshAggregate godoc
// @Summary Refresh the aggregate snapshot
// @Description Re-fetches exchange rates and the full aggregate from the upstream API
// @Tags aggregate
// @Produce  json
// @Success 200 {object} dto.RefreshResponse
// @Failure 502 {object} map[string]string "Upstream fetch failed"
// @Router /aggregate/refresh [post]
func (h *aggregateHandler) refreshAggregate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agg, err := h.aggregateService.Refresh(c.Request.Context())
	if err != nil {
		logger.Error("Failed to refresh aggregate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh aggregate"})
		return
	}

	logger.Info("Aggregate refreshed", slog.Int("transaction_count", len(agg.Transactions)))
	c.JSON(http.StatusOK, dto.ToRefreshResponse(agg))
}

// snapshotOrFail loads the current aggregate, writing the error response on
// failure so callers can simply return.
func snapshotOrFail(c *gin.Context, reader portssvc.AggregateReaderSvc) (*domain.Aggregate, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	snapshot, err := reader.Snapshot(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoAggregate) {
			logger.Warn("No aggregate available", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Aggregate data not available yet"})
			return nil, false
		}
		logger.Error("Failed to load aggregate snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load aggregate"})
		return nil, false
	}
	return snapshot, true
}

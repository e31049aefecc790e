package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/dto"
	"github.com/fynlens/fynlens_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currency conversion.
type currencyHandler struct {
	currencyService  portssvc.CurrencySvcFacade
	aggregateService portssvc.AggregateReaderSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, as portssvc.AggregateReaderSvc) *currencyHandler {
	return &currencyHandler{
		currencyService:  cs,
		aggregateService: as,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, aggregateService portssvc.AggregateReaderSvc) {
	h := newCurrencyHandler(currencyService, aggregateService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("/convert", h.convert)
	}
	rg.GET("/exchange-rates", h.listExchangeRates)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts via cross-rate arithmetic over the snapshot's exchange rates
// @Tags currencies
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   asOf query string false "Historical rate date (YYYY-MM-DD)"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /currencies/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agg, ok := snapshotOrFail(c, h.aggregateService)
	if !ok {
		return
	}

	from := strings.ToUpper(req.FromCurrency)
	to := strings.ToUpper(req.ToCurrency)
	result, err := h.currencyService.Convert(c.Request.Context(), req.Amount, from, to, agg.ExchangeRates, req.AsOfDate)
	converted := err == nil
	if err != nil {
		// Missing rates degrade to an unconverted echo rather than an error.
		logger.Debug("Conversion not possible", slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
		result = req.Amount
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:       req.Amount,
		FromCurrency: from,
		ToCurrency:   to,
		Result:       result,
		Converted:    converted,
	})
}

// listExchangeRates godoc
// @Summary List resolved exchange rates
// @Description Returns the single applicable rate per currency against the anchor
// @Tags currencies
// @Produce  json
// @Param   asOf query string false "Historical rate date (YYYY-MM-DD)"
// @Success 200 {array} dto.ResolvedRateResponse
// @Failure 503 {object} map[string]string "Aggregate data not available yet"
// @Router /exchange-rates [get]
func (h *currencyHandler) listExchangeRates(c *gin.Context) {
	agg, ok := snapshotOrFail(c, h.aggregateService)
	if !ok {
		return
	}

	asOfDate := c.Query("asOf")
	resolved := h.currencyService.ResolveRates(agg.ExchangeRates, asOfDate)

	responses := make([]dto.ResolvedRateResponse, 0, len(resolved))
	for code, rate := range resolved {
		responses = append(responses, dto.ResolvedRateResponse{CurrencyCode: code, Rate: rate})
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].CurrencyCode < responses[j].CurrencyCode
	})

	c.JSON(http.StatusOK, responses)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// currencyService converts amounts between currencies using cross-rate
// arithmetic over a sparse rate table. Every rate in the table is expressed
// against a single anchor currency; the anchor is an explicit configuration
// value, never an assumption baked into the arithmetic.
type currencyService struct {
	BaseService
	anchorCurrency string
}

// CurrencyServiceOption is a functional option for configuring the currency service
type CurrencyServiceOption func(*currencyService)

// WithAnchorCurrency overrides the anchor currency the rate table is
// expressed against.
func WithAnchorCurrency(code string) CurrencyServiceOption {
	return func(s *currencyService) {
		s.anchorCurrency = strings.ToUpper(code)
	}
}

// NewCurrencyService creates a new currency conversion service. The anchor
// defaults to USD.
func NewCurrencyService(options ...CurrencyServiceOption) portssvc.CurrencySvcFacade {
	svc := &currencyService{
		anchorCurrency: "USD",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// ResolveRates selects exactly one rate per currency from the flat rate list:
// for historical conversion (asOfDate set) the entries matching that exact
// date, otherwise the entry with the latest date per currency. The anchor
// currency always resolves to 1 even when absent from the table.
func (s *currencyService) ResolveRates(rates []domain.ExchangeRate, asOfDate string) map[string]decimal.Decimal {
	resolved := make(map[string]decimal.Decimal)
	latestDate := make(map[string]string)

	for _, rate := range rates {
		code := strings.ToUpper(rate.CurrencyCode)
		if asOfDate != "" {
			if rate.Date == asOfDate {
				resolved[code] = rate.Rate
			}
			continue
		}
		// Dates are "YYYY-MM-DD" strings, so lexicographic order is
		// chronological order.
		if prev, ok := latestDate[code]; !ok || rate.Date > prev {
			latestDate[code] = rate.Date
			resolved[code] = rate.Rate
		}
	}

	if _, ok := resolved[s.anchorCurrency]; !ok {
		resolved[s.anchorCurrency] = decimal.NewFromInt(1)
	}
	return resolved
}

// Convert converts amount between two currencies. Zero amounts and
// same-currency conversions pass through unchanged regardless of rate
// availability; otherwise both currencies must resolve to a rate or
// apperrors.ErrNoExchangeRate is returned.
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string, rates []domain.ExchangeRate, asOfDate string) (decimal.Decimal, error) {
	if amount.IsZero() || strings.EqualFold(fromCurrency, toCurrency) {
		return amount, nil
	}

	resolved := s.ResolveRates(rates, asOfDate)
	fromRate, fromOK := resolved[strings.ToUpper(fromCurrency)]
	toRate, toOK := resolved[strings.ToUpper(toCurrency)]
	if !fromOK || !toOK || fromRate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s to %s", apperrors.ErrNoExchangeRate, fromCurrency, toCurrency)
	}

	// Cross-rate: both rates are against the anchor, so neither currency is
	// assumed to be the anchor itself.
	return amount.Mul(toRate).Div(fromRate), nil
}

// CanConvert reports whether Convert would succeed for the currency pair.
func (s *currencyService) CanConvert(ctx context.Context, fromCurrency, toCurrency string, rates []domain.ExchangeRate, asOfDate string) bool {
	if strings.EqualFold(fromCurrency, toCurrency) {
		return true
	}
	resolved := s.ResolveRates(rates, asOfDate)
	fromRate, fromOK := resolved[strings.ToUpper(fromCurrency)]
	_, toOK := resolved[strings.ToUpper(toCurrency)]
	return fromOK && toOK && !fromRate.IsZero()
}

// ConvertMoney returns a new Money in the target currency. When conversion is
// impossible the original Money is returned unchanged so the caller can still
// display something sensible.
func (s *currencyService) ConvertMoney(ctx context.Context, money domain.Money, toCurrency string, rates []domain.ExchangeRate, asOfDate string) domain.Money {
	converted, err := s.Convert(ctx, money.Amount, money.CurrencyCode, toCurrency, rates, asOfDate)
	if err != nil {
		s.LogDebug(ctx, "Conversion unavailable, returning original amount",
			slog.String("from", money.CurrencyCode),
			slog.String("to", toCurrency))
		return money
	}
	return domain.Money{
		Amount:       converted,
		CurrencyCode: strings.ToUpper(toCurrency),
		Sign:         money.Sign,
	}
}

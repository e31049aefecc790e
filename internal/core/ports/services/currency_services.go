package services

import (
	"context"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencySvcFacade converts amounts between currencies using a sparse table
// of rates against a common anchor currency. An empty asOfDate means "latest
// rate per currency"; a "YYYY-MM-DD" value selects rates effective on that
// exact date.
type CurrencySvcFacade interface {
	// Convert converts amount from one currency to another via cross-rate
	// arithmetic. Returns apperrors.ErrNoExchangeRate when either currency
	// has no resolvable rate.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string, rates []domain.ExchangeRate, asOfDate string) (decimal.Decimal, error)

	// CanConvert reports whether a conversion between the two currencies is
	// possible with the given rates.
	CanConvert(ctx context.Context, fromCurrency, toCurrency string, rates []domain.ExchangeRate, asOfDate string) bool

	// ConvertMoney returns a new Money in the target currency, or the
	// original Money unchanged when conversion is impossible.
	ConvertMoney(ctx context.Context, money domain.Money, toCurrency string, rates []domain.ExchangeRate, asOfDate string) domain.Money

	// ResolveRates selects the single applicable rate per currency, keyed by
	// upper-case currency code. The anchor currency is always present.
	ResolveRates(rates []domain.ExchangeRate, asOfDate string) map[string]decimal.Decimal
}

package domain

import "github.com/shopspring/decimal"

// ExchangeRate stores the conversion rate of one currency against the common
// anchor currency for a specific date. The rate table is a flat list and may
// contain multiple entries per currency across different dates; conversion
// between two non-anchor currencies is computed as a cross-rate
// (toRate / fromRate), never by assuming either currency is the anchor.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (e.g., UUID)
	CurrencyCode   string          `json:"currencyCode"`   // Currency this rate prices against the anchor
	Rate           decimal.Decimal `json:"rate"`           // Units of CurrencyCode per one unit of the anchor
	Date           string          `json:"date"`           // Effective date, "YYYY-MM-DD"
}

package domain

import "github.com/shopspring/decimal"

// NetWorthSummary is the asset/liability position across all eligible
// accounts, expressed in a single target currency where rates allow.
type NetWorthSummary struct {
	CurrencyCode     string          `json:"currencyCode"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"` // TotalAssets - TotalLiabilities
}

package dto

import (
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest binds the currency conversion query parameters.
type ConvertRequest struct {
	Amount       decimal.Decimal `form:"amount" binding:"required"`
	FromCurrency string          `form:"from" binding:"required,len=3,alpha"`
	ToCurrency   string          `form:"to" binding:"required,len=3,alpha"`
	AsOfDate     string          `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// ConvertResponse carries a conversion result. Converted is false when no
// rate was available, in which case Result echoes the original amount.
type ConvertResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Result       decimal.Decimal `json:"result"`
	Converted    bool            `json:"converted"`
}

// ResolvedRateResponse is one currency's applicable rate against the anchor.
type ResolvedRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
}

// NetWorthResponse is the net-worth summary for API responses.
type NetWorthResponse struct {
	CurrencyCode     string          `json:"currencyCode"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// ToNetWorthResponse converts a domain.NetWorthSummary to the response DTO.
func ToNetWorthResponse(s *domain.NetWorthSummary) NetWorthResponse {
	return NetWorthResponse{
		CurrencyCode:     s.CurrencyCode,
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		NetWorth:         s.NetWorth,
	}
}

package dto

import "github.com/fynlens/fynlens_backend/internal/core/domain"

// RefreshResponse summarizes a completed aggregate refresh.
type RefreshResponse struct {
	Accounts      int `json:"accounts"`
	Transactions  int `json:"transactions"`
	ExchangeRates int `json:"exchangeRates"`
	Goals         int `json:"goals"`
}

// ToRefreshResponse converts a refreshed aggregate into the response DTO.
func ToRefreshResponse(agg *domain.Aggregate) RefreshResponse {
	return RefreshResponse{
		Accounts:      len(agg.Accounts),
		Transactions:  len(agg.Transactions),
		ExchangeRates: len(agg.ExchangeRates),
		Goals:         len(agg.Goals),
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// netWorthService implements the NetWorthSvcFacade interface
type netWorthService struct {
	BaseService
	aggregateSvc portssvc.AggregateReaderSvc
	currencySvc  portssvc.CurrencySvcFacade
}

// NewNetWorthService creates a new net-worth calculation service.
func NewNetWorthService(aggregateSvc portssvc.AggregateReaderSvc, currencySvc portssvc.CurrencySvcFacade) portssvc.NetWorthSvcFacade {
	return &netWorthService{
		aggregateSvc: aggregateSvc,
		currencySvc:  currencySvc,
	}
}

var _ portssvc.NetWorthSvcFacade = (*netWorthService)(nil)

// NetWorth sums the have/owe legs of all eligible accounts into asset and
// liability totals in the target currency. Legs that cannot be converted
// contribute their original amounts rather than being dropped, so a missing
// rate degrades the figure instead of breaking it.
func (s *netWorthService) NetWorth(ctx context.Context, targetCurrency string) (*domain.NetWorthSummary, error) {
	agg, err := s.aggregateSvc.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aggregate for net worth: %w", err)
	}

	if targetCurrency == "" {
		targetCurrency = agg.CustomerInfo.DefaultCurrencyCode
	}
	targetCurrency = strings.ToUpper(targetCurrency)

	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero

	for _, account := range agg.Accounts {
		if !account.ContributesToNetWorth() {
			continue
		}

		if account.Have != nil {
			haveValue := s.currencySvc.ConvertMoney(ctx, *account.Have, targetCurrency, agg.ExchangeRates, "").RealNumber()
			if account.IsCreditType() {
				// On credit accounts a positive balance is the outstanding
				// amount owed; a negative balance is a credit in the
				// customer's favor.
				if haveValue.IsPositive() {
					totalLiabilities = totalLiabilities.Add(haveValue)
				} else if haveValue.IsNegative() {
					totalAssets = totalAssets.Add(haveValue.Abs())
				}
			} else {
				if haveValue.IsNegative() {
					totalLiabilities = totalLiabilities.Add(haveValue.Abs())
				} else {
					totalAssets = totalAssets.Add(haveValue)
				}
			}
		}

		if account.Owe != nil {
			oweValue := s.currencySvc.ConvertMoney(ctx, *account.Owe, targetCurrency, agg.ExchangeRates, "").RealNumber()
			if account.IsCreditType() {
				totalLiabilities = totalLiabilities.Add(oweValue.Abs())
			} else if oweValue.IsNegative() {
				totalLiabilities = totalLiabilities.Add(oweValue.Abs())
			} else if oweValue.IsPositive() {
				// An owe leg in the customer's favor is rare but possible
				// (e.g., an overpaid loan).
				totalAssets = totalAssets.Add(oweValue)
			}
		}
	}

	summary := &domain.NetWorthSummary{
		CurrencyCode:     targetCurrency,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
	}
	s.LogDebug(ctx, "Net worth computed",
		slog.String("currency", targetCurrency),
		slog.String("net_worth", summary.NetWorth.String()))
	return summary, nil
}

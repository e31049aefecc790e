package services

import (
	portsrepo "github.com/fynlens/fynlens_backend/internal/core/ports/repositories"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
)

// NewServiceContainer wires the full service graph over the given adapters.
// rateCache may be nil, in which case the offline rate fallback is disabled.
func NewServiceContainer(reader portsrepo.AggregateReader, rateCache portsrepo.RateCacheRepository, anchorCurrency string) *portssvc.ServiceContainer {
	aggregateOptions := []AggregateServiceOption{}
	if rateCache != nil {
		aggregateOptions = append(aggregateOptions, WithRateCache(rateCache))
	}
	aggregateSvc := NewAggregateService(reader, aggregateOptions...)

	currencyOptions := []CurrencyServiceOption{}
	if anchorCurrency != "" {
		currencyOptions = append(currencyOptions, WithAnchorCurrency(anchorCurrency))
	}
	currencySvc := NewCurrencyService(currencyOptions...)

	return &portssvc.ServiceContainer{
		Aggregate:   aggregateSvc,
		Currency:    currencySvc,
		Budget:      NewBudgetService(aggregateSvc),
		PayPeriod:   NewPayPeriodService(aggregateSvc),
		Transaction: NewTransactionService(aggregateSvc),
		NetWorth:    NewNetWorthService(aggregateSvc, currencySvc),
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portsrepo "github.com/fynlens/fynlens_backend/internal/core/ports/repositories"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
)

// aggregateService owns the in-memory snapshot. The snapshot is immutable
// once stored and replaced wholesale on refresh; readers always see a
// consistent aggregate.
type aggregateService struct {
	BaseService
	reader    portsrepo.AggregateReader
	rateCache portsrepo.RateCacheRepository

	mu       sync.RWMutex
	snapshot *domain.Aggregate
}

// AggregateServiceOption is a functional option for configuring the aggregate service
type AggregateServiceOption func(*aggregateService)

// WithRateCache enables the offline exchange-rate fallback cache.
func WithRateCache(cache portsrepo.RateCacheRepository) AggregateServiceOption {
	return func(s *aggregateService) {
		s.rateCache = cache
	}
}

// NewAggregateService creates a new aggregate snapshot service.
func NewAggregateService(reader portsrepo.AggregateReader, options ...AggregateServiceOption) portssvc.AggregateSvcFacade {
	svc := &aggregateService{reader: reader}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AggregateSvcFacade = (*aggregateService)(nil)

// Refresh fetches exchange rates first and the full aggregate second, so no
// currency-denominated computation can ever observe a snapshot without
// rates. A failed rate fetch falls back to the persisted cache; a successful
// one refreshes it.
func (s *aggregateService) Refresh(ctx context.Context) (*domain.Aggregate, error) {
	rates, err := s.reader.FetchExchangeRates(ctx)
	if err != nil {
		rates, err = s.cachedRates(ctx, err)
		if err != nil {
			return nil, err
		}
	} else if s.rateCache != nil {
		if cacheErr := s.rateCache.SaveRates(ctx, rates, time.Now()); cacheErr != nil {
			// Cache writes are best effort; a failure must not block refresh.
			s.LogError(ctx, cacheErr, "Failed to persist exchange rates to cache")
		}
	}

	agg, err := s.reader.FetchAggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aggregate: %w", err)
	}
	agg.ExchangeRates = rates

	s.mu.Lock()
	s.snapshot = agg
	s.mu.Unlock()

	s.LogInfo(ctx, "Aggregate refreshed",
		slog.Int("accounts", len(agg.Accounts)),
		slog.Int("transactions", len(agg.Transactions)),
		slog.Int("exchange_rates", len(agg.ExchangeRates)))
	return agg, nil
}

// Snapshot returns the current aggregate, performing an initial refresh when
// none has been loaded yet.
func (s *aggregateService) Snapshot(ctx context.Context) (*domain.Aggregate, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()
	if snapshot != nil {
		return snapshot, nil
	}

	snapshot, err := s.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNoAggregate, err)
	}
	return snapshot, nil
}

// cachedRates loads the offline rate cache after a failed fetch, or reports
// the original fetch error when nothing usable is cached.
func (s *aggregateService) cachedRates(ctx context.Context, fetchErr error) ([]domain.ExchangeRate, error) {
	if s.rateCache == nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", fetchErr)
	}
	rates, fetchedAt, err := s.rateCache.LoadRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Exchange rate cache unavailable after failed fetch")
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", fetchErr)
	}
	s.LogInfo(ctx, "Using cached exchange rates after failed fetch",
		slog.Time("fetched_at", fetchedAt),
		slog.Int("rate_count", len(rates)))
	return rates, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
)

// AggregateReader fetches a customer's financial snapshot from the remote
// aggregation API. Exchange rates are fetchable on their own because they
// must be available before any currency-denominated computation runs.
type AggregateReader interface {
	// FetchExchangeRates retrieves the current exchange-rate table.
	FetchExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// FetchAggregate retrieves the full aggregate snapshot.
	FetchAggregate(ctx context.Context) (*domain.Aggregate, error)
}

// RateCacheRepository persists the most recently fetched exchange rates so
// conversion can degrade gracefully when the network fetch fails.
type RateCacheRepository interface {
	// SaveRates replaces the cached rate table wholesale.
	SaveRates(ctx context.Context, rates []domain.ExchangeRate, fetchedAt time.Time) error

	// LoadRates returns the cached rates and when they were fetched.
	// Returns apperrors.ErrNotFound when nothing has been cached yet.
	LoadRates(ctx context.Context) ([]domain.ExchangeRate, time.Time, error)
}

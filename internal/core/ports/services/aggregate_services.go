package services

import (
	"context"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
)

// AggregateReaderSvc exposes the current in-memory snapshot.
type AggregateReaderSvc interface {
	// Snapshot returns the current aggregate, fetching it first when none has
	// been loaded yet. Returns apperrors.ErrNoAggregate when loading fails
	// and nothing is cached.
	Snapshot(ctx context.Context) (*domain.Aggregate, error)
}

// AggregateRefresherSvc forces a re-fetch of the snapshot.
type AggregateRefresherSvc interface {
	// Refresh fetches exchange rates and the full aggregate from the remote
	// API and replaces the in-memory snapshot wholesale.
	Refresh(ctx context.Context) (*domain.Aggregate, error)
}

// AggregateSvcFacade combines all aggregate-related service interfaces.
type AggregateSvcFacade interface {
	AggregateReaderSvc
	AggregateRefresherSvc
}

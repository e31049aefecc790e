package services

import (
	"context"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
)

// TransactionSvcFacade filters and sorts the snapshot's transaction list.
type TransactionSvcFacade interface {
	// List applies the filter pipeline to the snapshot's transactions and
	// returns the matches sorted by date descending.
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// NetWorthSvcFacade computes the customer's net worth across accounts.
type NetWorthSvcFacade interface {
	// NetWorth sums asset and liability legs across eligible accounts,
	// converted into targetCurrency where rates allow.
	NetWorth(ctx context.Context, targetCurrency string) (*domain.NetWorthSummary, error)
}

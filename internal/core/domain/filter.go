package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilter is the full set of criteria a transaction list can be
// narrowed by. Every field is optional; the zero value matches everything.
// The quick-filter booleans are a closed set of named toggles; the filter
// vocabulary is fixed and known at compile time.
type TransactionFilter struct {
	AccountIDs       []string
	CategoryIDs      []string
	SpendingGroupIDs []string
	TagIDs           []string

	PendingOnly       bool
	UnseenOnly        bool
	UncategorizedOnly bool
	CurrentBudgetOnly bool

	FromDate *time.Time
	ToDate   *time.Time

	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal

	SearchText string
}

// ActiveFilterCount counts how many categories of filter are active: one per
// non-empty list, per enabled boolean toggle, per set range and per search
// term, not one per individual value. Used for the filter badge.
func (f TransactionFilter) ActiveFilterCount() int {
	count := 0
	if len(f.AccountIDs) > 0 {
		count++
	}
	if len(f.CategoryIDs) > 0 {
		count++
	}
	if len(f.SpendingGroupIDs) > 0 {
		count++
	}
	if len(f.TagIDs) > 0 {
		count++
	}
	if f.PendingOnly {
		count++
	}
	if f.UnseenOnly {
		count++
	}
	if f.UncategorizedOnly {
		count++
	}
	if f.CurrentBudgetOnly {
		count++
	}
	if f.FromDate != nil || f.ToDate != nil {
		count++
	}
	if f.MinAmount != nil || f.MaxAmount != nil {
		count++
	}
	if f.SearchText != "" {
		count++
	}
	return count
}

package services

import (
	"context"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
)

// BudgetSvcFacade rolls category-period totals up into spending-group
// breakdowns and an overall budget summary.
type BudgetSvcFacade interface {
	// GroupBreakdown returns per-spending-group budgeted-vs-actual rollups
	// for the given pay period, in the fixed group sort order.
	GroupBreakdown(ctx context.Context, payPeriod int) ([]domain.GroupSummary, error)

	// Summary returns the overall budget position for the given pay period,
	// with the income group excluded from all totals.
	Summary(ctx context.Context, payPeriod int) (*domain.BudgetSummary, error)
}

// PayPeriodSvcFacade computes pay-period boundaries from the customer's
// configured day of month paid.
type PayPeriodSvcFacade interface {
	// CurrentPeriod describes the pay period containing today.
	CurrentPeriod(ctx context.Context) (*domain.PayPeriodInfo, error)

	// PeriodInfo describes an arbitrary pay period.
	PeriodInfo(ctx context.Context, period int) (*domain.PayPeriodInfo, error)
}

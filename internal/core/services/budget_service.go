package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	aggregateSvc portssvc.AggregateReaderSvc
}

// NewBudgetService creates a new budget rollup service over the aggregate
// snapshot.
func NewBudgetService(aggregateSvc portssvc.AggregateReaderSvc) portssvc.BudgetSvcFacade {
	return &budgetService{aggregateSvc: aggregateSvc}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CategoriesWithValue keeps only rows that carry information for the UI:
// a positive effective budget or actual spend. Rows with neither are dropped
// entirely.
func CategoriesWithValue(totals []domain.CategoryTotal) []domain.CategoryTotal {
	kept := make([]domain.CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		budget := ct.EffectiveBudget()
		if (budget != nil && budget.IsPositive()) || ct.TotalAmount.IsPositive() {
			kept = append(kept, ct)
		}
	}
	return kept
}

// RollupBySpendingGroup groups category totals by spending group, summing
// actual spend and the floor of each row's effective budget (zero when no
// budget is known). Output order is fully determined by the fixed ID-keyed
// sort table; groups absent from the table sort last.
func RollupBySpendingGroup(groups []domain.SpendingGroup, totals []domain.CategoryTotal) []domain.GroupSummary {
	descriptions := make(map[string]string, len(groups))
	for _, g := range groups {
		descriptions[g.SpendingGroupID] = g.Description
	}

	byGroup := make(map[string]*domain.GroupSummary)
	for _, ct := range CategoriesWithValue(totals) {
		summary, ok := byGroup[ct.SpendingGroupID]
		if !ok {
			summary = &domain.GroupSummary{
				SpendingGroupID: ct.SpendingGroupID,
				Description:     descriptions[ct.SpendingGroupID],
				Actual:          decimal.Zero,
				Target:          decimal.Zero,
				SortOrder:       domain.SpendingGroupSortOrder(ct.SpendingGroupID),
			}
			byGroup[ct.SpendingGroupID] = summary
		}
		summary.Actual = summary.Actual.Add(ct.TotalAmount)
		if budget := ct.EffectiveBudget(); budget != nil {
			summary.Target = summary.Target.Add(budget.Floor())
		}
	}

	summaries := make([]domain.GroupSummary, 0, len(byGroup))
	for _, summary := range byGroup {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].SortOrder != summaries[j].SortOrder {
			return summaries[i].SortOrder < summaries[j].SortOrder
		}
		return summaries[i].SpendingGroupID < summaries[j].SpendingGroupID
	})
	return summaries
}

// GroupBreakdown returns the per-spending-group rollup for one pay period.
func (s *budgetService) GroupBreakdown(ctx context.Context, payPeriod int) ([]domain.GroupSummary, error) {
	agg, err := s.aggregateSvc.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aggregate for group breakdown: %w", err)
	}
	return RollupBySpendingGroup(agg.SpendingGroups, totalsForPeriod(agg.CategoryTotals, payPeriod)), nil
}

// Summary computes the overall budgeted-vs-actual position for one pay
// period. Income is excluded by its stable group ID before summing so it can
// never inflate or offset spending totals.
func (s *budgetService) Summary(ctx context.Context, payPeriod int) (*domain.BudgetSummary, error) {
	agg, err := s.aggregateSvc.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aggregate for budget summary: %w", err)
	}

	rollup := RollupBySpendingGroup(agg.SpendingGroups, totalsForPeriod(agg.CategoryTotals, payPeriod))

	totalSpent := decimal.Zero
	totalBudgeted := decimal.Zero
	for _, group := range rollup {
		if group.SpendingGroupID == domain.SpendingGroupIncome {
			continue
		}
		totalSpent = totalSpent.Add(group.Actual)
		totalBudgeted = totalBudgeted.Add(group.Target)
	}

	remaining := totalBudgeted.Sub(totalSpent)
	zeroBasedRemaining := remaining
	if zeroBasedRemaining.IsNegative() {
		zeroBasedRemaining = decimal.Zero
	}

	maxAmount := totalBudgeted
	if totalSpent.GreaterThan(maxAmount) {
		maxAmount = totalSpent
	}
	percentUsed := decimal.Zero
	if maxAmount.IsPositive() {
		percentUsed = totalSpent.Div(maxAmount).Mul(decimal.NewFromInt(100))
	}

	summary := &domain.BudgetSummary{
		PayPeriod:          payPeriod,
		TotalSpent:         totalSpent,
		TotalBudgeted:      totalBudgeted,
		Remaining:          remaining,
		ZeroBasedRemaining: zeroBasedRemaining,
		Overspend:          totalSpent.Sub(totalBudgeted),
		IsOverspend:        totalSpent.GreaterThan(totalBudgeted),
		PercentUsed:        percentUsed,
		MaxAmount:          maxAmount,
	}
	s.LogDebug(ctx, "Budget summary computed",
		slog.Int("pay_period", payPeriod),
		slog.String("total_spent", totalSpent.String()),
		slog.String("total_budgeted", totalBudgeted.String()))
	return summary, nil
}

// totalsForPeriod restricts category totals to a single pay period.
func totalsForPeriod(totals []domain.CategoryTotal, payPeriod int) []domain.CategoryTotal {
	matched := make([]domain.CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		if ct.PayPeriod == payPeriod {
			matched = append(matched, ct)
		}
	}
	return matched
}

package domain

import "github.com/shopspring/decimal"

// GroupSummary is a per-spending-group budget rollup for one pay period.
type GroupSummary struct {
	SpendingGroupID string          `json:"spendingGroupID"`
	Description     string          `json:"description"`
	Actual          decimal.Decimal `json:"actual"`    // Sum of actual spend across categories
	Target          decimal.Decimal `json:"target"`    // Sum of floored effective budgets
	SortOrder       int             `json:"sortOrder"` // From the fixed ID-keyed table
}

// BudgetSummary is the customer's overall budgeted-vs-actual position for a
// pay period, with income excluded from all totals.
type BudgetSummary struct {
	PayPeriod          int             `json:"payPeriod"`
	TotalSpent         decimal.Decimal `json:"totalSpent"`
	TotalBudgeted      decimal.Decimal `json:"totalBudgeted"`
	Remaining          decimal.Decimal `json:"remaining"`
	ZeroBasedRemaining decimal.Decimal `json:"zeroBasedRemaining"` // Remaining clamped at zero
	Overspend          decimal.Decimal `json:"overspend"`
	IsOverspend        bool            `json:"isOverspend"`
	PercentUsed        decimal.Decimal `json:"percentUsed"`
	MaxAmount          decimal.Decimal `json:"maxAmount"` // Greater of spent and budgeted
}

// AlertLevel classifies budget consumption for alerting.
type AlertLevel string

const (
	AlertOverBudget AlertLevel = "OVER_BUDGET"
	AlertWarning80  AlertLevel = "WARNING_80"
	AlertWarning50  AlertLevel = "WARNING_50"
	AlertOnTrack    AlertLevel = "ON_TRACK"
)

// AlertLevelFor classifies budget consumption. A non-positive target always
// reads as 0% used, so "no budget" never divides by zero or alerts.
func AlertLevelFor(actual, target decimal.Decimal) AlertLevel {
	percent := decimal.Zero
	if target.IsPositive() {
		percent = actual.Div(target).Mul(decimal.NewFromInt(100))
	}
	switch {
	case percent.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return AlertOverBudget
	case percent.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return AlertWarning80
	case percent.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return AlertWarning50
	default:
		return AlertOnTrack
	}
}

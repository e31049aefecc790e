package domain

import "github.com/shopspring/decimal"

// Well-known spending-group identifiers. These are the backend's stable
// opaque IDs: display names can be localized or renamed, so classification,
// sort order and income/transfer exclusion always key off the ID.
const (
	SpendingGroupDayToDay        = "sg-day-to-day"
	SpendingGroupRecurring       = "sg-recurring"
	SpendingGroupExceptions      = "sg-exceptions"
	SpendingGroupInvestSaveRepay = "sg-invest-save-repay"
	SpendingGroupTransfer        = "sg-transfer"
	SpendingGroupIncome          = "sg-income"
)

// CategoryUncategorized is the sentinel category ID the backend assigns to
// transactions that have not been categorized yet.
const CategoryUncategorized = "cat-uncategorized"

// spendingGroupSortOrder fixes the display order of spending groups. Groups
// absent from the table sort last.
var spendingGroupSortOrder = map[string]int{
	SpendingGroupDayToDay:        1,
	SpendingGroupRecurring:       2,
	SpendingGroupExceptions:      3,
	SpendingGroupInvestSaveRepay: 4,
	SpendingGroupTransfer:        5,
	SpendingGroupIncome:          6,
}

// SpendingGroupSortOrder returns the fixed sort position for a spending-group
// ID, or 999 for unknown groups.
func SpendingGroupSortOrder(spendingGroupID string) int {
	if order, ok := spendingGroupSortOrder[spendingGroupID]; ok {
		return order
	}
	return 999
}

// SpendingGroup is one of the small fixed universe of top-level category
// buckets (Income, Transfer, Day-to-day, ...).
type SpendingGroup struct {
	SpendingGroupID string `json:"spendingGroupID"` // Stable opaque ID
	Description     string `json:"description"`     // Display name, may be localized
}

// Category is a user-facing transaction category, classified under a spending
// group.
type Category struct {
	CategoryID      string `json:"categoryID"`
	Description     string `json:"description"`
	SpendingGroupID string `json:"spendingGroupID"`
	IsDeleted       bool   `json:"isDeleted"`
}

// CategoryTotal is one budgeting row per (category, spending group, pay
// period): the actual spend plus the planned/average budget figures.
type CategoryTotal struct {
	CategoryID               string           `json:"categoryID"`
	SpendingGroupID          string           `json:"spendingGroupID"`
	PayPeriod                int              `json:"payPeriod"`     // YYYYMM period encoding
	TotalAmount              decimal.Decimal  `json:"totalAmount"`   // Actual spend in the period
	PlannedAmount            *decimal.Decimal `json:"plannedAmount"` // User-set budget, nil when not set
	AverageAmount            *decimal.Decimal `json:"averageAmount"` // Trailing average, nil when unavailable
	IsTrackedForPayPeriod    bool             `json:"isTrackedForPayPeriod"`
	ApplyOnlyToCurrentPeriod bool             `json:"applyOnlyToCurrentPeriod"`
	AlertsEnabled            bool             `json:"alertsEnabled"`
}

// EffectiveBudget resolves the budget amount used for progress calculations:
// the planned amount if the row is tracked for this period and a plan exists,
// else the trailing average, else nil. Nil means "no budget known", which is
// distinct from a zero budget.
func (ct CategoryTotal) EffectiveBudget() *decimal.Decimal {
	if ct.IsTrackedForPayPeriod && ct.PlannedAmount != nil {
		return ct.PlannedAmount
	}
	return ct.AverageAmount
}

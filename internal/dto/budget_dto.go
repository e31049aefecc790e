package dto

import (
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GroupSummaryResponse is one spending group's budgeted-vs-actual rollup.
type GroupSummaryResponse struct {
	SpendingGroupID string          `json:"spendingGroupID"`
	Description     string          `json:"description"`
	Actual          decimal.Decimal `json:"actual"`
	Target          decimal.Decimal `json:"target"`
	AlertLevel      string          `json:"alertLevel"`
}

// BudgetSummaryResponse is the overall budget position for one pay period.
type BudgetSummaryResponse struct {
	PayPeriod          int             `json:"payPeriod"`
	TotalSpent         decimal.Decimal `json:"totalSpent"`
	TotalBudgeted      decimal.Decimal `json:"totalBudgeted"`
	Remaining          decimal.Decimal `json:"remaining"`
	ZeroBasedRemaining decimal.Decimal `json:"zeroBasedRemaining"`
	Overspend          decimal.Decimal `json:"overspend"`
	IsOverspend        bool            `json:"isOverspend"`
	PercentUsed        decimal.Decimal `json:"percentUsed"`
	MaxAmount          decimal.Decimal `json:"maxAmount"`
}

// PayPeriodResponse describes one pay period's boundaries.
type PayPeriodResponse struct {
	Period        int    `json:"period"`
	Start         string `json:"start"`
	End           string `json:"end"`
	DaysRemaining int    `json:"daysRemaining"`
}

// ToGroupSummaryResponse converts a domain.GroupSummary and its alert level
// to the response DTO.
func ToGroupSummaryResponse(g domain.GroupSummary, alertLevel domain.AlertLevel) GroupSummaryResponse {
	return GroupSummaryResponse{
		SpendingGroupID: g.SpendingGroupID,
		Description:     g.Description,
		Actual:          g.Actual,
		Target:          g.Target,
		AlertLevel:      string(alertLevel),
	}
}

// ToBudgetSummaryResponse converts a domain.BudgetSummary to the response DTO.
func ToBudgetSummaryResponse(s *domain.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		PayPeriod:          s.PayPeriod,
		TotalSpent:         s.TotalSpent,
		TotalBudgeted:      s.TotalBudgeted,
		Remaining:          s.Remaining,
		ZeroBasedRemaining: s.ZeroBasedRemaining,
		Overspend:          s.Overspend,
		IsOverspend:        s.IsOverspend,
		PercentUsed:        s.PercentUsed,
		MaxAmount:          s.MaxAmount,
	}
}

// ToPayPeriodResponse converts a domain.PayPeriodInfo to the response DTO.
func ToPayPeriodResponse(info *domain.PayPeriodInfo) PayPeriodResponse {
	const layout = "2006-01-02"
	return PayPeriodResponse{
		Period:        info.Period,
		Start:         info.Start.Format(layout),
		End:           info.End.Format(layout),
		DaysRemaining: info.DaysRemaining,
	}
}

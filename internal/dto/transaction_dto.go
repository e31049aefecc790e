package dto

import (
	"fmt"
	"time"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	"github.com/fynlens/fynlens_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// ListTransactionsRequest binds the transaction list query parameters.
// Repeated parameters (accountId=a&accountId=b) become membership filters.
type ListTransactionsRequest struct {
	AccountIDs        []string `form:"accountId"`
	CategoryIDs       []string `form:"categoryId"`
	SpendingGroupIDs  []string `form:"spendingGroupId"`
	TagIDs            []string `form:"tagId"`
	PendingOnly       bool     `form:"pendingOnly"`
	UnseenOnly        bool     `form:"unseenOnly"`
	UncategorizedOnly bool     `form:"uncategorizedOnly"`
	CurrentBudgetOnly bool     `form:"currentBudgetOnly"`
	FromDate          string   `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate            string   `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	MinAmount         string   `form:"minAmount"`
	MaxAmount         string   `form:"maxAmount"`
	Search            string   `form:"search"`
}

// ToFilter converts the bound request into the domain filter, parsing dates
// and user-entered amounts.
func (r ListTransactionsRequest) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		AccountIDs:        r.AccountIDs,
		CategoryIDs:       r.CategoryIDs,
		SpendingGroupIDs:  r.SpendingGroupIDs,
		TagIDs:            r.TagIDs,
		PendingOnly:       r.PendingOnly,
		UnseenOnly:        r.UnseenOnly,
		UncategorizedOnly: r.UncategorizedOnly,
		CurrentBudgetOnly: r.CurrentBudgetOnly,
		SearchText:        r.Search,
	}

	if r.FromDate != "" {
		from, err := time.Parse("2006-01-02", r.FromDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid fromDate %q", apperrors.ErrValidation, r.FromDate)
		}
		filter.FromDate = &from
	}
	if r.ToDate != "" {
		to, err := time.Parse("2006-01-02", r.ToDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid toDate %q", apperrors.ErrValidation, r.ToDate)
		}
		filter.ToDate = &to
	}

	if r.MinAmount != "" {
		minAmount, err := utils.ParseAmountInput(r.MinAmount)
		if err != nil {
			return filter, err
		}
		filter.MinAmount = &minAmount
	}
	if r.MaxAmount != "" {
		maxAmount, err := utils.ParseAmountInput(r.MaxAmount)
		if err != nil {
			return filter, err
		}
		filter.MaxAmount = &maxAmount
	}

	return filter, nil
}

// MoneyResponse is the wire shape of a monetary amount.
type MoneyResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Sign         string          `json:"sign"`
}

// TransactionResponse defines the structure for API responses containing transaction details.
type TransactionResponse struct {
	TransactionID   string        `json:"transactionID"`
	AccountID       string        `json:"accountID"`
	CategoryID      string        `json:"categoryID,omitempty"`
	SpendingGroupID string        `json:"spendingGroupID,omitempty"`
	MerchantID      string        `json:"merchantID,omitempty"`
	Description     string        `json:"description"`
	Amount          MoneyResponse `json:"amount"`
	TransactionDate string        `json:"transactionDate"`
	PayPeriod       int           `json:"payPeriod"`
	IsPending       bool          `json:"isPending"`
	IsRead          bool          `json:"isRead"`
	Tags            []string      `json:"tags,omitempty"`
}

// ListTransactionsResponse wraps the filtered list with filter metadata.
type ListTransactionsResponse struct {
	Transactions      []TransactionResponse `json:"transactions"`
	Total             int                   `json:"total"`
	ActiveFilterCount int                   `json:"activeFilterCount"`
}

// ToMoneyResponse converts a domain.Money to MoneyResponse DTO
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Sign:         string(m.Sign),
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	tags := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tags = append(tags, tag.Name)
	}
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		SpendingGroupID: t.SpendingGroupID,
		MerchantID:      t.MerchantID,
		Description:     t.Description,
		Amount:          ToMoneyResponse(t.Amount),
		TransactionDate: t.TransactionDate,
		PayPeriod:       t.PayPeriod,
		IsPending:       t.IsPending,
		IsRead:          t.IsRead,
		Tags:            tags,
	}
}

// ToListTransactionsResponse converts filtered transactions into the list response.
func ToListTransactionsResponse(txns []domain.Transaction, filter domain.TransactionFilter) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		responses[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{
		Transactions:      responses,
		Total:             len(responses),
		ActiveFilterCount: filter.ActiveFilterCount(),
	}
}

package dto_test

import (
	"testing"
	"time"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	"github.com/fynlens/fynlens_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactionsRequest_ToFilter(t *testing.T) {
	req := dto.ListTransactionsRequest{
		AccountIDs:        []string{"acc-1"},
		CurrentBudgetOnly: true,
		FromDate:          "2024-10-01",
		MinAmount:         "R 1,000.50",
		Search:            "groceries",
	}

	filter, err := req.ToFilter()
	require.NoError(t, err)

	assert.Equal(t, []string{"acc-1"}, filter.AccountIDs)
	assert.True(t, filter.CurrentBudgetOnly)
	require.NotNil(t, filter.FromDate)
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), *filter.FromDate)
	require.NotNil(t, filter.MinAmount)
	assert.True(t, filter.MinAmount.Equal(decimal.RequireFromString("1000.50")))
	assert.Nil(t, filter.MaxAmount)
	assert.Equal(t, "groceries", filter.SearchText)
}

func TestListTransactionsRequest_ToFilter_BadAmount(t *testing.T) {
	req := dto.ListTransactionsRequest{MinAmount: "abc"}

	_, err := req.ToFilter()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToListTransactionsResponse(t *testing.T) {
	txns := []domain.Transaction{
		{
			TransactionID:   "txn-1",
			Description:     "Card purchase",
			Amount:          domain.Money{Amount: decimal.RequireFromString("50"), CurrencyCode: "USD", Sign: domain.Debit},
			TransactionDate: "2024-10-12",
			Tags:            []domain.Tag{{TagID: "tag-1", Name: "food"}},
		},
	}
	filter := domain.TransactionFilter{SearchText: "card"}

	resp := dto.ToListTransactionsResponse(txns, filter)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.ActiveFilterCount)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, []string{"food"}, resp.Transactions[0].Tags)
	assert.Equal(t, "DEBIT", resp.Transactions[0].Amount.Sign)
}

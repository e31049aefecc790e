package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func debit(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), CurrencyCode: "USD", Sign: domain.Debit}
}

func transactionAggregate() *domain.Aggregate {
	return &domain.Aggregate{
		CustomerInfo: domain.CustomerInfo{
			CustomerID:          "cust-1",
			DefaultCurrencyCode: "USD",
			DayOfMonthPaid:      1,
		},
		Categories: []domain.Category{
			{CategoryID: "cat-groceries", Description: "Groceries", SpendingGroupID: domain.SpendingGroupDayToDay},
			{CategoryID: "cat-rent", Description: "Rent", SpendingGroupID: domain.SpendingGroupRecurring},
		},
		SpendingGroups: []domain.SpendingGroup{
			{SpendingGroupID: domain.SpendingGroupDayToDay, Description: "Day to day"},
			{SpendingGroupID: domain.SpendingGroupRecurring, Description: "Recurring"},
			{SpendingGroupID: domain.SpendingGroupTransfer, Description: "Transfer"},
		},
		Merchants: []domain.Merchant{
			{MerchantID: "m-checkers", Name: "Checkers Hyper"},
		},
		Transactions: []domain.Transaction{
			{
				TransactionID:   "txn-1",
				AccountID:       "acc-cheque",
				CategoryID:      "cat-groceries",
				SpendingGroupID: domain.SpendingGroupDayToDay,
				MerchantID:      "m-checkers",
				Description:     "Card purchase Checkers",
				Amount:          debit("350.40"),
				TransactionDate: "2024-10-12",
				PayPeriod:       202410,
				Tags:            []domain.Tag{{TagID: "tag-food", Name: "food"}},
			},
			{
				TransactionID:   "txn-2",
				AccountID:       "acc-cheque",
				CategoryID:      "cat-rent",
				SpendingGroupID: domain.SpendingGroupRecurring,
				Description:     "Rent October",
				Amount:          debit("1200"),
				TransactionDate: "2024-10-01",
				PayPeriod:       202410,
				IsRead:          true,
			},
			{
				TransactionID:   "txn-3",
				AccountID:       "acc-savings",
				CategoryID:      domain.CategoryUncategorized,
				Description:     "Unknown debit order",
				Amount:          debit("49.99"),
				TransactionDate: "2024-09-20",
				PayPeriod:       202409,
				IsPending:       true,
			},
			{
				TransactionID:   "txn-4",
				AccountID:       "acc-cheque",
				SpendingGroupID: domain.SpendingGroupTransfer,
				Description:     "Transfer to savings",
				Amount:          debit("500"),
				TransactionDate: "2024-10-05",
				PayPeriod:       202410,
			},
			{
				TransactionID:   "txn-deleted",
				AccountID:       "acc-cheque",
				Description:     "Duplicate entry",
				Amount:          debit("10"),
				TransactionDate: "2024-10-03",
				PayPeriod:       202410,
				IsDeleted:       true,
			},
			{
				TransactionID:   "txn-baddate",
				AccountID:       "acc-cheque",
				CategoryID:      "cat-groceries",
				SpendingGroupID: domain.SpendingGroupDayToDay,
				Description:     "Legacy import",
				Amount:          debit("75"),
				TransactionDate: "not-a-date",
				PayPeriod:       202410,
			},
		},
	}
}

func transactionIDs(txns []domain.Transaction) []string {
	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	return ids
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockAggregate *MockAggregateReaderSvc
	service       portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockAggregate = new(MockAggregateReaderSvc)
	// Pin the clock mid-October so the current pay period is 202410.
	clock := func() time.Time { return time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC) }
	suite.service = services.NewTransactionService(suite.mockAggregate, services.WithTransactionClock(clock))
}

func (suite *TransactionServiceTestSuite) TestList_NoFilterSortsNewestFirst() {
	ctx := context.Background()
	suite.mockAggregate.On("Snapshot", ctx).Return(transactionAggregate(), nil).Once()

	txns, err := suite.service.List(ctx, domain.TransactionFilter{})

	suite.Require().NoError(err)
	// Deleted rows are dropped; the unparseable date sorts last.
	suite.Equal([]string{"txn-1", "txn-4", "txn-2", "txn-3", "txn-baddate"}, transactionIDs(txns))
}

func (suite *TransactionServiceTestSuite) TestList_CurrentBudgetExcludesTransfers() {
	ctx := context.Background()
	suite.mockAggregate.On("Snapshot", ctx).Return(transactionAggregate(), nil).Once()

	txns, err := suite.service.List(ctx, domain.TransactionFilter{CurrentBudgetOnly: true})

	suite.Require().NoError(err)
	suite.Equal([]string{"txn-1", "txn-2", "txn-baddate"}, transactionIDs(txns))
}

func (suite *TransactionServiceTestSuite) TestList_SnapshotError() {
	ctx := context.Background()
	suite.mockAggregate.On("Snapshot", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.List(ctx, domain.TransactionFilter{})

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

// --- Filter pipeline tests ---

func filterIDs(t *testing.T, filter domain.TransactionFilter) []string {
	t.Helper()
	return transactionIDs(services.FilterTransactions(transactionAggregate(), filter, 202410))
}

func TestFilterTransactions_ByAccount(t *testing.T) {
	ids := filterIDs(t, domain.TransactionFilter{AccountIDs: []string{"acc-savings"}})
	assert.Equal(t, []string{"txn-3"}, ids)
}

func TestFilterTransactions_ByTag(t *testing.T) {
	ids := filterIDs(t, domain.TransactionFilter{TagIDs: []string{"tag-food"}})
	assert.Equal(t, []string{"txn-1"}, ids)
}

func TestFilterTransactions_QuickToggles(t *testing.T) {
	assert.Equal(t, []string{"txn-3"}, filterIDs(t, domain.TransactionFilter{PendingOnly: true}))
	assert.Equal(t, []string{"txn-3"}, filterIDs(t, domain.TransactionFilter{UncategorizedOnly: true}))

	// UnseenOnly drops only rows explicitly marked read.
	unseen := filterIDs(t, domain.TransactionFilter{UnseenOnly: true})
	assert.NotContains(t, unseen, "txn-2")
	assert.Contains(t, unseen, "txn-1")
}

func TestFilterTransactions_DateRange(t *testing.T) {
	from := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.October, 5, 0, 0, 0, 0, time.UTC)

	// Bounds are inclusive on both ends.
	ids := filterIDs(t, domain.TransactionFilter{FromDate: &from, ToDate: &to})
	assert.Equal(t, []string{"txn-4", "txn-2"}, ids)

	// One-sided ranges work too.
	ids = filterIDs(t, domain.TransactionFilter{FromDate: &from})
	assert.Equal(t, []string{"txn-1", "txn-4", "txn-2"}, ids)
}

func TestFilterTransactions_AmountRangeUsesMagnitude(t *testing.T) {
	minAmount := decimal.NewFromInt(50)
	ids := filterIDs(t, domain.TransactionFilter{MinAmount: &minAmount})
	// 49.99 is below the bound regardless of debit direction.
	assert.NotContains(t, ids, "txn-3")
	assert.Contains(t, ids, "txn-baddate")

	maxAmount := decimal.NewFromInt(100)
	ids = filterIDs(t, domain.TransactionFilter{MinAmount: &minAmount, MaxAmount: &maxAmount})
	assert.Equal(t, []string{"txn-baddate"}, ids)
}

func TestFilterTransactions_SearchWholeWordOnDescription(t *testing.T) {
	assert.Equal(t, []string{"txn-2"}, filterIDs(t, domain.TransactionFilter{SearchText: "rent"}))

	// "che" is not a whole description word and no category/merchant name
	// contains it as a substring match target either.
	assert.Empty(t, filterIDs(t, domain.TransactionFilter{SearchText: "purch"}))
}

func TestFilterTransactions_SearchSubstringOnNames(t *testing.T) {
	// Substring match applies to merchant, category, group and tag names.
	assert.Equal(t, []string{"txn-1"}, filterIDs(t, domain.TransactionFilter{SearchText: "hyper"}))
	assert.Contains(t, filterIDs(t, domain.TransactionFilter{SearchText: "groc"}), "txn-1")
	assert.Equal(t, []string{"txn-1"}, filterIDs(t, domain.TransactionFilter{SearchText: "foo"}))
}

func TestFilterTransactions_SearchNumericMatchesRoundedAmount(t *testing.T) {
	// 350.40 rounds to 350.
	assert.Equal(t, []string{"txn-1"}, filterIDs(t, domain.TransactionFilter{SearchText: "350"}))
	assert.Empty(t, filterIDs(t, domain.TransactionFilter{SearchText: "351"}))
	// 49.99 rounds to 50.
	assert.Equal(t, []string{"txn-3"}, filterIDs(t, domain.TransactionFilter{SearchText: "50"}))
}

func TestFilterTransactions_StagesCompose(t *testing.T) {
	minAmount := decimal.NewFromInt(100)
	ids := filterIDs(t, domain.TransactionFilter{
		AccountIDs: []string{"acc-cheque"},
		MinAmount:  &minAmount,
		SearchText: "checkers",
	})
	assert.Equal(t, []string{"txn-1"}, ids)
}

func TestActiveFilterCount(t *testing.T) {
	from := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	minAmount := decimal.NewFromInt(50)
	maxAmount := decimal.NewFromInt(100)

	filter := domain.TransactionFilter{
		AccountIDs:  []string{"a", "b", "c"}, // one filter, not three
		PendingOnly: true,
		FromDate:    &from,
		MinAmount:   &minAmount,
		MaxAmount:   &maxAmount, // range counts once
		SearchText:  "rent",
	}
	assert.Equal(t, 5, filter.ActiveFilterCount())
	assert.Equal(t, 0, domain.TransactionFilter{}.ActiveFilterCount())
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/utils/payperiod"
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	aggregateSvc portssvc.AggregateReaderSvc
	now          func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used to resolve the current pay
// period.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction filtering service over the
// aggregate snapshot.
func NewTransactionService(aggregateSvc portssvc.AggregateReaderSvc, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		aggregateSvc: aggregateSvc,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// List applies the filter pipeline to the snapshot's transactions.
func (s *transactionService) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	agg, err := s.aggregateSvc.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aggregate for transaction list: %w", err)
	}

	currentPeriod := payperiod.Current(s.now(), agg.DayOfMonthPaid())
	result := FilterTransactions(agg, filter, currentPeriod)
	s.LogDebug(ctx, "Transactions filtered",
		slog.Int("matched", len(result)),
		slog.Int("active_filters", filter.ActiveFilterCount()))
	return result, nil
}

// FilterTransactions runs the ordered chain of independent predicates over
// the aggregate's transactions. Each stage is a pure filter and a no-op when
// its criterion is unset. Free-text search runs last among the filters since
// it is the most expensive; the date sort is always the final stage.
func FilterTransactions(agg *domain.Aggregate, filter domain.TransactionFilter, currentPayPeriod int) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(agg.Transactions))
	for _, t := range agg.Transactions {
		if !t.IsDeleted {
			txns = append(txns, t)
		}
	}

	txns = filterByAccountIDs(txns, filter.AccountIDs)
	txns = filterByCategoryIDs(txns, filter.CategoryIDs)
	txns = filterBySpendingGroupIDs(txns, filter.SpendingGroupIDs)
	txns = filterByTagIDs(txns, filter.TagIDs)
	txns = filterByQuickToggles(txns, filter)
	txns = filterByDateRange(txns, filter.FromDate, filter.ToDate)
	txns = filterByCurrentBudget(txns, filter.CurrentBudgetOnly, currentPayPeriod)
	txns = filterByAmountRange(txns, filter.MinAmount, filter.MaxAmount)
	txns = filterBySearchText(agg, txns, filter.SearchText)

	sortByDateDescending(txns)
	return txns
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func filterByAccountIDs(txns []domain.Transaction, accountIDs []string) []domain.Transaction {
	if len(accountIDs) == 0 {
		return txns
	}
	set := stringSet(accountIDs)
	kept := txns[:0]
	for _, t := range txns {
		if _, ok := set[t.AccountID]; ok {
			kept = append(kept, t)
		}
	}
	return kept
}

func filterByCategoryIDs(txns []domain.Transaction, categoryIDs []string) []domain.Transaction {
	if len(categoryIDs) == 0 {
		return txns
	}
	set := stringSet(categoryIDs)
	kept := txns[:0]
	for _, t := range txns {
		if _, ok := set[t.CategoryID]; ok {
			kept = append(kept, t)
		}
	}
	return kept
}

func filterBySpendingGroupIDs(txns []domain.Transaction, spendingGroupIDs []string) []domain.Transaction {
	if len(spendingGroupIDs) == 0 {
		return txns
	}
	set := stringSet(spendingGroupIDs)
	kept := txns[:0]
	for _, t := range txns {
		if _, ok := set[t.SpendingGroupID]; ok {
			kept = append(kept, t)
		}
	}
	return kept
}

func filterByTagIDs(txns []domain.Transaction, tagIDs []string) []domain.Transaction {
	if len(tagIDs) == 0 {
		return txns
	}
	set := stringSet(tagIDs)
	kept := txns[:0]
	for _, t := range txns {
		for _, tag := range t.Tags {
			if _, ok := set[tag.TagID]; ok {
				kept = append(kept, t)
				break
			}
		}
	}
	return kept
}

func filterByQuickToggles(txns []domain.Transaction, filter domain.TransactionFilter) []domain.Transaction {
	if !filter.PendingOnly && !filter.UnseenOnly && !filter.UncategorizedOnly {
		return txns
	}
	kept := txns[:0]
	for _, t := range txns {
		if filter.PendingOnly && !t.IsPending {
			continue
		}
		if filter.UnseenOnly && t.IsRead {
			continue
		}
		if filter.UncategorizedOnly && t.CategoryID != domain.CategoryUncategorized {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

func filterByDateRange(txns []domain.Transaction, from, to *time.Time) []domain.Transaction {
	if from == nil && to == nil {
		return txns
	}
	kept := txns[:0]
	for _, t := range txns {
		date := t.DateValue()
		if from != nil && date.Before(*from) {
			continue
		}
		if to != nil && date.After(*to) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// filterByCurrentBudget keeps transactions in the current pay period,
// excluding transfers so moving money between accounts never reads as spend.
func filterByCurrentBudget(txns []domain.Transaction, enabled bool, currentPayPeriod int) []domain.Transaction {
	if !enabled {
		return txns
	}
	kept := txns[:0]
	for _, t := range txns {
		if t.PayPeriod == currentPayPeriod && t.SpendingGroupID != domain.SpendingGroupTransfer {
			kept = append(kept, t)
		}
	}
	return kept
}

// filterByAmountRange compares the unsigned magnitude against the inclusive
// bounds; debit or credit direction is irrelevant to range filtering.
func filterByAmountRange(txns []domain.Transaction, minAmount, maxAmount *decimal.Decimal) []domain.Transaction {
	if minAmount == nil && maxAmount == nil {
		return txns
	}
	kept := txns[:0]
	for _, t := range txns {
		magnitude := t.Amount.Amount
		if minAmount != nil && magnitude.LessThan(*minAmount) {
			continue
		}
		if maxAmount != nil && magnitude.GreaterThan(*maxAmount) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// filterBySearchText is a loose, recall-favoring match. The
// query is split into words and ANY query word equal to ANY whole description
// word matches; category, spending-group, merchant and tag names match on
// substring; a numeric query matches the amount magnitude rounded to the
// nearest integer.
func filterBySearchText(agg *domain.Aggregate, txns []domain.Transaction, searchText string) []domain.Transaction {
	query := strings.ToLower(strings.TrimSpace(searchText))
	if query == "" {
		return txns
	}
	terms := strings.Fields(query)
	queryNumber, queryIsNumber := parseQueryNumber(query)

	kept := txns[:0]
	for _, t := range txns {
		if matchesSearch(agg, t, query, terms, queryNumber, queryIsNumber) {
			kept = append(kept, t)
		}
	}
	return kept
}

func parseQueryNumber(query string) (decimal.Decimal, bool) {
	number, err := decimal.NewFromString(query)
	if err != nil {
		return decimal.Zero, false
	}
	return number, true
}

func matchesSearch(agg *domain.Aggregate, t domain.Transaction, query string, terms []string, queryNumber decimal.Decimal, queryIsNumber bool) bool {
	descriptionWords := strings.Fields(strings.ToLower(t.Description))
	for _, term := range terms {
		for _, word := range descriptionWords {
			if word == term {
				return true
			}
		}
	}

	if category := agg.CategoryByID(t.CategoryID); category != nil &&
		strings.Contains(strings.ToLower(category.Description), query) {
		return true
	}
	if group := agg.SpendingGroupByID(t.SpendingGroupID); group != nil &&
		strings.Contains(strings.ToLower(group.Description), query) {
		return true
	}
	if merchant := agg.MerchantByID(t.MerchantID); merchant != nil &&
		strings.Contains(strings.ToLower(merchant.Name), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag.Name), query) {
			return true
		}
	}

	if queryIsNumber && t.Amount.Amount.Round(0).Equal(queryNumber) {
		return true
	}
	return false
}

// sortByDateDescending orders newest first. Unparseable dates resolve to the
// epoch, so they deterministically sort last.
func sortByDateDescending(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].DateValue().After(txns[j].DateValue())
	})
}

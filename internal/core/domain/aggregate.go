package domain

import "github.com/shopspring/decimal"

// CustomerInfo carries the customer profile fields the core needs.
type CustomerInfo struct {
	CustomerID          string `json:"customerID"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"`
	DayOfMonthPaid      int    `json:"dayOfMonthPaid"` // 1-31; 30/31 mean "last day of month"
}

// Goal is a savings goal tracked against an account.
type Goal struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	AccountID     string          `json:"accountID"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate"` // "YYYY-MM-DD"
	IsDeleted     bool            `json:"isDeleted"`
}

// Aggregate is the full snapshot of a customer's financial data fetched from
// the aggregation backend. It is immutable from the core's perspective within
// one computation and replaced wholesale on refresh; no component mutates it
// in place.
type Aggregate struct {
	CustomerInfo   CustomerInfo    `json:"customerInfo"`
	Accounts       []Account       `json:"accounts"`
	Transactions   []Transaction   `json:"transactions"`
	Categories     []Category      `json:"categories"`
	SpendingGroups []SpendingGroup `json:"spendingGroups"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
	ExchangeRates  []ExchangeRate  `json:"exchangeRates"`
	Merchants      []Merchant      `json:"merchants"`
	Tags           []Tag           `json:"tags"`
	Goals          []Goal          `json:"goals"`
}

// CategoryByID returns the category with the given ID, or nil.
func (a *Aggregate) CategoryByID(categoryID string) *Category {
	for i := range a.Categories {
		if a.Categories[i].CategoryID == categoryID {
			return &a.Categories[i]
		}
	}
	return nil
}

// SpendingGroupByID returns the spending group with the given ID, or nil.
func (a *Aggregate) SpendingGroupByID(spendingGroupID string) *SpendingGroup {
	for i := range a.SpendingGroups {
		if a.SpendingGroups[i].SpendingGroupID == spendingGroupID {
			return &a.SpendingGroups[i]
		}
	}
	return nil
}

// MerchantByID returns the merchant with the given ID, or nil.
func (a *Aggregate) MerchantByID(merchantID string) *Merchant {
	for i := range a.Merchants {
		if a.Merchants[i].MerchantID == merchantID {
			return &a.Merchants[i]
		}
	}
	return nil
}

// DayOfMonthPaid returns the customer's configured pay day, defaulting to the
// first of the month when the profile does not carry one.
func (a *Aggregate) DayOfMonthPaid() int {
	if a.CustomerInfo.DayOfMonthPaid >= 1 && a.CustomerInfo.DayOfMonthPaid <= 31 {
		return a.CustomerInfo.DayOfMonthPaid
	}
	return 1
}

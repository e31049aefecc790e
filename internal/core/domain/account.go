package domain

import "strings"

// AccountClass is the product class of a linked or manual account.
type AccountClass string

const (
	AccountClassBank       AccountClass = "BANK"
	AccountClassCreditCard AccountClass = "CREDIT_CARD"
	AccountClassInvestment AccountClass = "INVESTMENT"
	AccountClassCrypto     AccountClass = "CRYPTO"
	AccountClassLoan       AccountClass = "LOAN"
	AccountClassManual     AccountClass = "MANUAL"
	AccountClassRewards    AccountClass = "REWARDS"
	AccountClassVehicle    AccountClass = "VEHICLE"
	AccountClassProperty   AccountClass = "PROPERTY"
)

// Account represents a financial account inside the aggregate snapshot. Have
// and Owe are the asset/liability legs reported by the provider; either may
// be absent.
type Account struct {
	AccountID    string       `json:"accountID"`    // Primary Key
	Name         string       `json:"name"`         // Display name
	AccountClass AccountClass `json:"accountClass"` // BANK, CREDIT_CARD, etc.
	AccountType  string       `json:"accountType"`  // Provider-specific subtype (e.g., "credit")
	CurrencyCode string       `json:"currencyCode"` // Account's native currency
	Have         *Money       `json:"have"`         // Asset leg, nil when not reported
	Owe          *Money       `json:"owe"`          // Liability leg, nil when not reported
	Deactivated  bool         `json:"deactivated"`
	IsDeleted    bool         `json:"isDeleted"`
	IncludeInNav bool         `json:"includeInNav"` // Whether the account counts toward net worth
}

// IsCreditType reports whether the account follows credit sign conventions:
// a positive balance is an outstanding amount owed, not an asset.
func (a Account) IsCreditType() bool {
	return strings.Contains(strings.ToLower(string(a.AccountClass)), "credit") ||
		strings.Contains(strings.ToLower(a.AccountType), "credit")
}

// ContributesToNetWorth reports whether the account is eligible for net-worth
// and account-total calculations.
func (a Account) ContributesToNetWorth() bool {
	return !a.Deactivated && !a.IsDeleted && a.IncludeInNav
}

package domain

import "time"

// transactionDateLayouts are the date formats the backend has been observed
// to emit for transaction dates.
var transactionDateLayouts = []string{"2006-01-02", time.RFC3339}

// Tag is a free-form label attached to transactions by the customer.
type Tag struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
}

// Merchant is the resolved counterparty of a transaction.
type Merchant struct {
	MerchantID string `json:"merchantID"`
	Name       string `json:"name"`
}

// Transaction is a single customer transaction inside the aggregate snapshot.
type Transaction struct {
	TransactionID   string `json:"transactionID"` // Primary Key
	AccountID       string `json:"accountID"`
	CategoryID      string `json:"categoryID"`      // CategoryUncategorized when unclassified
	SpendingGroupID string `json:"spendingGroupID"` // Empty when unclassified
	MerchantID      string `json:"merchantID"`
	Description     string `json:"description"`
	Amount          Money  `json:"amount"`
	TransactionDate string `json:"transactionDate"` // "YYYY-MM-DD", occasionally RFC3339
	PayPeriod       int    `json:"payPeriod"`       // YYYYMM period encoding
	IsPending       bool   `json:"isPending"`
	IsRead          bool   `json:"isRead"`
	IsDeleted       bool   `json:"isDeleted"`
	Tags            []Tag  `json:"tags"`
}

// DateValue parses the transaction date. Missing or unparseable dates resolve
// to the Unix epoch so sorting stays deterministic instead of failing.
func (t Transaction) DateValue() time.Time {
	for _, layout := range transactionDateLayouts {
		if parsed, err := time.Parse(layout, t.TransactionDate); err == nil {
			return parsed
		}
	}
	return time.Unix(0, 0).UTC()
}

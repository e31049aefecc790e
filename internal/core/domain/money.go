package domain

import "github.com/shopspring/decimal"

// MoneySign indicates whether a monetary amount flows out (debit) or in (credit).
type MoneySign string

const (
	Debit  MoneySign = "DEBIT"
	Credit MoneySign = "CREDIT"
)

// Money represents a signed monetary amount as delivered by the aggregation
// backend. Amount is always the unsigned magnitude; Sign carries the
// direction. Money values are never mutated, only read or converted into new
// Money values.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`       // Unsigned magnitude
	CurrencyCode string          `json:"currencyCode"` // ISO 4217 code (e.g., "USD")
	Sign         MoneySign       `json:"sign"`         // DEBIT or CREDIT
}

// NewMoney builds a Money from a signed amount, splitting it into magnitude
// and sign.
func NewMoney(amount decimal.Decimal, currencyCode string) Money {
	sign := Credit
	if amount.IsNegative() {
		sign = Debit
	}
	return Money{
		Amount:       amount.Abs(),
		CurrencyCode: currencyCode,
		Sign:         sign,
	}
}

// RealNumber converts the Money into a signed decimal: debit amounts are
// negative, credit amounts positive.
func (m Money) RealNumber() decimal.Decimal {
	if m.Sign == Debit {
		return m.Amount.Neg()
	}
	return m.Amount
}

// IsZero reports whether the magnitude is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

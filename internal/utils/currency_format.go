package utils

import (
	"fmt"
	"strings"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(int32(currency.Precision)).String()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// ParseAmountInput converts user-entered amount text into a decimal, stripping
// currency symbols, spaces and thousands separators first ("R 1,234.50" -> 1234.50).
func ParseAmountInput(input string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: no numeric value in %q", apperrors.ErrValidation, input)
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cannot parse amount %q", apperrors.ErrValidation, input)
	}
	return amount, nil
}

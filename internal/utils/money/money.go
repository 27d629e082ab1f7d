// Package money parses and formats boundary monetary values. Amounts cross
// the API boundary as decimal strings, never binary floats; the ledger is the
// sole rounding authority.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// ParsePositiveAmount parses a decimal-string amount and validates it is a
// finite, strictly positive value that survives rounding to 2 decimal places.
// Values like "0.004" round to zero and are rejected as validation errors.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a valid decimal", apperrors.ErrValidation, s)
	}
	rounded := domain.RoundMoney(d)
	if !rounded.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive, got %q", apperrors.ErrValidation, s)
	}
	return rounded, nil
}

// Format renders a monetary value at the stored 2-decimal precision.
func Format(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyPlaces)
}

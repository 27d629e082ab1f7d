package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/utils/money"
)

func TestParsePositiveAmount(t *testing.T) {
	d, err := money.ParsePositiveAmount("20.00")
	require.NoError(t, err)
	assert.Equal(t, "20.00", money.Format(d))

	// Sub-cent input is rounded on the way in.
	d, err = money.ParsePositiveAmount("5.005")
	require.NoError(t, err)
	assert.Equal(t, "5.01", money.Format(d))
}

func TestParsePositiveAmountRejects(t *testing.T) {
	for _, s := range []string{"", "abc", "-1.00", "0", "0.004", "1e3x"} {
		_, err := money.ParsePositiveAmount(s)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "input %q", s)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00", money.Format(decimal.Zero))
	assert.Equal(t, "15.50", money.Format(decimal.RequireFromString("15.5")))
}

package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosetu/ewallet_backend/internal/utils"
)

func TestDeriveWalletToken(t *testing.T) {
	now := time.Now()

	tok, err := utils.DeriveWalletToken("user-1", "test-secret", now)
	require.NoError(t, err)
	assert.Len(t, tok, 64) // hex-encoded SHA-256

	// The random nonce makes every derivation distinct, even for the same
	// user at the same instant.
	tok2, err := utils.DeriveWalletToken("user-1", "test-secret", now)
	require.NoError(t, err)
	assert.NotEqual(t, tok, tok2)
}

func TestDeriveWalletTokenMissingSecret(t *testing.T) {
	_, err := utils.DeriveWalletToken("user-1", "", time.Now())
	assert.ErrorIs(t, err, utils.ErrTokenSecretMissing)
}

func TestDeriveWalletTokenIsHexEncoded(t *testing.T) {
	tok, err := utils.DeriveWalletToken("user-1", "test-secret", time.Now())
	require.NoError(t, err)
	for _, r := range tok {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

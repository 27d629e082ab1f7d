package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// ErrTokenSecretMissing indicates the QR token secret is not configured.
// Fatal, not retryable: issuing tokens without a key would make them guessable.
var ErrTokenSecretMissing = errors.New("wallet token secret is not configured")

// DeriveWalletToken derives an opaque bearer token for a user through a keyed
// one-way transform: HMAC-SHA256 over "userID-unixMillis-randomHex" with the
// server-held secret, hex encoded. The token reveals nothing about the user
// ID, and the random component makes collisions vanishingly unlikely; the
// unique constraint on the tokens table is the backstop.
func DeriveWalletToken(userID string, secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrTokenSecretMissing
	}
	random, err := randomHex(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate token nonce: %w", err)
	}
	data := fmt.Sprintf("%s-%d-%s", userID, now.UnixMilli(), random)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// randomHex returns n cryptographically random bytes, hex encoded. It is the
// per-issue nonce in token derivation.
func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

package repositories

import (
	"context"
	"time"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// TokenReader defines read operations for wallet tokens.
type TokenReader interface {
	// FindTokenByValue resolves an opaque token string by exact lookup.
	FindTokenByValue(ctx context.Context, token string) (*domain.WalletToken, error)

	// FindTokenByUserID retrieves the token record owned by a user.
	FindTokenByUserID(ctx context.Context, userID string) (*domain.WalletToken, error)
}

// TokenWriter defines write operations for wallet tokens.
type TokenWriter interface {
	// RecordScan unconditionally increments the scan counter and stamps the
	// scanner. Each call counts as a distinct scan.
	RecordScan(ctx context.Context, tokenID string, scannerID string, now time.Time) error

	// SetActive toggles a token's active flag.
	SetActive(ctx context.Context, tokenID string, active bool, now time.Time) error

	// ReplaceToken swaps a user's token value for a freshly derived one,
	// resetting scan tracking. The old value becomes unresolvable.
	ReplaceToken(ctx context.Context, userID string, replacement domain.WalletToken) error
}

// TokenRepositoryFacade combines all token repository interfaces.
type TokenRepositoryFacade interface {
	TokenReader
	TokenWriter
}

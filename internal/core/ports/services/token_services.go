package services

import (
	"context"
	"time"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// TokenSvcFacade is the token authority: it derives, resolves, and manages
// the opaque bearer tokens that stand in for a wallet owner during in-person
// verification.
type TokenSvcFacade interface {
	// Issue derives a fresh token record for a user through the keyed one-way
	// transform. Fails only on secret misconfiguration, which is fatal and
	// not retryable. The record is persisted together with its wallet by the
	// enrollment unit of work; uniqueness is backstopped by storage
	// constraints on both the token value and the user ID.
	Issue(ctx context.Context, userID string, expiresAt *time.Time) (*domain.WalletToken, error)

	// Resolve looks up a presented token by exact value.
	Resolve(ctx context.Context, token string) (*domain.WalletToken, error)

	// GetByUserID retrieves a user's token record.
	GetByUserID(ctx context.Context, userID string) (*domain.WalletToken, error)

	// Deactivate and Reactivate toggle the token without reissuing it.
	Deactivate(ctx context.Context, userID string) error
	Reactivate(ctx context.Context, userID string) error

	// Regenerate replaces a user's token with a freshly derived one. The old
	// value stops resolving immediately; scan tracking starts over.
	Regenerate(ctx context.Context, userID string) (*domain.WalletToken, error)
}

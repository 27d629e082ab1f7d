package repositories

import (
	"context"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// WalletSnapshotCache is an optional read-side cache for wallet snapshots.
// It serves balance reads without touching the primary store and is
// invalidated whenever a transfer commits.
type WalletSnapshotCache interface {
	GetWallet(ctx context.Context, walletID string) (*domain.Wallet, bool)
	SetWallet(ctx context.Context, wallet domain.Wallet)
	Invalidate(ctx context.Context, walletID string)
}

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	WalletRepo   WalletRepositoryFacade
	MovementRepo MovementReader
	TokenRepo    TokenRepositoryFacade
	LedgerRepo   LedgerRepository
}

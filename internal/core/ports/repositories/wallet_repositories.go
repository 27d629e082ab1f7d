package repositories

import (
	"context"
	"time"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// WalletReader defines read operations for wallet data.
// Reads are served from a consistent snapshot and never block behind
// in-flight transfers.
type WalletReader interface {
	// FindWalletByID retrieves a wallet by its unique identifier.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// FindWalletByUserID retrieves the wallet owned by a user.
	FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data that do not move
// money. Balance mutations go exclusively through LedgerRepository.
type WalletWriter interface {
	// SetFrozen toggles the freeze flag. Takes effect for all subsequent
	// credits and debits; already-committed movements are unaffected.
	SetFrozen(ctx context.Context, walletID string, frozen bool, updatedBy string, now time.Time) error
}

// WalletRepositoryFacade combines all wallet repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}

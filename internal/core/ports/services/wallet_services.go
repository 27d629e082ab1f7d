package services

import (
	"context"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// WalletSvcFacade exposes wallet reads and the administrative freeze toggle.
// Reads go through the snapshot cache when one is configured.
type WalletSvcFacade interface {
	// GetWallet retrieves a wallet by ID.
	GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error)

	// GetWalletByUserID retrieves the wallet owned by a user.
	GetWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)

	// SetFrozen toggles the freeze flag; admin only.
	SetFrozen(ctx context.Context, walletID string, frozen bool, actorID string) error

	// ListMovements returns read-only ledger projections, newest first.
	ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, offset int) ([]domain.Movement, error)

	// GetMovement retrieves a single committed ledger entry.
	GetMovement(ctx context.Context, movementID string) (*domain.Movement, error)

	// GetEWasteRecord retrieves the provenance artifact of a movement.
	GetEWasteRecord(ctx context.Context, movementID string) (*domain.EWasteRecord, error)
}

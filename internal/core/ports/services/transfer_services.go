package services

import (
	"context"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/dto"
)

// TransferSvcFacade is the transfer coordinator, the only entry point
// permitted to change a wallet balance. Every call either commits fully or
// leaves no observable state behind.
type TransferSvcFacade interface {
	// Enroll creates a zero-balance wallet and issues its token, as one unit.
	Enroll(ctx context.Context, req dto.EnrollRequest, actorID string) (*domain.Wallet, *domain.WalletToken, error)

	// PresentToken resolves and verifies a token, records the scan, and
	// returns the wallet snapshot. Scanning never moves money.
	PresentToken(ctx context.Context, token string, scannerID string) (*domain.WalletToken, *domain.Wallet, error)

	// Transfer runs the token-authorized atomic write path.
	Transfer(ctx context.Context, req dto.TransferRequest, actorID string, actorRole domain.ActorRole) (*domain.Movement, error)

	// Adjust is the administrative credit/debit: same invariants, no token.
	Adjust(ctx context.Context, walletID string, req dto.AdjustRequest, actorID string) (*domain.Movement, error)
}

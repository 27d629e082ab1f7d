package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	walletRepo := newPgxWalletRepository(dbPool)
	movementRepo := newPgxMovementRepository(dbPool)
	tokenRepo := newPgxTokenRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WalletRepo:   walletRepo,
		MovementRepo: movementRepo,
		TokenRepo:    tokenRepo,
		LedgerRepo:   ledgerRepo,
	}
}

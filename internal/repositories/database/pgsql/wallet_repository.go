package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	"github.com/ecosetu/ewallet_backend/internal/models"
	"github.com/ecosetu/ewallet_backend/internal/utils/mapping"
)

type PgxWalletRepository struct {
	pool *pgxpool.Pool
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{pool: pool}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

const walletColumns = `wallet_id, user_id, balance, frozen, total_credited, total_debited, last_movement_at, version, created_at, created_by, last_updated_at, last_updated_by`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.WalletID,
		&m.UserID,
		&m.Balance,
		&m.Frozen,
		&m.TotalCredited,
		&m.TotalDebited,
		&m.LastMovementAt,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to scan wallet", err)
	}
	w := mapping.ToDomainWallet(m)
	return &w, nil
}

// FindWalletByID retrieves a wallet by its unique identifier.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1;`
	return scanWallet(r.pool.QueryRow(ctx, query, walletID))
}

// FindWalletByUserID retrieves the wallet owned by a user.
func (r *PgxWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1;`
	return scanWallet(r.pool.QueryRow(ctx, query, userID))
}

// SetFrozen toggles the freeze flag. Balance and counters are untouched.
func (r *PgxWalletRepository) SetFrozen(ctx context.Context, walletID string, frozen bool, updatedBy string, now time.Time) error {
	query := `
		UPDATE wallets
		SET frozen = $2, last_updated_at = $3, last_updated_by = $4
		WHERE wallet_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, walletID, frozen, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update wallet freeze state", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
	}
	return nil
}

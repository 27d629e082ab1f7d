package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	"github.com/ecosetu/ewallet_backend/internal/models"
	"github.com/ecosetu/ewallet_backend/internal/utils/mapping"
)

type PgxTokenRepository struct {
	BaseRepository
}

// newPgxTokenRepository creates a new repository for wallet token data.
func newPgxTokenRepository(pool *pgxpool.Pool) portsrepo.TokenRepositoryFacade {
	return &PgxTokenRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TokenRepositoryFacade = (*PgxTokenRepository)(nil)

const tokenColumns = `token_id, token, user_id, active, expires_at, scan_count, last_scanned_at, last_scanned_by, created_at, updated_at`

func scanToken(row pgx.Row, notFound error) (*domain.WalletToken, error) {
	var m models.WalletToken
	err := row.Scan(
		&m.TokenID,
		&m.Token,
		&m.UserID,
		&m.Active,
		&m.ExpiresAt,
		&m.ScanCount,
		&m.LastScannedAt,
		&m.LastScannedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan wallet token", err)
	}
	tok := mapping.ToDomainWalletToken(m)
	return &tok, nil
}

// FindTokenByValue resolves a presented token by exact lookup. Absence is an
// authorization failure, not a generic not-found.
func (r *PgxTokenRepository) FindTokenByValue(ctx context.Context, token string) (*domain.WalletToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM wallet_tokens WHERE token = $1;`
	return scanToken(r.Pool.QueryRow(ctx, query, token), apperrors.ErrInvalidToken)
}

// FindTokenByUserID retrieves the token record owned by a user.
func (r *PgxTokenRepository) FindTokenByUserID(ctx context.Context, userID string) (*domain.WalletToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM wallet_tokens WHERE user_id = $1;`
	return scanToken(r.Pool.QueryRow(ctx, query, userID), fmt.Errorf("%w: token for user %s", apperrors.ErrNotFound, userID))
}

// RecordScan unconditionally increments the scan counter and stamps the
// scanner. Each call counts as a distinct scan.
func (r *PgxTokenRepository) RecordScan(ctx context.Context, tokenID string, scannerID string, now time.Time) error {
	query := `
		UPDATE wallet_tokens
		SET scan_count = scan_count + 1, last_scanned_at = $2, last_scanned_by = $3, updated_at = $2
		WHERE token_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, tokenID, now, scannerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record token scan", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: token %s", apperrors.ErrNotFound, tokenID)
	}
	return nil
}

// SetActive toggles a token's active flag.
func (r *PgxTokenRepository) SetActive(ctx context.Context, tokenID string, active bool, now time.Time) error {
	query := `UPDATE wallet_tokens SET active = $2, updated_at = $3 WHERE token_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, tokenID, active, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update token state", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: token %s", apperrors.ErrNotFound, tokenID)
	}
	return nil
}

// ReplaceToken swaps a user's token for a freshly derived record inside one
// transaction, so there is never a moment with zero or two active tokens.
func (r *PgxTokenRepository) ReplaceToken(ctx context.Context, userID string, replacement domain.WalletToken) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM wallet_tokens WHERE user_id = $1;`, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove previous token", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: token for user %s", apperrors.ErrNotFound, userID)
	}

	if err := insertToken(ctx, tx, replacement); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// insertToken persists a token record inside the given transaction. Shared
// with the enrollment unit of work.
func insertToken(ctx context.Context, tx pgx.Tx, token domain.WalletToken) error {
	m := mapping.ToModelWalletToken(token)
	query := `
		INSERT INTO wallet_tokens (token_id, token, user_id, active, expires_at, scan_count, last_scanned_at, last_scanned_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.TokenID,
		m.Token,
		m.UserID,
		m.Active,
		m.ExpiresAt,
		m.ScanCount,
		m.LastScannedAt,
		m.LastScannedBy,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: token for user %s", apperrors.ErrDuplicate, token.UserID)
		}
		return apperrors.NewAppError(500, "failed to insert wallet token", err)
	}
	return nil
}

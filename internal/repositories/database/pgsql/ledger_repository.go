package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	"github.com/ecosetu/ewallet_backend/internal/utils/mapping"
)

// PgxLedgerRepository owns every composite write that moves money. A single
// database transaction spans the wallet mutation, the movement append, the
// optional provenance insert, and the scan update, so the commit is atomic
// with respect to crash and failure. The SELECT ... FOR UPDATE on the wallet
// row serializes concurrent transfers per wallet; independent wallets never
// contend, and no multi-wallet lock ordering exists because every transfer
// touches exactly one wallet.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository for atomic ledger writes.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// CreateEnrollment persists a fresh zero-balance wallet together with its
// authorization token as one unit.
func (r *PgxLedgerRepository) CreateEnrollment(ctx context.Context, wallet domain.Wallet, token domain.WalletToken) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelWallet(wallet)
	walletQuery := `
		INSERT INTO wallets (wallet_id, user_id, balance, frozen, total_credited, total_debited, last_movement_at, version, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, walletQuery,
		m.WalletID,
		m.UserID,
		m.Balance,
		m.Frozen,
		m.TotalCredited,
		m.TotalDebited,
		m.LastMovementAt,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: wallet for user %s", apperrors.ErrDuplicate, wallet.UserID)
		}
		return apperrors.NewAppError(500, "failed to insert wallet "+m.WalletID, err)
	}

	if err := insertToken(ctx, tx, token); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// CommitTransfer applies one balance change all-or-nothing. The wallet row is
// locked for the duration, so the captured balanceBefore is guaranteed
// current at the moment of mutation.
func (r *PgxLedgerRepository) CommitTransfer(ctx context.Context, params portsrepo.CommitTransferParams) (*domain.Movement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	wallet, err := findWalletForUpdate(ctx, tx, params.WalletID)
	if err != nil {
		return nil, err
	}

	balanceBefore := wallet.Balance
	if err := wallet.Apply(params.Kind, params.Amount, params.Now); err != nil {
		// Business-rule rejection (frozen, insufficient balance); nothing has
		// been written, the rollback is a no-op.
		return nil, err
	}
	if err := wallet.CheckIntegrity(); err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE wallets
		SET balance = $2, total_credited = $3, total_debited = $4, last_movement_at = $5, version = $6, last_updated_at = $5, last_updated_by = $7
		WHERE wallet_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		wallet.WalletID,
		wallet.Balance,
		wallet.TotalCredited,
		wallet.TotalDebited,
		params.Now,
		wallet.Version,
		params.ActorID,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update wallet balance", err)
	}

	movement := domain.Movement{
		MovementID:    uuid.NewString(),
		WalletID:      wallet.WalletID,
		UserID:        wallet.UserID,
		Kind:          params.Kind,
		Amount:        params.Amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  wallet.Balance,
		ActorID:       params.ActorID,
		ActorRole:     params.ActorRole,
		Description:   params.Description,
		Category:      params.Category,
		Metadata:      params.Metadata,
		CreatedAt:     params.Now,
	}
	if err := insertMovement(ctx, tx, movement); err != nil {
		return nil, err
	}

	if params.EWaste != nil {
		rec := *params.EWaste
		rec.MovementID = movement.MovementID
		if err := insertEWasteRecord(ctx, tx, rec); err != nil {
			return nil, err
		}
	}

	if params.ScanTokenID != "" {
		scanQuery := `
			UPDATE wallet_tokens
			SET scan_count = scan_count + 1, last_scanned_at = $2, last_scanned_by = $3, updated_at = $2
			WHERE token_id = $1;
		`
		if _, err := tx.Exec(ctx, scanQuery, params.ScanTokenID, params.Now, params.ScannerID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to record scan in transfer", err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &movement, nil
}

// findWalletForUpdate selects the wallet row and locks it exclusively within
// the transaction.
func findWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 FOR UPDATE;`
	return scanWallet(tx.QueryRow(ctx, query, walletID))
}

func insertMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	m, err := mapping.ToModelMovement(movement)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map movement for insert", err)
	}
	query := `
		INSERT INTO movements (movement_id, wallet_id, user_id, kind, amount, balance_before, balance_after, actor_id, actor_role, description, category, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.MovementID,
		m.WalletID,
		m.UserID,
		m.Kind,
		m.Amount,
		m.BalanceBefore,
		m.BalanceAfter,
		m.ActorID,
		m.ActorRole,
		m.Description,
		m.Category,
		m.Metadata,
		m.CreatedAt,
	)
	if err != nil {
		if isImmutabilityViolation(err) {
			return fmt.Errorf("%w: movements are append-only", apperrors.ErrIntegrityViolation)
		}
		return apperrors.NewAppError(500, "failed to insert movement "+m.MovementID, err)
	}
	return nil
}

func insertEWasteRecord(ctx context.Context, tx pgx.Tx, rec domain.EWasteRecord) error {
	m := mapping.ToModelEWasteRecord(rec)
	query := `
		INSERT INTO ewaste_records (record_id, category, quantity, unit, value_per_unit, total_value, submitted_by, verified_by, movement_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.RecordID,
		m.Category,
		m.Quantity,
		m.Unit,
		m.ValuePerUnit,
		m.TotalValue,
		m.SubmittedBy,
		m.VerifiedBy,
		m.MovementID,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert e-waste record "+m.RecordID, err)
	}
	return nil
}

// isImmutabilityViolation detects the movements-table guard trigger. The
// trigger raises with a fixed message; anything matching it is a fatal
// integrity violation, never a retryable storage error.
func isImmutabilityViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "P0001" && strings.Contains(pgErr.Message, "movements are immutable")
}

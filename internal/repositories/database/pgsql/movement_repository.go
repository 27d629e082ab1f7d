package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	"github.com/ecosetu/ewallet_backend/internal/models"
	"github.com/ecosetu/ewallet_backend/internal/utils/mapping"
)

// PgxMovementRepository serves read-only projections of the movement log.
// Appends happen exclusively inside PgxLedgerRepository's commit; a storage
// trigger rejects UPDATE and DELETE outright.
type PgxMovementRepository struct {
	pool *pgxpool.Pool
}

// newPgxMovementRepository creates a new read-side repository for movements.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementReader {
	return &PgxMovementRepository{pool: pool}
}

var _ portsrepo.MovementReader = (*PgxMovementRepository)(nil)

const movementColumns = `movement_id, wallet_id, user_id, kind, amount, balance_before, balance_after, actor_id, actor_role, description, category, metadata, created_at`

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.WalletID,
		&m.UserID,
		&m.Kind,
		&m.Amount,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.ActorID,
		&m.ActorRole,
		&m.Description,
		&m.Category,
		&m.Metadata,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: movement", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to scan movement", err)
	}
	d, err := mapping.ToDomainMovement(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map movement", err)
	}
	return &d, nil
}

// FindMovementByID retrieves a single committed movement.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1;`
	return scanMovement(r.pool.QueryRow(ctx, query, movementID))
}

// ListMovements returns committed movements matching the filter, newest
// first, paginated.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, offset int) ([]domain.Movement, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + movementColumns + ` FROM movements`)

	conditions := make([]string, 0, 6)
	args := make([]interface{}, 0, 8)
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.WalletID != "" {
		conditions = append(conditions, "wallet_id = "+arg(filter.WalletID))
	}
	if filter.ActorID != "" {
		conditions = append(conditions, "actor_id = "+arg(filter.ActorID))
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = "+arg(string(filter.Category)))
	}
	if filter.Kind != "" {
		conditions = append(conditions, "kind = "+arg(string(filter.Kind)))
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, "created_at >= "+arg(filter.From))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, "created_at <= "+arg(filter.To))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, movement_id DESC")
	sb.WriteString(" LIMIT " + arg(limit) + " OFFSET " + arg(offset) + ";")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list movements", err)
	}
	defer rows.Close()

	movements := make([]domain.Movement, 0, limit)
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(
			&m.MovementID,
			&m.WalletID,
			&m.UserID,
			&m.Kind,
			&m.Amount,
			&m.BalanceBefore,
			&m.BalanceAfter,
			&m.ActorID,
			&m.ActorRole,
			&m.Description,
			&m.Category,
			&m.Metadata,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row", err)
		}
		d, err := mapping.ToDomainMovement(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to map movement row", err)
		}
		movements = append(movements, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating movement rows", err)
	}
	return movements, nil
}

// FindEWasteRecordByMovementID retrieves the provenance artifact linked to a
// movement, if one exists.
func (r *PgxMovementRepository) FindEWasteRecordByMovementID(ctx context.Context, movementID string) (*domain.EWasteRecord, error) {
	query := `
		SELECT record_id, category, quantity, unit, value_per_unit, total_value, submitted_by, verified_by, movement_id, notes, created_at
		FROM ewaste_records WHERE movement_id = $1;
	`
	var m models.EWasteRecord
	err := r.pool.QueryRow(ctx, query, movementID).Scan(
		&m.RecordID,
		&m.Category,
		&m.Quantity,
		&m.Unit,
		&m.ValuePerUnit,
		&m.TotalValue,
		&m.SubmittedBy,
		&m.VerifiedBy,
		&m.MovementID,
		&m.Notes,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: e-waste record for movement %s", apperrors.ErrNotFound, movementID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan e-waste record", err)
	}
	d := mapping.ToDomainEWasteRecord(m)
	return &d, nil
}

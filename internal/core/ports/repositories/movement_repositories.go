package repositories

import (
	"context"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// MovementReader defines read-only projections over the movement log.
// There is deliberately no update or delete operation anywhere in the
// movement contract; appends happen only inside LedgerRepository's commit.
type MovementReader interface {
	// FindMovementByID retrieves a single committed movement.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovements returns committed movements matching the filter, newest
	// first, paginated.
	ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, offset int) ([]domain.Movement, error)

	// FindEWasteRecordByMovementID retrieves the provenance artifact linked to
	// a movement, if one exists.
	FindEWasteRecordByMovementID(ctx context.Context, movementID string) (*domain.EWasteRecord, error)
}

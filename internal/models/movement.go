package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is the DB representation of one immutable ledger entry.
// The movements table carries no audit update columns: rows are insert-only
// and a trigger rejects UPDATE/DELETE at the storage level.
type Movement struct {
	MovementID    string          `db:"movement_id"`
	WalletID      string          `db:"wallet_id"`
	UserID        string          `db:"user_id"`
	Kind          string          `db:"kind"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	ActorID       string          `db:"actor_id"`
	ActorRole     string          `db:"actor_role"`
	Description   string          `db:"description"`
	Category      string          `db:"category"`
	Metadata      []byte          `db:"metadata"` // JSONB
	CreatedAt     time.Time       `db:"created_at"`
}

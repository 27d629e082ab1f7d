package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the DB representation of a stored-value wallet.
type Wallet struct {
	WalletID       string          `db:"wallet_id"`
	UserID         string          `db:"user_id"`
	Balance        decimal.Decimal `db:"balance"`
	Frozen         bool            `db:"frozen"`
	TotalCredited  decimal.Decimal `db:"total_credited"`
	TotalDebited   decimal.Decimal `db:"total_debited"`
	LastMovementAt *time.Time      `db:"last_movement_at"`
	Version        int64           `db:"version"`
	AuditFields
}

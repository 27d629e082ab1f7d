package models

import "time"

// WalletToken is the DB representation of a QR bearer token.
type WalletToken struct {
	TokenID       string     `db:"token_id"`
	Token         string     `db:"token"`
	UserID        string     `db:"user_id"`
	Active        bool       `db:"active"`
	ExpiresAt     *time.Time `db:"expires_at"`
	ScanCount     int64      `db:"scan_count"`
	LastScannedAt *time.Time `db:"last_scanned_at"`
	LastScannedBy *string    `db:"last_scanned_by"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

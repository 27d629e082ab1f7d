package domain

import (
	"time"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
)

// WalletToken is the opaque bearer token printed as a QR code on the
// participant's card. Exactly one active token exists per user at a time;
// possession of the string authorizes a scan without exposing the user ID.
type WalletToken struct {
	TokenID       string     `json:"tokenID"` // Primary key (UUID)
	Token         string     `json:"token"`   // Opaque HMAC-derived value, unique
	UserID        string     `json:"userID"`  // Unique: one token per user
	Active        bool       `json:"active"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"` // nil means never expires
	ScanCount     int64      `json:"scanCount"`
	LastScannedAt *time.Time `json:"lastScannedAt,omitempty"`
	LastScannedBy string     `json:"lastScannedBy,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// IsExpired checks whether the token's expiry has passed. A nil expiry never
// expires.
func (t *WalletToken) IsExpired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return t.ExpiresAt.Before(now)
}

// Verify checks that the token may be presented. Both failures are terminal
// for the current presentation; the caller must not retry.
func (t *WalletToken) Verify(now time.Time) error {
	if !t.Active {
		return apperrors.ErrTokenInactive
	}
	if t.IsExpired(now) {
		return apperrors.ErrTokenExpired
	}
	return nil
}

// RecordScan notes a successful presentation. Re-presenting the same token is
// always accepted as long as Verify passes; tokens are deliberately not
// single-use so repeated visits keep working. Rate and amount limits at the
// transfer layer are the only mitigation.
func (t *WalletToken) RecordScan(scannerID string, now time.Time) {
	t.ScanCount++
	scannedAt := now
	t.LastScannedAt = &scannedAt
	t.LastScannedBy = scannerID
	t.UpdatedAt = now
}

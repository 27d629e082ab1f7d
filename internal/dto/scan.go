package dto

import (
	"time"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/utils/money"
)

// ScanRequest presents a wallet token for in-person verification.
type ScanRequest struct {
	Token string `json:"token" binding:"required"`
}

// ScanMetadata reports the token's scan tracking after this presentation.
type ScanMetadata struct {
	ScanCount     int64      `json:"scanCount"`
	LastScannedAt *time.Time `json:"lastScannedAt,omitempty"`
	LastScannedBy string     `json:"lastScannedBy,omitempty"`
}

// ScanResponse resolves a presented token to its wallet snapshot. A scan by
// itself never authorizes a balance change; a transfer is a separate call.
type ScanResponse struct {
	UserID   string         `json:"userID"`
	WalletID string         `json:"walletID"`
	Balance  string         `json:"balance"`
	Frozen   bool           `json:"frozen"`
	Scan     ScanMetadata   `json:"scan"`
	Wallet   WalletResponse `json:"wallet"`
}

// TokenResponse is the admin projection of a wallet token.
type TokenResponse struct {
	UserID        string     `json:"userID"`
	Token         string     `json:"token"`
	Active        bool       `json:"active"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	ScanCount     int64      `json:"scanCount"`
	LastScannedAt *time.Time `json:"lastScannedAt,omitempty"`
}

// ToScanResponse assembles the scan result from the token and wallet state.
func ToScanResponse(tok *domain.WalletToken, w *domain.Wallet) ScanResponse {
	return ScanResponse{
		UserID:   tok.UserID,
		WalletID: w.WalletID,
		Balance:  money.Format(w.Balance),
		Frozen:   w.Frozen,
		Scan: ScanMetadata{
			ScanCount:     tok.ScanCount,
			LastScannedAt: tok.LastScannedAt,
			LastScannedBy: tok.LastScannedBy,
		},
		Wallet: ToWalletResponse(w),
	}
}

// ToTokenResponse converts a domain WalletToken to its admin projection.
func ToTokenResponse(tok *domain.WalletToken) TokenResponse {
	return TokenResponse{
		UserID:        tok.UserID,
		Token:         tok.Token,
		Active:        tok.Active,
		ExpiresAt:     tok.ExpiresAt,
		ScanCount:     tok.ScanCount,
		LastScannedAt: tok.LastScannedAt,
	}
}

package dto

import (
	"time"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/utils/money"
)

// EnrollRequest defines the data needed to enroll a participant.
type EnrollRequest struct {
	UserID string `json:"userID" binding:"required"`
	// ExpiresAt optionally bounds the issued token's validity. Omitted means
	// the token never expires.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// EnrollResponse returns the fresh wallet and its bearer token.
type EnrollResponse struct {
	WalletID string `json:"walletID"`
	UserID   string `json:"userID"`
	Token    string `json:"token"`
	Balance  string `json:"balance"`
}

// WalletResponse is the read projection of a wallet. All monetary values are
// decimal strings at 2-decimal precision.
type WalletResponse struct {
	WalletID       string     `json:"walletID"`
	UserID         string     `json:"userID"`
	Balance        string     `json:"balance"`
	Frozen         bool       `json:"frozen"`
	TotalCredited  string     `json:"totalCredited"`
	TotalDebited   string     `json:"totalDebited"`
	LastMovementAt *time.Time `json:"lastMovementAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// FreezeRequest toggles the administrative freeze flag.
type FreezeRequest struct {
	Frozen *bool `json:"frozen" binding:"required"`
}

// AdjustRequest is the administrative credit/debit, token-free.
type AdjustRequest struct {
	Amount      string              `json:"amount" binding:"required,money"`
	Kind        domain.MovementKind `json:"kind" binding:"required,oneof=credit debit"`
	Description string              `json:"description" binding:"required,max=500"`
}

// ToWalletResponse converts a domain Wallet to its response DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:       w.WalletID,
		UserID:         w.UserID,
		Balance:        money.Format(w.Balance),
		Frozen:         w.Frozen,
		TotalCredited:  money.Format(w.TotalCredited),
		TotalDebited:   money.Format(w.TotalDebited),
		LastMovementAt: w.LastMovementAt,
		CreatedAt:      w.CreatedAt,
	}
}

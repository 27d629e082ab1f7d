package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/utils/money"
)

// EWasteSubmission carries the physical-item detail for an ewaste_credit
// transfer. The credited amount is always the computed total
// round(quantity * valuePerUnit, 2); callers never supply the total.
type EWasteSubmission struct {
	Category     string            `json:"category" binding:"required"`
	Quantity     decimal.Decimal   `json:"quantity" binding:"required"`
	Unit         domain.EWasteUnit `json:"unit" binding:"omitempty,oneof=kg piece unit"`
	ValuePerUnit string            `json:"valuePerUnit" binding:"required,money"`
	Notes        string            `json:"notes" binding:"max=500"`
}

// TransferMetadata is the optional structured metadata of a transfer.
type TransferMetadata struct {
	EwasteType  string          `json:"ewasteType,omitempty"`
	Quantity    decimal.Decimal `json:"quantity,omitempty"`
	ServiceType string          `json:"serviceType,omitempty"`
	Notes       string          `json:"notes,omitempty" binding:"max=500"`
}

// TransferRequest is the token-authorized atomic write path.
type TransferRequest struct {
	Token       string                  `json:"token" binding:"required"`
	Amount      string                  `json:"amount" binding:"required,money"`
	Kind        domain.MovementKind     `json:"kind" binding:"required,oneof=credit debit"`
	Description string                  `json:"description" binding:"required,max=500"`
	Category    domain.MovementCategory `json:"category" binding:"omitempty,oneof=ewaste_credit water_service admin_adjustment other"`
	Metadata    *TransferMetadata       `json:"metadata,omitempty"`
	// EWaste must be present for ewaste_credit transfers when the officer
	// recorded itemized detail; omitted, a single verification-line record is
	// derived from the amount.
	EWaste *EWasteSubmission `json:"ewaste,omitempty"`
}

// TransferResponse reports the committed movement.
type TransferResponse struct {
	MovementID   string                  `json:"movementID"`
	WalletID     string                  `json:"walletID"`
	Kind         domain.MovementKind     `json:"kind"`
	Amount       string                  `json:"amount"`
	BalanceAfter string                  `json:"balanceAfter"`
	Category     domain.MovementCategory `json:"category"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// MovementResponse is the read projection of one ledger entry.
type MovementResponse struct {
	MovementID    string                  `json:"movementID"`
	WalletID      string                  `json:"walletID"`
	UserID        string                  `json:"userID"`
	Kind          domain.MovementKind     `json:"kind"`
	Amount        string                  `json:"amount"`
	BalanceBefore string                  `json:"balanceBefore"`
	BalanceAfter  string                  `json:"balanceAfter"`
	ActorID       string                  `json:"actorID"`
	ActorRole     domain.ActorRole        `json:"actorRole"`
	Description   string                  `json:"description"`
	Category      domain.MovementCategory `json:"category"`
	Metadata      domain.MovementMetadata `json:"metadata"`
	CreatedAt     time.Time               `json:"createdAt"`
}

// ToTransferResponse converts a committed movement to the transfer response.
func ToTransferResponse(m *domain.Movement) TransferResponse {
	return TransferResponse{
		MovementID:   m.MovementID,
		WalletID:     m.WalletID,
		Kind:         m.Kind,
		Amount:       money.Format(m.Amount),
		BalanceAfter: money.Format(m.BalanceAfter),
		Category:     m.Category,
		CreatedAt:    m.CreatedAt,
	}
}

// ToMovementResponse converts a domain Movement to its response DTO.
func ToMovementResponse(m domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		WalletID:      m.WalletID,
		UserID:        m.UserID,
		Kind:          m.Kind,
		Amount:        money.Format(m.Amount),
		BalanceBefore: money.Format(m.BalanceBefore),
		BalanceAfter:  money.Format(m.BalanceAfter),
		ActorID:       m.ActorID,
		ActorRole:     m.ActorRole,
		Description:   m.Description,
		Category:      m.Category,
		Metadata:      m.Metadata,
		CreatedAt:     m.CreatedAt,
	}
}

// ToMovementResponses converts a slice of movements.
func ToMovementResponses(ms []domain.Movement) []MovementResponse {
	out := make([]MovementResponse, len(ms))
	for i, m := range ms {
		out[i] = ToMovementResponse(m)
	}
	return out
}

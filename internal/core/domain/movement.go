package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind indicates whether a movement credited or debited the wallet.
type MovementKind string

const (
	MovementCredit MovementKind = "credit"
	MovementDebit  MovementKind = "debit"
)

// MovementCategory classifies why a movement happened.
type MovementCategory string

const (
	CategoryEwasteCredit    MovementCategory = "ewaste_credit"
	CategoryWaterService    MovementCategory = "water_service"
	CategoryAdminAdjustment MovementCategory = "admin_adjustment"
	CategoryOther           MovementCategory = "other"
)

// MovementMetadata carries optional structured detail for a movement.
type MovementMetadata struct {
	EwasteType  string          `json:"ewasteType,omitempty"`
	Quantity    decimal.Decimal `json:"quantity,omitempty"`
	ServiceType string          `json:"serviceType,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Movement is one committed balance change and its immutable log entry.
// Never mutated after creation; for credits BalanceAfter == BalanceBefore +
// Amount, for debits BalanceBefore - Amount, and BalanceBefore equals the
// BalanceAfter of the chronologically preceding movement of the same wallet.
type Movement struct {
	MovementID    string           `json:"movementID"` // Primary key (UUID)
	WalletID      string           `json:"walletID"`
	UserID        string           `json:"userID"` // Wallet owner
	Kind          MovementKind     `json:"kind"`
	Amount        decimal.Decimal  `json:"amount"` // Strictly positive, 2-decimal
	BalanceBefore decimal.Decimal  `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal  `json:"balanceAfter"`
	ActorID       string           `json:"actorID"` // Who performed the change
	ActorRole     ActorRole        `json:"actorRole"`
	Description   string           `json:"description"`
	Category      MovementCategory `json:"category"`
	Metadata      MovementMetadata `json:"metadata"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// MovementFilter narrows read-only movement projections.
// Zero values mean "no constraint".
type MovementFilter struct {
	WalletID string
	ActorID  string
	Category MovementCategory
	Kind     MovementKind
	From     time.Time
	To       time.Time
}

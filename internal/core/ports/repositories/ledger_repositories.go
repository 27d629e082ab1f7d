package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

// CommitTransferParams is the unit of work for one balance change. The
// repository locks the wallet row exclusively, applies the domain mutation,
// appends the movement (and optional provenance record), records the scan,
// and commits everything or nothing.
type CommitTransferParams struct {
	WalletID    string
	Kind        domain.MovementKind
	Amount      decimal.Decimal // Already validated and rounded
	ActorID     string
	ActorRole   domain.ActorRole
	Description string
	Category    domain.MovementCategory
	Metadata    domain.MovementMetadata

	// EWaste, when non-nil, is inserted with its MovementID linked to the new
	// movement. Only meaningful for ewaste_credit transfers.
	EWaste *domain.EWasteRecord

	// ScanTokenID, when non-empty, records a scan against the token inside
	// the same commit. Empty for administrative adjustments.
	ScanTokenID string
	ScannerID   string

	Now time.Time
}

// LedgerRepository owns every composite write that moves money. It is the
// only path permitted to change a wallet balance; the commit is atomic with
// respect to crash and failure.
type LedgerRepository interface {
	// CreateEnrollment persists a fresh zero-balance wallet together with its
	// authorization token as one unit.
	CreateEnrollment(ctx context.Context, wallet domain.Wallet, token domain.WalletToken) error

	// CommitTransfer serializes against concurrent transfers on the same
	// wallet and applies the mutation all-or-nothing, returning the committed
	// movement with its captured before/after balances.
	CommitTransfer(ctx context.Context, params CommitTransferParams) (*domain.Movement, error)
}

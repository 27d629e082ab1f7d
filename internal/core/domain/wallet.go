package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
)

// MoneyPlaces is the stored precision of all monetary values.
// Every write is rounded to 2 decimal places using round-half-away-from-zero
// (decimal's Round), which matches rounding to the nearest whole cent for the
// strictly positive amounts this ledger deals in.
const MoneyPlaces = 2

// RoundMoney normalizes a monetary value to the stored 2-decimal precision.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Wallet is the stored-value account of one enrolled citizen.
// Invariant: Balance == TotalCredited - TotalDebited and Balance >= 0,
// at all times, over the wallet's committed movements.
type Wallet struct {
	WalletID       string          `json:"walletID"` // Primary key (UUID)
	UserID         string          `json:"userID"`   // FK to the external identity record, unique
	Balance        decimal.Decimal `json:"balance"`
	Frozen         bool            `json:"frozen"`
	TotalCredited  decimal.Decimal `json:"totalCredited"`
	TotalDebited   decimal.Decimal `json:"totalDebited"`
	LastMovementAt *time.Time      `json:"lastMovementAt,omitempty"`
	Version        int64           `json:"version"` // Monotonic, bumped on every mutation
	AuditFields
}

// CanDebit reports whether the wallet can absorb a debit of amount.
// Pure check, no mutation.
func (w *Wallet) CanDebit(amount decimal.Decimal) error {
	if w.Frozen {
		return apperrors.ErrWalletFrozen
	}
	if w.Balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s, requested %s",
			apperrors.ErrInsufficientBalance, w.Balance.StringFixed(MoneyPlaces), amount.StringFixed(MoneyPlaces))
	}
	return nil
}

// Credit increases the balance by amount. The caller is responsible for
// ensuring amount is strictly positive; a frozen wallet rejects the credit.
func (w *Wallet) Credit(amount decimal.Decimal, now time.Time) error {
	if w.Frozen {
		return apperrors.ErrWalletFrozen
	}
	amount = RoundMoney(amount)
	w.Balance = RoundMoney(w.Balance.Add(amount))
	w.TotalCredited = RoundMoney(w.TotalCredited.Add(amount))
	w.touch(now)
	return nil
}

// Debit decreases the balance by amount after running CanDebit.
func (w *Wallet) Debit(amount decimal.Decimal, now time.Time) error {
	amount = RoundMoney(amount)
	if err := w.CanDebit(amount); err != nil {
		return err
	}
	w.Balance = RoundMoney(w.Balance.Sub(amount))
	w.TotalDebited = RoundMoney(w.TotalDebited.Add(amount))
	w.touch(now)
	return nil
}

// Apply dispatches to Credit or Debit based on kind.
func (w *Wallet) Apply(kind MovementKind, amount decimal.Decimal, now time.Time) error {
	if kind == MovementDebit {
		return w.Debit(amount, now)
	}
	return w.Credit(amount, now)
}

// CheckIntegrity verifies the balance/counter invariant. A failure here is
// fatal: the stored state no longer matches the sum of its movements.
func (w *Wallet) CheckIntegrity() error {
	expected := w.TotalCredited.Sub(w.TotalDebited)
	if !w.Balance.Equal(expected) {
		return fmt.Errorf("%w: wallet %s balance %s does not equal credited-debited %s",
			apperrors.ErrIntegrityViolation, w.WalletID, w.Balance.String(), expected.String())
	}
	if w.Balance.IsNegative() {
		return fmt.Errorf("%w: wallet %s has negative balance %s",
			apperrors.ErrIntegrityViolation, w.WalletID, w.Balance.String())
	}
	return nil
}

func (w *Wallet) touch(now time.Time) {
	t := now
	w.LastMovementAt = &t
	w.Version++
}

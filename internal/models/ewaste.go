package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EWasteRecord is the DB representation of a credit provenance artifact.
type EWasteRecord struct {
	RecordID     string          `db:"record_id"`
	Category     string          `db:"category"`
	Quantity     decimal.Decimal `db:"quantity"`
	Unit         string          `db:"unit"`
	ValuePerUnit decimal.Decimal `db:"value_per_unit"`
	TotalValue   decimal.Decimal `db:"total_value"`
	SubmittedBy  string          `db:"submitted_by"`
	VerifiedBy   string          `db:"verified_by"`
	MovementID   string          `db:"movement_id"`
	Notes        string          `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
}

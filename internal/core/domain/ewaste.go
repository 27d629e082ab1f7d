package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EWasteUnit is the measurement unit of an e-waste submission.
type EWasteUnit string

const (
	UnitKg    EWasteUnit = "kg"
	UnitPiece EWasteUnit = "piece"
	UnitUnit  EWasteUnit = "unit"
)

// EWasteRecord is the provenance artifact justifying an ewaste_credit
// movement with physical-item detail. Created and destroyed together with
// its owning movement, never standalone.
type EWasteRecord struct {
	RecordID     string          `json:"recordID"` // Primary key (UUID)
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"` // Strictly positive
	Unit         EWasteUnit      `json:"unit"`
	ValuePerUnit decimal.Decimal `json:"valuePerUnit"`
	TotalValue   decimal.Decimal `json:"totalValue"` // round(Quantity * ValuePerUnit, 2)
	SubmittedBy  string          `json:"submittedBy"` // Wallet owner
	VerifiedBy   string          `json:"verifiedBy"`  // Crediting officer
	MovementID   string          `json:"movementID"`  // FK to the movement it produced
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ComputeTotal derives TotalValue from quantity and unit value at the stored
// 2-decimal precision. The ledger is the sole rounding authority, so callers
// never supply the total themselves.
func (e *EWasteRecord) ComputeTotal() {
	e.TotalValue = RoundMoney(e.Quantity.Mul(e.ValuePerUnit))
}

// EWastePrice is one row of the reference pricing catalog.
type EWastePrice struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
	Unit     EWasteUnit      `json:"unit"`
}

// EWastePricing is the reference catalog of per-category credit values.
// Read-only; officers may still enter any per-unit value during verification.
var EWastePricing = []EWastePrice{
	{Category: "Mobile Phones", Value: decimal.NewFromInt(50), Unit: UnitPiece},
	{Category: "Laptops", Value: decimal.NewFromInt(200), Unit: UnitPiece},
	{Category: "Computers", Value: decimal.NewFromInt(150), Unit: UnitPiece},
	{Category: "Tablets", Value: decimal.NewFromInt(80), Unit: UnitPiece},
	{Category: "Televisions", Value: decimal.NewFromInt(100), Unit: UnitPiece},
	{Category: "Refrigerators", Value: decimal.NewFromInt(300), Unit: UnitPiece},
	{Category: "Washing Machines", Value: decimal.NewFromInt(250), Unit: UnitPiece},
	{Category: "Air Conditioners", Value: decimal.NewFromInt(350), Unit: UnitPiece},
	{Category: "Batteries", Value: decimal.NewFromInt(10), Unit: UnitKg},
	{Category: "Chargers", Value: decimal.NewFromInt(5), Unit: UnitPiece},
	{Category: "Cables", Value: decimal.NewFromInt(2), Unit: UnitKg},
	{Category: "Printers", Value: decimal.NewFromInt(75), Unit: UnitPiece},
	{Category: "Monitors", Value: decimal.NewFromInt(60), Unit: UnitPiece},
	{Category: "Keyboards", Value: decimal.NewFromInt(15), Unit: UnitPiece},
	{Category: "Mouse", Value: decimal.NewFromInt(10), Unit: UnitPiece},
	{Category: "Other Electronics", Value: decimal.NewFromInt(20), Unit: UnitKg},
}

package dto

import (
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/utils/money"
)

// PricingEntry is one row of the e-waste pricing catalog.
type PricingEntry struct {
	Category string            `json:"category"`
	Value    string            `json:"value"`
	Unit     domain.EWasteUnit `json:"unit"`
}

// ToPricingEntries converts the reference catalog for the API.
func ToPricingEntries(prices []domain.EWastePrice) []PricingEntry {
	out := make([]PricingEntry, len(prices))
	for i, p := range prices {
		out[i] = PricingEntry{
			Category: p.Category,
			Value:    money.Format(p.Value),
			Unit:     p.Unit,
		}
	}
	return out
}

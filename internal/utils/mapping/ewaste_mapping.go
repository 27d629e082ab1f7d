package mapping

import (
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/models"
)

// ToModelEWasteRecord converts a domain EWasteRecord to its model form.
func ToModelEWasteRecord(d domain.EWasteRecord) models.EWasteRecord {
	return models.EWasteRecord{
		RecordID:     d.RecordID,
		Category:     d.Category,
		Quantity:     d.Quantity,
		Unit:         string(d.Unit),
		ValuePerUnit: d.ValuePerUnit,
		TotalValue:   d.TotalValue,
		SubmittedBy:  d.SubmittedBy,
		VerifiedBy:   d.VerifiedBy,
		MovementID:   d.MovementID,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainEWasteRecord converts a model EWasteRecord to its domain form.
func ToDomainEWasteRecord(m models.EWasteRecord) domain.EWasteRecord {
	return domain.EWasteRecord{
		RecordID:     m.RecordID,
		Category:     m.Category,
		Quantity:     m.Quantity,
		Unit:         domain.EWasteUnit(m.Unit),
		ValuePerUnit: m.ValuePerUnit,
		TotalValue:   m.TotalValue,
		SubmittedBy:  m.SubmittedBy,
		VerifiedBy:   m.VerifiedBy,
		MovementID:   m.MovementID,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

package mapping

import (
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/models"
)

// ToModelWalletToken converts a domain WalletToken to its model form.
func ToModelWalletToken(d domain.WalletToken) models.WalletToken {
	var scannedBy *string
	if d.LastScannedBy != "" {
		s := d.LastScannedBy
		scannedBy = &s
	}
	return models.WalletToken{
		TokenID:       d.TokenID,
		Token:         d.Token,
		UserID:        d.UserID,
		Active:        d.Active,
		ExpiresAt:     d.ExpiresAt,
		ScanCount:     d.ScanCount,
		LastScannedAt: d.LastScannedAt,
		LastScannedBy: scannedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainWalletToken converts a model WalletToken to its domain form.
func ToDomainWalletToken(m models.WalletToken) domain.WalletToken {
	scannedBy := ""
	if m.LastScannedBy != nil {
		scannedBy = *m.LastScannedBy
	}
	return domain.WalletToken{
		TokenID:       m.TokenID,
		Token:         m.Token,
		UserID:        m.UserID,
		Active:        m.Active,
		ExpiresAt:     m.ExpiresAt,
		ScanCount:     m.ScanCount,
		LastScannedAt: m.LastScannedAt,
		LastScannedBy: scannedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

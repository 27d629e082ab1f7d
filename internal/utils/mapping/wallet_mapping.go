package mapping

import (
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:       d.WalletID,
		UserID:         d.UserID,
		Balance:        d.Balance,
		Frozen:         d.Frozen,
		TotalCredited:  d.TotalCredited,
		TotalDebited:   d.TotalDebited,
		LastMovementAt: d.LastMovementAt,
		Version:        d.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:       m.WalletID,
		UserID:         m.UserID,
		Balance:        m.Balance,
		Frozen:         m.Frozen,
		TotalCredited:  m.TotalCredited,
		TotalDebited:   m.TotalDebited,
		LastMovementAt: m.LastMovementAt,
		Version:        m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

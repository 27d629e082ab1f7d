package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement.
// Metadata is serialized to JSON for the JSONB column.
func ToModelMovement(d domain.Movement) (models.Movement, error) {
	meta, err := json.Marshal(d.Metadata)
	if err != nil {
		return models.Movement{}, fmt.Errorf("failed to marshal movement metadata: %w", err)
	}
	return models.Movement{
		MovementID:    d.MovementID,
		WalletID:      d.WalletID,
		UserID:        d.UserID,
		Kind:          string(d.Kind),
		Amount:        d.Amount,
		BalanceBefore: d.BalanceBefore,
		BalanceAfter:  d.BalanceAfter,
		ActorID:       d.ActorID,
		ActorRole:     string(d.ActorRole),
		Description:   d.Description,
		Category:      string(d.Category),
		Metadata:      meta,
		CreatedAt:     d.CreatedAt,
	}, nil
}

// ToDomainMovement converts a model Movement to a domain Movement.
func ToDomainMovement(m models.Movement) (domain.Movement, error) {
	var meta domain.MovementMetadata
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &meta); err != nil {
			return domain.Movement{}, fmt.Errorf("failed to unmarshal movement metadata: %w", err)
		}
	}
	return domain.Movement{
		MovementID:    m.MovementID,
		WalletID:      m.WalletID,
		UserID:        m.UserID,
		Kind:          domain.MovementKind(m.Kind),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		ActorID:       m.ActorID,
		ActorRole:     domain.ActorRole(m.ActorRole),
		Description:   m.Description,
		Category:      domain.MovementCategory(m.Category),
		Metadata:      meta,
		CreatedAt:     m.CreatedAt,
	}, nil
}

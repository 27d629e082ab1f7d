package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	portssvc "github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
)

const (
	defaultMovementPageSize = 50
	maxMovementPageSize     = 200
)

// walletService serves wallet reads and the administrative freeze toggle.
// Reads never take the per-wallet lock; they see the last committed snapshot,
// optionally through the snapshot cache.
type walletService struct {
	walletRepo   portsrepo.WalletRepositoryFacade
	movementRepo portsrepo.MovementReader
	cache        portsrepo.WalletSnapshotCache
}

// NewWalletService creates a new WalletService. cache may be nil when no
// snapshot cache is configured.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, movementRepo portsrepo.MovementReader, cache portsrepo.WalletSnapshotCache) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo:   walletRepo,
		movementRepo: movementRepo,
		cache:        cache,
	}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// GetWallet retrieves a wallet by ID, preferring the snapshot cache.
func (s *walletService) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	if s.cache != nil {
		if w, ok := s.cache.GetWallet(ctx, walletID); ok {
			return w, nil
		}
	}
	w, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetWallet(ctx, *w)
	}
	return w, nil
}

// GetWalletByUserID retrieves the wallet owned by a user.
func (s *walletService) GetWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	w, err := s.walletRepo.FindWalletByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetWallet(ctx, *w)
	}
	return w, nil
}

// SetFrozen toggles the freeze flag. Takes effect immediately for all
// subsequent credits and debits; movements already logged are untouched.
func (s *walletService) SetFrozen(ctx context.Context, walletID string, frozen bool, actorID string) error {
	now := time.Now().UTC()
	if err := s.walletRepo.SetFrozen(ctx, walletID, frozen, actorID, now); err != nil {
		return fmt.Errorf("failed to update freeze state for wallet %s: %w", walletID, err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, walletID)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Wallet freeze state updated",
		slog.String("wallet_id", walletID), slog.Bool("frozen", frozen), slog.String("actor_id", actorID))
	return nil
}

// ListMovements returns committed ledger entries, newest first.
func (s *walletService) ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, offset int) ([]domain.Movement, error) {
	if limit <= 0 {
		limit = defaultMovementPageSize
	}
	if limit > maxMovementPageSize {
		limit = maxMovementPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.movementRepo.ListMovements(ctx, filter, limit, offset)
}

// GetMovement retrieves a single committed ledger entry.
func (s *walletService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	return s.movementRepo.FindMovementByID(ctx, movementID)
}

// GetEWasteRecord retrieves the provenance artifact linked to a movement.
func (s *walletService) GetEWasteRecord(ctx context.Context, movementID string) (*domain.EWasteRecord, error) {
	return s.movementRepo.FindEWasteRecordByMovementID(ctx, movementID)
}

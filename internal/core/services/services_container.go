package services

import (
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	portssvc "github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. cache may be nil when no snapshot cache is
// configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache portsrepo.WalletSnapshotCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg.QRTokenSecret, repos.TokenRepo)
	container.Wallet = NewWalletService(repos.WalletRepo, repos.MovementRepo, cache)
	container.Transfer = NewTransferService(
		container.Token,
		repos.WalletRepo,
		repos.TokenRepo,
		repos.LedgerRepo,
		cache,
		cfg.MaxTransferAmount,
	)

	return container
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portssvc "github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/core/services"
)

// mapSnapshotCache is a plain in-memory stand-in for the Redis cache.
type mapSnapshotCache struct {
	entries map[string]domain.Wallet
}

func newMapSnapshotCache() *mapSnapshotCache {
	return &mapSnapshotCache{entries: make(map[string]domain.Wallet)}
}

func (c *mapSnapshotCache) GetWallet(_ context.Context, walletID string) (*domain.Wallet, bool) {
	w, ok := c.entries[walletID]
	if !ok {
		return nil, false
	}
	return &w, true
}

func (c *mapSnapshotCache) SetWallet(_ context.Context, wallet domain.Wallet) {
	c.entries[wallet.WalletID] = wallet
}

func (c *mapSnapshotCache) Invalidate(_ context.Context, walletID string) {
	delete(c.entries, walletID)
}

type WalletServiceTestSuite struct {
	suite.Suite
	mockWalletRepo   *MockWalletRepository
	mockMovementRepo *MockMovementRepository
	cache            *mapSnapshotCache
	service          portssvc.WalletSvcFacade

	wallet domain.Wallet
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.cache = newMapSnapshotCache()
	suite.service = services.NewWalletService(suite.mockWalletRepo, suite.mockMovementRepo, suite.cache)

	suite.wallet = domain.Wallet{
		WalletID:      uuid.NewString(),
		UserID:        uuid.NewString(),
		Balance:       decimal.NewFromInt(75),
		TotalCredited: decimal.NewFromInt(100),
		TotalDebited:  decimal.NewFromInt(25),
	}
}

func (suite *WalletServiceTestSuite) TestGetWalletPopulatesCache() {
	ctx := context.Background()

	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()

	w, err := suite.service.GetWallet(ctx, suite.wallet.WalletID)
	suite.Require().NoError(err)
	suite.True(w.Balance.Equal(decimal.NewFromInt(75)))

	// Second read is served from the snapshot cache.
	w2, err := suite.service.GetWallet(ctx, suite.wallet.WalletID)
	suite.Require().NoError(err)
	suite.True(w2.Balance.Equal(decimal.NewFromInt(75)))
	suite.mockWalletRepo.AssertNumberOfCalls(suite.T(), "FindWalletByID", 1)
}

func (suite *WalletServiceTestSuite) TestGetWalletNotFound() {
	ctx := context.Background()
	unknown := uuid.NewString()

	suite.mockWalletRepo.On("FindWalletByID", ctx, unknown).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetWallet(ctx, unknown)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WalletServiceTestSuite) TestSetFrozenInvalidatesCache() {
	ctx := context.Background()
	actorID := uuid.NewString()
	suite.cache.SetWallet(ctx, suite.wallet)

	suite.mockWalletRepo.On("SetFrozen", ctx, suite.wallet.WalletID, true, actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetFrozen(ctx, suite.wallet.WalletID, true, actorID)

	suite.Require().NoError(err)
	_, cached := suite.cache.GetWallet(ctx, suite.wallet.WalletID)
	suite.False(cached)
}

func (suite *WalletServiceTestSuite) TestSetFrozenUnknownWallet() {
	ctx := context.Background()

	suite.mockWalletRepo.On("SetFrozen", ctx, "missing", true, "admin-1", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.SetFrozen(ctx, "missing", true, "admin-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WalletServiceTestSuite) TestListMovementsClampsPaging() {
	ctx := context.Background()
	filter := domain.MovementFilter{WalletID: suite.wallet.WalletID}

	suite.mockMovementRepo.On("ListMovements", ctx, filter, 50, 0).Return([]domain.Movement{}, nil).Once()
	suite.mockMovementRepo.On("ListMovements", ctx, filter, 200, 0).Return([]domain.Movement{}, nil).Once()

	_, err := suite.service.ListMovements(ctx, filter, 0, -3)
	suite.Require().NoError(err)

	_, err = suite.service.ListMovements(ctx, filter, 10000, 0)
	suite.Require().NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestGetEWasteRecord() {
	ctx := context.Background()
	movementID := uuid.NewString()
	record := &domain.EWasteRecord{
		RecordID:   uuid.NewString(),
		Category:   "Batteries",
		Quantity:   decimal.NewFromInt(3),
		Unit:       domain.UnitKg,
		MovementID: movementID,
		CreatedAt:  time.Now().UTC(),
	}

	suite.mockMovementRepo.On("FindEWasteRecordByMovementID", ctx, movementID).Return(record, nil).Once()

	got, err := suite.service.GetEWasteRecord(ctx, movementID)

	suite.Require().NoError(err)
	suite.Equal(record.RecordID, got.RecordID)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

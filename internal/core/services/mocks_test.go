package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
)

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SetFrozen(ctx context.Context, walletID string, frozen bool, updatedBy string, now time.Time) error {
	args := m.Called(ctx, walletID, frozen, updatedBy, now)
	return args.Error(0)
}

// --- Mock TokenRepository ---
type MockTokenRepository struct {
	mock.Mock
}

var _ portsrepo.TokenRepositoryFacade = (*MockTokenRepository)(nil)

func (m *MockTokenRepository) FindTokenByValue(ctx context.Context, token string) (*domain.WalletToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletToken), args.Error(1)
}

func (m *MockTokenRepository) FindTokenByUserID(ctx context.Context, userID string) (*domain.WalletToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletToken), args.Error(1)
}

func (m *MockTokenRepository) RecordScan(ctx context.Context, tokenID string, scannerID string, now time.Time) error {
	args := m.Called(ctx, tokenID, scannerID, now)
	return args.Error(0)
}

func (m *MockTokenRepository) SetActive(ctx context.Context, tokenID string, active bool, now time.Time) error {
	args := m.Called(ctx, tokenID, active, now)
	return args.Error(0)
}

func (m *MockTokenRepository) ReplaceToken(ctx context.Context, userID string, replacement domain.WalletToken) error {
	args := m.Called(ctx, userID, replacement)
	return args.Error(0)
}

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementReader = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, offset int) ([]domain.Movement, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindEWasteRecordByMovementID(ctx context.Context, movementID string) (*domain.EWasteRecord, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EWasteRecord), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) CreateEnrollment(ctx context.Context, wallet domain.Wallet, token domain.WalletToken) error {
	args := m.Called(ctx, wallet, token)
	return args.Error(0)
}

func (m *MockLedgerRepository) CommitTransfer(ctx context.Context, params portsrepo.CommitTransferParams) (*domain.Movement, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

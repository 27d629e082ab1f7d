package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	"github.com/ecosetu/ewallet_backend/internal/core/services"
	"github.com/ecosetu/ewallet_backend/internal/dto"
)

// memLedger is an in-memory stand-in for the database-backed ledger. It
// serializes commits per store the way the row lock serializes them per
// wallet, which is what lets the interleaving assertions hold.
type memLedger struct {
	mu        sync.Mutex
	wallets   map[string]*domain.Wallet
	tokens    map[string]*domain.WalletToken // keyed by token value
	movements []domain.Movement
}

func newMemLedger() *memLedger {
	return &memLedger{
		wallets: make(map[string]*domain.Wallet),
		tokens:  make(map[string]*domain.WalletToken),
	}
}

var _ portsrepo.LedgerRepository = (*memLedger)(nil)
var _ portsrepo.WalletRepositoryFacade = (*memLedger)(nil)
var _ portsrepo.TokenRepositoryFacade = (*memLedger)(nil)

func (l *memLedger) CreateEnrollment(_ context.Context, wallet domain.Wallet, token domain.WalletToken) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.wallets {
		if w.UserID == wallet.UserID {
			return apperrors.ErrDuplicate
		}
	}
	l.wallets[wallet.WalletID] = &wallet
	l.tokens[token.Token] = &token
	return nil
}

func (l *memLedger) CommitTransfer(_ context.Context, params portsrepo.CommitTransferParams) (*domain.Movement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	wallet, ok := l.wallets[params.WalletID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	before := wallet.Balance
	if err := wallet.Apply(params.Kind, params.Amount, params.Now); err != nil {
		return nil, err
	}
	if err := wallet.CheckIntegrity(); err != nil {
		return nil, err
	}

	movement := domain.Movement{
		MovementID:    uuid.NewString(),
		WalletID:      wallet.WalletID,
		UserID:        wallet.UserID,
		Kind:          params.Kind,
		Amount:        params.Amount,
		BalanceBefore: before,
		BalanceAfter:  wallet.Balance,
		ActorID:       params.ActorID,
		ActorRole:     params.ActorRole,
		Description:   params.Description,
		Category:      params.Category,
		CreatedAt:     params.Now,
	}
	l.movements = append(l.movements, movement)

	if params.ScanTokenID != "" {
		for _, tok := range l.tokens {
			if tok.TokenID == params.ScanTokenID {
				tok.RecordScan(params.ScannerID, params.Now)
			}
		}
	}
	return &movement, nil
}

func (l *memLedger) FindWalletByID(_ context.Context, walletID string) (*domain.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.wallets[walletID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	snapshot := *w
	return &snapshot, nil
}

func (l *memLedger) FindWalletByUserID(_ context.Context, userID string) (*domain.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.wallets {
		if w.UserID == userID {
			snapshot := *w
			return &snapshot, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (l *memLedger) SetFrozen(_ context.Context, walletID string, frozen bool, _ string, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.wallets[walletID]
	if !ok {
		return apperrors.ErrNotFound
	}
	w.Frozen = frozen
	w.LastUpdatedAt = now
	return nil
}

func (l *memLedger) FindTokenByValue(_ context.Context, token string) (*domain.WalletToken, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	snapshot := *tok
	return &snapshot, nil
}

func (l *memLedger) FindTokenByUserID(_ context.Context, userID string) (*domain.WalletToken, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tok := range l.tokens {
		if tok.UserID == userID {
			snapshot := *tok
			return &snapshot, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (l *memLedger) RecordScan(_ context.Context, tokenID string, scannerID string, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tok := range l.tokens {
		if tok.TokenID == tokenID {
			tok.RecordScan(scannerID, now)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (l *memLedger) SetActive(_ context.Context, tokenID string, active bool, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tok := range l.tokens {
		if tok.TokenID == tokenID {
			tok.Active = active
			tok.UpdatedAt = now
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (l *memLedger) ReplaceToken(_ context.Context, userID string, replacement domain.WalletToken) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for value, tok := range l.tokens {
		if tok.UserID == userID {
			delete(l.tokens, value)
		}
	}
	l.tokens[replacement.Token] = &replacement
	return nil
}

// TestConcurrentTransfersSerialize drives many concurrent credits and debits
// through the coordinator and checks that the final balance and the movement
// chain look as if the operations ran one at a time.
func TestConcurrentTransfersSerialize(t *testing.T) {
	ledger := newMemLedger()
	tokenSvc := services.NewTokenService("test-derivation-secret", ledger)
	svc := services.NewTransferService(tokenSvc, ledger, ledger, ledger, nil, decimal.NewFromInt(1000))

	userID := uuid.NewString()
	wallet, token, err := svc.Enroll(context.Background(), dto.EnrollRequest{UserID: userID}, "admin-1")
	require.NoError(t, err)

	// Seed a balance big enough that no debit can fail.
	_, err = svc.Adjust(context.Background(), wallet.WalletID, dto.AdjustRequest{
		Amount: "1000.00", Kind: domain.MovementCredit, Description: "seed",
	}, "admin-1")
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		kind := domain.MovementCredit
		role := domain.RoleMunicipality
		if i%2 == 1 {
			kind = domain.MovementDebit
			role = domain.RoleWaterplant
		}
		go func(kind domain.MovementKind, role domain.ActorRole) {
			defer wg.Done()
			_, err := svc.Transfer(context.Background(), dto.TransferRequest{
				Token:       token.Token,
				Amount:      "10.00",
				Kind:        kind,
				Description: "concurrent op",
			}, uuid.NewString(), role)
			require.NoError(t, err)
		}(kind, role)
	}
	wg.Wait()

	// 10 credits and 10 debits of 10.00 against a 1000.00 seed.
	final, err := svc.Transfer(context.Background(), dto.TransferRequest{
		Token:       token.Token,
		Amount:      "10.00",
		Kind:        domain.MovementCredit,
		Description: "final probe",
	}, "admin-1", domain.RoleAdmin)
	require.NoError(t, err)
	require.True(t, final.BalanceAfter.Equal(decimal.RequireFromString("1010.00")),
		"final balance %s", final.BalanceAfter)

	// Every movement's before balance must equal its predecessor's after
	// balance: no lost updates, no interleaving.
	ledger.mu.Lock()
	defer ledger.mu.Unlock()
	for i := 1; i < len(ledger.movements); i++ {
		require.True(t, ledger.movements[i].BalanceBefore.Equal(ledger.movements[i-1].BalanceAfter),
			"movement %d breaks the balance chain", i)
	}
}

// TestConcurrentDebitsStopAtZero runs more debits than the balance can cover
// and checks that exactly the affordable number commit.
func TestConcurrentDebitsStopAtZero(t *testing.T) {
	ledger := newMemLedger()
	tokenSvc := services.NewTokenService("test-derivation-secret", ledger)
	svc := services.NewTransferService(tokenSvc, ledger, ledger, ledger, nil, decimal.NewFromInt(1000))

	userID := uuid.NewString()
	wallet, token, err := svc.Enroll(context.Background(), dto.EnrollRequest{UserID: userID}, "admin-1")
	require.NoError(t, err)

	_, err = svc.Adjust(context.Background(), wallet.WalletID, dto.AdjustRequest{
		Amount: "50.00", Kind: domain.MovementCredit, Description: "seed",
	}, "admin-1")
	require.NoError(t, err)

	const attempts = 10 // 10 x 10.00 attempted against 50.00
	var wg sync.WaitGroup
	var mu sync.Mutex
	committed, rejected := 0, 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(context.Background(), dto.TransferRequest{
				Token:       token.Token,
				Amount:      "10.00",
				Kind:        domain.MovementDebit,
				Description: "drain",
			}, uuid.NewString(), domain.RoleWaterplant)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				require.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
				rejected++
			} else {
				committed++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 5, committed)
	require.Equal(t, 5, rejected)

	got, err := ledger.FindWalletByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, got.Balance.IsZero(), "balance %s", got.Balance)
	require.NoError(t, got.CheckIntegrity())
}

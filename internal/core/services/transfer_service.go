package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	portssvc "github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/dto"
	"github.com/ecosetu/ewallet_backend/internal/metrics"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
	"github.com/ecosetu/ewallet_backend/internal/utils/money"
)

var (
	// ErrAmountExceedsCap rejects transfers above the configured per-transfer
	// policy bound.
	ErrAmountExceedsCap = errors.New("amount exceeds per-transfer cap")

	// ErrEwasteValueMismatch rejects ewaste_credit transfers whose amount
	// does not equal the computed item total.
	ErrEwasteValueMismatch = errors.New("transfer amount does not match computed e-waste value")
)

// transferService is the transfer coordinator: the only entry point that
// changes wallet balances. Per-wallet serialization and all-or-nothing
// semantics are provided by the ledger repository's commit; everything
// observable before that point is validation without side effects.
type transferService struct {
	tokenSvc    portssvc.TokenSvcFacade
	walletRepo  portsrepo.WalletRepositoryFacade
	tokenRepo   portsrepo.TokenRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepository
	cache       portsrepo.WalletSnapshotCache
	maxTransfer decimal.Decimal // Zero disables the cap
}

// NewTransferService creates a new TransferService. cache may be nil.
func NewTransferService(
	tokenSvc portssvc.TokenSvcFacade,
	walletRepo portsrepo.WalletRepositoryFacade,
	tokenRepo portsrepo.TokenRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepository,
	cache portsrepo.WalletSnapshotCache,
	maxTransfer decimal.Decimal,
) portssvc.TransferSvcFacade {
	return &transferService{
		tokenSvc:    tokenSvc,
		walletRepo:  walletRepo,
		tokenRepo:   tokenRepo,
		ledgerRepo:  ledgerRepo,
		cache:       cache,
		maxTransfer: maxTransfer,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// Enroll creates a zero-balance wallet and issues its token as one atomic
// unit. Called once per participant by the registration flow.
func (s *transferService) Enroll(ctx context.Context, req dto.EnrollRequest, actorID string) (*domain.Wallet, *domain.WalletToken, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	wallet := domain.Wallet{
		WalletID:      uuid.NewString(),
		UserID:        req.UserID,
		Balance:       decimal.Zero,
		TotalCredited: decimal.Zero,
		TotalDebited:  decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	token, err := s.tokenSvc.Issue(ctx, req.UserID, req.ExpiresAt)
	if err != nil {
		return nil, nil, err
	}

	if err := s.ledgerRepo.CreateEnrollment(ctx, wallet, *token); err != nil {
		logger.Error("Enrollment failed", slog.String("target_user_id", req.UserID), slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger.Info("Participant enrolled",
		slog.String("target_user_id", req.UserID), slog.String("wallet_id", wallet.WalletID))
	return &wallet, token, nil
}

// PresentToken resolves and verifies a token, records the scan, and returns
// the wallet snapshot. A failed verification never increments the scan count.
func (s *transferService) PresentToken(ctx context.Context, token string, scannerID string) (*domain.WalletToken, *domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	tok, err := s.tokenSvc.Resolve(ctx, token)
	if err != nil {
		metrics.ScanRecorded(false)
		return nil, nil, err
	}
	if err := tok.Verify(now); err != nil {
		metrics.ScanRecorded(false)
		logger.Warn("Token presentation rejected",
			slog.String("target_user_id", tok.UserID), slog.String("error", err.Error()))
		return nil, nil, err
	}

	wallet, err := s.walletRepo.FindWalletByUserID(ctx, tok.UserID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.tokenRepo.RecordScan(ctx, tok.TokenID, scannerID, now); err != nil {
		return nil, nil, fmt.Errorf("failed to record scan: %w", err)
	}
	tok.RecordScan(scannerID, now)
	metrics.ScanRecorded(true)

	logger.Info("Token presented",
		slog.String("target_user_id", tok.UserID), slog.Int64("scan_count", tok.ScanCount))
	return tok, wallet, nil
}

// Transfer is the token-authorized atomic write path. On any failure the
// attempt aborts with no observable partial state.
func (s *transferService) Transfer(ctx context.Context, req dto.TransferRequest, actorID string, actorRole domain.ActorRole) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	// Validate before any state is touched.
	amount, err := money.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}
	if err := s.checkPolicy(req.Kind, category, actorRole, amount); err != nil {
		return nil, err
	}

	// Resolve and verify the token.
	tok, err := s.tokenSvc.Resolve(ctx, req.Token)
	if err != nil {
		metrics.TransferAborted(string(req.Kind))
		return nil, err
	}
	if err := tok.Verify(now); err != nil {
		metrics.TransferAborted(string(req.Kind))
		return nil, err
	}

	wallet, err := s.walletRepo.FindWalletByUserID(ctx, tok.UserID)
	if err != nil {
		metrics.TransferAborted(string(req.Kind))
		return nil, err
	}

	ewaste, err := s.buildProvenance(req, tok.UserID, actorID, amount, now)
	if err != nil {
		metrics.TransferAborted(string(req.Kind))
		return nil, err
	}

	// The ledger repository locks the wallet, applies the mutation, appends
	// the movement and provenance record, records the scan, and commits as
	// one unit.
	params := portsrepo.CommitTransferParams{
		WalletID:    wallet.WalletID,
		Kind:        req.Kind,
		Amount:      amount,
		ActorID:     actorID,
		ActorRole:   actorRole,
		Description: req.Description,
		Category:    category,
		Metadata:    toMovementMetadata(req.Metadata),
		EWaste:      ewaste,
		ScanTokenID: tok.TokenID,
		ScannerID:   actorID,
		Now:         now,
	}

	start := time.Now()
	movement, err := s.ledgerRepo.CommitTransfer(ctx, params)
	if err != nil {
		metrics.TransferAborted(string(req.Kind))
		logger.Warn("Transfer aborted",
			slog.String("wallet_id", wallet.WalletID),
			slog.String("kind", string(req.Kind)),
			slog.String("error", err.Error()))
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, wallet.WalletID)
	}
	metrics.TransferCommitted(string(req.Kind), time.Since(start))

	logger.Info("Transfer committed",
		slog.String("movement_id", movement.MovementID),
		slog.String("wallet_id", wallet.WalletID),
		slog.String("kind", string(req.Kind)),
		slog.String("amount", money.Format(amount)),
		slog.String("balance_after", money.Format(movement.BalanceAfter)))
	return movement, nil
}

// Adjust is the administrative credit/debit: same ledger invariants, no
// token, no per-transfer cap, always category admin_adjustment.
func (s *transferService) Adjust(ctx context.Context, walletID string, req dto.AdjustRequest, actorID string) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	amount, err := money.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	params := portsrepo.CommitTransferParams{
		WalletID:    walletID,
		Kind:        req.Kind,
		Amount:      amount,
		ActorID:     actorID,
		ActorRole:   domain.RoleAdmin,
		Description: req.Description,
		Category:    domain.CategoryAdminAdjustment,
		Now:         now,
	}

	start := time.Now()
	movement, err := s.ledgerRepo.CommitTransfer(ctx, params)
	if err != nil {
		metrics.TransferAborted(string(req.Kind))
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, walletID)
	}
	metrics.TransferCommitted(string(req.Kind), time.Since(start))

	logger.Info("Administrative adjustment committed",
		slog.String("movement_id", movement.MovementID),
		slog.String("wallet_id", walletID),
		slog.String("kind", string(req.Kind)))
	return movement, nil
}

// checkPolicy enforces role and amount bounds: crediting officers may only
// credit, debiting officers may only debit, and credits are capped per
// transfer. The cap is the sole mitigation against a reused token
// authorizing unbounded credits.
func (s *transferService) checkPolicy(kind domain.MovementKind, category domain.MovementCategory, role domain.ActorRole, amount decimal.Decimal) error {
	switch kind {
	case domain.MovementCredit:
		if role != domain.RoleMunicipality && role != domain.RoleAdmin {
			return fmt.Errorf("%w: role %s may not credit", apperrors.ErrForbidden, role)
		}
	case domain.MovementDebit:
		if role != domain.RoleWaterplant && role != domain.RoleAdmin {
			return fmt.Errorf("%w: role %s may not debit", apperrors.ErrForbidden, role)
		}
	default:
		return fmt.Errorf("%w: unknown movement kind %q", apperrors.ErrValidation, kind)
	}
	if category == domain.CategoryAdminAdjustment && role != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins may post adjustments", apperrors.ErrForbidden)
	}
	if kind == domain.MovementCredit && s.maxTransfer.IsPositive() && amount.GreaterThan(s.maxTransfer) {
		return fmt.Errorf("%w: %s > %s: %w", apperrors.ErrValidation, money.Format(amount), money.Format(s.maxTransfer), ErrAmountExceedsCap)
	}
	return nil
}

// buildProvenance constructs the e-waste record for ewaste_credit transfers.
// With itemized detail the computed total must equal the credited amount;
// without it, a single verification line is derived from the amount, matching
// the walk-in verification flow.
func (s *transferService) buildProvenance(req dto.TransferRequest, userID string, actorID string, amount decimal.Decimal, now time.Time) (*domain.EWasteRecord, error) {
	if req.Category != domain.CategoryEwasteCredit || req.Kind != domain.MovementCredit {
		return nil, nil
	}

	if req.EWaste == nil {
		rec := &domain.EWasteRecord{
			RecordID:     uuid.NewString(),
			Category:     "Verified E-Waste",
			Quantity:     decimal.NewFromInt(1),
			Unit:         domain.UnitUnit,
			ValuePerUnit: amount,
			SubmittedBy:  userID,
			VerifiedBy:   actorID,
			Notes:        req.Description,
			CreatedAt:    now,
		}
		rec.ComputeTotal()
		return rec, nil
	}

	if !req.EWaste.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: e-waste quantity must be positive", apperrors.ErrValidation)
	}
	valuePerUnit, err := money.ParsePositiveAmount(req.EWaste.ValuePerUnit)
	if err != nil {
		return nil, err
	}
	unit := req.EWaste.Unit
	if unit == "" {
		unit = domain.UnitPiece
	}

	rec := &domain.EWasteRecord{
		RecordID:     uuid.NewString(),
		Category:     req.EWaste.Category,
		Quantity:     req.EWaste.Quantity,
		Unit:         unit,
		ValuePerUnit: valuePerUnit,
		SubmittedBy:  userID,
		VerifiedBy:   actorID,
		Notes:        req.EWaste.Notes,
		CreatedAt:    now,
	}
	rec.ComputeTotal()
	if !rec.TotalValue.Equal(amount) {
		return nil, fmt.Errorf("%w: computed %s, amount %s: %w",
			apperrors.ErrValidation, money.Format(rec.TotalValue), money.Format(amount), ErrEwasteValueMismatch)
	}
	return rec, nil
}

func toMovementMetadata(m *dto.TransferMetadata) domain.MovementMetadata {
	if m == nil {
		return domain.MovementMetadata{}
	}
	return domain.MovementMetadata{
		EwasteType:  m.EwasteType,
		Quantity:    m.Quantity,
		ServiceType: m.ServiceType,
		Notes:       m.Notes,
	}
}

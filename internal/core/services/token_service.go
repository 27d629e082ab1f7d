package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	portssvc "github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
	"github.com/ecosetu/ewallet_backend/internal/utils"
)

// tokenService is the token authority. Tokens are resolved by exact stored
// value, so tokens issued under a previous secret remain valid after key
// rotation; rotation only affects derivation of new tokens.
type tokenService struct {
	tokenRepo portsrepo.TokenRepositoryFacade
	secret    string
}

// NewTokenService creates a new token authority backed by the given
// repository and server-held derivation secret.
func NewTokenService(secret string, tokenRepo portsrepo.TokenRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		tokenRepo: tokenRepo,
		secret:    secret,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// Issue derives a fresh token record. No persistence happens here; the
// enrollment unit of work stores the record atomically with its wallet.
func (s *tokenService) Issue(ctx context.Context, userID string, expiresAt *time.Time) (*domain.WalletToken, error) {
	now := time.Now().UTC()
	value, err := utils.DeriveWalletToken(userID, s.secret, now)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Token derivation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to derive wallet token: %w", err)
	}
	return &domain.WalletToken{
		TokenID:   uuid.NewString(),
		Token:     value,
		UserID:    userID,
		Active:    true,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Resolve looks up a presented token by exact value. The repository reports
// apperrors.ErrInvalidToken when no record matches.
func (s *tokenService) Resolve(ctx context.Context, token string) (*domain.WalletToken, error) {
	return s.tokenRepo.FindTokenByValue(ctx, token)
}

// GetByUserID retrieves a user's token record.
func (s *tokenService) GetByUserID(ctx context.Context, userID string) (*domain.WalletToken, error) {
	return s.tokenRepo.FindTokenByUserID(ctx, userID)
}

// Deactivate disables a user's token. Presentations fail with
// apperrors.ErrTokenInactive until it is reactivated or regenerated.
func (s *tokenService) Deactivate(ctx context.Context, userID string) error {
	return s.setActive(ctx, userID, false)
}

// Reactivate re-enables a previously deactivated token.
func (s *tokenService) Reactivate(ctx context.Context, userID string) error {
	return s.setActive(ctx, userID, true)
}

func (s *tokenService) setActive(ctx context.Context, userID string, active bool) error {
	tok, err := s.tokenRepo.FindTokenByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.tokenRepo.SetActive(ctx, tok.TokenID, active, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update token state for user %s: %w", userID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Token state updated",
		slog.String("target_user_id", userID), slog.Bool("active", active))
	return nil
}

// Regenerate replaces a user's token with a freshly derived one. The old
// value becomes unresolvable immediately and scan tracking starts over.
func (s *tokenService) Regenerate(ctx context.Context, userID string) (*domain.WalletToken, error) {
	replacement, err := s.Issue(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.ReplaceToken(ctx, userID, *replacement); err != nil {
		return nil, fmt.Errorf("failed to replace token for user %s: %w", userID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Token regenerated", slog.String("target_user_id", userID))
	return replacement, nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portssvc "github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/core/services"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockTokenRepo *MockTokenRepository
	service       portssvc.TokenSvcFacade

	userID string
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockTokenRepo = new(MockTokenRepository)
	suite.service = services.NewTokenService("test-derivation-secret", suite.mockTokenRepo)
	suite.userID = uuid.NewString()
}

func (suite *TokenServiceTestSuite) TestIssueDerivesOpaqueValue() {
	ctx := context.Background()

	tok, err := suite.service.Issue(ctx, suite.userID, nil)

	suite.Require().NoError(err)
	suite.Equal(suite.userID, tok.UserID)
	suite.True(tok.Active)
	suite.Nil(tok.ExpiresAt)
	suite.Len(tok.Token, 64)
	suite.Zero(tok.ScanCount)

	// Random material in the derivation input makes every issue distinct.
	again, err := suite.service.Issue(ctx, suite.userID, nil)
	suite.Require().NoError(err)
	suite.NotEqual(tok.Token, again.Token)
}

func (suite *TokenServiceTestSuite) TestIssueWithExpiry() {
	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour).UTC()

	tok, err := suite.service.Issue(ctx, suite.userID, &expiry)

	suite.Require().NoError(err)
	suite.Require().NotNil(tok.ExpiresAt)
	suite.True(tok.ExpiresAt.Equal(expiry))
}

func (suite *TokenServiceTestSuite) TestIssueFailsWithoutSecret() {
	ctx := context.Background()
	unkeyed := services.NewTokenService("", suite.mockTokenRepo)

	_, err := unkeyed.Issue(ctx, suite.userID, nil)

	suite.Require().Error(err)
}

func (suite *TokenServiceTestSuite) TestResolveDelegatesToRepository() {
	ctx := context.Background()
	stored := &domain.WalletToken{TokenID: uuid.NewString(), Token: "abc123", UserID: suite.userID, Active: true}

	suite.mockTokenRepo.On("FindTokenByValue", ctx, "abc123").Return(stored, nil).Once()

	tok, err := suite.service.Resolve(ctx, "abc123")

	suite.Require().NoError(err)
	suite.Equal(stored.TokenID, tok.TokenID)
}

func (suite *TokenServiceTestSuite) TestResolveUnknownValue() {
	ctx := context.Background()

	suite.mockTokenRepo.On("FindTokenByValue", ctx, "nope").Return(nil, apperrors.ErrInvalidToken).Once()

	_, err := suite.service.Resolve(ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (suite *TokenServiceTestSuite) TestDeactivateAndReactivate() {
	ctx := context.Background()
	stored := &domain.WalletToken{TokenID: uuid.NewString(), UserID: suite.userID, Active: true}

	suite.mockTokenRepo.On("FindTokenByUserID", ctx, suite.userID).Return(stored, nil).Twice()
	suite.mockTokenRepo.On("SetActive", ctx, stored.TokenID, false, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTokenRepo.On("SetActive", ctx, stored.TokenID, true, mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.Require().NoError(suite.service.Deactivate(ctx, suite.userID))
	suite.Require().NoError(suite.service.Reactivate(ctx, suite.userID))
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestDeactivateUnknownUser() {
	ctx := context.Background()

	suite.mockTokenRepo.On("FindTokenByUserID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Deactivate(ctx, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTokenRepo.AssertNotCalled(suite.T(), "SetActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TokenServiceTestSuite) TestRegenerateReplacesToken() {
	ctx := context.Background()

	suite.mockTokenRepo.On("ReplaceToken", ctx, suite.userID, mock.MatchedBy(func(t domain.WalletToken) bool {
		return t.UserID == suite.userID && t.Active && len(t.Token) == 64 && t.ScanCount == 0
	})).Return(nil).Once()

	tok, err := suite.service.Regenerate(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(tok.Token, 64)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

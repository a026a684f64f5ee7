package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/core/services"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// --- Test Suite Setup ---

type AssetServiceTestSuite struct {
	suite.Suite
	mockAssetRepo  *MockAssetRepository
	mockTrustRepo  *MockTrustRepository
	mockAuthorizer *MockAuthorizer
	mockAlertSvc   *MockAlertService
	service        portssvc.AssetSvcFacade
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockTrustRepo = new(MockTrustRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.mockAlertSvc = new(MockAlertService)
	suite.service = services.NewAssetServiceImpl(
		suite.mockAssetRepo,
		services.WithTrustReaderForAsset(suite.mockTrustRepo),
		services.WithAlertServiceForAsset(suite.mockAlertSvc),
		services.WithAssetAuthorizer(suite.mockAuthorizer),
	)
}

// activeTrust has capital 1000 and a 50% bond limit, so 500 of bonds fit.
func activeTrust() *domain.Trust {
	return &domain.Trust{
		TrustID:           "2026-0001",
		InitialCapital:    decimal.NewFromInt(1000),
		BondLimitPercent:  decimal.NewFromInt(50),
		OtherLimitPercent: decimal.NewFromInt(30),
		Status:            domain.TrustActive,
		IsActive:          true,
	}
}

// --- Test Cases ---

func (suite *AssetServiceTestSuite) TestRegisterAsset_WithinLimit() {
	ctx := context.Background()
	trust := activeTrust()
	userID := uuid.NewString()
	req := dto.RegisterAssetRequest{
		Category:    domain.CategoryBond,
		Value:       decimal.NewFromInt(300),
		Description: "treasury bond",
	}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByTrust", ctx, trust.TrustID).Return([]domain.Asset{}, nil).Once()
	suite.mockAssetRepo.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	asset, err := suite.service.RegisterAsset(ctx, trust.TrustID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.Equal(domain.StatusCompliant, asset.ComplianceStatus)
	suite.Equal(0, asset.VoteRound)
	suite.Equal(userID, asset.CreatedBy)

	// 30% of capital is well below the warning band, no alert goes out
	suite.mockAlertSvc.AssertNotCalled(suite.T(), "NotifyTrust",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestRegisterAsset_OverLimitEntersReview() {
	ctx := context.Background()
	trust := activeTrust()
	userID := uuid.NewString()
	req := dto.RegisterAssetRequest{
		Category:    domain.CategoryBond,
		Value:       decimal.NewFromInt(600),
		Description: "oversized bond position",
	}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByTrust", ctx, trust.TrustID).Return([]domain.Asset{}, nil).Once()
	suite.mockAssetRepo.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()
	suite.mockAlertSvc.On("NotifyTrust", ctx, trust.TrustID, mock.AnythingOfType("string"),
		domain.AlertVotePending, domain.SeverityWarning, mock.AnythingOfType("string")).Return(nil).Once()

	asset, err := suite.service.RegisterAsset(ctx, trust.TrustID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingReview, asset.ComplianceStatus)
	suite.Equal(1, asset.VoteRound)
	suite.mockAlertSvc.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestRegisterAsset_WarningAlertNearLimit() {
	ctx := context.Background()
	trust := activeTrust()
	userID := uuid.NewString()
	existing := []domain.Asset{
		{AssetID: uuid.NewString(), TrustID: trust.TrustID, Category: domain.CategoryBond,
			Value: decimal.NewFromInt(400), ComplianceStatus: domain.StatusCompliant},
	}
	req := dto.RegisterAssetRequest{
		Category:    domain.CategoryBond,
		Value:       decimal.NewFromInt(60),
		Description: "municipal bond",
	}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByTrust", ctx, trust.TrustID).Return(existing, nil).Once()
	suite.mockAssetRepo.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()
	// 460 of 500 is 46% of capital, above 90% of the 50% limit
	suite.mockAlertSvc.On("NotifyTrust", ctx, trust.TrustID, "",
		domain.AlertLimitWarning, domain.SeverityWarning, mock.AnythingOfType("string")).Return(nil).Once()

	asset, err := suite.service.RegisterAsset(ctx, trust.TrustID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompliant, asset.ComplianceStatus)
	suite.mockAlertSvc.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestRegisterAsset_InactiveTrust() {
	ctx := context.Background()
	trust := activeTrust()
	trust.Status = domain.TrustDraft
	userID := uuid.NewString()
	req := dto.RegisterAssetRequest{
		Category:    domain.CategoryBond,
		Value:       decimal.NewFromInt(100),
		Description: "early contribution",
	}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()

	asset, err := suite.service.RegisterAsset(ctx, trust.TrustID, req, userID)

	suite.Require().Error(err)
	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestRegisterAsset_NonPositiveValue() {
	ctx := context.Background()
	trust := activeTrust()
	userID := uuid.NewString()
	req := dto.RegisterAssetRequest{
		Category:    domain.CategoryBond,
		Value:       decimal.NewFromInt(-5),
		Description: "bad value",
	}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary).Return(nil).Once()

	asset, err := suite.service.RegisterAsset(ctx, trust.TrustID, req, userID)

	suite.Require().Error(err)
	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestGetAssetByID_WrongTrust() {
	ctx := context.Background()
	asset := &domain.Asset{AssetID: uuid.NewString(), TrustID: "2026-0002"}

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()

	result, err := suite.service.GetAssetByID(ctx, "2026-0001", asset.AssetID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}

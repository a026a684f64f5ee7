package services_test

import (
	"context"
	"testing"
	"time"

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

type TrustServiceTestSuite struct {
	suite.Suite
	mockTrustRepo  *MockTrustRepository
	mockAssetRepo  *MockAssetRepository
	mockAuthorizer *MockAuthorizer
	service        portssvc.TrustSvcFacade
}

func (suite *TrustServiceTestSuite) SetupTest() {
	suite.mockTrustRepo = new(MockTrustRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.service = services.NewTrustServiceImpl(
		suite.mockTrustRepo,
		services.WithAssetReaderForTrust(suite.mockAssetRepo),
		services.WithTrustAuthorizer(suite.mockAuthorizer),
	)
}

func validCreateRequest() dto.CreateTrustRequest {
	return dto.CreateTrustRequest{
		Name:              "Fideicomiso Familiar Norte",
		CurrencyCode:      "USD",
		InitialCapital:    decimal.NewFromInt(1000000),
		BondLimitPercent:  decimal.NewFromInt(40),
		OtherLimitPercent: decimal.NewFromInt(30),
		RequiresConsensus: true,
		CommitteeSize:     3,
		ConstitutionDate:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *TrustServiceTestSuite) TestCreateTrust_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := validCreateRequest()

	suite.mockTrustRepo.On("CountTrustsConstitutedInYear", ctx, 2026).Return(4, nil).Once()
	suite.mockTrustRepo.On("SaveTrust", ctx, mock.AnythingOfType("domain.Trust")).Return(nil).Once()

	trust, err := suite.service.CreateTrust(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(trust)
	suite.Equal("2026-0005", trust.TrustID)
	suite.Equal(domain.TrustDraft, trust.Status)
	suite.False(trust.IsActive)
	suite.Equal(domain.TermStandard, trust.TermType)
	suite.Equal(30, trust.EffectiveMaxTermYears())
	suite.Equal(2, trust.Majority())
	suite.Equal(creatorID, trust.CreatedBy)

	suite.mockTrustRepo.AssertExpectations(suite.T())
}

func (suite *TrustServiceTestSuite) TestCreateTrust_LimitsSumAbove100() {
	ctx := context.Background()
	req := validCreateRequest()
	req.BondLimitPercent = decimal.NewFromInt(70)
	req.OtherLimitPercent = decimal.NewFromInt(40)

	trust, err := suite.service.CreateTrust(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(trust)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTrustRepo.AssertNotCalled(suite.T(), "SaveTrust", mock.Anything, mock.Anything)
}

func (suite *TrustServiceTestSuite) TestCreateTrust_LimitsSumExactly100() {
	ctx := context.Background()
	req := validCreateRequest()
	req.BondLimitPercent = decimal.NewFromInt(60)
	req.OtherLimitPercent = decimal.NewFromInt(40)

	suite.mockTrustRepo.On("CountTrustsConstitutedInYear", ctx, 2026).Return(0, nil).Once()
	suite.mockTrustRepo.On("SaveTrust", ctx, mock.AnythingOfType("domain.Trust")).Return(nil).Once()

	trust, err := suite.service.CreateTrust(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("2026-0001", trust.TrustID)
}

func (suite *TrustServiceTestSuite) TestCreateTrust_NonPositiveCapital() {
	ctx := context.Background()
	req := validCreateRequest()
	req.InitialCapital = decimal.Zero

	trust, err := suite.service.CreateTrust(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(trust)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TrustServiceTestSuite) TestCreateTrust_ConsensusWithoutCommittee() {
	ctx := context.Background()
	req := validCreateRequest()
	req.CommitteeSize = 0

	trust, err := suite.service.CreateTrust(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(trust)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TrustServiceTestSuite) TestCreateTrust_ForeignTermDefault() {
	ctx := context.Background()
	req := validCreateRequest()
	req.TermType = domain.TermForeign

	suite.mockTrustRepo.On("CountTrustsConstitutedInYear", ctx, 2026).Return(0, nil).Once()
	suite.mockTrustRepo.On("SaveTrust", ctx, mock.AnythingOfType("domain.Trust")).Return(nil).Once()

	trust, err := suite.service.CreateTrust(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(50, trust.EffectiveMaxTermYears())
}

func (suite *TrustServiceTestSuite) TestActivateTrust_FromDraft() {
	ctx := context.Background()
	userID := uuid.NewString()
	trust := &domain.Trust{TrustID: "2026-0001", Status: domain.TrustDraft}

	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockTrustRepo.On("UpdateTrustStatus", ctx, trust.TrustID, domain.TrustActive, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ActivateTrust(ctx, trust.TrustID, userID)

	suite.Require().NoError(err)
	suite.mockTrustRepo.AssertExpectations(suite.T())
}

func (suite *TrustServiceTestSuite) TestActivateTrust_NotDraft() {
	ctx := context.Background()
	trust := &domain.Trust{TrustID: "2026-0001", Status: domain.TrustActive}

	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()

	err := suite.service.ActivateTrust(ctx, trust.TrustID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockTrustRepo.AssertNotCalled(suite.T(), "UpdateTrustStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TrustServiceTestSuite) TestUpdateTrustLimits_RequiresFiduciary() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.UpdateTrustLimitsRequest{
		BondLimitPercent:  decimal.NewFromInt(50),
		OtherLimitPercent: decimal.NewFromInt(20),
	}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, "2026-0001", userID, domain.RoleFiduciary).
		Return(apperrors.ErrNotAuthorized).Once()

	trust, err := suite.service.UpdateTrustLimits(ctx, "2026-0001", req, userID)

	suite.Require().Error(err)
	suite.Nil(trust)
	suite.ErrorIs(err, apperrors.ErrNotAuthorized)
	suite.mockTrustRepo.AssertNotCalled(suite.T(), "UpdateTrust", mock.Anything, mock.Anything)
}

func (suite *TrustServiceTestSuite) TestCloseTrust_AlreadyClosed() {
	ctx := context.Background()
	userID := uuid.NewString()
	trust := &domain.Trust{TrustID: "2026-0001", Status: domain.TrustClosed}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()

	err := suite.service.CloseTrust(ctx, trust.TrustID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *TrustServiceTestSuite) TestGetTrustSummary_ExcludesNonInvested() {
	ctx := context.Background()
	trust := &domain.Trust{
		TrustID:          "2026-0001",
		InitialCapital:   decimal.NewFromInt(1000),
		BondLimitPercent: decimal.NewFromInt(50),
	}
	assets := []domain.Asset{
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(300), ComplianceStatus: domain.StatusCompliant},
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(100), ComplianceStatus: domain.StatusExceptionApproved},
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(500), ComplianceStatus: domain.StatusPendingReview},
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(200), ComplianceStatus: domain.StatusNonCompliant},
	}

	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByTrust", ctx, trust.TrustID).Return(assets, nil).Once()

	summary, err := suite.service.GetTrustSummary(ctx, trust.TrustID)

	suite.Require().NoError(err)
	suite.True(summary.Bond.Invested.Equal(decimal.NewFromInt(400)))
	suite.True(summary.Bond.Percent.Equal(decimal.NewFromInt(40)))
	suite.True(summary.TotalInvested.Equal(decimal.NewFromInt(400)))
	suite.Equal(4, summary.TotalAssets)
}

func (suite *TrustServiceTestSuite) TestGetComplianceAnalytics_Rate() {
	ctx := context.Background()
	trust := &domain.Trust{
		TrustID:          "2026-0001",
		InitialCapital:   decimal.NewFromInt(1000),
		BondLimitPercent: decimal.NewFromInt(50),
		ConstitutionDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		TermType:         domain.TermStandard,
	}
	assets := []domain.Asset{
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(100), ComplianceStatus: domain.StatusCompliant},
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(100), ComplianceStatus: domain.StatusExceptionApproved},
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(100), ComplianceStatus: domain.StatusPendingReview},
		{Category: domain.CategoryBond, Value: decimal.NewFromInt(100), ComplianceStatus: domain.StatusNonCompliant},
	}

	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAssetRepo.On("FindAssetsByTrust", ctx, trust.TrustID).Return(assets, nil).Once()

	analytics, err := suite.service.GetComplianceAnalytics(ctx, trust.TrustID)

	suite.Require().NoError(err)
	suite.Equal(1, analytics.CompliantCount)
	suite.Equal(1, analytics.ExceptionApprovedCount)
	suite.Equal(1, analytics.PendingReviewCount)
	suite.Equal(1, analytics.NonCompliantCount)
	suite.True(analytics.ComplianceRate.Equal(decimal.NewFromInt(50)))
}

func TestTrustServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrustServiceTestSuite))
}

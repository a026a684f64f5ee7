package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/core/services"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// --- Test Suite Setup ---

type ExceptionServiceTestSuite struct {
	suite.Suite
	mockAssetRepo  *MockAssetRepository
	mockVoteRepo   *MockVoteRepository
	mockTrustRepo  *MockTrustRepository
	mockAuthorizer *MockAuthorizer
	mockAlertSvc   *MockAlertService
	service        portssvc.ExceptionSvcFacade
}

func (suite *ExceptionServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockVoteRepo = new(MockVoteRepository)
	suite.mockTrustRepo = new(MockTrustRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.mockAlertSvc = new(MockAlertService)
	suite.service = services.NewExceptionServiceImpl(
		suite.mockAssetRepo,
		suite.mockVoteRepo,
		suite.mockTrustRepo,
		services.WithExceptionAuthorizer(suite.mockAuthorizer),
		services.WithAlertServiceForException(suite.mockAlertSvc),
	)
}

func (suite *ExceptionServiceTestSuite) consensusTrust(committeeSize int) *domain.Trust {
	return &domain.Trust{
		TrustID:           "2026-0001",
		RequiresConsensus: true,
		CommitteeSize:     committeeSize,
		Status:            domain.TrustActive,
		IsActive:          true,
	}
}

func (suite *ExceptionServiceTestSuite) pendingAsset(trustID string, round int) *domain.Asset {
	return &domain.Asset{
		AssetID:          uuid.NewString(),
		TrustID:          trustID,
		Category:         domain.CategoryBond,
		ComplianceStatus: domain.StatusPendingReview,
		VoteRound:        round,
	}
}

// --- Test Cases ---

func (suite *ExceptionServiceTestSuite) TestCastVote_MajorityApproves() {
	ctx := context.Background()
	trust := suite.consensusTrust(3)
	asset := suite.pendingAsset(trust.TrustID, 1)
	voterID := uuid.NewString()

	resolvedAsset := *asset
	resolvedAsset.ComplianceStatus = domain.StatusExceptionApproved

	votes := []domain.ExceptionVote{
		{VoteID: uuid.NewString(), AssetID: asset.AssetID, Round: 1, VoterID: uuid.NewString(), Vote: domain.VoteApprove},
		{VoteID: uuid.NewString(), AssetID: asset.AssetID, Round: 1, VoterID: voterID, Vote: domain.VoteApprove},
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, voterID, domain.RoleCommittee).Return(nil).Once()
	suite.mockVoteRepo.On("RecordVote", ctx, mock.AnythingOfType("domain.ExceptionVote"), 3).
		Return(domain.TallyVotes(votes, 3), nil).Once()
	suite.mockAlertSvc.On("NotifyTrust", ctx, trust.TrustID, asset.AssetID,
		domain.AlertExceptionApproved, domain.SeverityInfo, mock.AnythingOfType("string")).Return(nil).Once()
	// buildStatus re-reads the asset and the round's vote log
	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(&resolvedAsset, nil).Once()
	suite.mockVoteRepo.On("FindVotesByAssetRound", ctx, asset.AssetID, 1).Return(votes, nil).Once()

	status, err := suite.service.CastVote(ctx, trust.TrustID, asset.AssetID, dto.CastVoteRequest{Vote: domain.VoteApprove}, voterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(status)
	suite.Equal(domain.StatusExceptionApproved, status.ComplianceStatus)
	suite.Equal(domain.OutcomeApproved, status.Outcome)
	suite.Equal(2, status.ApproveVotes)
	suite.Equal(0, status.RejectVotes)
	suite.Equal(2, status.Majority)
	suite.Len(status.Votes, 2)

	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockVoteRepo.AssertExpectations(suite.T())
	suite.mockAlertSvc.AssertExpectations(suite.T())
}

func (suite *ExceptionServiceTestSuite) TestCastVote_StillPending() {
	ctx := context.Background()
	trust := suite.consensusTrust(3)
	asset := suite.pendingAsset(trust.TrustID, 1)
	voterID := uuid.NewString()

	votes := []domain.ExceptionVote{
		{VoteID: uuid.NewString(), AssetID: asset.AssetID, Round: 1, VoterID: voterID, Vote: domain.VoteApprove},
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Twice()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, voterID, domain.RoleCommittee).Return(nil).Once()
	suite.mockVoteRepo.On("RecordVote", ctx, mock.AnythingOfType("domain.ExceptionVote"), 3).
		Return(domain.TallyVotes(votes, 3), nil).Once()
	suite.mockVoteRepo.On("FindVotesByAssetRound", ctx, asset.AssetID, 1).Return(votes, nil).Once()

	status, err := suite.service.CastVote(ctx, trust.TrustID, asset.AssetID, dto.CastVoteRequest{Vote: domain.VoteApprove}, voterID)

	suite.Require().NoError(err)
	suite.Equal(domain.OutcomePending, status.Outcome)
	suite.Equal(1, status.ApproveVotes)
	suite.Equal(2, status.PendingVotes)

	// no majority yet, so no decision alert
	suite.mockAlertSvc.AssertNotCalled(suite.T(), "NotifyTrust", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockVoteRepo.AssertExpectations(suite.T())
}

func (suite *ExceptionServiceTestSuite) TestCastVote_DuplicateVoter() {
	ctx := context.Background()
	trust := suite.consensusTrust(3)
	asset := suite.pendingAsset(trust.TrustID, 1)
	voterID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, voterID, domain.RoleCommittee).Return(nil).Once()
	suite.mockVoteRepo.On("RecordVote", ctx, mock.AnythingOfType("domain.ExceptionVote"), 3).
		Return(domain.VoteTally{}, apperrors.ErrDuplicateVote).Once()

	status, err := suite.service.CastVote(ctx, trust.TrustID, asset.AssetID, dto.CastVoteRequest{Vote: domain.VoteReject}, voterID)

	suite.Require().Error(err)
	suite.Nil(status)
	suite.ErrorIs(err, apperrors.ErrDuplicateVote)
	suite.mockVoteRepo.AssertExpectations(suite.T())
}

func (suite *ExceptionServiceTestSuite) TestCastVote_RoundAlreadyClosed() {
	ctx := context.Background()
	trust := suite.consensusTrust(3)
	asset := suite.pendingAsset(trust.TrustID, 1)
	asset.ComplianceStatus = domain.StatusExceptionApproved
	voterID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, voterID, domain.RoleCommittee).Return(nil).Once()

	status, err := suite.service.CastVote(ctx, trust.TrustID, asset.AssetID, dto.CastVoteRequest{Vote: domain.VoteApprove}, voterID)

	suite.Require().Error(err)
	suite.Nil(status)
	suite.ErrorIs(err, apperrors.ErrRoundClosed)
	suite.mockVoteRepo.AssertNotCalled(suite.T(), "RecordVote", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExceptionServiceTestSuite) TestCastVote_NotCommitteeMember() {
	ctx := context.Background()
	trust := suite.consensusTrust(3)
	asset := suite.pendingAsset(trust.TrustID, 1)
	voterID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, voterID, domain.RoleCommittee).
		Return(apperrors.ErrNotAuthorized).Once()

	status, err := suite.service.CastVote(ctx, trust.TrustID, asset.AssetID, dto.CastVoteRequest{Vote: domain.VoteApprove}, voterID)

	suite.Require().Error(err)
	suite.Nil(status)
	suite.ErrorIs(err, apperrors.ErrNotAuthorized)
}

func (suite *ExceptionServiceTestSuite) TestCastVote_DirectTrustRefusesVotes() {
	ctx := context.Background()
	trust := suite.consensusTrust(0)
	trust.RequiresConsensus = false
	asset := suite.pendingAsset(trust.TrustID, 1)
	voterID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()

	status, err := suite.service.CastVote(ctx, trust.TrustID, asset.AssetID, dto.CastVoteRequest{Vote: domain.VoteApprove}, voterID)

	suite.Require().Error(err)
	suite.Nil(status)
	suite.ErrorIs(err, apperrors.ErrWrongMode)
}

func (suite *ExceptionServiceTestSuite) TestCastVote_AssetOfAnotherTrust() {
	ctx := context.Background()
	asset := suite.pendingAsset("2026-0002", 1)
	voterID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()

	status, err := suite.service.CastVote(ctx, "2026-0001", asset.AssetID, dto.CastVoteRequest{Vote: domain.VoteApprove}, voterID)

	suite.Require().Error(err)
	suite.Nil(status)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTrustRepo.AssertNotCalled(suite.T(), "FindTrustByID", mock.Anything, mock.Anything)
}

func (suite *ExceptionServiceTestSuite) TestResolveDirect_Approves() {
	ctx := context.Background()
	trust := suite.consensusTrust(0)
	trust.RequiresConsensus = false
	asset := suite.pendingAsset(trust.TrustID, 1)
	userID := uuid.NewString()

	resolvedAsset := *asset
	resolvedAsset.ComplianceStatus = domain.StatusExceptionApproved

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary, domain.RoleCommittee).Return(nil).Once()
	suite.mockAssetRepo.On("ResolveAsset", ctx, asset.AssetID, domain.StatusExceptionApproved,
		"fits the investment strategy", userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAlertSvc.On("NotifyTrust", ctx, trust.TrustID, asset.AssetID,
		domain.AlertExceptionApproved, domain.SeverityInfo, mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(&resolvedAsset, nil).Once()

	req := dto.ResolveExceptionRequest{Decision: domain.VoteApprove, Reason: "fits the investment strategy"}
	result, err := suite.service.ResolveDirect(ctx, trust.TrustID, asset.AssetID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusExceptionApproved, result.ComplianceStatus)
	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockAlertSvc.AssertExpectations(suite.T())
}

func (suite *ExceptionServiceTestSuite) TestResolveDirect_ConsensusTrustRefuses() {
	ctx := context.Background()
	trust := suite.consensusTrust(3)
	asset := suite.pendingAsset(trust.TrustID, 1)
	userID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()

	req := dto.ResolveExceptionRequest{Decision: domain.VoteApprove, Reason: "shortcut"}
	result, err := suite.service.ResolveDirect(ctx, trust.TrustID, asset.AssetID, req, userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrWrongMode)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "ResolveAsset",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExceptionServiceTestSuite) TestReopenRound_Success() {
	ctx := context.Background()
	trust := suite.consensusTrust(3)
	asset := suite.pendingAsset(trust.TrustID, 1)
	asset.ComplianceStatus = domain.StatusNonCompliant
	userID := uuid.NewString()

	reopened := *asset
	reopened.ComplianceStatus = domain.StatusPendingReview
	reopened.VoteRound = 2

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trust.TrustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockAssetRepo.On("ReopenAsset", ctx, asset.AssetID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(&reopened, nil).Once()
	suite.mockAlertSvc.On("NotifyTrust", ctx, trust.TrustID, asset.AssetID,
		domain.AlertVotePending, domain.SeverityWarning, mock.AnythingOfType("string")).Return(nil).Once()

	result, err := suite.service.ReopenRound(ctx, trust.TrustID, asset.AssetID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingReview, result.ComplianceStatus)
	suite.Equal(2, result.VoteRound)
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *ExceptionServiceTestSuite) TestGetVoteStatus_DerivesTallyFromLog() {
	ctx := context.Background()
	trust := suite.consensusTrust(5)
	asset := suite.pendingAsset(trust.TrustID, 2)

	votes := []domain.ExceptionVote{
		{VoteID: uuid.NewString(), Round: 2, Vote: domain.VoteApprove, CastAt: time.Now()},
		{VoteID: uuid.NewString(), Round: 2, Vote: domain.VoteReject, CastAt: time.Now()},
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Twice()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trust.TrustID).Return(trust, nil).Once()
	suite.mockVoteRepo.On("FindVotesByAssetRound", ctx, asset.AssetID, 2).Return(votes, nil).Once()

	status, err := suite.service.GetVoteStatus(ctx, trust.TrustID, asset.AssetID)

	suite.Require().NoError(err)
	suite.Equal(1, status.ApproveVotes)
	suite.Equal(1, status.RejectVotes)
	suite.Equal(3, status.PendingVotes)
	suite.Equal(3, status.Majority)
	suite.Equal(5, status.TotalMembers)
	suite.Equal(domain.OutcomePending, status.Outcome)
	suite.Equal(2, status.Round)
}

func TestExceptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExceptionServiceTestSuite))
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// exceptionServiceImpl implements the ExceptionSvcFacade interface
type exceptionServiceImpl struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
	voteRepo  portsrepo.VoteRepositoryFacade
	trustRepo portsrepo.TrustReader
	alertSvc  portssvc.AlertSvcFacade
}

// ExceptionServiceOption is a functional option for configuring the exception service
type ExceptionServiceOption func(*exceptionServiceImpl)

// WithAlertServiceForException adds the alert fan-out dependency
func WithAlertServiceForException(svc portssvc.AlertSvcFacade) ExceptionServiceOption {
	return func(s *exceptionServiceImpl) {
		s.alertSvc = svc
	}
}

// WithExceptionAuthorizer adds the authorizer dependency
func WithExceptionAuthorizer(authorizer portssvc.ActorAuthSvc) ExceptionServiceOption {
	return func(s *exceptionServiceImpl) {
		s.TrustAuthorizer = authorizer
	}
}

// NewExceptionServiceImpl creates a new exception service with the provided options
func NewExceptionServiceImpl(assetRepo portsrepo.AssetRepositoryFacade, voteRepo portsrepo.VoteRepositoryFacade, trustRepo portsrepo.TrustReader, options ...ExceptionServiceOption) portssvc.ExceptionSvcFacade {
	svc := &exceptionServiceImpl{
		assetRepo: assetRepo,
		voteRepo:  voteRepo,
		trustRepo: trustRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure exceptionServiceImpl implements the ExceptionSvcFacade interface
var _ portssvc.ExceptionSvcFacade = (*exceptionServiceImpl)(nil)

// CastVote records one committee vote and resolves the asset once a majority
// forms. The repository performs the append and the resolution under a row
// lock, so concurrent votes cannot double-close a round.
func (s *exceptionServiceImpl) CastVote(ctx context.Context, trustID string, assetID string, req dto.CastVoteRequest, voterID string) (*dto.VoteStatusResponse, error) {
	asset, trust, err := s.loadAssetAndTrust(ctx, trustID, assetID)
	if err != nil {
		return nil, err
	}
	if !trust.RequiresConsensus {
		return nil, fmt.Errorf("%w: trust %s resolves exceptions directly, not by vote", apperrors.ErrWrongMode, trustID)
	}
	if err := s.AuthorizeActor(ctx, trustID, voterID, domain.RoleCommittee); err != nil {
		return nil, err
	}
	if asset.ComplianceStatus != domain.StatusPendingReview {
		if asset.ComplianceStatus.Terminal() {
			return nil, fmt.Errorf("%w: asset %s already resolved to %s", apperrors.ErrRoundClosed, assetID, asset.ComplianceStatus)
		}
		return nil, fmt.Errorf("%w: asset %s is %s, not under review", apperrors.ErrInvalidState, assetID, asset.ComplianceStatus)
	}

	vote := domain.ExceptionVote{
		VoteID:  uuid.NewString(),
		AssetID: assetID,
		TrustID: trustID,
		Round:   asset.VoteRound,
		VoterID: voterID,
		Vote:    req.Vote,
		Reason:  req.Reason,
		CastAt:  time.Now(),
	}

	tally, err := s.voteRepo.RecordVote(ctx, vote, trust.CommitteeSize)
	if err != nil {
		s.LogError(ctx, err, "failed to record vote",
			slog.String("asset_id", assetID),
			slog.String("voter_id", voterID))
		return nil, err
	}

	s.LogInfo(ctx, "vote recorded",
		slog.String("asset_id", assetID),
		slog.String("voter_id", voterID),
		slog.String("vote", string(req.Vote)),
		slog.String("outcome", string(tally.Outcome)))

	if tally.Outcome != domain.OutcomePending {
		s.notifyDecision(ctx, trustID, assetID, tally.Outcome)
	}

	return s.buildStatus(ctx, trustID, assetID, trust.CommitteeSize)
}

// GetVoteStatus reports the current round's tally and vote log.
func (s *exceptionServiceImpl) GetVoteStatus(ctx context.Context, trustID string, assetID string) (*dto.VoteStatusResponse, error) {
	_, trust, err := s.loadAssetAndTrust(ctx, trustID, assetID)
	if err != nil {
		return nil, err
	}
	return s.buildStatus(ctx, trustID, assetID, trust.CommitteeSize)
}

// ResolveDirect approves or rejects an exception in a trust without a
// committee. A consensus trust refuses the shortcut.
func (s *exceptionServiceImpl) ResolveDirect(ctx context.Context, trustID string, assetID string, req dto.ResolveExceptionRequest, userID string) (*domain.Asset, error) {
	_, trust, err := s.loadAssetAndTrust(ctx, trustID, assetID)
	if err != nil {
		return nil, err
	}
	if trust.RequiresConsensus {
		return nil, fmt.Errorf("%w: trust %s requires committee consensus", apperrors.ErrWrongMode, trustID)
	}
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary, domain.RoleCommittee); err != nil {
		return nil, err
	}

	status := domain.StatusExceptionApproved
	outcome := domain.OutcomeApproved
	if req.Decision == domain.VoteReject {
		status = domain.StatusNonCompliant
		outcome = domain.OutcomeRejected
	}

	if err := s.assetRepo.ResolveAsset(ctx, assetID, status, req.Reason, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to resolve exception", slog.String("asset_id", assetID))
		return nil, err
	}

	s.LogInfo(ctx, "exception resolved directly",
		slog.String("asset_id", assetID),
		slog.String("status", string(status)),
		slog.String("resolved_by", userID))
	s.notifyDecision(ctx, trustID, assetID, outcome)

	return s.assetRepo.FindAssetByID(ctx, assetID)
}

// ReopenRound puts a rejected asset back under review in a fresh round.
// Earlier rounds stay in the log untouched.
func (s *exceptionServiceImpl) ReopenRound(ctx context.Context, trustID string, assetID string, userID string) (*domain.Asset, error) {
	if _, _, err := s.loadAssetAndTrust(ctx, trustID, assetID); err != nil {
		return nil, err
	}
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary); err != nil {
		return nil, err
	}

	if err := s.assetRepo.ReopenAsset(ctx, assetID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to reopen review", slog.String("asset_id", assetID))
		return nil, err
	}

	s.LogInfo(ctx, "review reopened", slog.String("asset_id", assetID))

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if s.alertSvc != nil {
		msg := fmt.Sprintf("asset %s re-entered review in round %d", assetID, asset.VoteRound)
		if err := s.alertSvc.NotifyTrust(ctx, trustID, assetID, domain.AlertVotePending, domain.SeverityWarning, msg); err != nil {
			s.LogError(ctx, err, "failed to send reopen alert", slog.String("asset_id", assetID))
		}
	}
	return asset, nil
}

// loadAssetAndTrust fetches both aggregates and hides assets of other trusts.
func (s *exceptionServiceImpl) loadAssetAndTrust(ctx context.Context, trustID string, assetID string) (*domain.Asset, *domain.Trust, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, nil, err
	}
	if asset.TrustID != trustID {
		return nil, nil, apperrors.ErrNotFound
	}
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return nil, nil, err
	}
	return asset, trust, nil
}

// buildStatus derives the round status from the persisted vote log.
func (s *exceptionServiceImpl) buildStatus(ctx context.Context, trustID string, assetID string, committeeSize int) (*dto.VoteStatusResponse, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	votes, err := s.voteRepo.FindVotesByAssetRound(ctx, assetID, asset.VoteRound)
	if err != nil {
		return nil, err
	}
	tally := domain.TallyVotes(votes, committeeSize)
	resp := dto.ToVoteStatusResponse(asset, tally, votes)
	resp.TrustID = trustID
	return &resp, nil
}

// notifyDecision fans the round outcome out to the trust's governance.
func (s *exceptionServiceImpl) notifyDecision(ctx context.Context, trustID string, assetID string, outcome domain.VoteOutcome) {
	if s.alertSvc == nil {
		return
	}
	kind := domain.AlertExceptionApproved
	severity := domain.SeverityInfo
	msg := fmt.Sprintf("exception for asset %s was approved", assetID)
	if outcome == domain.OutcomeRejected {
		kind = domain.AlertExceptionRejected
		severity = domain.SeverityWarning
		msg = fmt.Sprintf("exception for asset %s was rejected", assetID)
	}
	if err := s.alertSvc.NotifyTrust(ctx, trustID, assetID, kind, severity, msg); err != nil {
		s.LogError(ctx, err, "failed to send decision alert", slog.String("asset_id", assetID))
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
	"github.com/trustops/trust_governance_app/internal/utils/compliance"
)

// assetServiceImpl implements the AssetSvcFacade interface
type assetServiceImpl struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
	trustRepo portsrepo.TrustReader
	alertSvc  portssvc.AlertSvcFacade
}

// AssetServiceOption is a functional option for configuring the asset service
type AssetServiceOption func(*assetServiceImpl)

// WithTrustReaderForAsset adds the trust reader dependency
func WithTrustReaderForAsset(repo portsrepo.TrustReader) AssetServiceOption {
	return func(s *assetServiceImpl) {
		s.trustRepo = repo
	}
}

// WithAlertServiceForAsset adds the alert fan-out dependency
func WithAlertServiceForAsset(svc portssvc.AlertSvcFacade) AssetServiceOption {
	return func(s *assetServiceImpl) {
		s.alertSvc = svc
	}
}

// WithAssetAuthorizer adds the authorizer dependency
func WithAssetAuthorizer(authorizer portssvc.ActorAuthSvc) AssetServiceOption {
	return func(s *assetServiceImpl) {
		s.TrustAuthorizer = authorizer
	}
}

// NewAssetServiceImpl creates a new asset service with the provided options
func NewAssetServiceImpl(repo portsrepo.AssetRepositoryFacade, options ...AssetServiceOption) portssvc.AssetSvcFacade {
	svc := &assetServiceImpl{assetRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure assetServiceImpl implements the AssetSvcFacade interface
var _ portssvc.AssetSvcFacade = (*assetServiceImpl)(nil)

// RegisterAsset classifies and persists a new asset. An asset that would
// breach its category limit is stored in PENDING_REVIEW rather than rejected,
// so the exception workflow can decide its fate.
func (s *assetServiceImpl) RegisterAsset(ctx context.Context, trustID string, req dto.RegisterAssetRequest, userID string) (*domain.Asset, error) {
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary); err != nil {
		return nil, err
	}
	if !domain.ValidAssetCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown asset category %q", apperrors.ErrValidation, req.Category)
	}
	if !req.Value.IsPositive() {
		return nil, fmt.Errorf("%w: asset value must be positive", apperrors.ErrValidation)
	}

	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return nil, err
	}
	if trust.Status != domain.TrustActive {
		return nil, fmt.Errorf("%w: trust %s is %s, assets can only be registered in an ACTIVE trust", apperrors.ErrInvalidState, trustID, trust.Status)
	}

	existing, err := s.assetRepo.FindAssetsByTrust(ctx, trustID)
	if err != nil {
		return nil, err
	}
	invested := investedInCategory(existing, req.Category)

	compliant, status := compliance.ClassifyNewAsset(*trust, req.Category, req.Value, invested)

	now := time.Now()
	asset := domain.Asset{
		AssetID:          uuid.NewString(),
		TrustID:          trustID,
		Category:         req.Category,
		Value:            req.Value,
		Description:      req.Description,
		ComplianceStatus: status,
		BeneficiaryID:    req.BeneficiaryID,
		RegisteredAt:     now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if status == domain.StatusPendingReview {
		asset.VoteRound = 1
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "failed to save asset", slog.String("asset_id", asset.AssetID))
		return nil, err
	}

	s.LogInfo(ctx, "asset registered",
		slog.String("asset_id", asset.AssetID),
		slog.String("trust_id", trustID),
		slog.String("status", string(status)))

	if !compliant {
		s.notifyReviewNeeded(ctx, *trust, asset)
	}
	s.notifyLimitPosture(ctx, *trust, append(existing, asset), req.Category)

	return &asset, nil
}

func (s *assetServiceImpl) GetAssetByID(ctx context.Context, trustID string, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.TrustID != trustID {
		return nil, apperrors.ErrNotFound
	}
	return asset, nil
}

func (s *assetServiceImpl) ListAssets(ctx context.Context, trustID string, status *domain.ComplianceStatus, limit int, offset int) ([]domain.Asset, error) {
	return s.assetRepo.ListAssets(ctx, trustID, status, limit, offset)
}

// notifyReviewNeeded alerts the trust's governance that a new asset entered
// review. Alert failures never fail the registration.
func (s *assetServiceImpl) notifyReviewNeeded(ctx context.Context, trust domain.Trust, asset domain.Asset) {
	if s.alertSvc == nil {
		return
	}
	msg := fmt.Sprintf("asset %s exceeds the %s limit and needs an exception decision", asset.AssetID, asset.Category)
	if err := s.alertSvc.NotifyTrust(ctx, trust.TrustID, asset.AssetID, domain.AlertVotePending, domain.SeverityWarning, msg); err != nil {
		s.LogError(ctx, err, "failed to send review alert", slog.String("asset_id", asset.AssetID))
	}
}

// notifyLimitPosture alerts when the category crossed into warning or
// critical after the new asset.
func (s *assetServiceImpl) notifyLimitPosture(ctx context.Context, trust domain.Trust, assets []domain.Asset, category domain.AssetCategory) {
	if s.alertSvc == nil {
		return
	}
	summary := compliance.Evaluate(trust, assets)
	cat := summary.Bond
	if category == domain.CategoryOther {
		cat = summary.Other
	}

	var kind domain.AlertKind
	var severity domain.AlertSeverity
	switch cat.Status {
	case compliance.StatusCritical:
		kind, severity = domain.AlertLimitCritical, domain.SeverityError
	case compliance.StatusWarning:
		kind, severity = domain.AlertLimitWarning, domain.SeverityWarning
	default:
		return
	}

	msg := fmt.Sprintf("%s allocation of trust %s is at %s%% of capital (limit %s%%)",
		category, trust.TrustID, cat.Percent.StringFixed(2), cat.LimitPercent.StringFixed(2))
	if err := s.alertSvc.NotifyTrust(ctx, trust.TrustID, "", kind, severity, msg); err != nil {
		s.LogError(ctx, err, "failed to send limit alert", slog.String("trust_id", trust.TrustID))
	}
}

// investedInCategory sums the invested value of one category.
func investedInCategory(assets []domain.Asset, category domain.AssetCategory) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		if a.Category == category && a.ComplianceStatus.CountsAsInvested() {
			total = total.Add(a.Value)
		}
	}
	return total
}

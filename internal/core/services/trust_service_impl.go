package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
	"github.com/trustops/trust_governance_app/internal/utils/compliance"
	"github.com/trustops/trust_governance_app/internal/utils/timeline"
)

var hundredPercent = decimal.NewFromInt(100)

// trustServiceImpl implements the TrustSvcFacade interface
type trustServiceImpl struct {
	BaseService
	trustRepo   portsrepo.TrustRepositoryFacade
	assetRepo   portsrepo.AssetReader
	sessionRepo portsrepo.SessionReader
}

// TrustServiceOption is a functional option for configuring the trust service
type TrustServiceOption func(*trustServiceImpl)

// WithAssetReaderForTrust adds the asset reader used by summaries and analytics
func WithAssetReaderForTrust(repo portsrepo.AssetReader) TrustServiceOption {
	return func(s *trustServiceImpl) {
		s.assetRepo = repo
	}
}

// WithSessionReaderForTrust adds the session reader used by quarterly scheduling
func WithSessionReaderForTrust(repo portsrepo.SessionReader) TrustServiceOption {
	return func(s *trustServiceImpl) {
		s.sessionRepo = repo
	}
}

// WithTrustAuthorizer adds the authorizer dependency
func WithTrustAuthorizer(authorizer portssvc.ActorAuthSvc) TrustServiceOption {
	return func(s *trustServiceImpl) {
		s.TrustAuthorizer = authorizer
	}
}

// NewTrustServiceImpl creates a new trust service with the provided options
func NewTrustServiceImpl(repo portsrepo.TrustRepositoryFacade, options ...TrustServiceOption) portssvc.TrustSvcFacade {
	svc := &trustServiceImpl{trustRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure trustServiceImpl implements the TrustSvcFacade interface
var _ portssvc.TrustSvcFacade = (*trustServiceImpl)(nil)

// CreateTrust constitutes a new trust. The trust ID is correlative within the
// constitution year ("2026-0001").
func (s *trustServiceImpl) CreateTrust(ctx context.Context, req dto.CreateTrustRequest, creatorID string) (*domain.Trust, error) {
	if err := validateLimits(req.BondLimitPercent, req.OtherLimitPercent); err != nil {
		return nil, err
	}
	if !req.InitialCapital.IsPositive() {
		return nil, fmt.Errorf("%w: initial capital must be positive", apperrors.ErrValidation)
	}
	if req.RequiresConsensus && req.CommitteeSize < 1 {
		return nil, fmt.Errorf("%w: a consensus trust needs a committee", apperrors.ErrValidation)
	}

	termType := req.TermType
	if termType == "" {
		termType = domain.TermStandard
	}

	year := req.ConstitutionDate.Year()
	count, err := s.trustRepo.CountTrustsConstitutedInYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "failed to derive trust number", slog.Int("year", year))
		return nil, err
	}

	now := time.Now()
	trust := domain.Trust{
		TrustID:           fmt.Sprintf("%d-%04d", year, count+1),
		Name:              req.Name,
		CurrencyCode:      req.CurrencyCode,
		InitialCapital:    req.InitialCapital,
		BondLimitPercent:  req.BondLimitPercent,
		OtherLimitPercent: req.OtherLimitPercent,
		RequiresConsensus: req.RequiresConsensus,
		CommitteeSize:     req.CommitteeSize,
		ConstitutionDate:  req.ConstitutionDate,
		MaxTermYears:      req.MaxTermYears,
		TermType:          termType,
		IsActive:          false,
		Status:            domain.TrustDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.trustRepo.SaveTrust(ctx, trust); err != nil {
		s.LogError(ctx, err, "failed to save trust", slog.String("trust_id", trust.TrustID))
		return nil, err
	}

	s.LogInfo(ctx, "trust created", slog.String("trust_id", trust.TrustID))
	return &trust, nil
}

func (s *trustServiceImpl) GetTrustByID(ctx context.Context, trustID string) (*domain.Trust, error) {
	return s.trustRepo.FindTrustByID(ctx, trustID)
}

func (s *trustServiceImpl) ListTrusts(ctx context.Context, limit int, offset int) ([]domain.Trust, error) {
	return s.trustRepo.ListTrusts(ctx, limit, offset)
}

// UpdateTrustLimits changes the category limits. Only a fiduciary of the
// trust may do this, and the limits must not sum above 100 percent.
func (s *trustServiceImpl) UpdateTrustLimits(ctx context.Context, trustID string, req dto.UpdateTrustLimitsRequest, userID string) (*domain.Trust, error) {
	if err := validateLimits(req.BondLimitPercent, req.OtherLimitPercent); err != nil {
		return nil, err
	}
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary); err != nil {
		return nil, err
	}

	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return nil, err
	}

	trust.BondLimitPercent = req.BondLimitPercent
	trust.OtherLimitPercent = req.OtherLimitPercent
	trust.LastUpdatedAt = time.Now()
	trust.LastUpdatedBy = userID

	if err := s.trustRepo.UpdateTrust(ctx, *trust); err != nil {
		s.LogError(ctx, err, "failed to update trust limits", slog.String("trust_id", trustID))
		return nil, err
	}

	s.LogInfo(ctx, "trust limits updated", slog.String("trust_id", trustID))
	return trust, nil
}

// ActivateTrust moves a draft trust to ACTIVE.
func (s *trustServiceImpl) ActivateTrust(ctx context.Context, trustID string, userID string) error {
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return err
	}
	if trust.Status != domain.TrustDraft {
		return fmt.Errorf("%w: trust %s is %s, only DRAFT trusts can be activated", apperrors.ErrInvalidState, trustID, trust.Status)
	}
	if err := s.trustRepo.UpdateTrustStatus(ctx, trustID, domain.TrustActive, userID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "trust activated", slog.String("trust_id", trustID))
	return nil
}

// CloseTrust moves a trust to CLOSED.
func (s *trustServiceImpl) CloseTrust(ctx context.Context, trustID string, userID string) error {
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary); err != nil {
		return err
	}
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return err
	}
	if trust.Status == domain.TrustClosed {
		return fmt.Errorf("%w: trust %s is already closed", apperrors.ErrInvalidState, trustID)
	}
	if err := s.trustRepo.UpdateTrustStatus(ctx, trustID, domain.TrustClosed, userID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "trust closed", slog.String("trust_id", trustID))
	return nil
}

// GetTrustSummary evaluates the trust's allocation against its limits.
func (s *trustServiceImpl) GetTrustSummary(ctx context.Context, trustID string) (*compliance.TrustSummary, error) {
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.FindAssetsByTrust(ctx, trustID)
	if err != nil {
		return nil, err
	}
	summary := compliance.Evaluate(*trust, assets)
	return &summary, nil
}

// GetTrustTimeline computes the trust's position in its maximum term.
func (s *trustServiceImpl) GetTrustTimeline(ctx context.Context, trustID string) (*timeline.Timeline, error) {
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return nil, err
	}
	tl := timeline.Compute(*trust, time.Now())
	return &tl, nil
}

// GetNextQuarterlyDate returns when the next quarterly session is due.
func (s *trustServiceImpl) GetNextQuarterlyDate(ctx context.Context, trustID string) (time.Time, error) {
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return time.Time{}, err
	}
	sessions, err := s.sessionRepo.FindSessionsByTrust(ctx, trustID)
	if err != nil {
		return time.Time{}, err
	}
	return timeline.NextQuarterly(*trust, sessions, time.Now()), nil
}

// GetComplianceAnalytics aggregates the trust's compliance posture.
func (s *trustServiceImpl) GetComplianceAnalytics(ctx context.Context, trustID string) (*dto.ComplianceAnalyticsResponse, error) {
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.FindAssetsByTrust(ctx, trustID)
	if err != nil {
		return nil, err
	}

	summary := compliance.Evaluate(*trust, assets)
	resp := dto.ComplianceAnalyticsResponse{
		TrustID:       trustID,
		TotalAssets:   summary.TotalAssets,
		Bond:          summary.Bond,
		Other:         summary.Other,
		TotalInvested: summary.TotalInvested,
		Timeline:      timeline.Compute(*trust, time.Now()),
	}
	for _, asset := range assets {
		switch asset.ComplianceStatus {
		case domain.StatusCompliant:
			resp.CompliantCount++
		case domain.StatusNonCompliant:
			resp.NonCompliantCount++
		case domain.StatusPendingReview:
			resp.PendingReviewCount++
		case domain.StatusExceptionApproved:
			resp.ExceptionApprovedCount++
		}
	}
	if len(assets) > 0 {
		invested := decimal.NewFromInt(int64(resp.CompliantCount + resp.ExceptionApprovedCount))
		resp.ComplianceRate = invested.Div(decimal.NewFromInt(int64(len(assets)))).Mul(hundredPercent)
	}
	return &resp, nil
}

// validateLimits rejects limit pairs that would allow allocating more than
// the trust's whole capital.
func validateLimits(bond, other decimal.Decimal) error {
	if bond.IsNegative() || other.IsNegative() {
		return fmt.Errorf("%w: limits cannot be negative", apperrors.ErrValidation)
	}
	if bond.Add(other).GreaterThan(hundredPercent) {
		return fmt.Errorf("%w: category limits sum above 100%%", apperrors.ErrValidation)
	}
	return nil
}

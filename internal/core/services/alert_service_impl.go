package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
)

// alertServiceImpl implements the AlertSvcFacade interface
type alertServiceImpl struct {
	BaseService
	alertRepo portsrepo.AlertRepositoryFacade
	actorRepo portsrepo.MembershipReader
}

// NewAlertServiceImpl creates a new alert service
func NewAlertServiceImpl(alertRepo portsrepo.AlertRepositoryFacade, actorRepo portsrepo.MembershipReader) portssvc.AlertSvcFacade {
	return &alertServiceImpl{
		alertRepo: alertRepo,
		actorRepo: actorRepo,
	}
}

// Ensure alertServiceImpl implements the AlertSvcFacade interface
var _ portssvc.AlertSvcFacade = (*alertServiceImpl)(nil)

func (s *alertServiceImpl) ListAlerts(ctx context.Context, actorID string, limit int, offset int) ([]domain.Alert, error) {
	return s.alertRepo.ListAlertsByActor(ctx, actorID, limit, offset)
}

func (s *alertServiceImpl) CountUnread(ctx context.Context, actorID string) (int, error) {
	return s.alertRepo.CountUnreadAlerts(ctx, actorID)
}

func (s *alertServiceImpl) MarkRead(ctx context.Context, actorID string, alertID string) error {
	return s.alertRepo.MarkAlertRead(ctx, alertID, actorID)
}

// NotifyTrust fans an alert out to every active fiduciary and committee
// member of the trust, one row per recipient.
func (s *alertServiceImpl) NotifyTrust(ctx context.Context, trustID string, assetID string, kind domain.AlertKind, severity domain.AlertSeverity, message string) error {
	memberships, err := s.actorRepo.ListMembershipsByTrust(ctx, trustID)
	if err != nil {
		return err
	}

	now := time.Now()
	alerts := make([]domain.Alert, 0, len(memberships))
	for _, m := range memberships {
		if !m.IsActive {
			continue
		}
		if m.Role != domain.RoleFiduciary && m.Role != domain.RoleCommittee {
			continue
		}
		alerts = append(alerts, domain.Alert{
			AlertID:   uuid.NewString(),
			TrustID:   trustID,
			AssetID:   assetID,
			ActorID:   m.ActorID,
			Kind:      kind,
			Severity:  severity,
			Message:   message,
			CreatedAt: now,
		})
	}

	if err := s.alertRepo.SaveAlerts(ctx, alerts); err != nil {
		return err
	}
	s.LogDebug(ctx, "alerts dispatched",
		slog.String("trust_id", trustID),
		slog.String("kind", string(kind)),
		slog.Int("recipients", len(alerts)))
	return nil
}

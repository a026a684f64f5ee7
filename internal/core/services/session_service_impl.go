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
	"github.com/trustops/trust_governance_app/internal/utils/timeline"
)

// sessionServiceImpl implements the SessionSvcFacade interface
type sessionServiceImpl struct {
	BaseService
	sessionRepo portsrepo.SessionRepositoryFacade
	trustRepo   portsrepo.TrustReader
}

// SessionServiceOption is a functional option for configuring the session service
type SessionServiceOption func(*sessionServiceImpl)

// WithTrustReaderForSession adds the trust reader dependency
func WithTrustReaderForSession(repo portsrepo.TrustReader) SessionServiceOption {
	return func(s *sessionServiceImpl) {
		s.trustRepo = repo
	}
}

// WithSessionAuthorizer adds the authorizer dependency
func WithSessionAuthorizer(authorizer portssvc.ActorAuthSvc) SessionServiceOption {
	return func(s *sessionServiceImpl) {
		s.TrustAuthorizer = authorizer
	}
}

// NewSessionServiceImpl creates a new session service with the provided options
func NewSessionServiceImpl(repo portsrepo.SessionRepositoryFacade, options ...SessionServiceOption) portssvc.SessionSvcFacade {
	svc := &sessionServiceImpl{sessionRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure sessionServiceImpl implements the SessionSvcFacade interface
var _ portssvc.SessionSvcFacade = (*sessionServiceImpl)(nil)

func (s *sessionServiceImpl) CreateSession(ctx context.Context, trustID string, req dto.CreateSessionRequest, userID string) (*domain.ComiteSession, error) {
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary, domain.RoleCommittee); err != nil {
		return nil, err
	}
	if _, err := s.trustRepo.FindTrustByID(ctx, trustID); err != nil {
		return nil, err
	}

	now := time.Now()
	session := domain.ComiteSession{
		SessionID:   uuid.NewString(),
		TrustID:     trustID,
		SessionDate: req.SessionDate,
		SessionType: req.SessionType,
		Status:      domain.SessionScheduled,
		Attendees:   []string{},
		Location:    req.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "failed to save session", slog.String("session_id", session.SessionID))
		return nil, err
	}

	s.LogInfo(ctx, "session scheduled",
		slog.String("session_id", session.SessionID),
		slog.String("trust_id", trustID),
		slog.String("type", string(req.SessionType)))
	return &session, nil
}

func (s *sessionServiceImpl) GetSessionByID(ctx context.Context, trustID string, sessionID string) (*domain.ComiteSession, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.TrustID != trustID {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}

func (s *sessionServiceImpl) ListSessions(ctx context.Context, trustID string, limit int, offset int) ([]domain.ComiteSession, error) {
	return s.sessionRepo.ListSessions(ctx, trustID, limit, offset)
}

// UpdateSession applies partial updates. A cancelled session stays cancelled.
func (s *sessionServiceImpl) UpdateSession(ctx context.Context, trustID string, sessionID string, req dto.UpdateSessionRequest, userID string) (*domain.ComiteSession, error) {
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary, domain.RoleCommittee); err != nil {
		return nil, err
	}

	session, err := s.GetSessionByID(ctx, trustID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == domain.SessionCancelled {
		return nil, fmt.Errorf("%w: session %s is cancelled", apperrors.ErrInvalidState, sessionID)
	}

	if req.SessionDate != nil {
		session.SessionDate = *req.SessionDate
	}
	if req.Status != nil {
		session.Status = *req.Status
	}
	if req.Quorum != nil {
		session.Quorum = *req.Quorum
	}
	if req.Attendees != nil {
		session.Attendees = *req.Attendees
	}
	if req.Location != nil {
		session.Location = *req.Location
	}
	if req.Minutes != nil {
		session.Minutes = *req.Minutes
	}
	session.LastUpdatedAt = time.Now()
	session.LastUpdatedBy = userID

	if err := s.sessionRepo.UpdateSession(ctx, *session); err != nil {
		s.LogError(ctx, err, "failed to update session", slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "session updated", slog.String("session_id", sessionID))
	return session, nil
}

// GenerateQuarterlySession schedules the next due quarterly session at the
// start of the first uncovered quarter window.
func (s *sessionServiceImpl) GenerateQuarterlySession(ctx context.Context, trustID string, userID string) (*domain.ComiteSession, error) {
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary); err != nil {
		return nil, err
	}
	trust, err := s.trustRepo.FindTrustByID(ctx, trustID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.FindSessionsByTrust(ctx, trustID)
	if err != nil {
		return nil, err
	}

	due := timeline.NextQuarterly(*trust, sessions, time.Now())

	now := time.Now()
	session := domain.ComiteSession{
		SessionID:   uuid.NewString(),
		TrustID:     trustID,
		SessionDate: due,
		SessionType: domain.SessionQuarterly,
		Status:      domain.SessionScheduled,
		Attendees:   []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "failed to save quarterly session", slog.String("trust_id", trustID))
		return nil, err
	}

	s.LogInfo(ctx, "quarterly session generated",
		slog.String("session_id", session.SessionID),
		slog.String("trust_id", trustID),
		slog.Time("due", due))
	return &session, nil
}

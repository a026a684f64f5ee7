package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
	"github.com/trustops/trust_governance_app/internal/utils"
)

// actorServiceImpl implements the ActorSvcFacade interface
type actorServiceImpl struct {
	BaseService
	actorRepo portsrepo.ActorRepositoryFacade
}

// NewActorServiceImpl creates a new actor service
func NewActorServiceImpl(repo portsrepo.ActorRepositoryFacade) portssvc.ActorSvcFacade {
	return &actorServiceImpl{actorRepo: repo}
}

// Ensure actorServiceImpl implements the ActorSvcFacade interface
var _ portssvc.ActorSvcFacade = (*actorServiceImpl)(nil)

func (s *actorServiceImpl) CreateActor(ctx context.Context, req dto.CreateActorRequest, creatorID string) (*domain.Actor, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	actor := domain.Actor{
		ActorID:      uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.actorRepo.SaveActor(ctx, actor); err != nil {
		s.LogError(ctx, err, "failed to save actor", slog.String("actor_id", actor.ActorID))
		return nil, err
	}

	s.LogInfo(ctx, "actor created", slog.String("actor_id", actor.ActorID))
	return &actor, nil
}

func (s *actorServiceImpl) GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	return s.actorRepo.FindActorByID(ctx, actorID)
}

func (s *actorServiceImpl) ListActors(ctx context.Context, limit int, offset int) ([]domain.Actor, error) {
	return s.actorRepo.ListActors(ctx, limit, offset)
}

func (s *actorServiceImpl) ListTrustMembers(ctx context.Context, trustID string) ([]domain.TrustMembership, error) {
	return s.actorRepo.ListMembershipsByTrust(ctx, trustID)
}

func (s *actorServiceImpl) DeactivateActor(ctx context.Context, actorID string, userID string) error {
	if err := s.actorRepo.DeactivateActor(ctx, actorID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to deactivate actor", slog.String("actor_id", actorID))
		return err
	}
	s.LogInfo(ctx, "actor deactivated", slog.String("actor_id", actorID))
	return nil
}

func (s *actorServiceImpl) AddTrustMembership(ctx context.Context, trustID string, req dto.AddMembershipRequest, userID string) (*domain.TrustMembership, error) {
	// Only an existing fiduciary can change the membership roster. The
	// bootstrap case (first fiduciary of a fresh trust) is detected below.
	memberships, err := s.actorRepo.ListMembershipsByTrust(ctx, trustID)
	if err != nil {
		return nil, err
	}
	if len(memberships) > 0 {
		if err := s.AuthorizeTrustRole(ctx, trustID, userID, domain.RoleFiduciary); err != nil {
			return nil, err
		}
	}

	if _, err := s.actorRepo.FindActorByID(ctx, req.ActorID); err != nil {
		return nil, fmt.Errorf("membership target: %w", err)
	}

	membership := domain.TrustMembership{
		ActorID:  req.ActorID,
		TrustID:  trustID,
		Role:     req.Role,
		IsActive: true,
		Since:    time.Now(),
	}
	if err := s.actorRepo.SaveMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "failed to save membership",
			slog.String("actor_id", req.ActorID),
			slog.String("trust_id", trustID))
		return nil, err
	}

	s.LogInfo(ctx, "membership added",
		slog.String("actor_id", req.ActorID),
		slog.String("trust_id", trustID),
		slog.String("role", string(req.Role)))
	return &membership, nil
}

func (s *actorServiceImpl) AuthenticateActor(ctx context.Context, email string, password string) (*domain.Actor, error) {
	actor, err := s.actorRepo.FindActorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !actor.IsActive || !utils.CheckPasswordHash(password, actor.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return actor, nil
}

// AuthorizeTrustRole answers role checks from the membership rows of the
// trust, never from anything the client sent.
func (s *actorServiceImpl) AuthorizeTrustRole(ctx context.Context, trustID string, actorID string, roles ...domain.ActorRole) error {
	membership, err := s.actorRepo.FindMembership(ctx, trustID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: actor %s is not a member of trust %s", apperrors.ErrNotAuthorized, actorID, trustID)
		}
		return err
	}
	if !membership.IsActive {
		return fmt.Errorf("%w: membership of actor %s in trust %s is inactive", apperrors.ErrNotAuthorized, actorID, trustID)
	}
	if len(roles) == 0 {
		return nil
	}
	for _, role := range roles {
		if membership.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: actor %s holds role %s in trust %s", apperrors.ErrNotAuthorized, actorID, membership.Role, trustID)
}

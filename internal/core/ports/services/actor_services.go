package services

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// ActorReaderSvc defines read operations for actor data
type ActorReaderSvc interface {
	// GetActorByID retrieves a specific actor by its unique identifier.
	GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error)

	// ListActors retrieves a paginated list of actors.
	ListActors(ctx context.Context, limit int, offset int) ([]domain.Actor, error)

	// ListTrustMembers retrieves every membership of a trust.
	ListTrustMembers(ctx context.Context, trustID string) ([]domain.TrustMembership, error)
}

// ActorWriterSvc defines write operations for actor data
type ActorWriterSvc interface {
	// CreateActor registers a new actor with a hashed password.
	CreateActor(ctx context.Context, req dto.CreateActorRequest, creatorID string) (*domain.Actor, error)

	// DeactivateActor soft-deletes an actor.
	DeactivateActor(ctx context.Context, actorID string, userID string) error

	// AddTrustMembership binds an actor to a trust under a role.
	AddTrustMembership(ctx context.Context, trustID string, req dto.AddMembershipRequest, userID string) (*domain.TrustMembership, error)
}

// ActorAuthSvc defines authentication and authorization checks
type ActorAuthSvc interface {
	// AuthenticateActor verifies an email and password pair.
	AuthenticateActor(ctx context.Context, email string, password string) (*domain.Actor, error)

	// AuthorizeTrustRole verifies that the actor holds one of the given roles,
	// active, in the trust. Returns apperrors.ErrNotAuthorized otherwise.
	AuthorizeTrustRole(ctx context.Context, trustID string, actorID string, roles ...domain.ActorRole) error
}

// ActorSvcFacade combines all actor-related service interfaces
// This is a facade for clients that need access to all operations
type ActorSvcFacade interface {
	ActorReaderSvc
	ActorWriterSvc
	ActorAuthSvc
}

package repositories

import (
	"context"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// ActorReader defines read operations for actor data
type ActorReader interface {
	// FindActorByID retrieves a specific actor by its unique identifier.
	FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error)

	// FindActorByEmail retrieves an actor by email, for login.
	FindActorByEmail(ctx context.Context, email string) (*domain.Actor, error)

	// ListActors retrieves a paginated list of actors.
	ListActors(ctx context.Context, limit int, offset int) ([]domain.Actor, error)
}

// ActorWriter defines write operations for actor data
type ActorWriter interface {
	// SaveActor persists a new actor.
	SaveActor(ctx context.Context, actor domain.Actor) error

	// UpdateActor updates an existing actor's details.
	UpdateActor(ctx context.Context, actor domain.Actor) error

	// DeactivateActor soft-deletes an actor.
	DeactivateActor(ctx context.Context, actorID string, userID string, now time.Time) error
}

// MembershipReader defines read operations for trust membership data
type MembershipReader interface {
	// FindMembership retrieves the membership of one actor in one trust.
	FindMembership(ctx context.Context, trustID string, actorID string) (*domain.TrustMembership, error)

	// ListMembershipsByTrust retrieves every membership of a trust.
	ListMembershipsByTrust(ctx context.Context, trustID string) ([]domain.TrustMembership, error)

	// ListMembershipsByActor retrieves every trust an actor belongs to.
	ListMembershipsByActor(ctx context.Context, actorID string) ([]domain.TrustMembership, error)
}

// MembershipWriter defines write operations for trust membership data
type MembershipWriter interface {
	// SaveMembership persists a new membership.
	SaveMembership(ctx context.Context, membership domain.TrustMembership) error

	// UpdateMembership updates a membership's role or active flag.
	UpdateMembership(ctx context.Context, membership domain.TrustMembership) error
}

// ActorRepositoryFacade combines all actor-related repository interfaces
// This is a facade for clients that need access to all operations
type ActorRepositoryFacade interface {
	ActorReader
	ActorWriter
	MembershipReader
	MembershipWriter
}

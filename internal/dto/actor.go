package dto

import (
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// CreateActorRequest defines the data needed to register a new actor.
type CreateActorRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// ActorResponse defines the data returned for an actor. The password hash
// never leaves the service layer.
type ActorResponse struct {
	ActorID       string    `json:"actorID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToActorResponse converts a domain.Actor to ActorResponse DTO
func ToActorResponse(a *domain.Actor) ActorResponse {
	return ActorResponse{
		ActorID:       a.ActorID,
		Name:          a.Name,
		Email:         a.Email,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ListActorsParams defines query parameters for listing actors.
type ListActorsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListActorsResponse wraps the list of actors.
type ListActorsResponse struct {
	Actors []ActorResponse `json:"actors"`
}

// ToListActorsResponse converts a slice of domain.Actor to ListActorsResponse DTO
func ToListActorsResponse(actors []domain.Actor) ListActorsResponse {
	res := make([]ActorResponse, len(actors))
	for i, a := range actors {
		res[i] = ToActorResponse(&a)
	}
	return ListActorsResponse{Actors: res}
}

// AddMembershipRequest binds an actor to a trust under a role.
type AddMembershipRequest struct {
	ActorID string           `json:"actorID" binding:"required"`
	Role    domain.ActorRole `json:"role" binding:"required,oneof=FIDUCIARY COMMITTEE BENEFICIARY AUDITOR REGULATOR"`
}

// MembershipResponse defines the data returned for a trust membership.
type MembershipResponse struct {
	ActorID  string           `json:"actorID"`
	TrustID  string           `json:"trustID"`
	Role     domain.ActorRole `json:"role"`
	IsActive bool             `json:"isActive"`
	Since    time.Time        `json:"since"`
}

// ToMembershipResponse converts a domain.TrustMembership to MembershipResponse DTO
func ToMembershipResponse(m *domain.TrustMembership) MembershipResponse {
	return MembershipResponse{
		ActorID:  m.ActorID,
		TrustID:  m.TrustID,
		Role:     m.Role,
		IsActive: m.IsActive,
		Since:    m.Since,
	}
}

// ToListMembershipsResponse converts a slice of domain.TrustMembership to MembershipResponse DTOs
func ToListMembershipsResponse(memberships []domain.TrustMembership) []MembershipResponse {
	res := make([]MembershipResponse, len(memberships))
	for i, m := range memberships {
		res[i] = ToMembershipResponse(&m)
	}
	return res
}

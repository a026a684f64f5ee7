package mapping

import (
	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/models"
)

// ToModelActor converts a domain Actor to a model Actor
func ToModelActor(d domain.Actor) models.Actor {
	return models.Actor{
		ActorID:      d.ActorID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		DeletedAt:    d.DeletedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainActor converts a model Actor to a domain Actor
func ToDomainActor(m models.Actor) domain.Actor {
	return domain.Actor{
		ActorID:      m.ActorID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		DeletedAt:    m.DeletedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainActorSlice converts a slice of model Actors to domain Actors
func ToDomainActorSlice(ms []models.Actor) []domain.Actor {
	ds := make([]domain.Actor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActor(m)
	}
	return ds
}

// ToModelTrustMembership converts a domain TrustMembership to a model TrustMembership
func ToModelTrustMembership(d domain.TrustMembership) models.TrustMembership {
	return models.TrustMembership{
		ActorID:  d.ActorID,
		TrustID:  d.TrustID,
		Role:     string(d.Role),
		IsActive: d.IsActive,
		Since:    d.Since,
	}
}

// ToDomainTrustMembership converts a model TrustMembership to a domain TrustMembership
func ToDomainTrustMembership(m models.TrustMembership) domain.TrustMembership {
	return domain.TrustMembership{
		ActorID:  m.ActorID,
		TrustID:  m.TrustID,
		Role:     domain.ActorRole(m.Role),
		IsActive: m.IsActive,
		Since:    m.Since,
	}
}

// ToDomainTrustMembershipSlice converts a slice of model TrustMemberships to domain TrustMemberships
func ToDomainTrustMembershipSlice(ms []models.TrustMembership) []domain.TrustMembership {
	ds := make([]domain.TrustMembership, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrustMembership(m)
	}
	return ds
}

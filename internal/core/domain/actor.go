package domain

import "time"

// ActorRole is the governance role of an actor within a trust.
type ActorRole string

const (
	RoleFiduciary   ActorRole = "FIDUCIARY"
	RoleCommittee   ActorRole = "COMMITTEE"
	RoleBeneficiary ActorRole = "BENEFICIARY"
	RoleAuditor     ActorRole = "AUDITOR"
	RoleRegulator   ActorRole = "REGULATOR"
)

// Actor is a person or institution participating in trust governance.
type Actor struct {
	ActorID      string     `json:"actorID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"isActive"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}

// TrustMembership binds an actor to a trust under a role. Authorization
// questions ("is X an active committee member of trust Y") are answered
// from these rows, never from client-side lookup tables.
type TrustMembership struct {
	ActorID  string    `json:"actorID"`
	TrustID  string    `json:"trustID"`
	Role     ActorRole `json:"role"`
	IsActive bool      `json:"isActive"`
	Since    time.Time `json:"since"`
}

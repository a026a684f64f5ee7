package models

import "time"

// Actor represents an actor row.
type Actor struct {
	ActorID      string `db:"actor_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// TrustMembership represents an actor's role in one trust.
type TrustMembership struct {
	ActorID  string    `db:"actor_id"`
	TrustID  string    `db:"trust_id"`
	Role     string    `db:"role"`
	IsActive bool      `db:"is_active"`
	Since    time.Time `db:"since"`
}

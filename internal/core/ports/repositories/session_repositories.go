package repositories

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// SessionReader defines read operations for committee session data
type SessionReader interface {
	// FindSessionByID retrieves a specific session by its unique identifier.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.ComiteSession, error)

	// FindSessionsByTrust retrieves every session of a trust. Quarterly
	// scheduling inspects the full history.
	FindSessionsByTrust(ctx context.Context, trustID string) ([]domain.ComiteSession, error)

	// ListSessions retrieves a paginated list of sessions for a given trust.
	ListSessions(ctx context.Context, trustID string, limit int, offset int) ([]domain.ComiteSession, error)
}

// SessionWriter defines write operations for committee session data
type SessionWriter interface {
	// SaveSession persists a new session.
	SaveSession(ctx context.Context, session domain.ComiteSession) error

	// UpdateSession updates an existing session's details.
	UpdateSession(ctx context.Context, session domain.ComiteSession) error
}

// SessionRepositoryFacade combines all session-related repository interfaces
// This is a facade for clients that need access to all operations
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}

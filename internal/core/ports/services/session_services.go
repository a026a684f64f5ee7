package services

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// SessionReaderSvc defines read operations for committee session data
type SessionReaderSvc interface {
	// GetSessionByID retrieves a specific session of a trust.
	GetSessionByID(ctx context.Context, trustID string, sessionID string) (*domain.ComiteSession, error)

	// ListSessions retrieves a paginated list of sessions for a given trust.
	ListSessions(ctx context.Context, trustID string, limit int, offset int) ([]domain.ComiteSession, error)
}

// SessionWriterSvc defines write operations for committee session data
type SessionWriterSvc interface {
	// CreateSession schedules a new session.
	CreateSession(ctx context.Context, trustID string, req dto.CreateSessionRequest, userID string) (*domain.ComiteSession, error)

	// UpdateSession updates a session's details, status, attendees or minutes.
	UpdateSession(ctx context.Context, trustID string, sessionID string, req dto.UpdateSessionRequest, userID string) (*domain.ComiteSession, error)

	// GenerateQuarterlySession schedules a QUARTERLY session at the start of
	// the next uncovered quarter window.
	GenerateQuarterlySession(ctx context.Context, trustID string, userID string) (*domain.ComiteSession, error)
}

// SessionSvcFacade combines all session-related service interfaces
// This is a facade for clients that need access to all operations
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionWriterSvc
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	"github.com/trustops/trust_governance_app/internal/models"
	"github.com/trustops/trust_governance_app/internal/utils/mapping"
)

const sessionColumns = `session_id, trust_id, session_date, session_type, status, quorum, attendees, location, minutes, created_at, created_by, last_updated_at, last_updated_by`

type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

// newPgxSessionRepository creates a new repository for committee session data.
func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{pool: pool}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepositoryFacade
var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func scanSession(row pgx.Row) (models.ComiteSession, error) {
	var m models.ComiteSession
	err := row.Scan(
		&m.SessionID,
		&m.TrustID,
		&m.SessionDate,
		&m.SessionType,
		&m.Status,
		&m.Quorum,
		&m.Attendees,
		&m.Location,
		&m.Minutes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSession inserts a new session.
func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.ComiteSession) error {
	m := mapping.ToModelComiteSession(session)

	query := `
		INSERT INTO comite_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SessionID,
		m.TrustID,
		m.SessionDate,
		m.SessionType,
		m.Status,
		m.Quorum,
		m.Attendees,
		m.Location,
		m.Minutes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: session with ID %s already exists", apperrors.ErrDuplicate, m.SessionID)
		}
		return fmt.Errorf("failed to save session %s: %w", m.SessionID, err)
	}
	return nil
}

// FindSessionByID retrieves a session by its ID.
func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.ComiteSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM comite_sessions WHERE session_id = $1;`

	m, err := scanSession(r.pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session by ID %s: %w", sessionID, err)
	}

	d := mapping.ToDomainComiteSession(m)
	return &d, nil
}

// FindSessionsByTrust retrieves every session of a trust.
func (r *PgxSessionRepository) FindSessionsByTrust(ctx context.Context, trustID string) ([]domain.ComiteSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM comite_sessions WHERE trust_id = $1 ORDER BY session_date;`

	rows, err := r.pool.Query(ctx, query, trustID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions for trust %s: %w", trustID, err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// ListSessions retrieves a paginated list of sessions for a trust.
func (r *PgxSessionRepository) ListSessions(ctx context.Context, trustID string, limit int, offset int) ([]domain.ComiteSession, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + sessionColumns + `
		FROM comite_sessions
		WHERE trust_id = $1
		ORDER BY session_date DESC, session_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, trustID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions for trust %s: %w", trustID, err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// UpdateSession updates a session's mutable details.
func (r *PgxSessionRepository) UpdateSession(ctx context.Context, session domain.ComiteSession) error {
	m := mapping.ToModelComiteSession(session)

	query := `
		UPDATE comite_sessions
		SET session_date = $2, status = $3, quorum = $4, attendees = $5,
		    location = $6, minutes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE session_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.SessionID,
		m.SessionDate,
		m.Status,
		m.Quorum,
		m.Attendees,
		m.Location,
		m.Minutes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", m.SessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectSessions(rows pgx.Rows) ([]domain.ComiteSession, error) {
	sessions := []models.ComiteSession{}
	for rows.Next() {
		m, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}
	return mapping.ToDomainComiteSessionSlice(sessions), nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	"github.com/trustops/trust_governance_app/internal/models"
	"github.com/trustops/trust_governance_app/internal/utils/mapping"
)

const actorColumns = `actor_id, name, email, password_hash, is_active, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

const membershipColumns = `actor_id, trust_id, role, is_active, since`

type PgxActorRepository struct {
	pool *pgxpool.Pool
}

// newPgxActorRepository creates a new repository for actor and membership data.
func newPgxActorRepository(pool *pgxpool.Pool) portsrepo.ActorRepositoryFacade {
	return &PgxActorRepository{pool: pool}
}

// Ensure PgxActorRepository implements portsrepo.ActorRepositoryFacade
var _ portsrepo.ActorRepositoryFacade = (*PgxActorRepository)(nil)

func scanActor(row pgx.Row) (models.Actor, error) {
	var m models.Actor
	err := row.Scan(
		&m.ActorID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.IsActive,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveActor inserts a new actor.
func (r *PgxActorRepository) SaveActor(ctx context.Context, actor domain.Actor) error {
	m := mapping.ToModelActor(actor)

	query := `
		INSERT INTO actors (` + actorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ActorID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.IsActive,
		m.DeletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: actor with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save actor %s: %w", m.ActorID, err)
	}
	return nil
}

// FindActorByID retrieves an actor by its ID. Soft-deleted actors are not found.
func (r *PgxActorRepository) FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE actor_id = $1 AND deleted_at IS NULL;`

	m, err := scanActor(r.pool.QueryRow(ctx, query, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find actor by ID %s: %w", actorID, err)
	}

	d := mapping.ToDomainActor(m)
	return &d, nil
}

// FindActorByEmail retrieves an actor by email, for login.
func (r *PgxActorRepository) FindActorByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE email = $1 AND deleted_at IS NULL;`

	m, err := scanActor(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find actor by email: %w", err)
	}

	d := mapping.ToDomainActor(m)
	return &d, nil
}

// ListActors retrieves a paginated list of actors.
func (r *PgxActorRepository) ListActors(ctx context.Context, limit int, offset int) ([]domain.Actor, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query actors: %w", err)
	}
	defer rows.Close()

	actors := []models.Actor{}
	for rows.Next() {
		m, err := scanActor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan actor row: %w", err)
		}
		actors = append(actors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actor rows: %w", err)
	}

	return mapping.ToDomainActorSlice(actors), nil
}

// UpdateActor updates an actor's mutable details.
func (r *PgxActorRepository) UpdateActor(ctx context.Context, actor domain.Actor) error {
	m := mapping.ToModelActor(actor)

	query := `
		UPDATE actors
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE actor_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, m.ActorID, m.Name, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update actor %s: %w", m.ActorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateActor soft-deletes an actor.
func (r *PgxActorRepository) DeactivateActor(ctx context.Context, actorID string, userID string, now time.Time) error {
	query := `
		UPDATE actors
		SET is_active = FALSE, deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE actor_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, actorID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate actor %s: %w", actorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindMembership retrieves the membership of one actor in one trust.
func (r *PgxActorRepository) FindMembership(ctx context.Context, trustID string, actorID string) (*domain.TrustMembership, error) {
	query := `SELECT ` + membershipColumns + ` FROM trust_memberships WHERE trust_id = $1 AND actor_id = $2;`

	var m models.TrustMembership
	err := r.pool.QueryRow(ctx, query, trustID, actorID).Scan(
		&m.ActorID,
		&m.TrustID,
		&m.Role,
		&m.IsActive,
		&m.Since,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership of %s in trust %s: %w", actorID, trustID, err)
	}

	d := mapping.ToDomainTrustMembership(m)
	return &d, nil
}

// ListMembershipsByTrust retrieves every membership of a trust.
func (r *PgxActorRepository) ListMembershipsByTrust(ctx context.Context, trustID string) ([]domain.TrustMembership, error) {
	query := `SELECT ` + membershipColumns + ` FROM trust_memberships WHERE trust_id = $1 ORDER BY since;`
	return r.queryMemberships(ctx, query, trustID)
}

// ListMembershipsByActor retrieves every trust an actor belongs to.
func (r *PgxActorRepository) ListMembershipsByActor(ctx context.Context, actorID string) ([]domain.TrustMembership, error) {
	query := `SELECT ` + membershipColumns + ` FROM trust_memberships WHERE actor_id = $1 ORDER BY since;`
	return r.queryMemberships(ctx, query, actorID)
}

func (r *PgxActorRepository) queryMemberships(ctx context.Context, query string, arg string) ([]domain.TrustMembership, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	memberships := []models.TrustMembership{}
	for rows.Next() {
		var m models.TrustMembership
		if err := rows.Scan(&m.ActorID, &m.TrustID, &m.Role, &m.IsActive, &m.Since); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return mapping.ToDomainTrustMembershipSlice(memberships), nil
}

// SaveMembership inserts a new membership.
func (r *PgxActorRepository) SaveMembership(ctx context.Context, membership domain.TrustMembership) error {
	m := mapping.ToModelTrustMembership(membership)

	query := `
		INSERT INTO trust_memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query, m.ActorID, m.TrustID, m.Role, m.IsActive, m.Since)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: actor %s is already a member of trust %s", apperrors.ErrDuplicate, m.ActorID, m.TrustID)
		}
		return fmt.Errorf("failed to save membership of %s in trust %s: %w", m.ActorID, m.TrustID, err)
	}
	return nil
}

// UpdateMembership updates a membership's role or active flag.
func (r *PgxActorRepository) UpdateMembership(ctx context.Context, membership domain.TrustMembership) error {
	m := mapping.ToModelTrustMembership(membership)

	query := `
		UPDATE trust_memberships
		SET role = $3, is_active = $4
		WHERE trust_id = $2 AND actor_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, m.ActorID, m.TrustID, m.Role, m.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update membership of %s in trust %s: %w", m.ActorID, m.TrustID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

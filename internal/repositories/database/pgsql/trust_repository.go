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

const trustColumns = `trust_id, name, currency_code, initial_capital, bond_limit_percent, other_limit_percent, requires_consensus, committee_size, constitution_date, max_term_years, term_type, status, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxTrustRepository struct {
	pool *pgxpool.Pool
}

// newPgxTrustRepository creates a new repository for trust data.
func newPgxTrustRepository(pool *pgxpool.Pool) portsrepo.TrustRepositoryFacade {
	return &PgxTrustRepository{pool: pool}
}

// Ensure PgxTrustRepository implements portsrepo.TrustRepositoryFacade
var _ portsrepo.TrustRepositoryFacade = (*PgxTrustRepository)(nil)

func scanTrust(row pgx.Row) (models.Trust, error) {
	var m models.Trust
	err := row.Scan(
		&m.TrustID,
		&m.Name,
		&m.CurrencyCode,
		&m.InitialCapital,
		&m.BondLimitPercent,
		&m.OtherLimitPercent,
		&m.RequiresConsensus,
		&m.CommitteeSize,
		&m.ConstitutionDate,
		&m.MaxTermYears,
		&m.TermType,
		&m.Status,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTrust inserts a new trust.
func (r *PgxTrustRepository) SaveTrust(ctx context.Context, trust domain.Trust) error {
	m := mapping.ToModelTrust(trust)

	query := `
		INSERT INTO trusts (` + trustColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TrustID,
		m.Name,
		m.CurrencyCode,
		m.InitialCapital,
		m.BondLimitPercent,
		m.OtherLimitPercent,
		m.RequiresConsensus,
		m.CommitteeSize,
		m.ConstitutionDate,
		m.MaxTermYears,
		m.TermType,
		m.Status,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: trust with ID %s already exists", apperrors.ErrDuplicate, m.TrustID)
		}
		return fmt.Errorf("failed to save trust %s: %w", m.TrustID, err)
	}
	return nil
}

// FindTrustByID retrieves a trust by its ID.
func (r *PgxTrustRepository) FindTrustByID(ctx context.Context, trustID string) (*domain.Trust, error) {
	query := `SELECT ` + trustColumns + ` FROM trusts WHERE trust_id = $1;`

	m, err := scanTrust(r.pool.QueryRow(ctx, query, trustID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trust by ID %s: %w", trustID, err)
	}

	d := mapping.ToDomainTrust(m)
	return &d, nil
}

// ListTrusts retrieves a paginated list of trusts, newest first.
func (r *PgxTrustRepository) ListTrusts(ctx context.Context, limit int, offset int) ([]domain.Trust, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + trustColumns + `
		FROM trusts
		ORDER BY constitution_date DESC, trust_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query trusts: %w", err)
	}
	defer rows.Close()

	trusts := []models.Trust{}
	for rows.Next() {
		m, err := scanTrust(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trust row: %w", err)
		}
		trusts = append(trusts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trust rows: %w", err)
	}

	return mapping.ToDomainTrustSlice(trusts), nil
}

// CountTrustsConstitutedInYear counts trusts constituted in a calendar year.
func (r *PgxTrustRepository) CountTrustsConstitutedInYear(ctx context.Context, year int) (int, error) {
	query := `SELECT COUNT(*) FROM trusts WHERE EXTRACT(YEAR FROM constitution_date) = $1;`

	var count int
	if err := r.pool.QueryRow(ctx, query, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trusts for year %d: %w", year, err)
	}
	return count, nil
}

// UpdateTrust updates a trust's mutable details.
func (r *PgxTrustRepository) UpdateTrust(ctx context.Context, trust domain.Trust) error {
	m := mapping.ToModelTrust(trust)

	query := `
		UPDATE trusts
		SET name = $2, bond_limit_percent = $3, other_limit_percent = $4,
		    requires_consensus = $5, committee_size = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE trust_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.TrustID,
		m.Name,
		m.BondLimitPercent,
		m.OtherLimitPercent,
		m.RequiresConsensus,
		m.CommitteeSize,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update trust %s: %w", m.TrustID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTrustStatus transitions a trust between lifecycle statuses.
func (r *PgxTrustRepository) UpdateTrustStatus(ctx context.Context, trustID string, status domain.TrustStatus, userID string, now time.Time) error {
	query := `
		UPDATE trusts
		SET status = $2, is_active = ($2 = 'ACTIVE'), last_updated_at = $3, last_updated_by = $4
		WHERE trust_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, trustID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of trust %s: %w", trustID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

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

const statementColumns = `statement_id, trust_id, year, month, status, total_income, total_expense, closing_value, observations, submitted_at, reviewed_at, reviewed_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxStatementRepository struct {
	pool *pgxpool.Pool
}

// newPgxStatementRepository creates a new repository for monthly statement data.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepositoryFacade {
	return &PgxStatementRepository{pool: pool}
}

// Ensure PgxStatementRepository implements portsrepo.StatementRepositoryFacade
var _ portsrepo.StatementRepositoryFacade = (*PgxStatementRepository)(nil)

func scanStatement(row pgx.Row) (models.MonthlyStatement, error) {
	var m models.MonthlyStatement
	err := row.Scan(
		&m.StatementID,
		&m.TrustID,
		&m.Year,
		&m.Month,
		&m.Status,
		&m.TotalIncome,
		&m.TotalExpense,
		&m.ClosingValue,
		&m.Observations,
		&m.SubmittedAt,
		&m.ReviewedAt,
		&m.ReviewedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveStatement inserts a new statement. The (trust_id, year, month) unique
// index rejects a second filing for the same period.
func (r *PgxStatementRepository) SaveStatement(ctx context.Context, statement domain.MonthlyStatement) error {
	m := mapping.ToModelMonthlyStatement(statement)

	query := `
		INSERT INTO monthly_statements (` + statementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		m.StatementID,
		m.TrustID,
		m.Year,
		m.Month,
		m.Status,
		m.TotalIncome,
		m.TotalExpense,
		m.ClosingValue,
		m.Observations,
		m.SubmittedAt,
		m.ReviewedAt,
		m.ReviewedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: statement for trust %s period %d-%02d already filed", apperrors.ErrDuplicate, m.TrustID, m.Year, m.Month)
		}
		return fmt.Errorf("failed to save statement %s: %w", m.StatementID, err)
	}
	return nil
}

// FindStatementByID retrieves a statement by its ID.
func (r *PgxStatementRepository) FindStatementByID(ctx context.Context, statementID string) (*domain.MonthlyStatement, error) {
	query := `SELECT ` + statementColumns + ` FROM monthly_statements WHERE statement_id = $1;`

	m, err := scanStatement(r.pool.QueryRow(ctx, query, statementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement by ID %s: %w", statementID, err)
	}

	d := mapping.ToDomainMonthlyStatement(m)
	return &d, nil
}

// FindStatementByPeriod retrieves the statement of a trust for one month.
func (r *PgxStatementRepository) FindStatementByPeriod(ctx context.Context, trustID string, year int, month int) (*domain.MonthlyStatement, error) {
	query := `SELECT ` + statementColumns + ` FROM monthly_statements WHERE trust_id = $1 AND year = $2 AND month = $3;`

	m, err := scanStatement(r.pool.QueryRow(ctx, query, trustID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement for trust %s period %d-%02d: %w", trustID, year, month, err)
	}

	d := mapping.ToDomainMonthlyStatement(m)
	return &d, nil
}

// ListStatements retrieves a paginated list of statements, newest period first.
func (r *PgxStatementRepository) ListStatements(ctx context.Context, trustID string, limit int, offset int) ([]domain.MonthlyStatement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + statementColumns + `
		FROM monthly_statements
		WHERE trust_id = $1
		ORDER BY year DESC, month DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, trustID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements for trust %s: %w", trustID, err)
	}
	defer rows.Close()

	return collectStatements(rows)
}

// ListPendingStatements retrieves every statement awaiting review across all trusts.
func (r *PgxStatementRepository) ListPendingStatements(ctx context.Context) ([]domain.MonthlyStatement, error) {
	query := `SELECT ` + statementColumns + ` FROM monthly_statements WHERE status = 'PENDING' ORDER BY submitted_at;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending statements: %w", err)
	}
	defer rows.Close()

	return collectStatements(rows)
}

// ReviewStatement records a review decision conditionally on the statement
// still being PENDING.
func (r *PgxStatementRepository) ReviewStatement(ctx context.Context, statementID string, status domain.StatementStatus, observations string, reviewedBy string, now time.Time) error {
	query := `
		UPDATE monthly_statements
		SET status = $2, observations = $3, reviewed_by = $4, reviewed_at = $5,
		    last_updated_at = $5, last_updated_by = $4
		WHERE statement_id = $1 AND status = 'PENDING';
	`
	tag, err := r.pool.Exec(ctx, query, statementID, string(status), observations, reviewedBy, now)
	if err != nil {
		return fmt.Errorf("failed to review statement %s: %w", statementID, err)
	}
	if tag.RowsAffected() == 0 {
		var current string
		err := r.pool.QueryRow(ctx, `SELECT status FROM monthly_statements WHERE statement_id = $1;`, statementID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to inspect statement %s after conflict: %w", statementID, err)
		}
		return fmt.Errorf("%w: statement %s already reviewed as %s", apperrors.ErrInvalidState, statementID, current)
	}
	return nil
}

func collectStatements(rows pgx.Rows) ([]domain.MonthlyStatement, error) {
	statements := []models.MonthlyStatement{}
	for rows.Next() {
		m, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement row: %w", err)
		}
		statements = append(statements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statement rows: %w", err)
	}
	return mapping.ToDomainMonthlyStatementSlice(statements), nil
}

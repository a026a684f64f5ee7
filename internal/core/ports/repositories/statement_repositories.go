package repositories

import (
	"context"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// StatementReader defines read operations for monthly statement data
type StatementReader interface {
	// FindStatementByID retrieves a specific statement by its unique identifier.
	FindStatementByID(ctx context.Context, statementID string) (*domain.MonthlyStatement, error)

	// FindStatementByPeriod retrieves the statement of a trust for one month,
	// if any.
	FindStatementByPeriod(ctx context.Context, trustID string, year int, month int) (*domain.MonthlyStatement, error)

	// ListStatements retrieves a paginated list of statements for a given
	// trust, newest period first.
	ListStatements(ctx context.Context, trustID string, limit int, offset int) ([]domain.MonthlyStatement, error)

	// ListPendingStatements retrieves every statement still awaiting review,
	// across all trusts. Feeds the tacit approval sweep.
	ListPendingStatements(ctx context.Context) ([]domain.MonthlyStatement, error)
}

// StatementWriter defines write operations for monthly statement data
type StatementWriter interface {
	// SaveStatement persists a new statement.
	SaveStatement(ctx context.Context, statement domain.MonthlyStatement) error

	// ReviewStatement records a review decision. Conditional on the statement
	// still being PENDING.
	ReviewStatement(ctx context.Context, statementID string, status domain.StatementStatus, observations string, reviewedBy string, now time.Time) error
}

// StatementRepositoryFacade combines all statement-related repository interfaces
// This is a facade for clients that need access to all operations
type StatementRepositoryFacade interface {
	StatementReader
	StatementWriter
}

package services

import (
	"context"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// StatementReaderSvc defines read operations for monthly statement data
type StatementReaderSvc interface {
	// GetStatementByID retrieves a specific statement of a trust.
	GetStatementByID(ctx context.Context, trustID string, statementID string) (*domain.MonthlyStatement, error)

	// ListStatements retrieves a paginated list of statements for a given
	// trust, newest period first.
	ListStatements(ctx context.Context, trustID string, limit int, offset int) ([]domain.MonthlyStatement, error)
}

// StatementWriterSvc defines write operations for monthly statement data
type StatementWriterSvc interface {
	// SubmitStatement files the statement of a trust for one month. A period
	// can only be filed once.
	SubmitStatement(ctx context.Context, trustID string, req dto.SubmitStatementRequest, userID string) (*domain.MonthlyStatement, error)

	// ReviewStatement approves or observes a pending statement.
	ReviewStatement(ctx context.Context, trustID string, statementID string, req dto.ReviewStatementRequest, userID string) (*domain.MonthlyStatement, error)

	// ApplyTacitApprovals approves every statement left unreviewed for ten
	// business days after submission. Returns how many were approved.
	ApplyTacitApprovals(ctx context.Context, now time.Time) (int, error)
}

// StatementSvcFacade combines all statement-related service interfaces
// This is a facade for clients that need access to all operations
type StatementSvcFacade interface {
	StatementReaderSvc
	StatementWriterSvc
}

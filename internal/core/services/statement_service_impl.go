package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// tacitApprovalBusinessDays is the review window: a statement left PENDING
// this many business days after submission is approved tacitly.
const tacitApprovalBusinessDays = 10

// systemActorID marks writes made by the application itself.
const systemActorID = "system"

// statementServiceImpl implements the StatementSvcFacade interface
type statementServiceImpl struct {
	BaseService
	statementRepo portsrepo.StatementRepositoryFacade
	trustRepo     portsrepo.TrustReader
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementServiceImpl)

// WithTrustReaderForStatement adds the trust reader dependency
func WithTrustReaderForStatement(repo portsrepo.TrustReader) StatementServiceOption {
	return func(s *statementServiceImpl) {
		s.trustRepo = repo
	}
}

// WithStatementAuthorizer adds the authorizer dependency
func WithStatementAuthorizer(authorizer portssvc.ActorAuthSvc) StatementServiceOption {
	return func(s *statementServiceImpl) {
		s.TrustAuthorizer = authorizer
	}
}

// NewStatementServiceImpl creates a new statement service with the provided options
func NewStatementServiceImpl(repo portsrepo.StatementRepositoryFacade, options ...StatementServiceOption) portssvc.StatementSvcFacade {
	svc := &statementServiceImpl{statementRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure statementServiceImpl implements the StatementSvcFacade interface
var _ portssvc.StatementSvcFacade = (*statementServiceImpl)(nil)

// SubmitStatement files the statement for one month. A period can only be
// filed once.
func (s *statementServiceImpl) SubmitStatement(ctx context.Context, trustID string, req dto.SubmitStatementRequest, userID string) (*domain.MonthlyStatement, error) {
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleFiduciary); err != nil {
		return nil, err
	}
	if _, err := s.trustRepo.FindTrustByID(ctx, trustID); err != nil {
		return nil, err
	}

	if _, err := s.statementRepo.FindStatementByPeriod(ctx, trustID, req.Year, req.Month); err == nil {
		return nil, fmt.Errorf("%w: statement for %d-%02d already filed", apperrors.ErrDuplicate, req.Year, req.Month)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	statement := domain.MonthlyStatement{
		StatementID:  uuid.NewString(),
		TrustID:      trustID,
		Year:         req.Year,
		Month:        req.Month,
		Status:       domain.StatementPending,
		TotalIncome:  req.TotalIncome,
		TotalExpense: req.TotalExpense,
		ClosingValue: req.ClosingValue,
		SubmittedAt:  now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.statementRepo.SaveStatement(ctx, statement); err != nil {
		s.LogError(ctx, err, "failed to save statement",
			slog.String("trust_id", trustID),
			slog.Int("year", req.Year),
			slog.Int("month", req.Month))
		return nil, err
	}

	s.LogInfo(ctx, "statement submitted",
		slog.String("statement_id", statement.StatementID),
		slog.String("trust_id", trustID))
	return &statement, nil
}

func (s *statementServiceImpl) GetStatementByID(ctx context.Context, trustID string, statementID string) (*domain.MonthlyStatement, error) {
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		return nil, err
	}
	if statement.TrustID != trustID {
		return nil, apperrors.ErrNotFound
	}
	return statement, nil
}

func (s *statementServiceImpl) ListStatements(ctx context.Context, trustID string, limit int, offset int) ([]domain.MonthlyStatement, error) {
	return s.statementRepo.ListStatements(ctx, trustID, limit, offset)
}

// ReviewStatement approves or observes a pending statement.
func (s *statementServiceImpl) ReviewStatement(ctx context.Context, trustID string, statementID string, req dto.ReviewStatementRequest, userID string) (*domain.MonthlyStatement, error) {
	if err := s.AuthorizeActor(ctx, trustID, userID, domain.RoleCommittee, domain.RoleAuditor); err != nil {
		return nil, err
	}
	if _, err := s.GetStatementByID(ctx, trustID, statementID); err != nil {
		return nil, err
	}

	if err := s.statementRepo.ReviewStatement(ctx, statementID, req.Status, req.Observations, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to review statement", slog.String("statement_id", statementID))
		return nil, err
	}

	s.LogInfo(ctx, "statement reviewed",
		slog.String("statement_id", statementID),
		slog.String("status", string(req.Status)))
	return s.statementRepo.FindStatementByID(ctx, statementID)
}

// ApplyTacitApprovals approves every statement whose review window elapsed.
// Statements already reviewed concurrently are skipped, not failed.
func (s *statementServiceImpl) ApplyTacitApprovals(ctx context.Context, now time.Time) (int, error) {
	pending, err := s.statementRepo.ListPendingStatements(ctx)
	if err != nil {
		return 0, err
	}

	approved := 0
	for _, statement := range pending {
		if businessDaysBetween(statement.SubmittedAt, now) < tacitApprovalBusinessDays {
			continue
		}
		err := s.statementRepo.ReviewStatement(ctx, statement.StatementID,
			domain.StatementTacitlyApproved, "review window elapsed without observations", systemActorID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidState) {
				continue
			}
			s.LogError(ctx, err, "failed to tacitly approve statement",
				slog.String("statement_id", statement.StatementID))
			return approved, err
		}
		approved++
		s.LogInfo(ctx, "statement tacitly approved",
			slog.String("statement_id", statement.StatementID),
			slog.String("trust_id", statement.TrustID))
	}
	return approved, nil
}

// businessDaysBetween counts Monday-to-Friday days strictly after from, up to
// and including to's date.
func businessDaysBetween(from, to time.Time) int {
	fy, fm, fd := from.UTC().Date()
	ty, tm, td := to.UTC().Date()
	day := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	days := 0
	for day.Before(end) {
		day = day.AddDate(0, 0, 1)
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

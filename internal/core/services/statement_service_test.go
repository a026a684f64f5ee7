package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/core/services"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// --- Test Suite Setup ---

type StatementServiceTestSuite struct {
	suite.Suite
	mockStatementRepo *MockStatementRepository
	mockTrustRepo     *MockTrustRepository
	mockAuthorizer    *MockAuthorizer
	service           portssvc.StatementSvcFacade
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.mockTrustRepo = new(MockTrustRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.service = services.NewStatementServiceImpl(
		suite.mockStatementRepo,
		services.WithTrustReaderForStatement(suite.mockTrustRepo),
		services.WithStatementAuthorizer(suite.mockAuthorizer),
	)
}

func submitRequest() dto.SubmitStatementRequest {
	return dto.SubmitStatementRequest{
		Year:         2026,
		Month:        7,
		TotalIncome:  decimal.NewFromInt(1200),
		TotalExpense: decimal.NewFromInt(300),
		ClosingValue: decimal.NewFromInt(100900),
	}
}

// --- Test Cases ---

func (suite *StatementServiceTestSuite) TestSubmitStatement_Success() {
	ctx := context.Background()
	trustID := "2026-0001"
	userID := uuid.NewString()
	req := submitRequest()

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trustID).Return(&domain.Trust{TrustID: trustID}, nil).Once()
	suite.mockStatementRepo.On("FindStatementByPeriod", ctx, trustID, 2026, 7).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStatementRepo.On("SaveStatement", ctx, mock.AnythingOfType("domain.MonthlyStatement")).Return(nil).Once()

	statement, err := suite.service.SubmitStatement(ctx, trustID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.NotEmpty(statement.StatementID)
	suite.Equal(domain.StatementPending, statement.Status)
	suite.Equal(2026, statement.Year)
	suite.Equal(7, statement.Month)
	suite.WithinDuration(time.Now(), statement.SubmittedAt, time.Second)

	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestSubmitStatement_DuplicatePeriod() {
	ctx := context.Background()
	trustID := "2026-0001"
	userID := uuid.NewString()
	req := submitRequest()
	existing := &domain.MonthlyStatement{StatementID: uuid.NewString(), TrustID: trustID, Year: 2026, Month: 7}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trustID, userID, domain.RoleFiduciary).Return(nil).Once()
	suite.mockTrustRepo.On("FindTrustByID", ctx, trustID).Return(&domain.Trust{TrustID: trustID}, nil).Once()
	suite.mockStatementRepo.On("FindStatementByPeriod", ctx, trustID, 2026, 7).Return(existing, nil).Once()

	statement, err := suite.service.SubmitStatement(ctx, trustID, req, userID)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "SaveStatement", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestReviewStatement_Observed() {
	ctx := context.Background()
	trustID := "2026-0001"
	userID := uuid.NewString()
	pending := &domain.MonthlyStatement{StatementID: uuid.NewString(), TrustID: trustID, Status: domain.StatementPending}
	reviewed := *pending
	reviewed.Status = domain.StatementObserved
	reviewed.Observations = "closing value does not match the asset ledger"

	req := dto.ReviewStatementRequest{Status: domain.StatementObserved, Observations: reviewed.Observations}

	suite.mockAuthorizer.On("AuthorizeTrustRole", ctx, trustID, userID, domain.RoleCommittee, domain.RoleAuditor).Return(nil).Once()
	suite.mockStatementRepo.On("FindStatementByID", ctx, pending.StatementID).Return(pending, nil).Once()
	suite.mockStatementRepo.On("ReviewStatement", ctx, pending.StatementID, domain.StatementObserved,
		req.Observations, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStatementRepo.On("FindStatementByID", ctx, pending.StatementID).Return(&reviewed, nil).Once()

	statement, err := suite.service.ReviewStatement(ctx, trustID, pending.StatementID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatementObserved, statement.Status)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestApplyTacitApprovals_WindowBoundary() {
	ctx := context.Background()
	// Friday
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// submitted Friday two weeks earlier: exactly 10 business days elapsed
	dueStatement := domain.MonthlyStatement{
		StatementID: uuid.NewString(),
		TrustID:     "2026-0001",
		Status:      domain.StatementPending,
		SubmittedAt: time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC),
	}
	// submitted the Monday after: only 9 business days elapsed
	recentStatement := domain.MonthlyStatement{
		StatementID: uuid.NewString(),
		TrustID:     "2026-0002",
		Status:      domain.StatementPending,
		SubmittedAt: time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC),
	}

	suite.mockStatementRepo.On("ListPendingStatements", ctx).
		Return([]domain.MonthlyStatement{dueStatement, recentStatement}, nil).Once()
	suite.mockStatementRepo.On("ReviewStatement", ctx, dueStatement.StatementID, domain.StatementTacitlyApproved,
		mock.AnythingOfType("string"), "system", now).Return(nil).Once()

	approved, err := suite.service.ApplyTacitApprovals(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, approved)
	suite.mockStatementRepo.AssertExpectations(suite.T())
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "ReviewStatement", ctx, recentStatement.StatementID,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestApplyTacitApprovals_SkipsConcurrentlyReviewed() {
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	statement := domain.MonthlyStatement{
		StatementID: uuid.NewString(),
		TrustID:     "2026-0001",
		Status:      domain.StatementPending,
		SubmittedAt: time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC),
	}

	suite.mockStatementRepo.On("ListPendingStatements", ctx).
		Return([]domain.MonthlyStatement{statement}, nil).Once()
	// a committee review landed between the listing and the sweep
	suite.mockStatementRepo.On("ReviewStatement", ctx, statement.StatementID, domain.StatementTacitlyApproved,
		mock.AnythingOfType("string"), "system", now).Return(apperrors.ErrInvalidState).Once()

	approved, err := suite.service.ApplyTacitApprovals(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(0, approved)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// Shared mocks for the service test suites. Every suite builds its own
// instances in SetupTest, the types live here so they are defined once.

// MockTrustRepository is a mock type for the TrustRepositoryFacade interface
type MockTrustRepository struct {
	mock.Mock
}

func (m *MockTrustRepository) FindTrustByID(ctx context.Context, trustID string) (*domain.Trust, error) {
	args := m.Called(ctx, trustID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trust), args.Error(1)
}

func (m *MockTrustRepository) ListTrusts(ctx context.Context, limit int, offset int) ([]domain.Trust, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trust), args.Error(1)
}

func (m *MockTrustRepository) CountTrustsConstitutedInYear(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

func (m *MockTrustRepository) SaveTrust(ctx context.Context, trust domain.Trust) error {
	args := m.Called(ctx, trust)
	return args.Error(0)
}

func (m *MockTrustRepository) UpdateTrust(ctx context.Context, trust domain.Trust) error {
	args := m.Called(ctx, trust)
	return args.Error(0)
}

func (m *MockTrustRepository) UpdateTrustStatus(ctx context.Context, trustID string, status domain.TrustStatus, userID string, now time.Time) error {
	args := m.Called(ctx, trustID, status, userID, now)
	return args.Error(0)
}

// MockAssetRepository is a mock type for the AssetRepositoryFacade interface
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetsByTrust(ctx context.Context, trustID string) ([]domain.Asset, error) {
	args := m.Called(ctx, trustID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, trustID string, status *domain.ComplianceStatus, limit int, offset int) ([]domain.Asset, error) {
	args := m.Called(ctx, trustID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) ResolveAsset(ctx context.Context, assetID string, status domain.ComplianceStatus, reason string, resolvedBy string, now time.Time) error {
	args := m.Called(ctx, assetID, status, reason, resolvedBy, now)
	return args.Error(0)
}

func (m *MockAssetRepository) ReopenAsset(ctx context.Context, assetID string, userID string, now time.Time) error {
	args := m.Called(ctx, assetID, userID, now)
	return args.Error(0)
}

func (m *MockAssetRepository) FindAssetForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, tx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ResolveAssetInTx(ctx context.Context, tx pgx.Tx, assetID string, status domain.ComplianceStatus, reason string, resolvedBy string, now time.Time) error {
	args := m.Called(ctx, tx, assetID, status, reason, resolvedBy, now)
	return args.Error(0)
}

// MockVoteRepository is a mock type for the VoteRepositoryFacade interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) FindVotesByAssetRound(ctx context.Context, assetID string, round int) ([]domain.ExceptionVote, error) {
	args := m.Called(ctx, assetID, round)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExceptionVote), args.Error(1)
}

func (m *MockVoteRepository) FindVotesByAsset(ctx context.Context, assetID string) ([]domain.ExceptionVote, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExceptionVote), args.Error(1)
}

func (m *MockVoteRepository) RecordVote(ctx context.Context, vote domain.ExceptionVote, committeeSize int) (domain.VoteTally, error) {
	args := m.Called(ctx, vote, committeeSize)
	return args.Get(0).(domain.VoteTally), args.Error(1)
}

// MockStatementRepository is a mock type for the StatementRepositoryFacade interface
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) FindStatementByID(ctx context.Context, statementID string) (*domain.MonthlyStatement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyStatement), args.Error(1)
}

func (m *MockStatementRepository) FindStatementByPeriod(ctx context.Context, trustID string, year int, month int) (*domain.MonthlyStatement, error) {
	args := m.Called(ctx, trustID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyStatement), args.Error(1)
}

func (m *MockStatementRepository) ListStatements(ctx context.Context, trustID string, limit int, offset int) ([]domain.MonthlyStatement, error) {
	args := m.Called(ctx, trustID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyStatement), args.Error(1)
}

func (m *MockStatementRepository) ListPendingStatements(ctx context.Context) ([]domain.MonthlyStatement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyStatement), args.Error(1)
}

func (m *MockStatementRepository) SaveStatement(ctx context.Context, statement domain.MonthlyStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) ReviewStatement(ctx context.Context, statementID string, status domain.StatementStatus, observations string, reviewedBy string, now time.Time) error {
	args := m.Called(ctx, statementID, status, observations, reviewedBy, now)
	return args.Error(0)
}

// MockAuthorizer is a mock type for the ActorAuthSvc interface
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthenticateActor(ctx context.Context, email string, password string) (*domain.Actor, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockAuthorizer) AuthorizeTrustRole(ctx context.Context, trustID string, actorID string, roles ...domain.ActorRole) error {
	callArgs := make([]interface{}, 0, len(roles)+3)
	callArgs = append(callArgs, ctx, trustID, actorID)
	for _, role := range roles {
		callArgs = append(callArgs, role)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

// MockAlertService is a mock type for the AlertSvcFacade interface
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) ListAlerts(ctx context.Context, actorID string, limit int, offset int) ([]domain.Alert, error) {
	args := m.Called(ctx, actorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func (m *MockAlertService) CountUnread(ctx context.Context, actorID string) (int, error) {
	args := m.Called(ctx, actorID)
	return args.Int(0), args.Error(1)
}

func (m *MockAlertService) MarkRead(ctx context.Context, actorID string, alertID string) error {
	args := m.Called(ctx, actorID, alertID)
	return args.Error(0)
}

func (m *MockAlertService) NotifyTrust(ctx context.Context, trustID string, assetID string, kind domain.AlertKind, severity domain.AlertSeverity, message string) error {
	args := m.Called(ctx, trustID, assetID, kind, severity, message)
	return args.Error(0)
}

package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
	"github.com/trustops/trust_governance_app/internal/handlers"
	"github.com/trustops/trust_governance_app/internal/middleware"
)

// --- Mock ExceptionService ---
type MockExceptionService struct {
	mock.Mock
}

func (m *MockExceptionService) CastVote(ctx context.Context, trustID string, assetID string, req dto.CastVoteRequest, voterID string) (*dto.VoteStatusResponse, error) {
	args := m.Called(ctx, trustID, assetID, req, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoteStatusResponse), args.Error(1)
}

func (m *MockExceptionService) GetVoteStatus(ctx context.Context, trustID string, assetID string) (*dto.VoteStatusResponse, error) {
	args := m.Called(ctx, trustID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoteStatusResponse), args.Error(1)
}

func (m *MockExceptionService) ResolveDirect(ctx context.Context, trustID string, assetID string, req dto.ResolveExceptionRequest, userID string) (*domain.Asset, error) {
	args := m.Called(ctx, trustID, assetID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockExceptionService) ReopenRound(ctx context.Context, trustID string, assetID string, userID string) (*domain.Asset, error) {
	args := m.Called(ctx, trustID, assetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ExceptionSvcFacade = (*MockExceptionService)(nil)

// --- Test Suite ---
type ExceptionHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockExceptionService *MockExceptionService
	jwtSecret            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ExceptionHandlerTestSuite) generateTestToken(actorID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tga-test",
		Subject:   actorID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ExceptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockExceptionService = new(MockExceptionService)

	// Mimic the nesting used by the trust routes
	assets := suite.router.Group("/api/v1/trusts/:trust_id/assets")
	handlers.RegisterExceptionRoutes(assets, suite.mockExceptionService)
}

// --- Test Cases ---

func (suite *ExceptionHandlerTestSuite) TestCastVote_Success() {
	trustID := "2026-0001"
	assetID := uuid.NewString()
	voterID := uuid.NewString()

	expectedStatus := &dto.VoteStatusResponse{
		AssetID:          assetID,
		TrustID:          trustID,
		ComplianceStatus: domain.StatusExceptionApproved,
		Round:            1,
		ApproveVotes:     2,
		RejectVotes:      0,
		PendingVotes:     1,
		Majority:         2,
		TotalMembers:     3,
		Outcome:          domain.OutcomeApproved,
	}

	suite.mockExceptionService.On("CastVote",
		mock.AnythingOfType("*context.valueCtx"),
		trustID,
		assetID,
		mock.MatchedBy(func(req dto.CastVoteRequest) bool {
			return req.Vote == domain.VoteApprove && req.Reason == "Strategic holding"
		}),
		voterID,
	).Return(expectedStatus, nil).Once()

	url := fmt.Sprintf("/api/v1/trusts/%s/assets/%s/votes", trustID, assetID)
	body := `{"vote":"APPROVE","reason":"Strategic holding"}`
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(voterID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.VoteStatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(domain.OutcomeApproved, responseBody.Outcome)
	suite.Equal(2, responseBody.ApproveVotes)
	suite.Equal(domain.StatusExceptionApproved, responseBody.ComplianceStatus)

	suite.mockExceptionService.AssertExpectations(suite.T())
}

func (suite *ExceptionHandlerTestSuite) TestCastVote_DuplicateVoteConflicts() {
	trustID := "2026-0001"
	assetID := uuid.NewString()
	voterID := uuid.NewString()

	suite.mockExceptionService.On("CastVote",
		mock.AnythingOfType("*context.valueCtx"),
		trustID,
		assetID,
		mock.AnythingOfType("dto.CastVoteRequest"),
		voterID,
	).Return(nil, apperrors.ErrDuplicateVote).Once()

	url := fmt.Sprintf("/api/v1/trusts/%s/assets/%s/votes", trustID, assetID)
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(`{"vote":"APPROVE"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(voterID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockExceptionService.AssertExpectations(suite.T())
}

func (suite *ExceptionHandlerTestSuite) TestCastVote_InvalidVoteValueRejected() {
	trustID := "2026-0001"
	assetID := uuid.NewString()
	voterID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/trusts/%s/assets/%s/votes", trustID, assetID)
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(`{"vote":"MAYBE"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(voterID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExceptionService.AssertNotCalled(suite.T(), "CastVote")
}

func (suite *ExceptionHandlerTestSuite) TestCastVote_MissingTokenUnauthorized() {
	url := fmt.Sprintf("/api/v1/trusts/%s/assets/%s/votes", "2026-0001", uuid.NewString())
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(`{"vote":"APPROVE"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExceptionService.AssertNotCalled(suite.T(), "CastVote")
}

func (suite *ExceptionHandlerTestSuite) TestGetVoteStatus_NotFound() {
	trustID := "2026-0001"
	assetID := uuid.NewString()

	suite.mockExceptionService.On("GetVoteStatus",
		mock.AnythingOfType("*context.valueCtx"),
		trustID,
		assetID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/trusts/%s/assets/%s/votes", trustID, assetID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockExceptionService.AssertExpectations(suite.T())
}

func (suite *ExceptionHandlerTestSuite) TestResolveDirect_WrongModeConflicts() {
	trustID := "2026-0002"
	assetID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockExceptionService.On("ResolveDirect",
		mock.AnythingOfType("*context.valueCtx"),
		trustID,
		assetID,
		mock.AnythingOfType("dto.ResolveExceptionRequest"),
		actorID,
	).Return(nil, apperrors.ErrWrongMode).Once()

	url := fmt.Sprintf("/api/v1/trusts/%s/assets/%s/resolve", trustID, assetID)
	body := `{"decision":"APPROVE","reason":"fits the investment strategy"}`
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(actorID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockExceptionService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestExceptionHandler(t *testing.T) {
	suite.Run(t, new(ExceptionHandlerTestSuite))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
	"github.com/trustops/trust_governance_app/internal/middleware"
)

// statementHandler handles HTTP requests related to monthly statements.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{
		statementService: ss,
	}
}

// registerStatementRoutes registers statement routes nested under a specific trust.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.POST("", h.submitStatement)
		statements.GET("", h.listStatements)
		statements.GET("/:statement_id", h.getStatement)
		statements.POST("/:statement_id/review", h.reviewStatement)
	}
}

// registerStatementSweepRoutes registers the cross-trust tacit approval sweep.
func registerStatementSweepRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)
	rg.POST("/statements/tacit-approvals", h.applyTacitApprovals)
}

// submitStatement godoc
// @Summary Submit a monthly statement
// @Description Files the fiduciary's account statement for one month. A period can only be filed once.
// @Tags statements
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   statement body dto.SubmitStatementRequest true "Statement details"
// @Success 201 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 409 {object} map[string]string "Statement for this period already filed"
// @Failure 500 {object} map[string]string "Failed to submit statement"
// @Security BearerAuth
// @Router /trusts/{trust_id}/statements [post]
func (h *statementHandler) submitStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var req dto.SubmitStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statement, err := h.statementService.SubmitStatement(c.Request.Context(), trustID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to submit statement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit statement"})
		}
		return
	}

	logger.Info("Statement submitted", slog.String("statement_id", statement.StatementID))
	c.JSON(http.StatusCreated, dto.ToStatementResponse(statement))
}

// listStatements godoc
// @Summary List the statements of a trust
// @Description Retrieves a paginated list of monthly statements, newest period first
// @Tags statements
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListStatementsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list statements"
// @Security BearerAuth
// @Router /trusts/{trust_id}/statements [get]
func (h *statementHandler) listStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var params dto.ListStatementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListStatements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	statements, err := h.statementService.ListStatements(c.Request.Context(), trustID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list statements from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list statements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStatementsResponse(statements))
}

// getStatement godoc
// @Summary Get a statement by ID
// @Description Retrieves details for a specific monthly statement
// @Tags statements
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   statement_id path string true "Statement ID"
// @Success 200 {object} dto.StatementResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Statement not found"
// @Failure 500 {object} map[string]string "Failed to retrieve statement"
// @Security BearerAuth
// @Router /trusts/{trust_id}/statements/{statement_id} [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	statementID := c.Param("statement_id")

	statement, err := h.statementService.GetStatementByID(c.Request.Context(), trustID, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Statement not found"})
		} else {
			logger.Error("Failed to get statement from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// reviewStatement godoc
// @Summary Review a pending statement
// @Description Records an APPROVED or OBSERVED review decision on a pending statement
// @Tags statements
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   statement_id path string true "Statement ID"
// @Param   review body dto.ReviewStatementRequest true "Review decision"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Statement not found"
// @Failure 409 {object} map[string]string "Statement already reviewed"
// @Failure 500 {object} map[string]string "Failed to review statement"
// @Security BearerAuth
// @Router /trusts/{trust_id}/statements/{statement_id}/review [post]
func (h *statementHandler) reviewStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	statementID := c.Param("statement_id")

	var req dto.ReviewStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReviewStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statement, err := h.statementService.ReviewStatement(c.Request.Context(), trustID, statementID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Statement not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to review statement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review statement"})
		}
		return
	}

	logger.Info("Statement reviewed", slog.String("statement_id", statementID),
		slog.String("status", string(statement.Status)))
	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// applyTacitApprovals godoc
// @Summary Apply tacit approvals
// @Description Approves every pending statement whose ten business day review window has elapsed
// @Tags statements
// @Produce  json
// @Success 200 {object} map[string]int "approved count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to apply tacit approvals"
// @Security BearerAuth
// @Router /statements/tacit-approvals [post]
func (h *statementHandler) applyTacitApprovals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	approved, err := h.statementService.ApplyTacitApprovals(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to apply tacit approvals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply tacit approvals"})
		return
	}

	logger.Info("Tacit approvals applied", slog.Int("approved", approved))
	c.JSON(http.StatusOK, gin.H{"approved": approved})
}

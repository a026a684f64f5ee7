package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/dto"
	"github.com/trustops/trust_governance_app/internal/middleware"
)

// sessionHandler handles HTTP requests related to committee sessions.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService: ss,
	}
}

// registerSessionRoutes registers session routes nested under a specific trust.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("", h.listSessions)
		sessions.POST("/generate-quarterly", h.generateQuarterlySession)
		sessions.GET("/:session_id", h.getSession)
		sessions.PUT("/:session_id", h.updateSession)
	}
}

// createSession godoc
// @Summary Schedule a committee session
// @Description Schedules a new session for the trust's committee
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   session body dto.CreateSessionRequest true "Session details"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to schedule session"
// @Security BearerAuth
// @Router /trusts/{trust_id}/sessions [post]
func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), trustID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		default:
			logger.Error("Failed to schedule session in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule session"})
		}
		return
	}

	logger.Info("Session scheduled", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// listSessions godoc
// @Summary List the sessions of a trust
// @Description Retrieves a paginated list of committee sessions
// @Tags sessions
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListSessionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list sessions"
// @Security BearerAuth
// @Router /trusts/{trust_id}/sessions [get]
func (h *sessionHandler) listSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var params dto.ListSessionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSessions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), trustID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list sessions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSessionsResponse(sessions))
}

// getSession godoc
// @Summary Get a session by ID
// @Description Retrieves details for a specific committee session
// @Tags sessions
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Failed to retrieve session"
// @Security BearerAuth
// @Router /trusts/{trust_id}/sessions/{session_id} [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	sessionID := c.Param("session_id")

	session, err := h.sessionService.GetSessionByID(c.Request.Context(), trustID, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		} else {
			logger.Error("Failed to get session from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve session"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// updateSession godoc
// @Summary Update a session
// @Description Applies partial updates to a session (date, status, quorum, attendees, minutes)
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   session_id path string true "Session ID"
// @Param   session body dto.UpdateSessionRequest true "Fields to update"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session is cancelled"
// @Failure 500 {object} map[string]string "Failed to update session"
// @Security BearerAuth
// @Router /trusts/{trust_id}/sessions/{session_id} [put]
func (h *sessionHandler) updateSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	sessionID := c.Param("session_id")

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.sessionService.UpdateSession(c.Request.Context(), trustID, sessionID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update session in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
		}
		return
	}

	logger.Info("Session updated", slog.String("session_id", sessionID))
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// generateQuarterlySession godoc
// @Summary Generate the next quarterly session
// @Description Schedules the next due quarterly session at the start of the first quarter window without one
// @Tags sessions
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 201 {object} dto.SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to generate session"
// @Security BearerAuth
// @Router /trusts/{trust_id}/sessions/generate-quarterly [post]
func (h *sessionHandler) generateQuarterlySession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.sessionService.GenerateQuarterlySession(c.Request.Context(), trustID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		default:
			logger.Error("Failed to generate quarterly session in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session"})
		}
		return
	}

	logger.Info("Quarterly session generated", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

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

// trustHandler handles HTTP requests related to trusts.
type trustHandler struct {
	trustService portssvc.TrustSvcFacade
}

// newTrustHandler creates a new trustHandler.
func newTrustHandler(ts portssvc.TrustSvcFacade) *trustHandler {
	return &trustHandler{
		trustService: ts,
	}
}

// registerTrustRoutes registers routes related to trusts and nests the
// per-trust resources (assets, votes, sessions, statements, members) under
// /trusts/:trust_id.
func registerTrustRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newTrustHandler(services.Trust)

	trustsTopLevel := rg.Group("/trusts")
	{
		trustsTopLevel.POST("", h.createTrust)
		trustsTopLevel.GET("", h.listTrusts)
	}

	trustSpecific := rg.Group("/trusts/:trust_id")
	{
		trustSpecific.GET("", h.getTrust)
		trustSpecific.PUT("/limits", h.updateTrustLimits)
		trustSpecific.POST("/activate", h.activateTrust)
		trustSpecific.POST("/close", h.closeTrust)
		trustSpecific.GET("/summary", h.getTrustSummary)
		trustSpecific.GET("/timeline", h.getTrustTimeline)
		trustSpecific.GET("/next-quarterly", h.getNextQuarterly)
		trustSpecific.GET("/analytics", h.getComplianceAnalytics)

		registerAssetRoutes(trustSpecific, services.Asset, services.Exception)
		registerSessionRoutes(trustSpecific, services.Session)
		registerStatementRoutes(trustSpecific, services.Statement)
		registerMembershipRoutes(trustSpecific, services.Actor)
	}
}

// createTrust godoc
// @Summary Constitute a new trust
// @Description Creates a new trust in DRAFT status with a correlative trust ID
// @Tags trusts
// @Accept  json
// @Produce  json
// @Param   trust body dto.CreateTrustRequest true "Trust details"
// @Success 201 {object} dto.TrustResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create trust"
// @Security BearerAuth
// @Router /trusts [post]
func (h *trustHandler) createTrust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTrustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrust", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Creator actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create trust", slog.String("trust_name", req.Name))

	trust, err := h.trustService.CreateTrust(c.Request.Context(), req, creatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating trust", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create trust in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trust"})
		}
		return
	}

	logger.Info("Trust created successfully", slog.String("trust_id", trust.TrustID))
	c.JSON(http.StatusCreated, dto.ToTrustResponse(trust))
}

// listTrusts godoc
// @Summary List trusts
// @Description Retrieves a paginated list of trusts
// @Tags trusts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTrustsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list trusts"
// @Security BearerAuth
// @Router /trusts [get]
func (h *trustHandler) listTrusts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTrustsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTrusts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	trusts, err := h.trustService.ListTrusts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list trusts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trusts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTrustsResponse(trusts))
}

// getTrust godoc
// @Summary Get a trust by ID
// @Description Retrieves details for a specific trust
// @Tags trusts
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 200 {object} dto.TrustResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to retrieve trust"
// @Security BearerAuth
// @Router /trusts/{trust_id} [get]
func (h *trustHandler) getTrust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	trust, err := h.trustService.GetTrustByID(c.Request.Context(), trustID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Trust not found", slog.String("trust_id", trustID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		} else {
			logger.Error("Failed to get trust from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trust"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTrustResponse(trust))
}

// updateTrustLimits godoc
// @Summary Update the category limits of a trust
// @Description Changes the bond and other investment limits. Fiduciary only.
// @Tags trusts
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   limits body dto.UpdateTrustLimitsRequest true "New limits"
// @Success 200 {object} dto.TrustResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to update trust limits"
// @Security BearerAuth
// @Router /trusts/{trust_id}/limits [put]
func (h *trustHandler) updateTrustLimits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var req dto.UpdateTrustLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTrustLimits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trust, err := h.trustService.UpdateTrustLimits(c.Request.Context(), trustID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		default:
			logger.Error("Failed to update trust limits in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trust limits"})
		}
		return
	}

	logger.Info("Trust limits updated", slog.String("trust_id", trustID))
	c.JSON(http.StatusOK, dto.ToTrustResponse(trust))
}

// activateTrust godoc
// @Summary Activate a trust
// @Description Moves a DRAFT trust to ACTIVE so assets can be registered
// @Tags trusts
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 409 {object} map[string]string "Trust is not in DRAFT status"
// @Failure 500 {object} map[string]string "Failed to activate trust"
// @Security BearerAuth
// @Router /trusts/{trust_id}/activate [post]
func (h *trustHandler) activateTrust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.trustService.ActivateTrust(c.Request.Context(), trustID, actorID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to activate trust in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate trust"})
		}
		return
	}

	logger.Info("Trust activated", slog.String("trust_id", trustID))
	c.Status(http.StatusNoContent)
}

// closeTrust godoc
// @Summary Close a trust
// @Description Moves a trust to CLOSED. Fiduciary only.
// @Tags trusts
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 409 {object} map[string]string "Trust already closed"
// @Failure 500 {object} map[string]string "Failed to close trust"
// @Security BearerAuth
// @Router /trusts/{trust_id}/close [post]
func (h *trustHandler) closeTrust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.trustService.CloseTrust(c.Request.Context(), trustID, actorID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close trust in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close trust"})
		}
		return
	}

	logger.Info("Trust closed", slog.String("trust_id", trustID))
	c.Status(http.StatusNoContent)
}

// getTrustSummary godoc
// @Summary Get the allocation summary of a trust
// @Description Evaluates the trust's invested assets against its category limits
// @Tags trusts
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 200 {object} compliance.TrustSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to evaluate trust"
// @Security BearerAuth
// @Router /trusts/{trust_id}/summary [get]
func (h *trustHandler) getTrustSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	summary, err := h.trustService.GetTrustSummary(c.Request.Context(), trustID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		} else {
			logger.Error("Failed to evaluate trust", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate trust"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getTrustTimeline godoc
// @Summary Get the term timeline of a trust
// @Description Reports the trust's position within its maximum statutory term
// @Tags trusts
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 200 {object} timeline.Timeline
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to compute timeline"
// @Security BearerAuth
// @Router /trusts/{trust_id}/timeline [get]
func (h *trustHandler) getTrustTimeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	tl, err := h.trustService.GetTrustTimeline(c.Request.Context(), trustID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		} else {
			logger.Error("Failed to compute timeline", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute timeline"})
		}
		return
	}

	c.JSON(http.StatusOK, tl)
}

// getNextQuarterly godoc
// @Summary Get the next quarterly session due date
// @Description Returns when the next quarterly committee session is due
// @Tags trusts
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 200 {object} dto.NextQuarterlyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to compute due date"
// @Security BearerAuth
// @Router /trusts/{trust_id}/next-quarterly [get]
func (h *trustHandler) getNextQuarterly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	due, err := h.trustService.GetNextQuarterlyDate(c.Request.Context(), trustID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		} else {
			logger.Error("Failed to compute due date", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute due date"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NextQuarterlyResponse{TrustID: trustID, DueDate: due})
}

// getComplianceAnalytics godoc
// @Summary Get compliance analytics for a trust
// @Description Aggregates per-status asset counts, category summaries and the term timeline
// @Tags trusts
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 200 {object} dto.ComplianceAnalyticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Security BearerAuth
// @Router /trusts/{trust_id}/analytics [get]
func (h *trustHandler) getComplianceAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	analytics, err := h.trustService.GetComplianceAnalytics(c.Request.Context(), trustID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		} else {
			logger.Error("Failed to compute analytics", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		}
		return
	}

	c.JSON(http.StatusOK, analytics)
}

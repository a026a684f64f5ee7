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

// exceptionHandler handles HTTP requests for the exception workflow of an asset.
type exceptionHandler struct {
	exceptionService portssvc.ExceptionSvcFacade
}

// newExceptionHandler creates a new exceptionHandler.
func newExceptionHandler(es portssvc.ExceptionSvcFacade) *exceptionHandler {
	return &exceptionHandler{
		exceptionService: es,
	}
}

// RegisterExceptionRoutes registers the exception-workflow routes nested under
// /trusts/:trust_id/assets/:asset_id.
func RegisterExceptionRoutes(rg *gin.RouterGroup, exceptionService portssvc.ExceptionSvcFacade) {
	h := newExceptionHandler(exceptionService)

	asset := rg.Group("/:asset_id")
	{
		asset.POST("/votes", h.castVote)
		asset.GET("/votes", h.getVoteStatus)
		asset.POST("/resolve", h.resolveDirect)
		asset.POST("/reopen", h.reopenRound)
	}
}

// castVote godoc
// @Summary Cast a committee vote on an exception
// @Description Records one committee member's vote. The round resolves as soon as either side reaches floor(committeeSize/2)+1 votes.
// @Tags exceptions
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   asset_id path string true "Asset ID"
// @Param   vote body dto.CastVoteRequest true "Vote"
// @Success 200 {object} dto.VoteStatusResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Voter is not a committee member"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Duplicate vote, closed round or wrong resolution mode"
// @Failure 500 {object} map[string]string "Failed to record vote"
// @Security BearerAuth
// @Router /trusts/{trust_id}/assets/{asset_id}/votes [post]
func (h *exceptionHandler) castVote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	assetID := c.Param("asset_id")

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CastVote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	voterID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status, err := h.exceptionService.CastVote(c.Request.Context(), trustID, assetID, req, voterID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		case errors.Is(err, apperrors.ErrDuplicateVote),
			errors.Is(err, apperrors.ErrRoundClosed),
			errors.Is(err, apperrors.ErrWrongMode),
			errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record vote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		}
		return
	}

	logger.Info("Vote recorded", slog.String("asset_id", assetID), slog.String("outcome", string(status.Outcome)))
	c.JSON(http.StatusOK, status)
}

// getVoteStatus godoc
// @Summary Get the vote status of an asset
// @Description Reports the current round's tally, derived from the append-only vote log, plus the votes themselves
// @Tags exceptions
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   asset_id path string true "Asset ID"
// @Success 200 {object} dto.VoteStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to get vote status"
// @Security BearerAuth
// @Router /trusts/{trust_id}/assets/{asset_id}/votes [get]
func (h *exceptionHandler) getVoteStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	assetID := c.Param("asset_id")

	status, err := h.exceptionService.GetVoteStatus(c.Request.Context(), trustID, assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get vote status from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get vote status"})
		}
		return
	}

	c.JSON(http.StatusOK, status)
}

// resolveDirect godoc
// @Summary Resolve an exception directly
// @Description Approves or rejects an exception in a trust that does not require committee consensus
// @Tags exceptions
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   asset_id path string true "Asset ID"
// @Param   decision body dto.ResolveExceptionRequest true "Resolution"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Closed round or trust requires consensus"
// @Failure 500 {object} map[string]string "Failed to resolve exception"
// @Security BearerAuth
// @Router /trusts/{trust_id}/assets/{asset_id}/resolve [post]
func (h *exceptionHandler) resolveDirect(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	assetID := c.Param("asset_id")

	var req dto.ResolveExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveDirect", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.exceptionService.ResolveDirect(c.Request.Context(), trustID, assetID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		case errors.Is(err, apperrors.ErrWrongMode),
			errors.Is(err, apperrors.ErrRoundClosed),
			errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to resolve exception in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve exception"})
		}
		return
	}

	logger.Info("Exception resolved", slog.String("asset_id", assetID),
		slog.String("status", string(asset.ComplianceStatus)))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// reopenRound godoc
// @Summary Reopen the exception review of a rejected asset
// @Description Puts a NON_COMPLIANT asset back into PENDING_REVIEW in a fresh round. Earlier rounds stay in the vote log.
// @Tags exceptions
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   asset_id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset is not NON_COMPLIANT"
// @Failure 500 {object} map[string]string "Failed to reopen review"
// @Security BearerAuth
// @Router /trusts/{trust_id}/assets/{asset_id}/reopen [post]
func (h *exceptionHandler) reopenRound(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	assetID := c.Param("asset_id")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.exceptionService.ReopenRound(c.Request.Context(), trustID, assetID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reopen review in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reopen review"})
		}
		return
	}

	logger.Info("Review reopened", slog.String("asset_id", assetID), slog.Int("round", asset.VoteRound))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

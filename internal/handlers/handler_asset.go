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

// assetHandler handles HTTP requests related to trust assets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{
		assetService: as,
	}
}

// registerAssetRoutes registers asset routes nested under a specific trust,
// including the exception-workflow routes of each asset.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade, exceptionService portssvc.ExceptionSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.registerAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:asset_id", h.getAsset)

		RegisterExceptionRoutes(assets, exceptionService)
	}
}

// registerAsset godoc
// @Summary Register a new asset
// @Description Registers an asset against a trust. An asset breaching its category limit enters PENDING_REVIEW instead of being rejected.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   asset body dto.RegisterAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trust not found"
// @Failure 409 {object} map[string]string "Trust is not active"
// @Failure 500 {object} map[string]string "Failed to register asset"
// @Security BearerAuth
// @Router /trusts/{trust_id}/assets [post]
func (h *assetHandler) registerAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var req dto.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.RegisterAsset(c.Request.Context(), trustID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trust not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register asset"})
		}
		return
	}

	logger.Info("Asset registered", slog.String("asset_id", asset.AssetID),
		slog.String("status", string(asset.ComplianceStatus)))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List the assets of a trust
// @Description Retrieves a paginated list of assets, optionally filtered by compliance status
// @Tags assets
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   status query string false "Compliance status filter" Enums(COMPLIANT, NON_COMPLIANT, PENDING_REVIEW, EXCEPTION_APPROVED)
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /trusts/{trust_id}/assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAssets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), trustID, params.Status, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list assets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetsResponse(assets))
}

// getAsset godoc
// @Summary Get an asset by ID
// @Description Retrieves details for a specific asset of a trust
// @Tags assets
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   asset_id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Security BearerAuth
// @Router /trusts/{trust_id}/assets/{asset_id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")
	assetID := c.Param("asset_id")

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), trustID, assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get asset from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

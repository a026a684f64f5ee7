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

// alertHandler handles HTTP requests related to governance alerts.
type alertHandler struct {
	alertService portssvc.AlertSvcFacade
}

// newAlertHandler creates a new alertHandler.
func newAlertHandler(as portssvc.AlertSvcFacade) *alertHandler {
	return &alertHandler{
		alertService: as,
	}
}

// registerAlertRoutes registers the alert routes of the logged-in actor.
func registerAlertRoutes(rg *gin.RouterGroup, alertService portssvc.AlertSvcFacade) {
	h := newAlertHandler(alertService)

	alerts := rg.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("/:alert_id/read", h.markRead)
	}
}

// listAlerts godoc
// @Summary List the logged-in actor's alerts
// @Description Retrieves a paginated list of alerts, newest first, with the unread count
// @Tags alerts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAlertsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list alerts"
// @Security BearerAuth
// @Router /alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListAlertsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAlerts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), actorID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list alerts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list alerts"})
		return
	}

	unread, err := h.alertService.CountUnread(c.Request.Context(), actorID)
	if err != nil {
		logger.Error("Failed to count unread alerts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAlertsResponse(alerts, unread))
}

// markRead godoc
// @Summary Mark an alert as read
// @Description Marks one of the logged-in actor's alerts as read
// @Tags alerts
// @Produce  json
// @Param   alert_id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Failed to mark alert read"
// @Security BearerAuth
// @Router /alerts/{alert_id}/read [post]
func (h *alertHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alertID := c.Param("alert_id")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.alertService.MarkRead(c.Request.Context(), actorID, alertID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			logger.Error("Failed to mark alert read", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark alert read"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

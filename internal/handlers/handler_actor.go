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

// actorHandler handles HTTP requests related to actors and trust memberships.
type actorHandler struct {
	actorService portssvc.ActorSvcFacade
}

// newActorHandler creates a new actorHandler.
func newActorHandler(as portssvc.ActorSvcFacade) *actorHandler {
	return &actorHandler{
		actorService: as,
	}
}

// registerActorRoutes registers the top-level actor routes.
func registerActorRoutes(rg *gin.RouterGroup, actorService portssvc.ActorSvcFacade) {
	h := newActorHandler(actorService)

	actors := rg.Group("/actors")
	{
		actors.GET("", h.listActors)
		actors.GET("/:actor_id", h.getActor)
		actors.DELETE("/:actor_id", h.deactivateActor)
	}
}

// registerMembershipRoutes registers membership routes nested under a trust.
func registerMembershipRoutes(rg *gin.RouterGroup, actorService portssvc.ActorSvcFacade) {
	h := newActorHandler(actorService)

	members := rg.Group("/members")
	{
		members.POST("", h.addMembership)
		members.GET("", h.listMembers)
	}
}

// listActors godoc
// @Summary List actors
// @Description Retrieves a paginated list of actors
// @Tags actors
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListActorsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list actors"
// @Security BearerAuth
// @Router /actors [get]
func (h *actorHandler) listActors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListActorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListActors", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actors, err := h.actorService.ListActors(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list actors from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list actors"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListActorsResponse(actors))
}

// getActor godoc
// @Summary Get an actor by ID
// @Description Retrieves details for a specific actor
// @Tags actors
// @Produce  json
// @Param   actor_id path string true "Actor ID"
// @Success 200 {object} dto.ActorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Actor not found"
// @Failure 500 {object} map[string]string "Failed to retrieve actor"
// @Security BearerAuth
// @Router /actors/{actor_id} [get]
func (h *actorHandler) getActor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID := c.Param("actor_id")

	actor, err := h.actorService.GetActorByID(c.Request.Context(), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
		} else {
			logger.Error("Failed to get actor from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve actor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToActorResponse(actor))
}

// deactivateActor godoc
// @Summary Deactivate an actor
// @Description Soft-deletes an actor. Their memberships stop granting access.
// @Tags actors
// @Produce  json
// @Param   actor_id path string true "Actor ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Actor not found"
// @Failure 500 {object} map[string]string "Failed to deactivate actor"
// @Security BearerAuth
// @Router /actors/{actor_id} [delete]
func (h *actorHandler) deactivateActor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID := c.Param("actor_id")

	userID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.actorService.DeactivateActor(c.Request.Context(), actorID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
		} else {
			logger.Error("Failed to deactivate actor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate actor"})
		}
		return
	}

	logger.Info("Actor deactivated", slog.String("actor_id", actorID))
	c.Status(http.StatusNoContent)
}

// addMembership godoc
// @Summary Add an actor to a trust
// @Description Binds an actor to the trust under a governance role. Only an existing fiduciary may change the roster, except for the first membership of a fresh trust.
// @Tags actors
// @Accept  json
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Param   membership body dto.AddMembershipRequest true "Membership details"
// @Success 201 {object} dto.MembershipResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Actor not found"
// @Failure 500 {object} map[string]string "Failed to add membership"
// @Security BearerAuth
// @Router /trusts/{trust_id}/members [post]
func (h *actorHandler) addMembership(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	var req dto.AddMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMembership", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	membership, err := h.actorService.AddTrustMembership(c.Request.Context(), trustID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add membership in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add membership"})
		}
		return
	}

	logger.Info("Membership added", slog.String("trust_id", trustID), slog.String("actor_id", req.ActorID))
	c.JSON(http.StatusCreated, dto.ToMembershipResponse(membership))
}

// listMembers godoc
// @Summary List the members of a trust
// @Description Retrieves every governance membership of the trust
// @Tags actors
// @Produce  json
// @Param   trust_id path string true "Trust ID"
// @Success 200 {array} dto.MembershipResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list members"
// @Security BearerAuth
// @Router /trusts/{trust_id}/members [get]
func (h *actorHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trustID := c.Param("trust_id")

	memberships, err := h.actorService.ListTrustMembers(c.Request.Context(), trustID)
	if err != nil {
		logger.Error("Failed to list members from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMembershipsResponse(memberships))
}

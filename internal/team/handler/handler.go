// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nuitinfo/podium-live/internal/team/model"
	"github.com/nuitinfo/podium-live/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// parseTeamID reads the :id path parameter.
func parseTeamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// ListTeams handles GET /api/teams.
// Returns all teams ordered by score descending (ties by id ascending).
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeamsRanked(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// AddTeam handles POST /api/admin/teams.
func (h *Handler) AddTeam(c *gin.Context) {
	var req model.AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.AddTeam(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidTeamName) {
			errorResponse(c, "INVALID_REQUEST", "name must not be empty", http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrTeamExists) {
			errorResponse(c, "TEAM_EXISTS", "name already exists", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, model.TeamResponse{Team: *team})
}

// UpdateScore handles POST /api/admin/teams/:id/score.
func (h *Handler) UpdateScore(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	var req model.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == nil {
		errorResponse(c, "INVALID_REQUEST", "delta is required", http.StatusBadRequest)
		return
	}

	team, err := h.service.UpdateScore(c.Request.Context(), id, *req.Delta)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error updating score", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.TeamResponse{Team: *team})
}

// ResetTeamScore handles POST /api/admin/teams/:id/reset.
func (h *Handler) ResetTeamScore(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	team, err := h.service.ResetTeamScore(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error resetting team score", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.TeamResponse{Team: *team})
}

// ResetScores handles POST /api/admin/reset.
func (h *Handler) ResetScores(c *gin.Context) {
	if err := h.service.ResetScores(c.Request.Context()); err != nil {
		h.logger.Errorw("error resetting scores", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTeam handles DELETE /api/admin/teams/:id.
func (h *Handler) DeleteTeam(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error deleting team", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

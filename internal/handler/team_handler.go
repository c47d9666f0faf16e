// Package handler contains the HTTP handlers for the API.
package handler

import (
	"errors"
	"strconv"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/middleware"
	"teamforge/internal/models"
	"teamforge/internal/service"
	"teamforge/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam creates a team owned by the authenticated user.
// POST /teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamLimitReached) {
			response.Forbidden(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTeamSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, team)
}

// ListTeams returns the authenticated user's teams, paginated.
// GET /teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListTeams(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetTeam returns one team.
// GET /teams/:teamId
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, team)
}

// GetTeamBySlug returns a public team profile by slug. No authentication.
// GET /teams/by-slug/:slug
func (h *TeamHandler) GetTeamBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "slug is required")
		return
	}

	team, err := h.service.GetTeamBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	if !team.Public {
		response.NotFound(c, apperrors.ErrTeamNotFound.Error())
		return
	}

	response.Success(c, team)
}

// UpdateTeam applies a direct (sessionless) partial update to a team.
// PUT /teams/:teamId
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), teamID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, team)
}

// DeleteTeam soft-deletes a team and its board, roster, and blobs.
// DELETE /teams/:teamId
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), teamID); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "team deleted successfully"})
}

// GetCompletion returns the team's completion summary.
// GET /teams/:teamId/completion
func (h *TeamHandler) GetCompletion(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	summary, err := h.service.GetCompletion(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, summary)
}

// SuggestBranding returns branding defaults for a prospective team name.
// GET /teams/suggestions?name=...&mascot=...&seed=...
func (h *TeamHandler) SuggestBranding(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "name is required")
		return
	}

	var seed *int
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "seed must be an integer")
			return
		}
		seed = &v
	}

	response.Success(c, h.service.SuggestBranding(name, c.Query("mascot"), seed))
}

// currentUserID pulls the authenticated user's id out of the context, writing
// the 401 itself when absent or malformed.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr := middleware.GetUserID(c)
	if userIDStr == "" {
		response.Unauthorized(c, "user not authenticated")
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return primitive.NilObjectID, false
	}
	return userID, true
}

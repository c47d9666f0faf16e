package handler

import (
	"errors"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/middleware"
	"teamforge/internal/models"
	"teamforge/internal/service"
	"teamforge/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for team editing sessions: open,
// buffered edits, autosave state, and guarded close.
type SessionHandler struct {
	service service.EditSessionServicer
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service service.EditSessionServicer) *SessionHandler {
	return &SessionHandler{service: service}
}

// Open starts an editing session and returns the opening snapshot.
// POST /teams/:teamId/session
func (h *SessionHandler) Open(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	team, err := h.service.Open(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrSessionAlreadyOpen) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, team)
}

// Edit folds a partial update into the session snapshot. Persistence happens
// later, once the edits go quiet.
// PATCH /teams/:teamId/session
func (h *SessionHandler) Edit(c *gin.Context) {
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

	team, err := h.service.Edit(teamID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveSession) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, team)
}

// State reports the session's dirty flag, guard phase, and save progress.
// GET /teams/:teamId/session
func (h *SessionHandler) State(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	state, err := h.service.State(teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveSession) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, state)
}

// SetAutosave toggles debounced saving for the session.
// PUT /teams/:teamId/session/autosave
func (h *SessionHandler) SetAutosave(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	var req models.SetAutosaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetAutosave(teamID, *req.Enabled); err != nil {
		if errors.Is(err, apperrors.ErrNoActiveSession) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"enabled": *req.Enabled})
}

// Close ends the session. With unsaved edits it refuses unless the client
// passes ?confirm=true, mirroring a leave-anyway prompt.
// DELETE /teams/:teamId/session
func (h *SessionHandler) Close(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	confirmed := c.Query("confirm") == "true"
	if err := h.service.Close(teamID, confirmed); err != nil {
		if errors.Is(err, apperrors.ErrNoActiveSession) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUnsavedChanges) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "session closed"})
}

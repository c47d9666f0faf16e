package handler

import (
	"errors"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/middleware"
	"teamforge/internal/models"
	"teamforge/internal/service"
	"teamforge/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipHandler handles HTTP requests for team rosters.
type MembershipHandler struct {
	service service.MembershipServicer
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(service service.MembershipServicer) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// ListMembers returns all memberships of a team, pending invites included.
// GET /teams/:teamId/members
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, models.MembershipListResponse{Items: members})
}

// InviteMember invites a person to the team by email.
// POST /teams/:teamId/members
func (h *MembershipHandler) InviteMember(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	var req models.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.service.Invite(c.Request.Context(), teamID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			response.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidRole) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, member)
}

// UpdateMember changes a member's role or edit capability.
// PUT /teams/:teamId/members/:memberId
func (h *MembershipHandler) UpdateMember(c *gin.Context) {
	teamID, memberID, ok := rosterMemberIDs(c)
	if !ok {
		return
	}

	var req models.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.service.UpdateMember(c.Request.Context(), teamID, memberID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrCannotChangeOwnRole) || errors.Is(err, apperrors.ErrInvalidRole) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, member)
}

// RemoveMember deletes a membership.
// DELETE /teams/:teamId/members/:memberId
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	teamID, memberID, ok := rosterMemberIDs(c)
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), teamID, memberID); err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrCannotRemoveOwner) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "member removed successfully"})
}

// AcceptInvite claims a pending invite for the signed-in user.
// POST /invitations/accept
func (h *MembershipHandler) AcceptInvite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	email := middleware.GetUserEmail(c)
	if email == "" {
		response.Unauthorized(c, "user email not available")
		return
	}

	var req models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.service.AcceptInvite(c.Request.Context(), userID, email, req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInviteToken) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInviteEmailMismatch) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, member)
}

func rosterMemberIDs(c *gin.Context) (teamID, memberID primitive.ObjectID, ok bool) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	memberID, err := primitive.ObjectIDFromHex(c.Param("memberId"))
	if err != nil {
		response.BadRequest(c, "invalid member id format")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return teamID, memberID, true
}

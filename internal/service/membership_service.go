package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"
	"teamforge/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipService handles team rosters: email invites, invite acceptance,
// and member role management.
type MembershipService struct {
	memberRepo repository.MembershipRepository
	teamRepo   repository.TeamRepository
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(memberRepo repository.MembershipRepository, teamRepo repository.TeamRepository) *MembershipService {
	return &MembershipService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
	}
}

// Invite adds a pending membership for an email address. The invite token is
// the only way to claim the membership later.
func (s *MembershipService) Invite(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMembershipRequest) (*models.Membership, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	if !models.ValidRole(req.Role) || req.Role == models.RoleOwner {
		return nil, apperrors.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.memberRepo.FindByTeamAndEmail(ctx, teamID, email); err == nil {
		return nil, apperrors.ErrAlreadyMember
	} else if !errors.Is(err, apperrors.ErrMembershipNotFound) {
		return nil, err
	}

	member := &models.Membership{
		TeamID:      teamID,
		Email:       email,
		Role:        req.Role,
		CanEdit:     req.CanEdit,
		InviteToken: uuid.NewString(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ListMembers returns all memberships of a team, pending invites included.
func (s *MembershipService) ListMembers(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.memberRepo.FindByTeamID(ctx, teamID)
}

// AcceptInvite claims a pending membership for a signed-in user. The invite
// email must match the account email; tokens are single-use.
func (s *MembershipService) AcceptInvite(ctx context.Context, userID primitive.ObjectID, email, token string) (*models.Membership, error) {
	member, err := s.memberRepo.FindByInviteToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			return nil, apperrors.ErrInvalidInviteToken
		}
		return nil, err
	}
	if member.Accepted() {
		return nil, apperrors.ErrInvalidInviteToken
	}
	if !strings.EqualFold(member.Email, strings.TrimSpace(email)) {
		return nil, apperrors.ErrInviteEmailMismatch
	}

	now := time.Now()
	member.UserID = &userID
	member.AcceptedAt = &now
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateMember changes a member's role or edit capability. The owner's role
// is fixed for the lifetime of the team.
func (s *MembershipService) UpdateMember(ctx context.Context, teamID, memberID primitive.ObjectID, req *models.UpdateMembershipRequest) (*models.Membership, error) {
	member, err := s.findTeamMember(ctx, teamID, memberID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		if member.Role == models.RoleOwner {
			return nil, apperrors.ErrCannotChangeOwnRole
		}
		if !models.ValidRole(*req.Role) || *req.Role == models.RoleOwner {
			return nil, apperrors.ErrInvalidRole
		}
		member.Role = *req.Role
	}
	if req.CanEdit != nil {
		member.CanEdit = *req.CanEdit
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember deletes a membership. The owner cannot be removed; delete the
// team instead.
func (s *MembershipService) RemoveMember(ctx context.Context, teamID, memberID primitive.ObjectID) error {
	member, err := s.findTeamMember(ctx, teamID, memberID)
	if err != nil {
		return err
	}
	if member.Role == models.RoleOwner {
		return apperrors.ErrCannotRemoveOwner
	}
	return s.memberRepo.Delete(ctx, member.ID)
}

// findTeamMember loads a membership and hides other teams' members behind
// not-found.
func (s *MembershipService) findTeamMember(ctx context.Context, teamID, memberID primitive.ObjectID) (*models.Membership, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.TeamID != teamID {
		return nil, apperrors.ErrMembershipNotFound
	}
	return member, nil
}

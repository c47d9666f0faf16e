package authz

import (
	"context"
	"errors"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipFinder is the interface required by LocalAuthorizer to look up
// team membership. This allows the authorizer to be decoupled from the full
// repository implementation.
type MembershipFinder interface {
	FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error)
}

// LocalAuthorizer implements Authorizer using database lookups.
// This is the initial implementation that can be replaced with SpiceDBAuthorizer later.
type LocalAuthorizer struct {
	memberFinder MembershipFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(memberFinder MembershipFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		memberFinder: memberFinder,
	}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionTeamView:         {models.RoleOwner, models.RoleCoach, models.RoleAthlete, models.RoleStaff, models.RoleFan},
	ActionTeamUpdate:       {models.RoleOwner},
	ActionTeamDelete:       {models.RoleOwner},
	ActionSessionEdit:      {models.RoleOwner},
	ActionMemberInvite:     {models.RoleOwner, models.RoleCoach},
	ActionMemberRemove:     {models.RoleOwner, models.RoleCoach},
	ActionMemberUpdateRole: {models.RoleOwner},
	ActionMediaView:        {models.RoleOwner, models.RoleCoach, models.RoleAthlete, models.RoleStaff, models.RoleFan},
	ActionMediaCreate:      {models.RoleOwner, models.RoleCoach},
	ActionMediaUpdate:      {models.RoleOwner, models.RoleCoach},
	ActionMediaDelete:      {models.RoleOwner, models.RoleCoach},
}

// editActions are additionally granted to any member with the canEdit
// capability, independent of role.
var editActions = map[string]bool{
	ActionTeamUpdate:  true,
	ActionSessionEdit: true,
	ActionMediaCreate: true,
	ActionMediaUpdate: true,
	ActionMediaDelete: true,
}

// CanPerform checks if a user can perform an action on a team. Pending
// invites carry no permissions until accepted.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, userID, teamID primitive.ObjectID, action string) (bool, error) {
	member, err := a.find(ctx, teamID, userID)
	if err != nil {
		return false, err
	}
	if member == nil {
		return false, nil
	}

	if editActions[action] && member.CanEdit {
		return true, nil
	}

	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false, nil // Unknown action
	}
	for _, role := range allowedRoles {
		if member.Role == role {
			return true, nil
		}
	}
	return false, nil
}

// GetUserRole returns the user's role in a team, or empty string if not a member.
func (a *LocalAuthorizer) GetUserRole(ctx context.Context, userID, teamID primitive.ObjectID) (string, error) {
	member, err := a.find(ctx, teamID, userID)
	if err != nil || member == nil {
		return "", err
	}
	return member.Role, nil
}

// IsMember checks if a user is an accepted member of a team.
func (a *LocalAuthorizer) IsMember(ctx context.Context, userID, teamID primitive.ObjectID) (bool, error) {
	member, err := a.find(ctx, teamID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// find returns the accepted membership, or nil when the user is not a member.
func (a *LocalAuthorizer) find(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error) {
	member, err := a.memberFinder.FindByTeamAndUser(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			return nil, nil // Expected: not a member
		}
		return nil, err // Unexpected: propagate error
	}
	if !member.Accepted() {
		return nil, nil
	}
	return member, nil
}

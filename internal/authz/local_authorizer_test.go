package authz

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockMemberFinder is a test double for MembershipFinder.
type mockMemberFinder struct {
	member *models.Membership
	err    error
}

func (m *mockMemberFinder) FindByTeamAndUser(_ context.Context, _, _ primitive.ObjectID) (*models.Membership, error) {
	return m.member, m.err
}

func acceptedMember(role string, canEdit bool) *models.Membership {
	now := time.Now()
	return &models.Membership{Role: role, CanEdit: canEdit, AcceptedAt: &now}
}

func TestNewLocalAuthorizer(t *testing.T) {
	finder := &mockMemberFinder{}

	auth := NewLocalAuthorizer(finder)

	require.NotNil(t, auth)
	assert.Equal(t, finder, auth.memberFinder)
}

func TestLocalAuthorizer_CanPerform(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	ctx := context.Background()

	// Test all role/action combinations
	roleActionTests := []struct {
		name     string
		role     string
		canEdit  bool
		action   string
		expected bool
	}{
		// Owner permissions - can do everything
		{"owner can view team", models.RoleOwner, false, ActionTeamView, true},
		{"owner can update team", models.RoleOwner, false, ActionTeamUpdate, true},
		{"owner can delete team", models.RoleOwner, false, ActionTeamDelete, true},
		{"owner can edit sessions", models.RoleOwner, false, ActionSessionEdit, true},
		{"owner can invite members", models.RoleOwner, false, ActionMemberInvite, true},
		{"owner can remove members", models.RoleOwner, false, ActionMemberRemove, true},
		{"owner can update roles", models.RoleOwner, false, ActionMemberUpdateRole, true},
		{"owner can view media", models.RoleOwner, false, ActionMediaView, true},
		{"owner can create media", models.RoleOwner, false, ActionMediaCreate, true},
		{"owner can update media", models.RoleOwner, false, ActionMediaUpdate, true},
		{"owner can delete media", models.RoleOwner, false, ActionMediaDelete, true},

		// Coach permissions - roster and board, but not the team itself
		{"coach can view team", models.RoleCoach, false, ActionTeamView, true},
		{"coach cannot update team", models.RoleCoach, false, ActionTeamUpdate, false},
		{"coach cannot delete team", models.RoleCoach, false, ActionTeamDelete, false},
		{"coach cannot edit sessions", models.RoleCoach, false, ActionSessionEdit, false},
		{"coach can invite members", models.RoleCoach, false, ActionMemberInvite, true},
		{"coach can remove members", models.RoleCoach, false, ActionMemberRemove, true},
		{"coach cannot update roles", models.RoleCoach, false, ActionMemberUpdateRole, false},
		{"coach can create media", models.RoleCoach, false, ActionMediaCreate, true},
		{"coach can delete media", models.RoleCoach, false, ActionMediaDelete, true},

		// Athlete permissions - view only by default
		{"athlete can view team", models.RoleAthlete, false, ActionTeamView, true},
		{"athlete cannot update team", models.RoleAthlete, false, ActionTeamUpdate, false},
		{"athlete cannot invite members", models.RoleAthlete, false, ActionMemberInvite, false},
		{"athlete can view media", models.RoleAthlete, false, ActionMediaView, true},
		{"athlete cannot create media", models.RoleAthlete, false, ActionMediaCreate, false},

		// Fan permissions - view only, canEdit never granted in practice
		{"fan can view team", models.RoleFan, false, ActionTeamView, true},
		{"fan cannot delete media", models.RoleFan, false, ActionMediaDelete, false},

		// canEdit capability unlocks edit actions regardless of role
		{"athlete with canEdit can update team", models.RoleAthlete, true, ActionTeamUpdate, true},
		{"athlete with canEdit can edit sessions", models.RoleAthlete, true, ActionSessionEdit, true},
		{"staff with canEdit can create media", models.RoleStaff, true, ActionMediaCreate, true},
		{"athlete with canEdit still cannot delete team", models.RoleAthlete, true, ActionTeamDelete, false},
		{"athlete with canEdit still cannot update roles", models.RoleAthlete, true, ActionMemberUpdateRole, false},
	}

	for _, tt := range roleActionTests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &mockMemberFinder{
				member: acceptedMember(tt.role, tt.canEdit),
			}
			auth := NewLocalAuthorizer(finder)

			can, err := auth.CanPerform(ctx, userID, teamID, tt.action)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, can)
		})
	}

	t.Run("non-member returns false without error", func(t *testing.T) {
		finder := &mockMemberFinder{
			err: apperrors.ErrMembershipNotFound,
		}
		auth := NewLocalAuthorizer(finder)

		can, err := auth.CanPerform(ctx, userID, teamID, ActionTeamView)

		require.NoError(t, err)
		assert.False(t, can)
	})

	t.Run("pending invite carries no permissions", func(t *testing.T) {
		finder := &mockMemberFinder{
			member: &models.Membership{Role: models.RoleCoach, CanEdit: true},
		}
		auth := NewLocalAuthorizer(finder)

		can, err := auth.CanPerform(ctx, userID, teamID, ActionTeamView)

		require.NoError(t, err)
		assert.False(t, can)
	})

	t.Run("unknown action returns false", func(t *testing.T) {
		finder := &mockMemberFinder{
			member: acceptedMember(models.RoleOwner, false),
		}
		auth := NewLocalAuthorizer(finder)

		can, err := auth.CanPerform(ctx, userID, teamID, "unknown:action")

		require.NoError(t, err)
		assert.False(t, can)
	})

	t.Run("database error is propagated", func(t *testing.T) {
		dbError := errors.New("database connection failed")
		finder := &mockMemberFinder{
			err: dbError,
		}
		auth := NewLocalAuthorizer(finder)

		can, err := auth.CanPerform(ctx, userID, teamID, ActionTeamView)

		assert.Error(t, err)
		assert.Equal(t, dbError, err)
		assert.False(t, can)
	})
}

func TestLocalAuthorizer_GetUserRole(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	ctx := context.Background()

	t.Run("returns role for team member", func(t *testing.T) {
		finder := &mockMemberFinder{
			member: acceptedMember(models.RoleCoach, false),
		}
		auth := NewLocalAuthorizer(finder)

		role, err := auth.GetUserRole(ctx, userID, teamID)

		require.NoError(t, err)
		assert.Equal(t, models.RoleCoach, role)
	})

	t.Run("returns empty string for non-member", func(t *testing.T) {
		finder := &mockMemberFinder{
			err: apperrors.ErrMembershipNotFound,
		}
		auth := NewLocalAuthorizer(finder)

		role, err := auth.GetUserRole(ctx, userID, teamID)

		require.NoError(t, err)
		assert.Empty(t, role)
	})

	t.Run("propagates database error", func(t *testing.T) {
		dbError := errors.New("database error")
		finder := &mockMemberFinder{err: dbError}
		auth := NewLocalAuthorizer(finder)

		role, err := auth.GetUserRole(ctx, userID, teamID)

		assert.Error(t, err)
		assert.Equal(t, dbError, err)
		assert.Empty(t, role)
	})
}

func TestLocalAuthorizer_IsMember(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	ctx := context.Background()

	t.Run("returns true for accepted member", func(t *testing.T) {
		finder := &mockMemberFinder{
			member: acceptedMember(models.RoleAthlete, false),
		}
		auth := NewLocalAuthorizer(finder)

		isMember, err := auth.IsMember(ctx, userID, teamID)

		require.NoError(t, err)
		assert.True(t, isMember)
	})

	t.Run("returns false for pending invite", func(t *testing.T) {
		finder := &mockMemberFinder{
			member: &models.Membership{Role: models.RoleAthlete},
		}
		auth := NewLocalAuthorizer(finder)

		isMember, err := auth.IsMember(ctx, userID, teamID)

		require.NoError(t, err)
		assert.False(t, isMember)
	})

	t.Run("returns false for non-member", func(t *testing.T) {
		finder := &mockMemberFinder{
			err: apperrors.ErrMembershipNotFound,
		}
		auth := NewLocalAuthorizer(finder)

		isMember, err := auth.IsMember(ctx, userID, teamID)

		require.NoError(t, err)
		assert.False(t, isMember)
	})

	t.Run("propagates database error", func(t *testing.T) {
		dbError := errors.New("database error")
		finder := &mockMemberFinder{err: dbError}
		auth := NewLocalAuthorizer(finder)

		isMember, err := auth.IsMember(ctx, userID, teamID)

		assert.Error(t, err)
		assert.Equal(t, dbError, err)
		assert.False(t, isMember)
	})
}

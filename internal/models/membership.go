package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team role constants.
const (
	RoleOwner   = "owner"
	RoleCoach   = "coach"
	RoleAthlete = "athlete"
	RoleStaff   = "staff"
	RoleFan     = "fan"
)

// ValidRole reports whether role is one of the known membership roles.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleCoach, RoleAthlete, RoleStaff, RoleFan:
		return true
	default:
		return false
	}
}

// Membership links a team to a person. Before signup the link is by email
// only; UserID is filled in when the invite is accepted. AcceptedAt stays nil
// until then.
type Membership struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID      primitive.ObjectID  `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	Email       string              `json:"email" bson:"email" example:"athlete@example.com"`
	UserID      *primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	Role        string              `json:"role" bson:"role" example:"athlete"`
	CanEdit     bool                `json:"canEdit" bson:"canEdit" example:"false"`
	InviteToken string              `json:"-" bson:"inviteToken"`
	InvitedAt   time.Time           `json:"invitedAt" bson:"invitedAt"`
	AcceptedAt  *time.Time          `json:"acceptedAt,omitempty" bson:"acceptedAt,omitempty"`
}

// Accepted reports whether the invite behind this membership was accepted.
func (m *Membership) Accepted() bool {
	return m.AcceptedAt != nil
}

// CreateMembershipRequest invites a person to a team by email.
type CreateMembershipRequest struct {
	Email   string `json:"email" binding:"required,email" example:"athlete@example.com"`
	Role    string `json:"role" binding:"required,oneof=coach athlete staff fan" example:"athlete"`
	CanEdit bool   `json:"canEdit" example:"false"`
}

// UpdateMembershipRequest changes a member's role or edit capability.
type UpdateMembershipRequest struct {
	Role    *string `json:"role" binding:"omitempty,oneof=coach athlete staff fan"`
	CanEdit *bool   `json:"canEdit"`
}

// AcceptInviteRequest claims a pending membership for a signed-in user.
type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// MembershipListResponse is the response for listing team members.
type MembershipListResponse struct {
	Items []Membership `json:"items"`
}

// Package errors provides custom error types for the application.
package errors

import "errors"

// Team errors
var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamSlugTaken    = errors.New("team slug is already taken")
	ErrTeamLimitReached = errors.New("free accounts can only create 1 team")
	ErrNotTeamMember    = errors.New("you are not a member of this team")
	ErrCannotEdit       = errors.New("you do not have edit access to this team")
)

// Membership errors
var (
	ErrMembershipNotFound   = errors.New("membership not found")
	ErrAlreadyMember        = errors.New("this email already belongs to a team member")
	ErrInvalidInviteToken   = errors.New("invalid or already accepted invite token")
	ErrInviteEmailMismatch  = errors.New("invite email does not match your account")
	ErrCannotRemoveOwner    = errors.New("cannot remove the team owner")
	ErrCannotChangeOwnRole  = errors.New("cannot change the owner role")
	ErrInvalidRole          = errors.New("invalid membership role")
)

// Media board errors
var (
	ErrMediaNotFound            = errors.New("media item not found")
	ErrMediaInvalidType         = errors.New("unknown media item type")
	ErrMediaImageMissingURL     = errors.New("image items require an uploaded url")
	ErrMediaPositionNotAllowed  = errors.New("this media type cannot be placed on the canvas")
	ErrMediaSizeWithoutPosition = errors.New("width/height require a canvas position")
	ErrMediaHostNotFound        = errors.New("attachment host item not found")
	ErrMediaCrossTeamAttachment = errors.New("cannot attach to an item from another team")
	ErrMediaAttachmentCycle     = errors.New("attachment would create a cycle")
)

// Edit session errors
var (
	ErrNoActiveSession    = errors.New("no active editing session for this team")
	ErrSessionAlreadyOpen = errors.New("an editing session is already open for this team")
	ErrUnsavedChanges     = errors.New("editing session has unsaved changes")
)

// Upload errors
var (
	ErrUploadUnsupportedType = errors.New("unsupported image content type")
	ErrUploadTooLarge        = errors.New("image exceeds the 5 MiB upload limit")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

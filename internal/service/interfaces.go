package service

import (
	"context"
	"io"

	"teamforge/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamServicer defines the interface for team profile operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, ownerID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	GetTeamBySlug(ctx context.Context, slug string) (*models.Team, error)
	ListTeams(ctx context.Context, ownerID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	UpdateTeam(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id primitive.ObjectID) error
	GetCompletion(ctx context.Context, id primitive.ObjectID) (*models.CompletionSummary, error)
	SuggestBranding(name, mascotKeyword string, seed *int) models.BrandSuggestions
}

// MediaBoardServicer defines the interface for media board operations.
type MediaBoardServicer interface {
	ListItems(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error)
	GetItem(ctx context.Context, teamID, id primitive.ObjectID) (*models.MediaItem, error)
	CreateItem(ctx context.Context, teamID, createdBy primitive.ObjectID, req *models.CreateMediaItemRequest) (*models.MediaItem, error)
	UploadImage(ctx context.Context, teamID, createdBy primitive.ObjectID, contentType string, size int64, body io.Reader) (*models.MediaItem, error)
	UpdateItem(ctx context.Context, teamID, id primitive.ObjectID, req *models.UpdateMediaItemRequest) (*models.MediaItem, error)
	DeleteItem(ctx context.Context, teamID, id primitive.ObjectID) error
}

// MembershipServicer defines the interface for roster operations.
type MembershipServicer interface {
	Invite(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMembershipRequest) (*models.Membership, error)
	ListMembers(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
	AcceptInvite(ctx context.Context, userID primitive.ObjectID, email, token string) (*models.Membership, error)
	UpdateMember(ctx context.Context, teamID, memberID primitive.ObjectID, req *models.UpdateMembershipRequest) (*models.Membership, error)
	RemoveMember(ctx context.Context, teamID, memberID primitive.ObjectID) error
}

// EditSessionServicer defines the interface for team editing sessions.
type EditSessionServicer interface {
	Open(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	Edit(teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	State(teamID primitive.ObjectID) (*models.SessionStateResponse, error)
	SetAutosave(teamID primitive.ObjectID, enabled bool) error
	Close(teamID primitive.ObjectID, confirmed bool) error
	Shutdown()
}

// Ensure concrete types implement interfaces
var (
	_ TeamServicer        = (*TeamService)(nil)
	_ MediaBoardServicer  = (*MediaBoardService)(nil)
	_ MembershipServicer  = (*MembershipService)(nil)
	_ EditSessionServicer = (*EditSessionService)(nil)
)

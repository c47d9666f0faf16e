// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"io"

	"teamforge/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc      func(ctx context.Context, ownerID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	GetTeamFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	GetTeamBySlugFunc   func(ctx context.Context, slug string) (*models.Team, error)
	ListTeamsFunc       func(ctx context.Context, ownerID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	UpdateTeamFunc      func(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFunc      func(ctx context.Context, id primitive.ObjectID) error
	GetCompletionFunc   func(ctx context.Context, id primitive.ObjectID) (*models.CompletionSummary, error)
	SuggestBrandingFunc func(name, mascotKeyword string, seed *int) models.BrandSuggestions
}

func (m *MockTeamService) CreateTeam(ctx context.Context, ownerID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, ownerID, req)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeamBySlug(ctx context.Context, slug string) (*models.Team, error) {
	if m.GetTeamBySlugFunc != nil {
		return m.GetTeamBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, ownerID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, ownerID, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, id)
	}
	return nil
}

func (m *MockTeamService) GetCompletion(ctx context.Context, id primitive.ObjectID) (*models.CompletionSummary, error) {
	if m.GetCompletionFunc != nil {
		return m.GetCompletionFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamService) SuggestBranding(name, mascotKeyword string, seed *int) models.BrandSuggestions {
	if m.SuggestBrandingFunc != nil {
		return m.SuggestBrandingFunc(name, mascotKeyword, seed)
	}
	return models.BrandSuggestions{}
}

// MockMediaBoardService is a mock implementation of MediaBoardServicer.
type MockMediaBoardService struct {
	ListItemsFunc   func(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error)
	GetItemFunc     func(ctx context.Context, teamID, id primitive.ObjectID) (*models.MediaItem, error)
	CreateItemFunc  func(ctx context.Context, teamID, createdBy primitive.ObjectID, req *models.CreateMediaItemRequest) (*models.MediaItem, error)
	UploadImageFunc func(ctx context.Context, teamID, createdBy primitive.ObjectID, contentType string, size int64, body io.Reader) (*models.MediaItem, error)
	UpdateItemFunc  func(ctx context.Context, teamID, id primitive.ObjectID, req *models.UpdateMediaItemRequest) (*models.MediaItem, error)
	DeleteItemFunc  func(ctx context.Context, teamID, id primitive.ObjectID) error
}

func (m *MockMediaBoardService) ListItems(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error) {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMediaBoardService) GetItem(ctx context.Context, teamID, id primitive.ObjectID) (*models.MediaItem, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, teamID, id)
	}
	return nil, nil
}

func (m *MockMediaBoardService) CreateItem(ctx context.Context, teamID, createdBy primitive.ObjectID, req *models.CreateMediaItemRequest) (*models.MediaItem, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, teamID, createdBy, req)
	}
	return nil, nil
}

func (m *MockMediaBoardService) UploadImage(ctx context.Context, teamID, createdBy primitive.ObjectID, contentType string, size int64, body io.Reader) (*models.MediaItem, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, teamID, createdBy, contentType, size, body)
	}
	return nil, nil
}

func (m *MockMediaBoardService) UpdateItem(ctx context.Context, teamID, id primitive.ObjectID, req *models.UpdateMediaItemRequest) (*models.MediaItem, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, teamID, id, req)
	}
	return nil, nil
}

func (m *MockMediaBoardService) DeleteItem(ctx context.Context, teamID, id primitive.ObjectID) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, teamID, id)
	}
	return nil
}

// MockMembershipService is a mock implementation of MembershipServicer.
type MockMembershipService struct {
	InviteFunc       func(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMembershipRequest) (*models.Membership, error)
	ListMembersFunc  func(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
	AcceptInviteFunc func(ctx context.Context, userID primitive.ObjectID, email, token string) (*models.Membership, error)
	UpdateMemberFunc func(ctx context.Context, teamID, memberID primitive.ObjectID, req *models.UpdateMembershipRequest) (*models.Membership, error)
	RemoveMemberFunc func(ctx context.Context, teamID, memberID primitive.ObjectID) error
}

func (m *MockMembershipService) Invite(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMembershipRequest) (*models.Membership, error) {
	if m.InviteFunc != nil {
		return m.InviteFunc(ctx, teamID, req)
	}
	return nil, nil
}

func (m *MockMembershipService) ListMembers(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMembershipService) AcceptInvite(ctx context.Context, userID primitive.ObjectID, email, token string) (*models.Membership, error) {
	if m.AcceptInviteFunc != nil {
		return m.AcceptInviteFunc(ctx, userID, email, token)
	}
	return nil, nil
}

func (m *MockMembershipService) UpdateMember(ctx context.Context, teamID, memberID primitive.ObjectID, req *models.UpdateMembershipRequest) (*models.Membership, error) {
	if m.UpdateMemberFunc != nil {
		return m.UpdateMemberFunc(ctx, teamID, memberID, req)
	}
	return nil, nil
}

func (m *MockMembershipService) RemoveMember(ctx context.Context, teamID, memberID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, teamID, memberID)
	}
	return nil
}

// MockEditSessionService is a mock implementation of EditSessionServicer.
type MockEditSessionService struct {
	OpenFunc        func(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	EditFunc        func(teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	StateFunc       func(teamID primitive.ObjectID) (*models.SessionStateResponse, error)
	SetAutosaveFunc func(teamID primitive.ObjectID, enabled bool) error
	CloseFunc       func(teamID primitive.ObjectID, confirmed bool) error
	ShutdownFunc    func()
}

func (m *MockEditSessionService) Open(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockEditSessionService) Edit(teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.EditFunc != nil {
		return m.EditFunc(teamID, req)
	}
	return nil, nil
}

func (m *MockEditSessionService) State(teamID primitive.ObjectID) (*models.SessionStateResponse, error) {
	if m.StateFunc != nil {
		return m.StateFunc(teamID)
	}
	return nil, nil
}

func (m *MockEditSessionService) SetAutosave(teamID primitive.ObjectID, enabled bool) error {
	if m.SetAutosaveFunc != nil {
		return m.SetAutosaveFunc(teamID, enabled)
	}
	return nil
}

func (m *MockEditSessionService) Close(teamID primitive.ObjectID, confirmed bool) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(teamID, confirmed)
	}
	return nil
}

func (m *MockEditSessionService) Shutdown() {
	if m.ShutdownFunc != nil {
		m.ShutdownFunc()
	}
}

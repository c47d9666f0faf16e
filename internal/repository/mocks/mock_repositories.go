// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"

	"teamforge/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTeamRepository is a mock implementation of TeamRepository.
type MockTeamRepository struct {
	CreateFunc         func(ctx context.Context, team *models.Team) error
	FindByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindBySlugFunc     func(ctx context.Context, slug string) (*models.Team, error)
	FindByOwnerIDFunc  func(ctx context.Context, ownerID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	CountByOwnerIDFunc func(ctx context.Context, ownerID primitive.ObjectID) (int, error)
	UpdateFunc         func(ctx context.Context, team *models.Team) error
	SoftDeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindBySlug(ctx context.Context, slug string) (*models.Team, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindByOwnerID(ctx context.Context, ownerID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	if m.FindByOwnerIDFunc != nil {
		return m.FindByOwnerIDFunc(ctx, ownerID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockTeamRepository) CountByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int, error) {
	if m.CountByOwnerIDFunc != nil {
		return m.CountByOwnerIDFunc(ctx, ownerID)
	}
	return 0, nil
}

func (m *MockTeamRepository) Update(ctx context.Context, team *models.Team) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return nil
}

// MockMediaItemRepository is a mock implementation of MediaItemRepository.
type MockMediaItemRepository struct {
	CreateFunc            func(ctx context.Context, item *models.MediaItem) error
	FindByIDFunc          func(ctx context.Context, id primitive.ObjectID) (*models.MediaItem, error)
	FindByTeamIDFunc      func(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error)
	FindAttachedToFunc    func(ctx context.Context, hostID primitive.ObjectID) ([]models.MediaItem, error)
	UpdateFunc            func(ctx context.Context, item *models.MediaItem) error
	DeleteFunc            func(ctx context.Context, id primitive.ObjectID) error
	DeleteManyFunc        func(ctx context.Context, ids []primitive.ObjectID) error
	DeleteAllByTeamIDFunc func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockMediaItemRepository) Create(ctx context.Context, item *models.MediaItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockMediaItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MediaItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMediaItemRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMediaItemRepository) FindAttachedTo(ctx context.Context, hostID primitive.ObjectID) ([]models.MediaItem, error) {
	if m.FindAttachedToFunc != nil {
		return m.FindAttachedToFunc(ctx, hostID)
	}
	return nil, nil
}

func (m *MockMediaItemRepository) Update(ctx context.Context, item *models.MediaItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *MockMediaItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMediaItemRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	if m.DeleteManyFunc != nil {
		return m.DeleteManyFunc(ctx, ids)
	}
	return nil
}

func (m *MockMediaItemRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

// MockMembershipRepository is a mock implementation of MembershipRepository.
type MockMembershipRepository struct {
	CreateFunc                func(ctx context.Context, member *models.Membership) error
	FindByIDFunc              func(ctx context.Context, id primitive.ObjectID) (*models.Membership, error)
	FindByTeamIDFunc          func(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
	FindByTeamAndEmailFunc    func(ctx context.Context, teamID primitive.ObjectID, email string) (*models.Membership, error)
	FindByTeamAndUserFunc     func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error)
	FindByInviteTokenFunc     func(ctx context.Context, token string) (*models.Membership, error)
	CountAcceptedByTeamIDFunc func(ctx context.Context, teamID primitive.ObjectID) (int, error)
	UpdateFunc                func(ctx context.Context, member *models.Membership) error
	DeleteFunc                func(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByTeamIDFunc     func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockMembershipRepository) Create(ctx context.Context, member *models.Membership) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *MockMembershipRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Membership, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.Membership, error) {
	if m.FindByTeamAndEmailFunc != nil {
		return m.FindByTeamAndEmailFunc(ctx, teamID, email)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error) {
	if m.FindByTeamAndUserFunc != nil {
		return m.FindByTeamAndUserFunc(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindByInviteToken(ctx context.Context, token string) (*models.Membership, error) {
	if m.FindByInviteTokenFunc != nil {
		return m.FindByInviteTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockMembershipRepository) CountAcceptedByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error) {
	if m.CountAcceptedByTeamIDFunc != nil {
		return m.CountAcceptedByTeamIDFunc(ctx, teamID)
	}
	return 0, nil
}

func (m *MockMembershipRepository) Update(ctx context.Context, member *models.Membership) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, member)
	}
	return nil
}

func (m *MockMembershipRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMembershipRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MembershipRepository defines the interface for membership data operations.
type MembershipRepository interface {
	Create(ctx context.Context, member *models.Membership) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Membership, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
	FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.Membership, error)
	FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error)
	FindByInviteToken(ctx context.Context, token string) (*models.Membership, error)
	CountAcceptedByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error)
	Update(ctx context.Context, member *models.Membership) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// membershipRepository implements MembershipRepository using MongoDB.
type membershipRepository struct {
	collection *mongo.Collection
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	return &membershipRepository{
		collection: db.Collection("memberships"),
	}
}

// Create inserts a new membership.
func (r *membershipRepository) Create(ctx context.Context, member *models.Membership) error {
	member.ID = primitive.NewObjectID()
	member.InvitedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, member)
	return err
}

// FindByID retrieves a membership by ID.
func (r *membershipRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Membership, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByTeamID returns all memberships of a team, accepted or pending,
// oldest invite first.
func (r *membershipRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "invitedAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.Membership
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	if members == nil {
		members = []models.Membership{}
	}
	return members, nil
}

// FindByTeamAndEmail retrieves a membership by team and invite email.
func (r *membershipRepository) FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.Membership, error) {
	return r.findOne(ctx, bson.M{"teamId": teamID, "email": email})
}

// FindByTeamAndUser retrieves an accepted membership by team and user.
func (r *membershipRepository) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error) {
	return r.findOne(ctx, bson.M{"teamId": teamID, "userId": userID})
}

// FindByInviteToken retrieves a membership by its invite token.
func (r *membershipRepository) FindByInviteToken(ctx context.Context, token string) (*models.Membership, error) {
	return r.findOne(ctx, bson.M{"inviteToken": token})
}

// CountAcceptedByTeamID counts memberships whose invite was accepted.
func (r *membershipRepository) CountAcceptedByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"teamId":     teamID,
		"acceptedAt": bson.M{"$exists": true},
	})
	return int(count), err
}

// Update rewrites the mutable fields of a membership.
func (r *membershipRepository) Update(ctx context.Context, member *models.Membership) error {
	update := bson.M{"$set": bson.M{
		"userId":     member.UserID,
		"role":       member.Role,
		"canEdit":    member.CanEdit,
		"acceptedAt": member.AcceptedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": member.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMembershipNotFound
	}
	return nil
}

// Delete removes a membership document.
func (r *membershipRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrMembershipNotFound
	}
	return nil
}

// DeleteAllByTeamID removes every membership of a team.
func (r *membershipRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}

func (r *membershipRepository) findOne(ctx context.Context, filter bson.M) (*models.Membership, error) {
	var member models.Membership
	err := r.collection.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return &member, nil
}

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

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindBySlug(ctx context.Context, slug string) (*models.Team, error)
	FindByOwnerID(ctx context.Context, ownerID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	CountByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int, error)
	Update(ctx context.Context, team *models.Team) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team into the database.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt

	if team.Status == "" {
		team.Status = models.StatusDraft
	}

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID retrieves a team by ID. Excludes soft-deleted teams.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	filter := bson.M{
		"_id":       id,
		"deletedAt": bson.M{"$exists": false},
	}

	var team models.Team
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindBySlug retrieves a team by slug. Excludes soft-deleted teams.
func (r *teamRepository) FindBySlug(ctx context.Context, slug string) (*models.Team, error) {
	filter := bson.M{
		"slug":      slug,
		"deletedAt": bson.M{"$exists": false},
	}

	var team models.Team
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByOwnerID returns paginated teams owned by a user, newest first.
func (r *teamRepository) FindByOwnerID(ctx context.Context, ownerID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	filter := bson.M{
		"ownerId":   ownerID,
		"deletedAt": bson.M{"$exists": false},
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, int(total), nil
}

// CountByOwnerID counts non-deleted teams owned by a user.
func (r *teamRepository) CountByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"ownerId":   ownerID,
		"deletedAt": bson.M{"$exists": false},
	})
	return int(count), err
}

// Update replaces the stored team document. The slug is never rewritten here;
// it is immutable once assigned.
func (r *teamRepository) Update(ctx context.Context, team *models.Team) error {
	team.UpdatedAt = time.Now()

	filter := bson.M{
		"_id":       team.ID,
		"deletedAt": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"name":         team.Name,
		"contactEmail": team.ContactEmail,
		"status":       team.Status,
		"public":       team.Public,
		"brandKit":     team.BrandKit,
		"identity":     team.Identity,
		"completion":   team.Completion,
		"settings":     team.Settings,
		"updatedAt":    team.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// SoftDelete marks a team as deleted without removing the document.
func (r *teamRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "deletedAt": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

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

// MediaItemRepository defines the interface for media board data operations.
type MediaItemRepository interface {
	Create(ctx context.Context, item *models.MediaItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MediaItem, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error)
	FindAttachedTo(ctx context.Context, hostID primitive.ObjectID) ([]models.MediaItem, error)
	Update(ctx context.Context, item *models.MediaItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// mediaItemRepository implements MediaItemRepository using MongoDB.
type mediaItemRepository struct {
	collection *mongo.Collection
}

// NewMediaItemRepository creates a new MediaItemRepository.
func NewMediaItemRepository(db *mongo.Database) MediaItemRepository {
	return &mediaItemRepository{
		collection: db.Collection("media_items"),
	}
}

// Create inserts a new media item. The caller is expected to have validated
// the item's structural invariants first.
func (r *mediaItemRepository) Create(ctx context.Context, item *models.MediaItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// FindByID retrieves a media item by ID.
func (r *mediaItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMediaNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByTeamID returns all board items for a team, oldest first so the board
// renders in creation order.
func (r *mediaItemRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []models.MediaItem{}
	}
	return items, nil
}

// FindAttachedTo returns the items threaded onto a host item.
func (r *mediaItemRepository) FindAttachedTo(ctx context.Context, hostID primitive.ObjectID) ([]models.MediaItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"attachedToMediaId": hostID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []models.MediaItem{}
	}
	return items, nil
}

// Update rewrites the mutable fields of an item.
func (r *mediaItemRepository) Update(ctx context.Context, item *models.MediaItem) error {
	item.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"url":       item.URL,
		"body":      item.Body,
		"position":  item.Position,
		"width":     item.Width,
		"height":    item.Height,
		"updatedAt": item.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": item.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMediaNotFound
	}
	return nil
}

// Delete removes a media item document.
func (r *mediaItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrMediaNotFound
	}
	return nil
}

// DeleteMany removes a batch of items in one call.
func (r *mediaItemRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

// DeleteAllByTeamID removes every board item belonging to a team.
func (r *mediaItemRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}

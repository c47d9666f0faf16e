package main

import (
	"context"
	"time"

	"teamforge/internal/config"
	"teamforge/internal/database"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Info().Msg("starting migration")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Info().Msg("migration completed")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Teams indexes
	createIndex(ctx, db, "teams", bson.D{{Key: "slug", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "teams", bson.D{{Key: "ownerId", Value: 1}}, nil)
	createIndex(ctx, db, "teams", bson.D{{Key: "deletedAt", Value: 1}}, nil)

	// Membership indexes
	createIndex(ctx, db, "memberships", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "email", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "memberships", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "memberships", bson.D{{Key: "inviteToken", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Media board indexes
	createIndex(ctx, db, "media_items", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "createdAt", Value: 1},
	}, nil)
	createIndex(ctx, db, "media_items", bson.D{{Key: "attachedToMediaId", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("failed to create index")
		return
	}

	log.Info().Str("index", name).Str("collection", collection).Msg("created index")
}

func ptrBool(b bool) *bool {
	return &b
}

package main

import (
	"context"
	"math/rand"
	"time"

	"teamforge/internal/completion"
	"teamforge/internal/config"
	"teamforge/internal/database"
	"teamforge/internal/models"
	"teamforge/internal/suggest"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Info().Msg("starting seed")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	teamID := seedTeam(ctx, mongoDB.Database, rng)
	seedRoster(ctx, mongoDB.Database, teamID)
	seedBoard(ctx, mongoDB.Database, teamID)

	log.Info().Msg("seed completed")
}

func seedTeam(ctx context.Context, db *mongo.Database, rng *rand.Rand) primitive.ObjectID {
	collection := db.Collection("teams")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear teams")
	}

	name := "Thunder Squad"
	now := time.Now()
	fontFamily := suggest.FontFamily(name)
	logoStyle := suggest.LogoStyle(name, "wolves")
	mascot := suggest.RandomMascotGlyph(rng)

	team := models.Team{
		Name:    name,
		Slug:    "thunder-squad",
		OwnerID: primitive.NewObjectID(),
		Status:  models.StatusDraft,
		Public:  true,
		BrandKit: models.BrandKit{
			PrimaryColor: "#1d4ed8",
			LogoText:     suggest.LogoText(name),
			FontFamily:   &fontFamily,
			LogoStyle:    &logoStyle,
			MascotGlyph:  &mascot,
		},
		Identity: models.Identity{
			Tagline:       "Strike like thunder",
			MascotKeyword: "wolves",
			Location:      "Portland, OR",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	team.Completion = completion.Score(&team, 1)

	result, err := collection.InsertOne(ctx, team)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed team")
	}

	teamID := result.InsertedID.(primitive.ObjectID)
	log.Info().Str("team", team.Slug).Msg("seeded team")
	return teamID
}

func seedRoster(ctx context.Context, db *mongo.Database, teamID primitive.ObjectID) {
	collection := db.Collection("memberships")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear memberships")
	}

	now := time.Now()
	ownerUserID := primitive.NewObjectID()

	members := []interface{}{
		models.Membership{
			TeamID:      teamID,
			Email:       "owner@example.com",
			UserID:      &ownerUserID,
			Role:        models.RoleOwner,
			CanEdit:     true,
			InviteToken: uuid.NewString(),
			InvitedAt:   now,
			AcceptedAt:  &now,
		},
		models.Membership{
			TeamID:      teamID,
			Email:       "athlete@example.com",
			Role:        models.RoleAthlete,
			InviteToken: uuid.NewString(),
			InvitedAt:   now,
		},
	}

	result, err := collection.InsertMany(ctx, members)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed memberships")
	}
	log.Info().Int("count", len(result.InsertedIDs)).Msg("seeded memberships")
}

func seedBoard(ctx context.Context, db *mongo.Database, teamID primitive.ObjectID) {
	collection := db.Collection("media_items")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear media items")
	}

	now := time.Now()
	createdBy := primitive.NewObjectID()
	noteBody := "Season kickoff is June 3rd."
	linkURL := "https://example.com/schedule"

	note := models.MediaItem{
		ID:        primitive.NewObjectID(),
		TeamID:    teamID,
		Type:      models.MediaStickyNote,
		Body:      &noteBody,
		Position:  &models.Position{X: 120, Y: 80},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	commentBody := "Can we move this a week later?"
	comment := models.MediaItem{
		ID:                primitive.NewObjectID(),
		TeamID:            teamID,
		Type:              models.MediaComment,
		Body:              &commentBody,
		AttachedToMediaID: &note.ID,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	link := models.MediaItem{
		ID:        primitive.NewObjectID(),
		TeamID:    teamID,
		Type:      models.MediaLink,
		URL:       &linkURL,
		Position:  &models.Position{X: 360, Y: 200},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := collection.InsertMany(ctx, []interface{}{note, comment, link})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed media items")
	}
	log.Info().Int("count", len(result.InsertedIDs)).Msg("seeded media items")
}

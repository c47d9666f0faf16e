package service

import (
	"context"
	"math/rand"
	"testing"

	"teamforge/internal/cache"
	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"
	"teamforge/internal/repository/mocks"
	"teamforge/internal/suggest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTeamService(teamRepo *mocks.MockTeamRepository, memberRepo *mocks.MockMembershipRepository, mediaRepo *mocks.MockMediaItemRepository) (*TeamService, *fakeCache, *fakeCleanup) {
	fc := newFakeCache()
	cleanup := &fakeCleanup{}
	rng := rand.New(rand.NewSource(1))
	return NewTeamService(teamRepo, memberRepo, mediaRepo, fc, cleanup, rng), fc, cleanup
}

func TestTeamService_CreateTeam(t *testing.T) {
	ownerID := primitive.NewObjectID()

	t.Run("prefills branding defaults and creates owner membership", func(t *testing.T) {
		var createdOwner *models.Membership
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
			CreateFunc: func(ctx context.Context, team *models.Team) error {
				team.ID = primitive.NewObjectID()
				return nil
			},
		}
		memberRepo := &mocks.MockMembershipRepository{
			CreateFunc: func(ctx context.Context, member *models.Membership) error {
				createdOwner = member
				return nil
			},
		}
		svc, fc, _ := newTeamService(teamRepo, memberRepo, &mocks.MockMediaItemRepository{})

		team, err := svc.CreateTeam(context.Background(), ownerID, &models.CreateTeamRequest{
			Name:         "Thunder Squad",
			Slug:         "thunder-squad",
			ContactEmail: "coach@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, models.StatusDraft, team.Status)
		assert.Equal(t, "TS", team.BrandKit.LogoText)
		require.NotNil(t, team.BrandKit.FontFamily)
		assert.Equal(t, models.FontModern, *team.BrandKit.FontFamily)
		require.NotNil(t, team.BrandKit.LogoStyle)
		assert.Equal(t, models.LogoWordmark, *team.BrandKit.LogoStyle)

		// Three of five brand fields are prefilled; identity and roster are empty.
		assert.Equal(t, 60, team.Completion.Brand)
		assert.Equal(t, 0, team.Completion.Identity)
		assert.Equal(t, 0, team.Completion.Roster)
		assert.Equal(t, 24, team.Completion.Total)

		require.NotNil(t, createdOwner)
		assert.Equal(t, models.RoleOwner, createdOwner.Role)
		assert.True(t, createdOwner.CanEdit)
		assert.True(t, createdOwner.Accepted())
		assert.NotEmpty(t, createdOwner.InviteToken)

		assert.True(t, fc.has(cache.TeamSlugKey("thunder-squad")))
	})

	t.Run("rejects taken slug", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return &models.Team{Slug: slug}, nil
			},
		}
		svc, _, _ := newTeamService(teamRepo, &mocks.MockMembershipRepository{}, &mocks.MockMediaItemRepository{})

		_, err := svc.CreateTeam(context.Background(), ownerID, &models.CreateTeamRequest{Name: "Taken", Slug: "taken"})
		assert.ErrorIs(t, err, apperrors.ErrTeamSlugTaken)
	})

	t.Run("enforces the team limit", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			CountByOwnerIDFunc: func(ctx context.Context, id primitive.ObjectID) (int, error) {
				return 1, nil
			},
		}
		svc, _, _ := newTeamService(teamRepo, &mocks.MockMembershipRepository{}, &mocks.MockMediaItemRepository{})

		_, err := svc.CreateTeam(context.Background(), ownerID, &models.CreateTeamRequest{Name: "Second", Slug: "second"})
		assert.ErrorIs(t, err, apperrors.ErrTeamLimitReached)
	})
}

func TestTeamService_UpdateTeam(t *testing.T) {
	teamID := primitive.NewObjectID()

	t.Run("merges settings and recomputes completion", func(t *testing.T) {
		var saved *models.Team
		teamRepo := &mocks.MockTeamRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
				return &models.Team{
					ID:   teamID,
					Name: "Thunder Squad",
					Slug: "thunder-squad",
					Settings: map[string]any{
						"notifications": map[string]any{"email": true},
					},
				}, nil
			},
			UpdateFunc: func(ctx context.Context, team *models.Team) error {
				saved = team
				return nil
			},
		}
		memberRepo := &mocks.MockMembershipRepository{
			CountAcceptedByTeamIDFunc: func(ctx context.Context, id primitive.ObjectID) (int, error) {
				return 5, nil
			},
		}
		svc, fc, _ := newTeamService(teamRepo, memberRepo, &mocks.MockMediaItemRepository{})

		// Pre-seed caches so invalidation is observable.
		require.NoError(t, fc.Set(context.Background(), cache.TeamSlugKey("thunder-squad"), models.Team{}, 0))
		require.NoError(t, fc.Set(context.Background(), cache.CompletionKey(teamID), models.CompletionSummary{}, 0))

		tagline := "Strike like thunder"
		team, err := svc.UpdateTeam(context.Background(), teamID, &models.UpdateTeamRequest{
			Identity: &models.Identity{Tagline: tagline},
			Settings: map[string]any{
				"notifications": map[string]any{"sms": true},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, saved)

		notifications, ok := team.Settings["notifications"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, notifications["email"])
		assert.Equal(t, true, notifications["sms"])

		assert.Equal(t, 100, team.Completion.Roster)
		assert.Equal(t, 25, team.Completion.Identity)

		assert.False(t, fc.has(cache.TeamSlugKey("thunder-squad")))
		assert.False(t, fc.has(cache.CompletionKey(teamID)))
	})

	t.Run("propagates not found", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
		}
		svc, _, _ := newTeamService(teamRepo, &mocks.MockMembershipRepository{}, &mocks.MockMediaItemRepository{})

		_, err := svc.UpdateTeam(context.Background(), teamID, &models.UpdateTeamRequest{})
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestTeamService_GetTeamBySlug(t *testing.T) {
	lookups := 0
	teamRepo := &mocks.MockTeamRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
			lookups++
			return &models.Team{ID: primitive.NewObjectID(), Name: "Thunder Squad", Slug: slug}, nil
		},
	}
	svc, _, _ := newTeamService(teamRepo, &mocks.MockMembershipRepository{}, &mocks.MockMediaItemRepository{})

	first, err := svc.GetTeamBySlug(context.Background(), "thunder-squad")
	require.NoError(t, err)
	second, err := svc.GetTeamBySlug(context.Background(), "thunder-squad")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, lookups, "second lookup should be served from cache")
}

func TestTeamService_DeleteTeam(t *testing.T) {
	teamID := primitive.NewObjectID()
	key := "teams/x/media/y"

	var deletedMedia, deletedMembers, softDeleted bool
	teamRepo := &mocks.MockTeamRepository{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
			return &models.Team{ID: teamID, Slug: "thunder-squad"}, nil
		},
		SoftDeleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
			softDeleted = true
			return nil
		},
	}
	mediaRepo := &mocks.MockMediaItemRepository{
		FindByTeamIDFunc: func(ctx context.Context, id primitive.ObjectID) ([]models.MediaItem, error) {
			return []models.MediaItem{
				{ID: primitive.NewObjectID(), Type: models.MediaImage, StorageKey: &key},
				{ID: primitive.NewObjectID(), Type: models.MediaNote},
			}, nil
		},
		DeleteAllByTeamIDFunc: func(ctx context.Context, id primitive.ObjectID) error {
			deletedMedia = true
			return nil
		},
	}
	memberRepo := &mocks.MockMembershipRepository{
		DeleteAllByTeamIDFunc: func(ctx context.Context, id primitive.ObjectID) error {
			deletedMembers = true
			return nil
		},
	}
	svc, _, cleanup := newTeamService(teamRepo, memberRepo, mediaRepo)

	require.NoError(t, svc.DeleteTeam(context.Background(), teamID))
	assert.True(t, deletedMedia)
	assert.True(t, deletedMembers)
	assert.True(t, softDeleted)
	assert.Equal(t, []string{key}, cleanup.keys(), "only uploaded blobs are released")
}

func TestTeamService_SuggestBranding(t *testing.T) {
	svc, _, _ := newTeamService(&mocks.MockTeamRepository{}, &mocks.MockMembershipRepository{}, &mocks.MockMediaItemRepository{})

	t.Run("seeded suggestions are reproducible", func(t *testing.T) {
		seed := 3
		first := svc.SuggestBranding("Phoenix Squad", "", &seed)
		second := svc.SuggestBranding("Phoenix Squad", "", &seed)
		assert.Equal(t, first, second)
		assert.Equal(t, suggest.MascotGlyph(3), first.MascotGlyph)
	})

	t.Run("mythic names pick the classic font", func(t *testing.T) {
		got := svc.SuggestBranding("Phoenix Squad", "birds", nil)
		assert.Equal(t, models.FontClassic, got.FontFamily)
		assert.Equal(t, models.LogoBadge, got.LogoStyle)
		assert.NotEmpty(t, got.MascotGlyph)
	})
}

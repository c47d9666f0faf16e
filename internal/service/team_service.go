// Package service contains business logic for teams, memberships, the media
// board, and editing sessions.
package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"teamforge/internal/cache"
	"teamforge/internal/completion"
	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"
	"teamforge/internal/queue"
	"teamforge/internal/repository"
	"teamforge/internal/suggest"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CleanupEnqueuer schedules a stored blob for background release.
type CleanupEnqueuer interface {
	Enqueue(job queue.CleanupJob) error
}

// maxTeamsPerOwner is the team limit for free accounts.
const maxTeamsPerOwner = 1

// Cache TTLs for derived team data.
const (
	slugCacheTTL       = 10 * time.Minute
	completionCacheTTL = 5 * time.Minute
)

// TeamService handles team profile lifecycle and derived data.
type TeamService struct {
	teamRepo   repository.TeamRepository
	memberRepo repository.MembershipRepository
	mediaRepo  repository.MediaItemRepository
	cache      cache.Cache
	cleanup    CleanupEnqueuer

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewTeamService creates a new TeamService. The supplied rng drives mascot
// suggestions when no seed is given; seed it (or not) at the call site.
func NewTeamService(
	teamRepo repository.TeamRepository,
	memberRepo repository.MembershipRepository,
	mediaRepo repository.MediaItemRepository,
	c cache.Cache,
	cleanup CleanupEnqueuer,
	rng *rand.Rand,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		mediaRepo:  mediaRepo,
		cache:      c,
		cleanup:    cleanup,
		rng:        rng,
	}
}

// CreateTeam creates a team with branding defaults derived from its name and
// an accepted owner membership.
func (s *TeamService) CreateTeam(ctx context.Context, ownerID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	count, err := s.teamRepo.CountByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= maxTeamsPerOwner {
		return nil, apperrors.ErrTeamLimitReached
	}

	if _, err := s.teamRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, apperrors.ErrTeamSlugTaken
	} else if !errors.Is(err, apperrors.ErrTeamNotFound) {
		return nil, err
	}

	fontFamily := suggest.FontFamily(req.Name)
	logoStyle := suggest.LogoStyle(req.Name, "")

	team := &models.Team{
		Name:         req.Name,
		Slug:         req.Slug,
		OwnerID:      ownerID,
		ContactEmail: req.ContactEmail,
		Status:       models.StatusDraft,
		BrandKit: models.BrandKit{
			LogoText:   suggest.LogoText(req.Name),
			FontFamily: &fontFamily,
			LogoStyle:  &logoStyle,
		},
	}
	team.Completion = completion.Score(team, 0)

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	now := time.Now()
	owner := &models.Membership{
		TeamID:      team.ID,
		Email:       req.ContactEmail,
		UserID:      &ownerID,
		Role:        models.RoleOwner,
		CanEdit:     true,
		InviteToken: uuid.NewString(),
		AcceptedAt:  &now,
	}
	if err := s.memberRepo.Create(ctx, owner); err != nil {
		return nil, err
	}

	s.cacheTeamSlug(ctx, team)
	return team, nil
}

// GetTeam retrieves a team by ID.
func (s *TeamService) GetTeam(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	return s.teamRepo.FindByID(ctx, id)
}

// GetTeamBySlug retrieves a team by slug, serving repeat lookups from cache.
func (s *TeamService) GetTeamBySlug(ctx context.Context, slug string) (*models.Team, error) {
	var cached models.Team
	hit, err := s.cache.Get(ctx, cache.TeamSlugKey(slug), &cached)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("slug cache read failed")
	}
	if hit {
		return &cached, nil
	}

	team, err := s.teamRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.cacheTeamSlug(ctx, team)
	return team, nil
}

// ListTeams returns the teams owned by a user, paginated.
func (s *TeamService) ListTeams(ctx context.Context, ownerID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	teams, total, err := s.teamRepo.FindByOwnerID(ctx, ownerID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.TeamListResponse{
		Items: teams,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// UpdateTeam applies a partial update to a team profile, recomputes its
// completion summary, and persists the result. Settings merge recursively.
func (s *TeamService) UpdateTeam(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.ApplyUpdate(req)

	count, err := s.memberRepo.CountAcceptedByTeamID(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Completion = completion.Score(team, count)

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	s.invalidateTeam(ctx, team)
	return team, nil
}

// DeleteTeam soft-deletes a team and removes its memberships and board items.
// Uploaded image blobs are released through the cleanup queue.
func (s *TeamService) DeleteTeam(ctx context.Context, id primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	items, err := s.mediaRepo.FindByTeamID(ctx, id)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.StorageKey == nil {
			continue
		}
		if err := s.cleanup.Enqueue(queue.CleanupJob{Key: *item.StorageKey}); err != nil {
			log.Warn().Err(err).Str("key", *item.StorageKey).Msg("failed to enqueue blob cleanup")
		}
	}

	if err := s.mediaRepo.DeleteAllByTeamID(ctx, id); err != nil {
		return err
	}
	if err := s.memberRepo.DeleteAllByTeamID(ctx, id); err != nil {
		return err
	}
	if err := s.teamRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidateTeam(ctx, team)
	return nil
}

// GetCompletion returns the completion summary for a team, recomputed from the
// current snapshot and roster, with a short cache in front.
func (s *TeamService) GetCompletion(ctx context.Context, id primitive.ObjectID) (*models.CompletionSummary, error) {
	var cached models.CompletionSummary
	hit, err := s.cache.Get(ctx, cache.CompletionKey(id), &cached)
	if err != nil {
		log.Warn().Err(err).Str("teamId", id.Hex()).Msg("completion cache read failed")
	}
	if hit {
		return &cached, nil
	}

	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.memberRepo.CountAcceptedByTeamID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := completion.Score(team, count)
	if err := s.cache.Set(ctx, cache.CompletionKey(id), summary, completionCacheTTL); err != nil {
		log.Warn().Err(err).Str("teamId", id.Hex()).Msg("completion cache write failed")
	}
	return &summary, nil
}

// SuggestBranding derives branding defaults for a name and mascot keyword.
// With a seed the mascot glyph is reproducible; without one it is drawn from
// the service's random source.
func (s *TeamService) SuggestBranding(name, mascotKeyword string, seed *int) models.BrandSuggestions {
	var glyph string
	if seed != nil {
		glyph = suggest.MascotGlyph(*seed)
	} else {
		s.rngMu.Lock()
		glyph = suggest.RandomMascotGlyph(s.rng)
		s.rngMu.Unlock()
	}

	return models.BrandSuggestions{
		LogoStyle:   suggest.LogoStyle(name, mascotKeyword),
		FontFamily:  suggest.FontFamily(name),
		LogoText:    suggest.LogoText(name),
		MascotGlyph: glyph,
	}
}

func (s *TeamService) cacheTeamSlug(ctx context.Context, team *models.Team) {
	if err := s.cache.Set(ctx, cache.TeamSlugKey(team.Slug), team, slugCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", team.Slug).Msg("slug cache write failed")
	}
}

func (s *TeamService) invalidateTeam(ctx context.Context, team *models.Team) {
	if err := s.cache.Delete(ctx, cache.TeamSlugKey(team.Slug)); err != nil {
		log.Warn().Err(err).Str("slug", team.Slug).Msg("slug cache invalidation failed")
	}
	if err := s.cache.Delete(ctx, cache.CompletionKey(team.ID)); err != nil {
		log.Warn().Err(err).Str("teamId", team.ID.Hex()).Msg("completion cache invalidation failed")
	}
}

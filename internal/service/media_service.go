package service

import (
	"context"
	"errors"
	"io"
	"time"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"
	"teamforge/internal/queue"
	"teamforge/internal/repository"
	"teamforge/internal/storage"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mediaURLExpiry bounds the pre-signed download URLs handed out for uploaded
// image blobs.
const mediaURLExpiry = 1 * time.Hour

// MediaBoardService handles a team's media board: free-form canvas items,
// threaded comments, and uploaded images backed by object storage.
type MediaBoardService struct {
	mediaRepo repository.MediaItemRepository
	teamRepo  repository.TeamRepository
	store     storage.Storage
	cleanup   CleanupEnqueuer
}

// NewMediaBoardService creates a new MediaBoardService.
func NewMediaBoardService(
	mediaRepo repository.MediaItemRepository,
	teamRepo repository.TeamRepository,
	store storage.Storage,
	cleanup CleanupEnqueuer,
) *MediaBoardService {
	return &MediaBoardService{
		mediaRepo: mediaRepo,
		teamRepo:  teamRepo,
		store:     store,
		cleanup:   cleanup,
	}
}

// ListItems returns all board items of a team, oldest first. Download URLs
// for uploaded images are refreshed on the way out.
func (s *MediaBoardService) ListItems(ctx context.Context, teamID primitive.ObjectID) ([]models.MediaItem, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.mediaRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.refreshURL(ctx, &items[i])
	}
	return items, nil
}

// GetItem retrieves one board item, scoped to the team.
func (s *MediaBoardService) GetItem(ctx context.Context, teamID, id primitive.ObjectID) (*models.MediaItem, error) {
	item, err := s.findTeamItem(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	s.refreshURL(ctx, item)
	return item, nil
}

// CreateItem adds a non-upload item to the board: a link, note, sticky note,
// comment, or an image referencing an already uploaded URL. Attachment targets
// must exist, belong to the same team, and not form a cycle.
func (s *MediaBoardService) CreateItem(ctx context.Context, teamID, createdBy primitive.ObjectID, req *models.CreateMediaItemRequest) (*models.MediaItem, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	item := &models.MediaItem{
		TeamID:    teamID,
		Type:      req.Type,
		URL:       req.URL,
		Body:      req.Body,
		Position:  req.Position,
		Width:     req.Width,
		Height:    req.Height,
		CreatedBy: createdBy,
	}

	if req.AttachedToMediaID != nil {
		hostID, err := primitive.ObjectIDFromHex(*req.AttachedToMediaID)
		if err != nil {
			return nil, apperrors.ErrMediaHostNotFound
		}
		item.AttachedToMediaID = &hostID
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	if item.AttachedToMediaID != nil {
		if err := s.checkAttachment(ctx, teamID, *item.AttachedToMediaID); err != nil {
			return nil, err
		}
	}

	if err := s.mediaRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UploadImage validates and stores an image blob, then creates the board item
// pointing at it. Validation runs before any storage call so oversized or
// mistyped uploads fail fast.
func (s *MediaBoardService) UploadImage(ctx context.Context, teamID, createdBy primitive.ObjectID, contentType string, size int64, body io.Reader) (*models.MediaItem, error) {
	if err := storage.ValidateUpload(contentType, size); err != nil {
		return nil, err
	}
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	id := primitive.NewObjectID()
	key := storage.MediaKey(teamID, id)

	if err := s.store.PutObject(ctx, key, body, contentType); err != nil {
		return nil, err
	}

	url, err := s.store.GetPresignedURL(ctx, key, mediaURLExpiry)
	if err != nil {
		s.releaseBlob(key)
		return nil, err
	}

	item := &models.MediaItem{
		ID:         id,
		TeamID:     teamID,
		Type:       models.MediaImage,
		URL:        &url,
		StorageKey: &key,
		CreatedBy:  createdBy,
	}
	if err := s.mediaRepo.Create(ctx, item); err != nil {
		// The blob is orphaned if the document never lands.
		s.releaseBlob(key)
		return nil, err
	}
	return item, nil
}

// UpdateItem moves, resizes, or edits an existing item. The structural rules
// are re-checked after the update is folded in.
func (s *MediaBoardService) UpdateItem(ctx context.Context, teamID, id primitive.ObjectID, req *models.UpdateMediaItemRequest) (*models.MediaItem, error) {
	item, err := s.findTeamItem(ctx, teamID, id)
	if err != nil {
		return nil, err
	}

	if req.Body != nil {
		item.Body = req.Body
	}
	if req.Position != nil {
		item.Position = req.Position
	}
	if req.Width != nil {
		item.Width = req.Width
	}
	if req.Height != nil {
		item.Height = req.Height
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.mediaRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.refreshURL(ctx, item)
	return item, nil
}

// DeleteItem removes an item together with everything attached to it,
// transitively, so no comment is left pointing at a missing host. Uploaded
// blobs of the removed items are released through the cleanup queue.
func (s *MediaBoardService) DeleteItem(ctx context.Context, teamID, id primitive.ObjectID) error {
	item, err := s.findTeamItem(ctx, teamID, id)
	if err != nil {
		return err
	}

	dependents, err := s.collectDependents(ctx, item.ID)
	if err != nil {
		return err
	}

	if item.StorageKey != nil {
		s.releaseBlob(*item.StorageKey)
	}
	depIDs := make([]primitive.ObjectID, 0, len(dependents))
	for _, dep := range dependents {
		depIDs = append(depIDs, dep.ID)
		if dep.StorageKey != nil {
			s.releaseBlob(*dep.StorageKey)
		}
	}

	if len(depIDs) > 0 {
		if err := s.mediaRepo.DeleteMany(ctx, depIDs); err != nil {
			return err
		}
	}
	return s.mediaRepo.Delete(ctx, item.ID)
}

// findTeamItem loads an item and hides items of other teams behind not-found.
func (s *MediaBoardService) findTeamItem(ctx context.Context, teamID, id primitive.ObjectID) (*models.MediaItem, error) {
	item, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.TeamID != teamID {
		return nil, apperrors.ErrMediaNotFound
	}
	return item, nil
}

// checkAttachment verifies the host exists, belongs to the team, and that the
// chain above it terminates. The new item has a fresh identity so it cannot
// itself close a cycle, but a corrupt chain must not send deletion walking
// forever.
func (s *MediaBoardService) checkAttachment(ctx context.Context, teamID, hostID primitive.ObjectID) error {
	visited := map[primitive.ObjectID]bool{}
	current := hostID
	for {
		if visited[current] {
			return apperrors.ErrMediaAttachmentCycle
		}
		visited[current] = true

		host, err := s.mediaRepo.FindByID(ctx, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrMediaNotFound) {
				return apperrors.ErrMediaHostNotFound
			}
			return err
		}
		if host.TeamID != teamID {
			return apperrors.ErrMediaCrossTeamAttachment
		}
		if host.AttachedToMediaID == nil {
			return nil
		}
		current = *host.AttachedToMediaID
	}
}

// collectDependents walks the attachment graph below an item breadth-first.
func (s *MediaBoardService) collectDependents(ctx context.Context, rootID primitive.ObjectID) ([]models.MediaItem, error) {
	var all []models.MediaItem
	visited := map[primitive.ObjectID]bool{rootID: true}
	frontier := []primitive.ObjectID{rootID}

	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]

		attached, err := s.mediaRepo.FindAttachedTo(ctx, next)
		if err != nil {
			return nil, err
		}
		for _, dep := range attached {
			if visited[dep.ID] {
				continue
			}
			visited[dep.ID] = true
			all = append(all, dep)
			frontier = append(frontier, dep.ID)
		}
	}
	return all, nil
}

// refreshURL re-signs the download URL of an uploaded image. Listing keeps
// going when signing fails; the stale URL is better than no board.
func (s *MediaBoardService) refreshURL(ctx context.Context, item *models.MediaItem) {
	if item.StorageKey == nil {
		return
	}
	url, err := s.store.GetPresignedURL(ctx, *item.StorageKey, mediaURLExpiry)
	if err != nil {
		log.Warn().Err(err).Str("key", *item.StorageKey).Msg("failed to presign media url")
		return
	}
	item.URL = &url
}

func (s *MediaBoardService) releaseBlob(key string) {
	if err := s.cleanup.Enqueue(queue.CleanupJob{Key: key}); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to enqueue blob cleanup")
	}
}

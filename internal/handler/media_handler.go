package handler

import (
	"errors"

	apperrors "teamforge/internal/errors"
	"teamforge/internal/middleware"
	"teamforge/internal/models"
	"teamforge/internal/service"
	"teamforge/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaHandler handles HTTP requests for a team's media board.
type MediaHandler struct {
	service service.MediaBoardServicer
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(service service.MediaBoardServicer) *MediaHandler {
	return &MediaHandler{service: service}
}

// ListItems returns every item on the team's board.
// GET /teams/:teamId/media
func (h *MediaHandler) ListItems(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, models.MediaItemListResponse{Items: items})
}

// GetItem returns one board item.
// GET /teams/:teamId/media/:id
func (h *MediaHandler) GetItem(c *gin.Context) {
	teamID, itemID, ok := boardItemIDs(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), teamID, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMediaNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, item)
}

// CreateItem adds a link, note, sticky note, or comment to the board.
// POST /teams/:teamId/media
func (h *MediaHandler) CreateItem(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateMediaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		writeMediaError(c, err)
		return
	}

	response.Created(c, item)
}

// UploadImage accepts a multipart image upload and creates the image item.
// POST /teams/:teamId/media/images
func (h *MediaHandler) UploadImage(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	item, err := h.service.UploadImage(c.Request.Context(), teamID, userID, contentType, fileHeader.Size, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrUploadUnsupportedType) {
			response.UnsupportedMediaType(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUploadTooLarge) {
			response.PayloadTooLarge(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, item)
}

// UpdateItem moves, resizes, or edits a board item.
// PUT /teams/:teamId/media/:id
func (h *MediaHandler) UpdateItem(c *gin.Context) {
	teamID, itemID, ok := boardItemIDs(c)
	if !ok {
		return
	}

	var req models.UpdateMediaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), teamID, itemID, &req)
	if err != nil {
		writeMediaError(c, err)
		return
	}

	response.Success(c, item)
}

// DeleteItem removes a board item and everything attached to it.
// DELETE /teams/:teamId/media/:id
func (h *MediaHandler) DeleteItem(c *gin.Context) {
	teamID, itemID, ok := boardItemIDs(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), teamID, itemID); err != nil {
		if errors.Is(err, apperrors.ErrMediaNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "media item deleted successfully"})
}

// boardItemIDs pulls the team and item ids from the request, writing the
// error response itself on failure.
func boardItemIDs(c *gin.Context) (teamID, itemID primitive.ObjectID, ok bool) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid media item id format")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return teamID, itemID, true
}

// writeMediaError maps board mutation failures onto HTTP statuses.
func writeMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMediaNotFound),
		errors.Is(err, apperrors.ErrMediaHostNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrMediaInvalidType),
		errors.Is(err, apperrors.ErrMediaImageMissingURL),
		errors.Is(err, apperrors.ErrMediaPositionNotAllowed),
		errors.Is(err, apperrors.ErrMediaSizeWithoutPosition):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrMediaCrossTeamAttachment),
		errors.Is(err, apperrors.ErrMediaAttachmentCycle):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c)
	}
}

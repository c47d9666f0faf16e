package models

import (
	"time"

	apperrors "teamforge/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaType identifies what kind of board entry a media item is.
type MediaType string

const (
	MediaImage      MediaType = "image"
	MediaLink       MediaType = "link"
	MediaNote       MediaType = "note"
	MediaStickyNote MediaType = "sticky_note"
	MediaComment    MediaType = "comment"
)

// CanvasPlaceable reports whether items of this type may carry a free canvas
// position. Comments thread onto a host item instead of floating freely.
func (t MediaType) CanvasPlaceable() bool {
	switch t {
	case MediaImage, MediaLink, MediaNote, MediaStickyNote:
		return true
	default:
		return false
	}
}

// Valid reports whether the type is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaImage, MediaLink, MediaNote, MediaStickyNote, MediaComment:
		return true
	default:
		return false
	}
}

// Position is a free canvas placement.
type Position struct {
	X float64 `json:"x" bson:"x" example:"120"`
	Y float64 `json:"y" bson:"y" example:"80"`
}

// MediaItem is one entry on a team's media board. Structural rules:
// position is allowed only on canvas-placeable types, width/height only when
// a position is set, and image items must carry the URL produced by a prior
// upload. Comments thread onto a host item via AttachedToMediaID.
type MediaItem struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID            primitive.ObjectID  `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	Type              MediaType           `json:"type" bson:"type" example:"sticky_note"`
	URL               *string             `json:"url,omitempty" bson:"url,omitempty"`
	StorageKey        *string             `json:"-" bson:"storageKey,omitempty"`
	Body              *string             `json:"body,omitempty" bson:"body,omitempty"`
	Position          *Position           `json:"position,omitempty" bson:"position,omitempty"`
	Width             *float64            `json:"width,omitempty" bson:"width,omitempty"`
	Height            *float64            `json:"height,omitempty" bson:"height,omitempty"`
	AttachedToMediaID *primitive.ObjectID `json:"attachedToMediaId,omitempty" bson:"attachedToMediaId,omitempty"`
	CreatedBy         primitive.ObjectID  `json:"createdBy" bson:"createdBy"`
	CreatedAt         time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// Validate checks the positional and content invariants of a single item.
// Attachment rules (host exists, same team, no cycles) need repository access
// and are enforced in the service layer.
func (m *MediaItem) Validate() error {
	if !m.Type.Valid() {
		return apperrors.ErrMediaInvalidType
	}
	if m.Type == MediaImage && (m.URL == nil || *m.URL == "") {
		return apperrors.ErrMediaImageMissingURL
	}
	if m.Position != nil && !m.Type.CanvasPlaceable() {
		return apperrors.ErrMediaPositionNotAllowed
	}
	if m.Position == nil && (m.Width != nil || m.Height != nil) {
		return apperrors.ErrMediaSizeWithoutPosition
	}
	return nil
}

// CreateMediaItemRequest is the payload for adding an item to the board.
type CreateMediaItemRequest struct {
	Type              MediaType `json:"type" binding:"required,oneof=image link note sticky_note comment"`
	URL               *string   `json:"url" binding:"omitempty,url"`
	Body              *string   `json:"body" binding:"omitempty,max=5000"`
	Position          *Position `json:"position"`
	Width             *float64  `json:"width" binding:"omitempty,gt=0"`
	Height            *float64  `json:"height" binding:"omitempty,gt=0"`
	AttachedToMediaID *string   `json:"attachedToMediaId"`
}

// UpdateMediaItemRequest moves or edits an existing item.
type UpdateMediaItemRequest struct {
	Body     *string   `json:"body" binding:"omitempty,max=5000"`
	Position *Position `json:"position"`
	Width    *float64  `json:"width" binding:"omitempty,gt=0"`
	Height   *float64  `json:"height" binding:"omitempty,gt=0"`
}

// MediaItemListResponse is the response for listing board items.
type MediaItemListResponse struct {
	Items []MediaItem `json:"items"`
}

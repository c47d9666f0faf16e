package models

import (
	"time"

	"teamforge/internal/settings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStatus tracks how far a team profile has progressed.
type TeamStatus string

const (
	// StatusDraft indicates a freshly created profile with minimal fields.
	StatusDraft TeamStatus = "draft"
	// StatusBrandOnly indicates the brand kit is filled in but the roster is not.
	StatusBrandOnly TeamStatus = "brand_only"
	// StatusReadyForRegistration indicates the profile is complete enough to register for events.
	StatusReadyForRegistration TeamStatus = "ready_for_registration"
)

// Font family keys for the brand kit. Closed enumeration.
const (
	FontModern  = "modern"
	FontClassic = "classic"
	FontBlock   = "block"
)

// Logo style keys for the brand kit. Closed enumeration.
const (
	LogoMonogram = "monogram"
	LogoBadge    = "badge"
	LogoWordmark = "wordmark"
)

// Team is the identity root of a team profile.
type Team struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name         string             `json:"name" bson:"name" example:"Thunder Squad"`
	Slug         string             `json:"slug" bson:"slug" example:"thunder-squad"`
	OwnerID      primitive.ObjectID `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439012"`
	ContactEmail string             `json:"contactEmail" bson:"contactEmail" example:"coach@example.com"`
	Status       TeamStatus         `json:"status" bson:"status" example:"draft"`
	Public       bool               `json:"public" bson:"public" example:"false"`
	BrandKit     BrandKit           `json:"brandKit" bson:"brandKit"`
	Identity     Identity           `json:"identity" bson:"identity"`
	Completion   CompletionSummary  `json:"completion" bson:"completion"`
	Settings     map[string]any     `json:"settings,omitempty" bson:"settings,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt    *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// BrandKit holds the visual identity fields of a team. Only PrimaryColor and
// LogoText are required; the rest stay empty until the user fills them in or
// accepts a suggestion.
type BrandKit struct {
	PrimaryColor       string  `json:"primaryColor" bson:"primaryColor" example:"#1d4ed8"`
	SecondaryColor     *string `json:"secondaryColor,omitempty" bson:"secondaryColor,omitempty"`
	AwayPrimaryColor   *string `json:"awayPrimaryColor,omitempty" bson:"awayPrimaryColor,omitempty"`
	AwaySecondaryColor *string `json:"awaySecondaryColor,omitempty" bson:"awaySecondaryColor,omitempty"`
	AccentColor        *string `json:"accentColor,omitempty" bson:"accentColor,omitempty"`
	FontFamily         *string `json:"fontFamily,omitempty" bson:"fontFamily,omitempty" example:"modern"`
	LogoStyle          *string `json:"logoStyle,omitempty" bson:"logoStyle,omitempty" example:"monogram"`
	LogoText           string  `json:"logoText" bson:"logoText" example:"TS"`
	Acronym            *string `json:"acronym,omitempty" bson:"acronym,omitempty"`
	MascotGlyph        *string `json:"mascotGlyph,omitempty" bson:"mascotGlyph,omitempty"`
}

// Identity holds the freeform identity fields of a team.
type Identity struct {
	Tagline         string               `json:"tagline" bson:"tagline" example:"Strike like thunder"`
	MascotKeyword   string               `json:"mascotKeyword" bson:"mascotKeyword" example:"wolves"`
	Bio             string               `json:"bio" bson:"bio"`
	Location        string               `json:"location" bson:"location" example:"Portland, OR"`
	PlannedEventIDs []primitive.ObjectID `json:"plannedEventIds,omitempty" bson:"plannedEventIds,omitempty"`
}

// CompletionSummary holds derived completion scores, each bounded [0,100].
type CompletionSummary struct {
	Brand    int `json:"brand" bson:"brand" example:"60"`
	Identity int `json:"identity" bson:"identity" example:"40"`
	Roster   int `json:"roster" bson:"roster" example:"20"`
	Total    int `json:"total" bson:"total" example:"42"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100" example:"Thunder Squad"`
	Slug         string `json:"slug" binding:"required,min=2,max=50,slug" example:"thunder-squad"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email" example:"coach@example.com"`
}

// UpdateTeamRequest is the payload for updating a team profile. All fields are
// optional; nil means "leave unchanged".
type UpdateTeamRequest struct {
	Name         *string         `json:"name" binding:"omitempty,min=2,max=100"`
	ContactEmail *string         `json:"contactEmail" binding:"omitempty,email"`
	Public       *bool           `json:"public"`
	Status       *TeamStatus     `json:"status" binding:"omitempty,oneof=draft brand_only ready_for_registration"`
	BrandKit     *BrandKit       `json:"brandKit"`
	Identity     *Identity       `json:"identity"`
	Settings     map[string]any  `json:"settings"`
}

// ApplyUpdate folds an update request into the team. Settings documents merge
// recursively; everything else is plain field replacement. Nil fields are left
// unchanged.
func (t *Team) ApplyUpdate(req *UpdateTeamRequest) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.ContactEmail != nil {
		t.ContactEmail = *req.ContactEmail
	}
	if req.Public != nil {
		t.Public = *req.Public
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.BrandKit != nil {
		t.BrandKit = *req.BrandKit
	}
	if req.Identity != nil {
		t.Identity = *req.Identity
	}
	if req.Settings != nil {
		t.Settings = settings.Merge(t.Settings, req.Settings)
	}
}

// BrandSuggestions carries derived branding defaults for a team name.
type BrandSuggestions struct {
	LogoStyle   string `json:"logoStyle" example:"monogram"`
	FontFamily  string `json:"fontFamily" example:"modern"`
	LogoText    string `json:"logoText" example:"TS"`
	MascotGlyph string `json:"mascotGlyph" example:"🐺"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items      []Team     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}

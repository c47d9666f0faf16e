package models

import "time"

// SessionStateResponse exposes the observable state of an editing session.
type SessionStateResponse struct {
	Dirty       bool       `json:"dirty" example:"true"`
	GuardState  string     `json:"guardState" example:"dirty"`
	IsSaving    bool       `json:"isSaving" example:"false"`
	LastError   *string    `json:"lastError,omitempty"`
	LastSavedAt *time.Time `json:"lastSavedAt,omitempty"`
}

// SetAutosaveRequest toggles autosave scheduling for an open session.
type SetAutosaveRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

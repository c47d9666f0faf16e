package session

import (
	"sync"

	"teamforge/internal/autosave"
	"teamforge/internal/models"
)

// DefaultLeaveMessage is shown when leaving with unsaved edits.
const DefaultLeaveMessage = "You have unsaved changes. Leave anyway?"

// Session is one editing session over a team profile. Every edit updates the
// in-memory snapshot, feeds the autosave engine, and refreshes the guard's
// dirty signal. The session owns the engine and guard lifecycles.
type Session struct {
	mu     sync.Mutex
	team   models.Team
	engine *autosave.Engine[models.Team]
	guard  *Guard
}

// NewSession starts a session from the current team snapshot. The snapshot is
// recorded as the autosave baseline, so opening a session never triggers a
// save on its own.
func NewSession(team models.Team, save autosave.SaveFunc[models.Team], confirm ConfirmFunc, opts ...autosave.Option) *Session {
	engine := autosave.New(save, opts...)
	engine.Observe(team)
	return &Session{
		team:   team,
		engine: engine,
		guard:  NewGuard(DefaultLeaveMessage, confirm),
	}
}

// Apply mutates the snapshot through edit and returns the result. The edited
// snapshot is handed to the autosave engine and the guard's dirty signal is
// refreshed.
func (s *Session) Apply(edit func(team *models.Team)) models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	edit(&s.team)
	s.engine.Observe(s.team)
	s.guard.SetDirty(s.engine.Dirty())
	return s.team
}

// ApplyUpdate folds an update request into the snapshot. Settings documents
// merge recursively; everything else is plain field replacement.
func (s *Session) ApplyUpdate(req *models.UpdateTeamRequest) models.Team {
	return s.Apply(func(team *models.Team) {
		team.ApplyUpdate(req)
	})
}

// Snapshot returns the current in-memory team.
func (s *Session) Snapshot() models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.team
}

// Dirty reports whether the snapshot differs from the last saved baseline,
// refreshing the guard on the way.
func (s *Session) Dirty() bool {
	dirty := s.engine.Dirty()
	s.guard.SetDirty(dirty)
	return dirty
}

// SaveState exposes the autosave engine's observable state.
func (s *Session) SaveState() autosave.State {
	return s.engine.State()
}

// Guard exposes the navigation guard for host wiring.
func (s *Session) Guard() *Guard {
	// Refresh so guard consumers observe the current dirty signal.
	s.guard.SetDirty(s.engine.Dirty())
	return s.guard
}

// SetAutosaveEnabled toggles the engine's scheduling.
func (s *Session) SetAutosaveEnabled(enabled bool) {
	s.engine.SetEnabled(enabled)
}

// Close disposes the session, cancelling any pending save timer. Reports
// false and leaves the session open when unsaved edits exist and the user
// declines the prompt.
func (s *Session) Close() bool {
	if !s.Dirty() {
		s.engine.Close()
		return true
	}
	return s.guard.ConfirmNavigation(func() {
		s.engine.Close()
	})
}

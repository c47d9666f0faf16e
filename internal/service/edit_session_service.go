package service

import (
	"context"
	"sync"

	"teamforge/internal/autosave"
	"teamforge/internal/cache"
	"teamforge/internal/completion"
	apperrors "teamforge/internal/errors"
	"teamforge/internal/models"
	"teamforge/internal/repository"
	"teamforge/internal/session"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EditSessionService manages the live editing sessions over team profiles.
// One session per team: edits accumulate in memory, the autosave engine
// persists them after the debounce window, and the navigation guard blocks a
// close while unsaved edits exist.
type EditSessionService struct {
	mu       sync.Mutex
	sessions map[primitive.ObjectID]*editSession

	teamRepo   repository.TeamRepository
	memberRepo repository.MembershipRepository
	cache      cache.Cache
	opts       []autosave.Option
}

// editSession pairs a session with the confirm answer its guard reads. The
// answer is set per close request before the guard prompts.
type editSession struct {
	sess    *session.Session
	confirm *requestConfirm
}

// requestConfirm adapts the guard's synchronous prompt to a request-scoped
// yes/no carried by the close call.
type requestConfirm struct {
	mu    sync.Mutex
	allow bool
}

func (c *requestConfirm) set(allow bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allow = allow
}

func (c *requestConfirm) Confirm(string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allow
}

// NewEditSessionService creates a new EditSessionService. The autosave options
// apply to every session it opens.
func NewEditSessionService(
	teamRepo repository.TeamRepository,
	memberRepo repository.MembershipRepository,
	c cache.Cache,
	opts ...autosave.Option,
) *EditSessionService {
	return &EditSessionService{
		sessions:   make(map[primitive.ObjectID]*editSession),
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		cache:      c,
		opts:       opts,
	}
}

// Open starts an editing session over a team and returns the opening
// snapshot. Opening never schedules a save on its own.
func (s *EditSessionService) Open(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[teamID]; ok {
		return nil, apperrors.ErrSessionAlreadyOpen
	}

	confirm := &requestConfirm{}
	sess := session.NewSession(*team, s.persist, confirm.Confirm, s.opts...)
	s.sessions[teamID] = &editSession{sess: sess, confirm: confirm}

	snapshot := sess.Snapshot()
	return &snapshot, nil
}

// Edit folds an update into the session snapshot and returns the result. The
// save itself happens later, after the debounce window.
func (s *EditSessionService) Edit(teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	es, err := s.get(teamID)
	if err != nil {
		return nil, err
	}
	team := es.sess.ApplyUpdate(req)
	return &team, nil
}

// State reports the session's dirty flag, guard phase, and save progress.
func (s *EditSessionService) State(teamID primitive.ObjectID) (*models.SessionStateResponse, error) {
	es, err := s.get(teamID)
	if err != nil {
		return nil, err
	}

	st := es.sess.SaveState()
	resp := &models.SessionStateResponse{
		Dirty:      es.sess.Dirty(),
		GuardState: string(es.sess.Guard().State()),
		IsSaving:   st.IsSaving,
	}
	if !st.LastSavedAt.IsZero() {
		savedAt := st.LastSavedAt
		resp.LastSavedAt = &savedAt
	}
	if st.LastError != nil {
		msg := st.LastError.Error()
		resp.LastError = &msg
	}
	return resp, nil
}

// SetAutosave toggles debounced saving for the session. Disabling does not
// cancel a timer that is already armed.
func (s *EditSessionService) SetAutosave(teamID primitive.ObjectID, enabled bool) error {
	es, err := s.get(teamID)
	if err != nil {
		return err
	}
	es.sess.SetAutosaveEnabled(enabled)
	return nil
}

// Close ends the session. With unsaved edits the guard prompts; confirmed
// answers the prompt. A vetoed close leaves the session open and reports
// ErrUnsavedChanges.
func (s *EditSessionService) Close(teamID primitive.ObjectID, confirmed bool) error {
	es, err := s.get(teamID)
	if err != nil {
		return err
	}

	es.confirm.set(confirmed)
	if !es.sess.Close() {
		return apperrors.ErrUnsavedChanges
	}

	s.mu.Lock()
	delete(s.sessions, teamID)
	s.mu.Unlock()
	return nil
}

// Shutdown force-closes every open session, discarding unsaved edits. Called
// on server shutdown.
func (s *EditSessionService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for teamID, es := range s.sessions {
		es.confirm.set(true)
		if !es.sess.Close() {
			log.Warn().Str("teamId", teamID.Hex()).Msg("editing session refused to close")
		}
		delete(s.sessions, teamID)
	}
}

func (s *EditSessionService) get(teamID primitive.ObjectID) (*editSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	es, ok := s.sessions[teamID]
	if !ok {
		return nil, apperrors.ErrNoActiveSession
	}
	return es, nil
}

// persist is the autosave engine's save function: it recomputes completion
// from the current roster, writes the team, and drops derived caches.
func (s *EditSessionService) persist(ctx context.Context, team models.Team) error {
	count, err := s.memberRepo.CountAcceptedByTeamID(ctx, team.ID)
	if err != nil {
		return err
	}
	team.Completion = completion.Score(&team, count)

	if err := s.teamRepo.Update(ctx, &team); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, cache.TeamSlugKey(team.Slug)); err != nil {
		log.Warn().Err(err).Str("slug", team.Slug).Msg("slug cache invalidation failed")
	}
	if err := s.cache.Delete(ctx, cache.CompletionKey(team.ID)); err != nil {
		log.Warn().Err(err).Str("teamId", team.ID.Hex()).Msg("completion cache invalidation failed")
	}
	return nil
}

// Package session holds the editing-session machinery: a navigation guard
// that blocks exits while unsaved edits exist, and an edit session that ties
// a team snapshot to the autosave engine.
package session

import "sync"

// GuardState is the navigation guard's current phase.
type GuardState string

const (
	// StateClean means the snapshot matches what was last persisted.
	StateClean GuardState = "clean"
	// StateDirty means unsaved edits exist and exits are guarded.
	StateDirty GuardState = "dirty"
	// StateConfirming means a prompt is in front of the user.
	StateConfirming GuardState = "confirming"
	// StateNavigating means the user accepted; one transition may pass
	// without being re-prompted.
	StateNavigating GuardState = "navigating"
)

// ConfirmFunc asks the user to confirm leaving. It is host-provided so the
// guard is testable without a real UI.
type ConfirmFunc func(message string) bool

// UnloadEvent is the cancelable host signal for a browser/process exit.
type UnloadEvent interface {
	Prevent()
	SetMessage(message string)
}

// Guard intercepts unload and in-app navigation while unsaved edits exist.
//
// The dirty signal is supplied externally via SetDirty. While dirty, unload
// events are prevented and in-app navigation prompts through the injected
// ConfirmFunc; accepting arms a one-shot latch so the transition that was
// just confirmed is not prompted again.
type Guard struct {
	mu      sync.Mutex
	state   GuardState
	message string
	confirm ConfirmFunc
}

// NewGuard creates a guard with the user-facing confirmation message.
func NewGuard(message string, confirm ConfirmFunc) *Guard {
	return &Guard{
		state:   StateClean,
		message: message,
		confirm: confirm,
	}
}

// SetDirty feeds the externally derived "has unsaved changes" signal. Going
// clean resets the latch and removes the unload guard.
func (g *Guard) SetDirty(dirty bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !dirty {
		g.state = StateClean
		return
	}
	if g.state == StateClean {
		g.state = StateDirty
	}
}

// State returns the guard's current phase.
func (g *Guard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// HandleUnload guards a host exit. While unsaved edits exist the event is
// prevented and the configured message attached; once the user has accepted
// an in-app transition (navigating latch) the exit passes.
func (g *Guard) HandleUnload(e UnloadEvent) {
	g.mu.Lock()
	state := g.state
	message := g.message
	g.mu.Unlock()

	if state == StateDirty || state == StateConfirming {
		e.Prevent()
		e.SetMessage(message)
	}
}

// HandleNavigation guards an in-app route transition and reports whether it
// may proceed. Declining restores the Dirty state and vetoes the transition.
// Accepting arms the navigating latch; the next call passes without a prompt
// and consumes the latch.
func (g *Guard) HandleNavigation() bool {
	g.mu.Lock()
	switch g.state {
	case StateClean:
		g.mu.Unlock()
		return true
	case StateNavigating:
		// One-shot: the confirmed transition passes, further ones re-prompt.
		g.state = StateDirty
		g.mu.Unlock()
		return true
	case StateConfirming:
		// Re-entered while a prompt is already up; veto the duplicate.
		g.mu.Unlock()
		return false
	}
	g.state = StateConfirming
	message := g.message
	confirm := g.confirm
	g.mu.Unlock()

	accepted := confirm(message)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateConfirming {
		// Saved (or reset) while the prompt was up; nothing left to guard.
		return true
	}
	if !accepted {
		g.state = StateDirty
		return false
	}
	g.state = StateNavigating
	return true
}

// ConfirmNavigation runs action behind the same prompt semantics: clean runs
// immediately, dirty prompts first. Reports whether action ran.
func (g *Guard) ConfirmNavigation(action func()) bool {
	if !g.HandleNavigation() {
		return false
	}
	action()
	return true
}

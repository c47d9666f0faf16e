// Package autosave turns a stream of in-memory edits into a minimal sequence
// of persistence calls. An Engine watches successive snapshots of a value,
// debounces them behind a one-shot timer, and saves the latest snapshot once
// the edits go quiet.
package autosave

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// DefaultDelay is the quiet period required before a save fires.
const DefaultDelay = 1000 * time.Millisecond

// SaveFunc persists a snapshot. It must be idempotent under re-invocation
// with the same snapshot; the engine may call it again after a transient
// failure.
type SaveFunc[T any] func(ctx context.Context, value T) error

// State is an observable snapshot of the engine.
type State struct {
	IsSaving    bool
	LastError   error
	LastSavedAt time.Time
}

type options struct {
	delay   time.Duration
	enabled bool
	clock   clockwork.Clock
	log     zerolog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithDelay overrides the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithEnabled sets the initial enabled state.
func WithEnabled(enabled bool) Option {
	return func(o *options) { o.enabled = enabled }
}

// WithClock injects the clock used for timers and timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger injects a logger for save outcomes.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// Engine debounces observed snapshots of T into save calls.
//
// The first observed snapshot is recorded as the baseline and never saved.
// Each later snapshot is compared against the baseline of the last successful
// save; a differing snapshot re-arms the one-shot timer, so edits inside the
// quiet window coalesce into a single save of the latest snapshot. A failed
// save keeps the old baseline: the value stays dirty and the next observation
// schedules a fresh attempt. There is no timer-driven retry.
type Engine[T any] struct {
	save  SaveFunc[T]
	delay time.Duration
	clock clockwork.Clock
	log   zerolog.Logger

	mu          sync.Mutex
	enabled     bool
	hasBaseline bool
	baseline    []byte
	latest      T
	latestRaw   []byte
	timerCancel chan struct{}
	timerGen    int
	closed      bool
	state       State
}

// New creates an engine around a save function.
func New[T any](save SaveFunc[T], opts ...Option) *Engine[T] {
	o := options{
		delay:   DefaultDelay,
		enabled: true,
		clock:   clockwork.NewRealClock(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[T]{
		save:    save,
		delay:   o.delay,
		clock:   o.clock,
		log:     o.log,
		enabled: o.enabled,
	}
}

// Observe records the current snapshot. The first call establishes the
// baseline without scheduling anything; later calls schedule a save when the
// snapshot differs structurally from the last saved baseline.
func (e *Engine[T]) Observe(value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		e.log.Error().Err(err).Msg("autosave: snapshot not serializable, edit dropped")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	if !e.hasBaseline {
		e.hasBaseline = true
		e.baseline = raw
		e.latest = value
		e.latestRaw = raw
		return
	}

	if bytes.Equal(raw, e.baseline) {
		return
	}

	e.latest = value
	e.latestRaw = raw

	if !e.enabled {
		return
	}
	e.scheduleLocked()
}

// scheduleLocked re-arms the one-shot timer, cancelling any pending one so at
// most one save is scheduled at a time.
func (e *Engine[T]) scheduleLocked() {
	if e.timerCancel != nil {
		close(e.timerCancel)
	}
	cancel := make(chan struct{})
	e.timerCancel = cancel
	e.timerGen++
	gen := e.timerGen

	timer := e.clock.NewTimer(e.delay)
	go func() {
		select {
		case <-timer.Chan():
			e.fire(gen)
		case <-cancel:
			stopAndDrainTimer(timer)
		}
	}()
}

// fire runs when the quiet period elapses. It saves the snapshot as of fire
// time, not the one that armed the timer.
func (e *Engine[T]) fire(gen int) {
	e.mu.Lock()
	if e.closed || gen != e.timerGen {
		e.mu.Unlock()
		return
	}
	e.timerCancel = nil
	value := e.latest
	raw := e.latestRaw
	e.state.IsSaving = true
	e.state.LastError = nil
	e.mu.Unlock()

	err := e.save(context.Background(), value)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		// Disposed while the save was in flight; the call was allowed to
		// finish but must not mutate released state.
		return
	}
	e.state.IsSaving = false
	if err != nil {
		e.state.LastError = err
		e.log.Warn().Err(err).Msg("autosave: save failed, keeping dirty baseline")
		return
	}
	e.baseline = raw
	e.state.LastSavedAt = e.clock.Now()
	e.log.Debug().Time("saved_at", e.state.LastSavedAt).Msg("autosave: snapshot persisted")
}

// SetEnabled toggles scheduling. Disabling prevents new timers but does not
// cancel a save that has already fired.
func (e *Engine[T]) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = enabled
}

// Dirty reports whether the latest observed snapshot differs from the last
// successfully saved baseline.
func (e *Engine[T]) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasBaseline {
		return false
	}
	return !bytes.Equal(e.latestRaw, e.baseline)
}

// State returns a snapshot of the engine's observable state.
func (e *Engine[T]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Close cancels any pending (unfired) timer. A save that already fired may
// still complete or fail afterwards; its outcome is discarded.
func (e *Engine[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	if e.timerCancel != nil {
		close(e.timerCancel)
		e.timerCancel = nil
	}
}

// stopAndDrainTimer safely stops a timer and drains its channel, following
// the pattern from the time.Timer.Stop documentation.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}

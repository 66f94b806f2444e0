package idletrack

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrymomot/idlekit/core/activity"
)

// Tracker detects a continuous absence of qualifying user activity for a
// configured duration and notifies its owner, with an optional earlier
// warning. All state lives in memory; the tracker owns no network, file, or
// persisted-state surface.
//
// Callbacks are invoked synchronously from the tracker's internal goroutines
// and must return quickly. They may call ResetTimer, ExtendSession, Enable,
// or Disable, but must not call Stop.
type Tracker struct {
	id     uuid.UUID
	cfg    Config
	logger *slog.Logger
	source activity.Source

	onIdle    func(Transition)
	onWarning func(Transition)
	onActive  func(Transition)

	now func() time.Time

	mu         sync.Mutex
	state      State
	lastActive time.Time
	enabled    bool
	started    bool
	generation uint64
	warnTimer  *time.Timer
	idleTimer  *time.Timer
	limiter    *rate.Limiter
	quit       chan struct{}
	loopDone   chan struct{}
	ctxHook    func() bool

	callbacks sync.WaitGroup
}

// New creates a tracker that fires onIdle after timeout of inactivity.
// The remaining configuration comes from defaults and options.
//
// A timeout <= 0 is not rejected: it degrades to firing idle on the first
// scheduling pass after Start. Validate inputs before construction if that
// behavior is not wanted.
func New(timeout time.Duration, onIdle func(Transition), opts ...Option) (*Tracker, error) {
	cfg := defaultConfig()
	cfg.Timeout = timeout
	return NewWithConfig(cfg, onIdle, opts...)
}

// NewWithConfig creates a tracker from a full Config, typically loaded from
// the environment with the core/config package. Options override Config
// fields.
func NewWithConfig(cfg Config, onIdle func(Transition), opts ...Option) (*Tracker, error) {
	if onIdle == nil {
		return nil, ErrNilIdleCallback
	}

	t := &Tracker{
		id:     uuid.New(),
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		onIdle: onIdle,
		now:    time.Now,
		state:  StateActive,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.enabled = !t.cfg.Disabled
	return t, nil
}

// ID returns the tracker's stable identifier, carried in every Transition.
func (t *Tracker) ID() uuid.UUID {
	return t.id
}

// Start arms the timers and, when an activity source is configured,
// subscribes to it. Cancelling ctx tears the tracker down as if Stop were
// called. Returns ErrAlreadyStarted if the tracker is already running.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return ErrAlreadyStarted
	}
	t.started = true
	t.state = StateActive
	t.lastActive = t.now()

	if t.cfg.Throttle > 0 {
		t.limiter = rate.NewLimiter(rate.Every(t.cfg.Throttle), 1)
	} else {
		t.limiter = nil
	}

	if t.enabled {
		t.armLocked()
	}

	var events <-chan activity.Event
	if t.source != nil {
		events = t.source.Events()
	}
	t.quit = make(chan struct{})
	t.loopDone = make(chan struct{})
	t.ctxHook = context.AfterFunc(ctx, func() { _ = t.Stop() })
	quit, done := t.quit, t.loopDone
	t.mu.Unlock()

	go t.consume(events, quit, done)

	t.logger.DebugContext(ctx, "tracker started",
		slog.String("tracker_id", t.id.String()),
		slog.Duration("timeout", t.cfg.Timeout),
		slog.Duration("warning_time", t.cfg.WarningTime))
	return nil
}

// Stop cancels every outstanding scheduled firing, releases the activity
// subscription, and waits for in-flight callbacks to return. No callback
// fires after Stop returns, including firings already started by the
// platform timer. Returns ErrNotStarted if the tracker is not running.
func (t *Tracker) Stop() error {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return ErrNotStarted
	}
	t.started = false
	t.generation++
	t.stopTimersLocked()
	if t.ctxHook != nil {
		t.ctxHook()
		t.ctxHook = nil
	}
	quit, done := t.quit, t.loopDone
	t.mu.Unlock()

	close(quit)
	<-done
	t.callbacks.Wait()

	t.logger.Debug("tracker stopped", slog.String("tracker_id", t.id.String()))
	return nil
}

// consume drains the activity feed until the tracker stops or the source
// closes.
func (t *Tracker) consume(events <-chan activity.Event, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	if events == nil {
		<-quit
		return
	}
	for {
		select {
		case <-quit:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			t.Observe(ev)
		}
	}
}

// Observe feeds a single activity event to the tracker. Non-qualifying kinds
// are ignored. Qualifying events are throttled: at most one event per
// throttle window re-arms the timers, the rest are dropped without effect.
// Most callers configure an activity source instead of calling Observe
// directly.
func (t *Tracker) Observe(ev activity.Event) {
	if !ev.Kind.Qualifies() {
		return
	}

	t.mu.Lock()
	if !t.started || !t.enabled {
		t.mu.Unlock()
		return
	}
	if t.limiter != nil && !t.limiter.Allow() {
		t.mu.Unlock()
		return
	}
	t.resetLocked(ev.Kind.String())
}

// ResetTimer unconditionally re-arms the timer to the full timeout, clears
// the idle state, and fires the active callback when leaving idle. Unlike
// activity events, explicit resets bypass the throttle. No-op while disabled
// or stopped.
func (t *Tracker) ResetTimer() {
	t.mu.Lock()
	if !t.started || !t.enabled {
		t.mu.Unlock()
		return
	}
	t.resetLocked("reset")
}

// ExtendSession is semantically identical to ResetTimer. It exists for
// call-site clarity: "user clicked stay signed in" reads differently from
// "user moved the pointer".
func (t *Tracker) ExtendSession() {
	t.mu.Lock()
	if !t.started || !t.enabled {
		t.mu.Unlock()
		return
	}
	t.resetLocked("extend")
}

// Disable suspends scheduling: every pending firing is cancelled and
// activity is ignored until Enable is called.
func (t *Tracker) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}
	t.enabled = false
	t.generation++
	t.stopTimersLocked()
	t.logger.Debug("tracker disabled", slog.String("tracker_id", t.id.String()))
}

// Enable resumes scheduling as if the tracker were freshly constructed:
// full timeout remaining and not idle.
func (t *Tracker) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.enabled {
		return
	}
	t.enabled = true
	t.state = StateActive
	t.lastActive = t.now()
	if t.started {
		t.armLocked()
	}
	t.logger.Debug("tracker enabled", slog.String("tracker_id", t.id.String()))
}

// Remaining returns the time left until the idle transition, in
// [0, timeout]. While disabled or stopped the inactivity clock is not
// running and the full timeout is reported.
func (t *Tracker) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	timeout := t.cfg.Timeout
	if timeout < 0 {
		timeout = 0
	}
	if t.state == StateIdle {
		return 0
	}
	if !t.started || !t.enabled {
		return timeout
	}
	rem := timeout - t.now().Sub(t.lastActive)
	if rem < 0 {
		rem = 0
	}
	if rem > timeout {
		rem = timeout
	}
	return rem
}

// IsIdle reports whether the tracker is in the idle state.
func (t *Tracker) IsIdle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == StateIdle
}

// State returns the tracker's current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// resetLocked returns the tracker to StateActive and re-arms the timers.
// Caller must hold mu; resetLocked releases it before invoking callbacks.
func (t *Tracker) resetLocked(cause string) {
	from := t.state
	now := t.now()
	t.state = StateActive
	t.lastActive = now
	t.armLocked()

	var cb func(Transition)
	var tr Transition
	if from == StateIdle && t.onActive != nil {
		cb = t.onActive
		tr = Transition{
			TrackerID: t.id,
			From:      from,
			To:        StateActive,
			At:        now,
			Remaining: t.cfg.Timeout,
		}
		t.callbacks.Add(1)
	}
	t.mu.Unlock()

	t.logger.Debug("tracker reset",
		slog.String("tracker_id", t.id.String()),
		slog.String("cause", cause),
		slog.String("from", from.String()))

	if cb != nil {
		defer t.callbacks.Done()
		cb(tr)
	}
}

// armLocked cancels any scheduled firings and arms fresh warning and idle
// timers. Every firing captures the generation at arm time and re-checks it
// under the lock before touching state, so firings scheduled before a reset,
// disable, or stop are discarded even when the platform has already started
// them. Caller must hold mu.
func (t *Tracker) armLocked() {
	t.generation++
	gen := t.generation
	t.stopTimersLocked()

	timeout := t.cfg.Timeout
	if timeout < 0 {
		timeout = 0
	}
	// Warning lead times >= timeout logically clamp to "no warning".
	if t.cfg.WarningTime > 0 && t.cfg.WarningTime < timeout {
		t.warnTimer = time.AfterFunc(timeout-t.cfg.WarningTime, func() { t.fireWarning(gen) })
	}
	t.idleTimer = time.AfterFunc(timeout, func() { t.fireIdle(gen) })
}

// stopTimersLocked stops both timers. Caller must hold mu. Firings that
// already left the platform timer queue are discarded by the generation
// check instead.
func (t *Tracker) stopTimersLocked() {
	if t.warnTimer != nil {
		t.warnTimer.Stop()
		t.warnTimer = nil
	}
	if t.idleTimer != nil {
		t.idleTimer.Stop()
		t.idleTimer = nil
	}
}

func (t *Tracker) fireWarning(gen uint64) {
	t.mu.Lock()
	if gen != t.generation || !t.started || !t.enabled || t.state != StateActive {
		t.mu.Unlock()
		return
	}
	now := t.now()
	t.state = StateWarned
	tr := Transition{
		TrackerID: t.id,
		From:      StateActive,
		To:        StateWarned,
		At:        now,
		Remaining: t.cfg.WarningTime,
	}
	cb := t.onWarning
	if cb != nil {
		t.callbacks.Add(1)
	}
	t.mu.Unlock()

	t.logger.Debug("warning point reached",
		slog.String("tracker_id", t.id.String()),
		slog.Duration("remaining", tr.Remaining))

	if cb != nil {
		defer t.callbacks.Done()
		cb(tr)
	}
}

func (t *Tracker) fireIdle(gen uint64) {
	t.mu.Lock()
	if gen != t.generation || !t.started || !t.enabled || t.state == StateIdle {
		t.mu.Unlock()
		return
	}
	now := t.now()
	from := t.state
	t.state = StateIdle
	tr := Transition{
		TrackerID: t.id,
		From:      from,
		To:        StateIdle,
		At:        now,
		Remaining: 0,
	}
	cb := t.onIdle
	t.callbacks.Add(1)
	t.mu.Unlock()

	t.logger.Debug("idle point reached",
		slog.String("tracker_id", t.id.String()),
		slog.String("from", from.String()))

	defer t.callbacks.Done()
	cb(tr)
}

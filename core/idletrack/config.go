package idletrack

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/idlekit/core/activity"
)

// Config holds tracker configuration. The env tags allow process-level
// defaults to be loaded with the core/config package.
type Config struct {
	// Timeout is the inactivity duration that triggers the idle
	// transition. Values <= 0 are not rejected; they degrade to firing
	// idle on the next scheduling pass (callers should validate before
	// construction).
	Timeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"30m"`

	// WarningTime is the lead time before the idle point at which the
	// warning callback fires. Values >= Timeout disable the warning; this
	// is a defined edge case, not an error.
	WarningTime time.Duration `env:"IDLE_WARNING_TIME" envDefault:"5m"`

	// Throttle is the minimum spacing between two activity events being
	// treated as separate reset triggers. Excess events inside a window
	// are dropped, not queued. Set to 0 to disable throttling.
	Throttle time.Duration `env:"IDLE_THROTTLE" envDefault:"1s"`

	// Disabled starts the tracker with scheduling suspended. A disabled
	// tracker arms no timers and ignores activity until Enable is called.
	Disabled bool `env:"IDLE_DISABLED" envDefault:"false"`
}

// defaultConfig returns default configuration.
func defaultConfig() Config {
	return Config{
		Timeout:     30 * time.Minute,
		WarningTime: 5 * time.Minute, // Default warning lead time
		Throttle:    time.Second,     // Default throttle for activity bursts
	}
}

// Option is a functional option for configuring the tracker.
type Option func(*Tracker)

// WithWarningTime sets the lead time before idle at which the warning fires.
func WithWarningTime(d time.Duration) Option {
	return func(t *Tracker) {
		t.cfg.WarningTime = d
	}
}

// WithThrottle sets the minimum spacing between processed activity events.
// Set to 0 to process every qualifying event.
func WithThrottle(d time.Duration) Option {
	return func(t *Tracker) {
		t.cfg.Throttle = d
	}
}

// WithDisabled starts the tracker with scheduling suspended.
func WithDisabled() Option {
	return func(t *Tracker) {
		t.cfg.Disabled = true
	}
}

// WithOnWarning sets the callback fired when the warning point is reached.
// It receives the remaining time until idle, equal to the warning lead time.
func WithOnWarning(fn func(Transition)) Option {
	return func(t *Tracker) {
		t.onWarning = fn
	}
}

// WithOnActive sets the callback fired when activity or an explicit reset
// returns the tracker from idle to active. It is not fired for activity
// while already active.
func WithOnActive(fn func(Transition)) Option {
	return func(t *Tracker) {
		t.onActive = fn
	}
}

// WithActivitySource subscribes the tracker to an activity feed on Start.
// Without a source the tracker is driven only by time and the explicit
// ResetTimer, ExtendSession, and Observe operations.
func WithActivitySource(src activity.Source) Option {
	return func(t *Tracker) {
		t.source = src
	}
}

// WithLogger configures structured logging for state transitions.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

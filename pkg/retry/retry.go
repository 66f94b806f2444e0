package retry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dmitrymomot/idlekit/pkg/netstatus"
)

// Config holds retry configuration.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`

	// BaseDelay seeds the exponential backoff: the delay before attempt
	// n+1 is drawn uniformly from [0, min(BaseDelay*2^n, MaxDelay)].
	BaseDelay time.Duration `env:"RETRY_BASE_DELAY" envDefault:"500ms"`

	// MaxDelay caps the backoff window.
	MaxDelay time.Duration `env:"RETRY_MAX_DELAY" envDefault:"10s"`
}

// defaultConfig returns default configuration.
func defaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    10 * time.Second,
	}
}

type options struct {
	cfg     Config
	status  netstatus.Provider
	retryIf func(error) bool
	logger  *slog.Logger
}

// Option configures a retry run.
type Option func(*options)

// WithConfig replaces the whole retry configuration, typically loaded from
// the environment with the core/config package.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.MaxAttempts > 0 {
			o.cfg.MaxAttempts = cfg.MaxAttempts
		}
		if cfg.BaseDelay > 0 {
			o.cfg.BaseDelay = cfg.BaseDelay
		}
		if cfg.MaxDelay > 0 {
			o.cfg.MaxDelay = cfg.MaxDelay
		}
	}
}

// WithMaxAttempts sets the total attempt budget, including the first try.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cfg.MaxAttempts = n
		}
	}
}

// WithBaseDelay sets the backoff seed delay.
func WithBaseDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.cfg.BaseDelay = d
		}
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.cfg.MaxDelay = d
		}
	}
}

// WithNetstatus injects a network-status provider. When the provider reports
// offline before an attempt, the run fails fast with ErrOffline.
func WithNetstatus(p netstatus.Provider) Option {
	return func(o *options) {
		o.status = p
	}
}

// WithRetryIf sets the predicate deciding whether an error is retryable.
// Non-retryable errors are returned immediately. Default: every error is
// retryable.
func WithRetryIf(fn func(error) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.retryIf = fn
		}
	}
}

// WithLogger sets the logger for attempt outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Do runs op until it succeeds, the attempt budget is exhausted, the error
// is deemed non-retryable, the network goes offline, or ctx is cancelled.
func Do(ctx context.Context, op func(context.Context) error, opts ...Option) error {
	_, err := DoValue(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, opts...)
	return err
}

// DoValue is like Do for operations that produce a value. On failure the
// zero value is returned together with the classified error.
func DoValue[T any](ctx context.Context, op func(context.Context) (T, error), opts ...Option) (T, error) {
	o := &options{
		cfg:     defaultConfig(),
		retryIf: func(error) bool { return true },
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}

	var zero T
	var lastErr error

	for attempt := 0; attempt < o.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, errors.Join(err, lastErr)
		}
		if o.status != nil && o.status.Offline() {
			return zero, errors.Join(ErrOffline, lastErr)
		}

		value, err := op(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if !o.retryIf(err) {
			return zero, err
		}

		o.logger.DebugContext(ctx, "attempt failed",
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", o.cfg.MaxAttempts),
			slog.Any("error", err))

		if attempt == o.cfg.MaxAttempts-1 {
			break
		}
		if err := sleepContext(ctx, o.backoff(attempt)); err != nil {
			return zero, errors.Join(err, lastErr)
		}
	}

	return zero, errors.Join(ErrMaxAttemptsReached, lastErr)
}

// backoff returns the delay before the next attempt: full jitter over an
// exponentially growing window, capped at MaxDelay.
func (o *options) backoff(attempt int) time.Duration {
	window := o.cfg.BaseDelay << uint(attempt)
	if window <= 0 || window > o.cfg.MaxDelay {
		window = o.cfg.MaxDelay
	}
	if window <= 0 {
		return 0
	}
	return rand.N(window)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

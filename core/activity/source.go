package activity

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultBufferSize is the default buffer size for the in-memory source.
	DefaultBufferSize = 64
)

// Source is a feed of user-interaction events. A tracker subscribes to the
// feed at start and releases it at stop; the bindings are established and
// torn down atomically rather than relying on ambient global listeners.
type Source interface {
	// Events returns the read-only event channel. The channel is closed
	// when the source is closed.
	Events() <-chan Event

	// Close shuts down the source. After Close, Emit returns an error.
	Close() error
}

// ChannelSource implements Source using a buffered Go channel. It is the
// in-memory adapter between a platform's raw input events and a tracker.
//
// ChannelSource is thread-safe and can handle concurrent emitters. Emit is
// non-blocking: when the buffer is full the event is dropped, since a dropped
// activity event only delays a timer reset by at most one throttle window.
//
// Example:
//
//	source := activity.NewChannelSource(
//	    activity.WithBufferSize(64),
//	    activity.WithSourceLogger(logger),
//	)
//	defer source.Close()
//
//	source.Emit(ctx, activity.KindPointerDown)
type ChannelSource struct {
	ch     chan Event
	logger *slog.Logger
	now    func() time.Time
	mu     sync.RWMutex
	closed bool
}

// SourceOption configures a ChannelSource.
type SourceOption func(*ChannelSource)

// WithBufferSize sets the buffer size for the event channel.
// Default is 64. A larger buffer tolerates longer consumer stalls
// before events are dropped.
func WithBufferSize(size int) SourceOption {
	return func(s *ChannelSource) {
		if size > 0 {
			s.ch = make(chan Event, size)
		}
	}
}

// WithSourceLogger configures structured logging for the source.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithSourceLogger(logger *slog.Logger) SourceOption {
	return func(s *ChannelSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewChannelSource creates a new in-memory activity source.
func NewChannelSource(opts ...SourceOption) *ChannelSource {
	s := &ChannelSource{
		ch:     make(chan Event, DefaultBufferSize),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Emit records a user interaction of the given kind, stamped with the
// current time. Returns ErrSourceClosed after Close, ErrBufferFull when the
// event was dropped, or the context error if ctx is already done.
func (s *ChannelSource) Emit(ctx context.Context, kind Kind) error {
	return s.EmitEvent(ctx, Event{Kind: kind, At: s.now()})
}

// EmitEvent records a pre-built event. Most callers want Emit.
func (s *ChannelSource) EmitEvent(ctx context.Context, ev Event) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrSourceClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.ch <- ev:
		s.logger.DebugContext(ctx, "activity event emitted",
			slog.String("kind", ev.Kind.String()))
		return nil
	default:
		s.logger.DebugContext(ctx, "activity event dropped",
			slog.String("kind", ev.Kind.String()))
		return ErrBufferFull
	}
}

// Events implements the Source interface.
func (s *ChannelSource) Events() <-chan Event {
	return s.ch
}

// Close shuts down the source by closing the underlying channel, which
// signals subscribed trackers that no more events will arrive.
func (s *ChannelSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	s.closed = true
	close(s.ch)
	return nil
}

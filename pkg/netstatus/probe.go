package netstatus

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"
)

// DialFunc opens a connection to the probe target. Swappable for tests.
type DialFunc func(network, addr string, timeout time.Duration) (net.Conn, error)

// ProbeProvider derives connectivity by periodically dialing a target
// address. A failed dial marks the provider offline until a later probe
// succeeds. It embeds ManualProvider for state and subscriber fan-out.
type ProbeProvider struct {
	*ManualProvider

	addr     string
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	dial     DialFunc

	mu     sync.Mutex
	cancel context.CancelFunc
}

// ProbeOption configures a ProbeProvider.
type ProbeOption func(*ProbeProvider)

// WithProbeInterval sets the spacing between probes. Default is 30 seconds.
func WithProbeInterval(interval time.Duration) ProbeOption {
	return func(p *ProbeProvider) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithProbeTimeout sets the per-dial timeout. Default is 5 seconds.
func WithProbeTimeout(timeout time.Duration) ProbeOption {
	return func(p *ProbeProvider) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithProbeLogger sets the logger for probe outcomes.
func WithProbeLogger(logger *slog.Logger) ProbeOption {
	return func(p *ProbeProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDialFunc replaces the dialer, mainly for tests.
func WithDialFunc(dial DialFunc) ProbeOption {
	return func(p *ProbeProvider) {
		if dial != nil {
			p.dial = dial
		}
	}
}

// NewProbeProvider creates a probe provider targeting addr (host:port).
// Call Start to begin probing; until the first probe completes the provider
// reports online.
func NewProbeProvider(addr string, opts ...ProbeOption) *ProbeProvider {
	p := &ProbeProvider{
		ManualProvider: NewManualProvider(),
		addr:           addr,
		interval:       30 * time.Second,
		timeout:        5 * time.Second,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		dial:           net.DialTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start probes immediately and then on every interval tick. This is a
// blocking operation that runs until the context is cancelled or Stop is
// called; run it in a goroutine or an errgroup.
func (p *ProbeProvider) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return ErrAlreadyStarted
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.mu.Unlock()

	p.logger.InfoContext(ctx, "connectivity probe started",
		slog.String("addr", p.addr),
		slog.Duration("interval", p.interval))

	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.InfoContext(context.Background(), "connectivity probe stopping")
			return ctx.Err()
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

// Stop cancels the probe loop. Returns ErrNotStarted if Start was not
// called.
func (p *ProbeProvider) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel == nil {
		return ErrNotStarted
	}
	p.cancel()
	p.cancel = nil
	return nil
}

func (p *ProbeProvider) probe(ctx context.Context) {
	conn, err := p.dial("tcp", p.addr, p.timeout)
	if err != nil {
		p.logger.DebugContext(ctx, "probe failed", slog.Any("error", err))
		p.SetOffline(true)
		return
	}
	_ = conn.Close()
	p.SetOffline(false)
}

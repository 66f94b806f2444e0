package netstatus

import (
	"context"
	"sync"
	"time"
)

// subscriberBufferSize bounds how many undelivered transitions a subscriber
// can lag behind before drops start.
const subscriberBufferSize = 4

// ManualProvider is a Provider whose state is set explicitly by the owner,
// typically from a platform connectivity signal. It is also the building
// block for derived providers such as ProbeProvider.
//
// The zero value is not usable; use NewManualProvider.
type ManualProvider struct {
	mu      sync.Mutex
	offline bool
	subs    map[uint64]chan Status
	nextID  uint64
	now     func() time.Time
}

// NewManualProvider creates a provider in the online state.
func NewManualProvider() *ManualProvider {
	return &ManualProvider{
		subs: make(map[uint64]chan Status),
		now:  time.Now,
	}
}

// Offline implements the Provider interface.
func (p *ManualProvider) Offline() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offline
}

// SetOffline updates the connectivity state. Subscribers are notified only
// on actual transitions; redundant sets are ignored. Notification is
// non-blocking: a subscriber with a full buffer misses the transition rather
// than stalling the caller.
func (p *ManualProvider) SetOffline(offline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.offline == offline {
		return
	}
	p.offline = offline
	status := Status{Offline: offline, At: p.now()}

	// Fan-out happens under the lock so a concurrent unsubscribe cannot
	// close a channel mid-send. Sends are non-blocking, so holding the
	// lock here is cheap.
	for _, ch := range p.subs {
		select {
		case ch <- status:
		default:
		}
	}
}

// Subscribe implements the Provider interface.
func (p *ManualProvider) Subscribe(ctx context.Context) <-chan Status {
	ch := make(chan Status, subscriberBufferSize)

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = ch
	p.mu.Unlock()

	// Cleanup runs in its own goroutine so Subscribe never blocks and a
	// cancelled subscriber is released promptly.
	context.AfterFunc(ctx, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
		close(ch)
	})

	return ch
}

package netstatus

import (
	"context"
	"time"
)

// Status is a point-in-time connectivity observation.
type Status struct {
	Offline bool
	At      time.Time
}

// Provider reports network connectivity. It replaces process-wide mutable
// offline flags with an explicitly injected dependency: components that care
// about connectivity receive a Provider instead of reading hidden shared
// state.
type Provider interface {
	// Offline reports the current connectivity state.
	Offline() bool

	// Subscribe returns a channel of status transitions. The channel is
	// closed and the subscription released when ctx is cancelled.
	// Delivery is best-effort: transitions may be dropped for slow
	// consumers, but the latest state is always available via Offline.
	Subscribe(ctx context.Context) <-chan Status
}

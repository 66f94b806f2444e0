// Package netstatus provides an injectable network-status abstraction: a
// small Provider interface exposing the current offline state and a
// subscribe-to-change operation.
//
// Components that behave differently while offline (see pkg/retry) receive a
// Provider explicitly instead of consulting a process-global flag, which
// keeps connectivity state visible at construction sites and trivially
// fakeable in tests.
//
// # Implementations
//
// ManualProvider is driven by the owner:
//
//	provider := netstatus.NewManualProvider()
//	provider.SetOffline(true) // e.g. from a platform connectivity signal
//
// ProbeProvider derives state by periodically dialing a target:
//
//	provider := netstatus.NewProbeProvider("1.1.1.1:443",
//	    netstatus.WithProbeInterval(15*time.Second),
//	)
//	go provider.Start(ctx)
//	defer provider.Stop()
//
// # Subscriptions
//
// Subscribe returns a channel of transitions that closes when the
// subscriber's context is cancelled. Delivery is best-effort: a slow
// subscriber misses intermediate transitions rather than blocking the
// provider, and can always read the current state with Offline.
package netstatus

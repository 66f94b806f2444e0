// Package retry wraps fallible operations with network-aware retries:
// exponential backoff with full jitter, a configurable attempt budget, and
// fail-fast behavior while the network is known to be offline.
//
// # Usage
//
//	err := retry.Do(ctx, func(ctx context.Context) error {
//	    return client.Sync(ctx)
//	},
//	    retry.WithMaxAttempts(5),
//	    retry.WithBaseDelay(200*time.Millisecond),
//	    retry.WithNetstatus(provider),
//	)
//
// Operations that produce values use DoValue:
//
//	booking, err := retry.DoValue(ctx, fetchBooking)
//
// # Backoff
//
// The delay before attempt n+1 is drawn uniformly from
// [0, min(BaseDelay*2^n, MaxDelay)] — full jitter, which avoids retry
// stampedes when many clients fail at once.
//
// # Offline Behavior
//
// With a netstatus.Provider injected, the run checks connectivity before
// every attempt and returns ErrOffline immediately when offline, joined with
// the last attempt error if one exists. Without a provider, attempts proceed
// regardless.
//
// # Error Classification
//
// WithRetryIf short-circuits on permanent errors:
//
//	retry.WithRetryIf(func(err error) bool {
//	    return !errors.Is(err, ErrPermissionDenied)
//	})
//
// When the budget is exhausted, the returned error joins
// ErrMaxAttemptsReached with the last attempt's error, so both
// errors.Is(err, retry.ErrMaxAttemptsReached) and inspection of the
// underlying cause work.
package retry

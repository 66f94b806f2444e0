// Package idletrack detects continuous absence of user activity and drives
// idle-session workflows such as auto-logout with an advance warning.
//
// A Tracker maintains a countdown toward a configured inactivity timeout,
// fires a warning callback ahead of expiry, fires an idle callback at expiry,
// and returns to the active state on qualifying activity or an explicit
// reset. Activity arrives through the core/activity package; the tracker
// depends only on wall-clock time and the event feed supplied by its
// environment.
//
// # State Machine
//
// The tracker is always in one of three states:
//
//   - Active: qualifying activity was observed within the timeout.
//   - Warned: the warning point passed; remaining time is at most the
//     warning lead time but above zero.
//   - Idle: the full timeout elapsed without qualifying activity.
//
// Transitions:
//
//	Active -> Warned   at timeout - warningTime (fires the warning callback)
//	Active -> Idle     at timeout (fires the idle callback)
//	Warned -> Idle     at timeout (fires the idle callback)
//	any    -> Active   on throttled activity or ResetTimer/ExtendSession
//	                   (fires the active callback only when leaving Idle)
//
// Idle is not terminal: activity or an explicit reset returns to Active and
// starts a new cycle.
//
// # Usage
//
//	source := activity.NewChannelSource()
//	defer source.Close()
//
//	tracker, err := idletrack.New(30*time.Minute,
//	    func(tr idletrack.Transition) { endSession() },
//	    idletrack.WithWarningTime(5*time.Minute),
//	    idletrack.WithOnWarning(func(tr idletrack.Transition) {
//	        showWarning(tr.Remaining)
//	    }),
//	    idletrack.WithActivitySource(source),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := tracker.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer tracker.Stop()
//
// Process-level defaults can be loaded from the environment:
//
//	var cfg idletrack.Config
//	config.MustLoad(&cfg)
//	tracker, err := idletrack.NewWithConfig(cfg, onIdle)
//
// # Throttling
//
// Rapid activity bursts must not cause unbounded rescheduling work. At most
// one qualifying event per throttle window (default one second) re-arms the
// timers; excess events in the window are dropped, not queued. Explicit
// ResetTimer and ExtendSession calls are control operations and bypass the
// throttle.
//
// # Re-Arming Discipline
//
// Every reset cancels and replaces the scheduled warning and idle firings.
// Scheduled firings capture a generation counter at arm time and re-check it
// under the tracker lock before invoking any callback, so a firing that the
// platform timer already dispatched before a reset, Disable, or Stop is
// discarded. After Stop returns, no callback fires.
//
// # Concurrency
//
// All methods are safe for concurrent use. Callbacks run synchronously on
// the tracker's internal goroutines and are expected to return quickly; they
// may call ResetTimer, ExtendSession, Enable, or Disable, but must not call
// Stop.
package idletrack

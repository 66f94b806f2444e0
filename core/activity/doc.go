// Package activity models user-interaction events and the sources that feed
// them to inactivity trackers.
//
// The package defines the fixed set of qualifying interaction kinds
// (pointer-down, pointer-move, key-press, scroll, touch-start, click), the
// Event type that stamps a kind with an observation time, and the Source
// interface a tracker subscribes to.
//
// # Usage
//
// Bridge platform input into a source and hand it to a tracker:
//
//	source := activity.NewChannelSource()
//	defer source.Close()
//
//	// Somewhere in the input layer:
//	source.Emit(ctx, activity.KindKeyPress)
//
// The included ChannelSource is an in-memory implementation suitable for
// single-process applications and tests. Custom implementations can adapt any
// event feed (input device hooks, terminal input, RPC) by satisfying the
// two-method Source interface.
//
// # Delivery Semantics
//
// Emit is non-blocking; events are dropped rather than queued when the buffer
// is full. Consumers tolerate dropped events because activity is sampled, not
// accounted: losing one event delays a timer reset by at most one throttle
// window.
package activity

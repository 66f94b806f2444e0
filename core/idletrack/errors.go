package idletrack

import "errors"

var (
	// ErrNilIdleCallback is returned when constructing a tracker without
	// an idle callback.
	ErrNilIdleCallback = errors.New("idle callback is required")

	// ErrAlreadyStarted is returned when starting a tracker that is
	// already running.
	ErrAlreadyStarted = errors.New("tracker already started")

	// ErrNotStarted is returned when stopping a tracker that is not
	// running.
	ErrNotStarted = errors.New("tracker not started")
)

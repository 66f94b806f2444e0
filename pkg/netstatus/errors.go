package netstatus

import "errors"

var (
	// ErrAlreadyStarted is returned when starting a probe provider that is
	// already running.
	ErrAlreadyStarted = errors.New("probe provider already started")

	// ErrNotStarted is returned when stopping a probe provider that is not
	// running.
	ErrNotStarted = errors.New("probe provider not started")
)

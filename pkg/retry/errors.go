package retry

import "errors"

var (
	// ErrOffline is returned when the network-status provider reports
	// offline before an attempt; the operation fails fast instead of
	// burning attempts against a dead network.
	ErrOffline = errors.New("network is offline")

	// ErrMaxAttemptsReached is returned, joined with the last attempt's
	// error, when every attempt has failed.
	ErrMaxAttemptsReached = errors.New("maximum retry attempts reached")
)

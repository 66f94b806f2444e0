package activity

import "errors"

var (
	// ErrSourceClosed is returned when emitting to a closed source.
	ErrSourceClosed = errors.New("activity source is closed")

	// ErrBufferFull is returned when an emitted event is dropped because
	// the source buffer is full.
	ErrBufferFull = errors.New("activity buffer is full")
)

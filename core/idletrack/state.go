package idletrack

import (
	"time"

	"github.com/google/uuid"
)

// State is the tracker's position in the inactivity cycle.
type State uint8

const (
	// StateActive means qualifying activity was observed recently.
	StateActive State = iota

	// StateWarned means the warning point has passed but the idle point
	// has not; remaining time is in (0, warning lead time].
	StateWarned

	// StateIdle means no qualifying activity was observed for the full
	// timeout. Not terminal: activity or an explicit reset returns the
	// tracker to StateActive.
	StateIdle
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWarned:
		return "warned"
	case StateIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Transition describes a single state change and is passed to the tracker's
// callbacks. TrackerID is stable for the tracker's lifetime, which lets one
// callback serve multiple trackers.
type Transition struct {
	TrackerID uuid.UUID
	From      State
	To        State
	At        time.Time
	Remaining time.Duration
}

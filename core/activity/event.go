package activity

import "time"

// Kind identifies a class of user interaction observed on the monitored surface.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPointerDown
	KindPointerMove
	KindKeyPress
	KindScroll
	KindTouchStart
	KindClick
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindPointerDown: "pointer_down",
	KindPointerMove: "pointer_move",
	KindKeyPress:    "key_press",
	KindScroll:      "scroll",
	KindTouchStart:  "touch_start",
	KindClick:       "click",
}

// String returns the canonical name of the event kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Qualifies reports whether the kind counts as user activity for
// inactivity tracking. Unknown kinds never qualify.
func (k Kind) Qualifies() bool {
	return k > KindUnknown && k <= KindClick
}

// Event is a single observed user interaction.
type Event struct {
	Kind Kind
	At   time.Time
}

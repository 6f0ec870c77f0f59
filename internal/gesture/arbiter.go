// Package gesture implements the pointer gesture controllers for the wall:
// exclusive item dragging with edge auto-scroll and unbounded canvas growth,
// and background panning. The controllers are pure state machines driven by
// the widget layer, which keeps them testable without a display.
package gesture

// sessionKind identifies which gesture currently owns the pointer.
type sessionKind int

const (
	kindNone sessionKind = iota
	kindDrag
	kindPan
)

// Arbiter grants exclusive ownership of the single pointer session. Holding
// a drag inherently forbids starting a pan and vice versa; a second acquire
// while a session is open is refused.
//
// Fyne delivers Dragged events only to the widget that began the gesture and
// always closes with DragEnd, so acquisition and release bracket exactly one
// pointer-down to pointer-up sequence.
type Arbiter struct {
	held sessionKind
}

// NewArbiter creates an arbiter with no active session.
func NewArbiter() *Arbiter {
	return &Arbiter{}
}

func (a *Arbiter) acquire(k sessionKind) bool {
	if a.held != kindNone {
		return false
	}
	a.held = k
	return true
}

func (a *Arbiter) release(k sessionKind) {
	if a.held == k {
		a.held = kindNone
	}
}

// Busy reports whether any gesture session is open.
func (a *Arbiter) Busy() bool {
	return a.held != kindNone
}

package gesture

import (
	"media-wall/internal/layout"
	"media-wall/pkg/geometry"
)

// clickThreshold is the pointer displacement, in canvas pixels, beyond which
// a gesture counts as a drag and must not also fire the item's selection.
const clickThreshold = 4.0

// DragCommit is the result of a completed drag gesture.
type DragCommit struct {
	ItemID string
	Pos    geometry.Point2D
	Z      int
	Moved  bool // displacement exceeded the click threshold
}

// dragSession is the transient state of the one active drag. It exists only
// between Begin and End.
type dragSession struct {
	itemID     string
	itemSize   geometry.Size
	grabOffset geometry.Point2D // pointer minus item top-left, canvas space
	startPos   geometry.Point2D // pointer at gesture start, canvas space
	last       geometry.Point2D // last candidate top-left
	moved      bool
}

// DragController owns the single active drag gesture. It computes a canvas
// candidate position for every pointer move, grows the canvas and nudges the
// viewport as needed, and commits position plus a fresh stacking value on
// release.
type DragController struct {
	arbiter   *Arbiter
	bounds    *layout.BoundsManager
	scroller  *EdgeAutoScroller
	allocateZ func() int

	session    *dragSession
	recentDrag bool
}

// NewDragController wires a drag controller to the shared session arbiter,
// the canvas bounds, the auto-scroller, and the stacking allocator.
func NewDragController(arbiter *Arbiter, bounds *layout.BoundsManager, scroller *EdgeAutoScroller, allocateZ func() int) *DragController {
	return &DragController{
		arbiter:   arbiter,
		bounds:    bounds,
		scroller:  scroller,
		allocateZ: allocateZ,
	}
}

// Begin opens a drag session for the item under the pointer. It returns false
// when another session (drag or pan) is already active; the conflicting
// pointer is then ignored entirely.
func (c *DragController) Begin(itemID string, itemPos geometry.Point2D, itemSize geometry.Size, pointerCanvas geometry.Point2D) bool {
	if !c.arbiter.acquire(kindDrag) {
		return false
	}
	c.session = &dragSession{
		itemID:     itemID,
		itemSize:   itemSize,
		grabOffset: pointerCanvas.Sub(itemPos),
		startPos:   pointerCanvas,
		last:       itemPos,
	}
	return true
}

// Move advances the session for one pointer event. Both positions describe
// the same pointer: pointerCanvas in canvas space (scroll already applied),
// pointerViewport relative to the visible window. It returns the candidate
// top-left the widget layer should apply immediately, plus whether the canvas
// grew and the surface must be resized before the next event.
func (c *DragController) Move(pointerCanvas, pointerViewport geometry.Point2D) (candidate geometry.Point2D, grew bool, ok bool) {
	if c.session == nil {
		return geometry.Point2D{}, false, false
	}

	candidate = pointerCanvas.Sub(c.session.grabOffset)

	// Bounds growth and auto-scroll are applied before the candidate is
	// rendered, so scroll math stays consistent within this event.
	grew = c.bounds.MaybeGrow(candidate, c.session.itemSize)
	c.scroller.Tick(pointerViewport)

	if pointerCanvas.Distance(c.session.startPos) > clickThreshold {
		c.session.moved = true
	}
	c.session.last = candidate
	return candidate, grew, true
}

// End commits the last candidate position, allocates a new stacking value,
// and closes the session. The session is released on every path.
func (c *DragController) End() (DragCommit, bool) {
	if c.session == nil {
		return DragCommit{}, false
	}
	s := c.session
	c.session = nil
	c.arbiter.release(kindDrag)
	c.recentDrag = s.moved

	return DragCommit{
		ItemID: s.itemID,
		Pos:    s.last,
		Z:      c.allocateZ(),
		Moved:  s.moved,
	}, true
}

// Active reports whether a drag session is open.
func (c *DragController) Active() bool {
	return c.session != nil
}

// DragItemID returns the id of the item mid-drag, or "".
func (c *DragController) DragItemID() string {
	if c.session == nil {
		return ""
	}
	return c.session.itemID
}

// ConsumeRecentDrag reports whether the gesture that just ended was a real
// drag, and clears the flag. A click arriving right after a drag consults
// this to suppress the item's selection callback.
func (c *DragController) ConsumeRecentDrag() bool {
	moved := c.recentDrag
	c.recentDrag = false
	return moved
}

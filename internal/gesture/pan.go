package gesture

import (
	"media-wall/internal/layout"
	"media-wall/pkg/geometry"
)

// panSession is the transient state of an active background pan.
type panSession struct {
	startScroll  geometry.Point2D
	startPointer geometry.Point2D
}

// PanController drags the viewport itself rather than an item: the canvas
// follows the hand, opposite to a scrollbar. It shares the session arbiter
// with the drag controller, so the two gestures are mutually exclusive.
type PanController struct {
	arbiter  *Arbiter
	viewport Viewport
	bounds   *layout.BoundsManager
	session  *panSession
}

// NewPanController wires a pan controller to the shared arbiter, viewport,
// and canvas bounds.
func NewPanController(arbiter *Arbiter, viewport Viewport, bounds *layout.BoundsManager) *PanController {
	return &PanController{arbiter: arbiter, viewport: viewport, bounds: bounds}
}

// Begin opens a pan session at the given pointer position (viewport space).
// Returns false if a drag or pan is already active.
func (c *PanController) Begin(pointer geometry.Point2D) bool {
	if !c.arbiter.acquire(kindPan) {
		return false
	}
	c.session = &panSession{
		startScroll:  c.viewport.ScrollOffset(),
		startPointer: pointer,
	}
	return true
}

// Move updates the scroll offset so the canvas tracks the hand:
// offset = startScroll - (pointer - startPointer).
func (c *PanController) Move(pointer geometry.Point2D) bool {
	if c.session == nil {
		return false
	}
	offset := c.session.startScroll.Sub(pointer.Sub(c.session.startPointer))
	c.viewport.SetScrollOffset(clampOffset(offset, c.viewport.ViewSize(), c.bounds.Size()))
	return true
}

// End closes the pan session.
func (c *PanController) End() {
	if c.session == nil {
		return
	}
	c.session = nil
	c.arbiter.release(kindPan)
}

// Active reports whether a pan session is open.
func (c *PanController) Active() bool {
	return c.session != nil
}

package gesture

import (
	"math"

	"media-wall/internal/layout"
	"media-wall/pkg/geometry"
)

// EdgeAutoScroller nudges the viewport while a drag is in progress, so the
// user can drag an item into canvas area that is not yet visible. Scrolling
// is constant speed: a fixed step per pointer event, not proportional to how
// deep the pointer sits in the margin.
type EdgeAutoScroller struct {
	viewport Viewport
	bounds   *layout.BoundsManager
	margin   float64
	step     float64
}

// NewEdgeAutoScroller creates an auto-scroller over the given viewport and
// canvas bounds. margin is the edge proximity that triggers scrolling; step
// is the scroll distance per event, both in pixels.
func NewEdgeAutoScroller(viewport Viewport, bounds *layout.BoundsManager, margin, step float64) *EdgeAutoScroller {
	return &EdgeAutoScroller{viewport: viewport, bounds: bounds, margin: margin, step: step}
}

// Tick adjusts the scroll offset when the pointer, in viewport coordinates,
// is within the margin of any edge. Pointers in the interior do nothing.
func (s *EdgeAutoScroller) Tick(pointer geometry.Point2D) {
	view := s.viewport.ViewSize()
	offset := s.viewport.ScrollOffset()
	changed := false

	switch {
	case pointer.X < s.margin:
		offset.X -= s.step
		changed = true
	case pointer.X > view.Width-s.margin:
		offset.X += s.step
		changed = true
	}

	switch {
	case pointer.Y < s.margin:
		offset.Y -= s.step
		changed = true
	case pointer.Y > view.Height-s.margin:
		offset.Y += s.step
		changed = true
	}

	if !changed {
		return
	}
	s.viewport.SetScrollOffset(clampOffset(offset, view, s.bounds.Size()))
}

// clampOffset keeps the offset within the scrollable range of the canvas.
func clampOffset(offset geometry.Point2D, view, canvas geometry.Size) geometry.Point2D {
	maxX := math.Max(canvas.Width-view.Width, 0)
	maxY := math.Max(canvas.Height-view.Height, 0)
	offset.X = math.Min(math.Max(offset.X, 0), maxX)
	offset.Y = math.Min(math.Max(offset.Y, 0), maxY)
	return offset
}

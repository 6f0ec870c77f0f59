package gesture

import (
	"media-wall/pkg/geometry"
)

// Viewport abstracts the scrollable window onto the canvas. The Fyne scroll
// wrapper implements it in the widget layer; tests use a fake.
type Viewport interface {
	// ScrollOffset returns the current scroll position in canvas pixels.
	ScrollOffset() geometry.Point2D

	// SetScrollOffset moves the viewport. Implementations clamp to the
	// scrollable range.
	SetScrollOffset(geometry.Point2D)

	// ViewSize returns the visible size of the viewport.
	ViewSize() geometry.Size
}

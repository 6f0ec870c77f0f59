package layout

import (
	"media-wall/pkg/geometry"
)

// BoundsManager owns the logical canvas size. The canvas grows by a fixed
// increment when activity approaches an edge and never shrinks within one
// item-set session; Reset starts a fresh session.
//
// All mutation happens on the UI event goroutine, so no locking is needed.
type BoundsManager struct {
	size      geometry.Size
	increment float64
	buffer    float64
}

// NewBoundsManager creates a bounds manager with the given growth increment
// and edge buffer, both in canvas pixels.
func NewBoundsManager(increment, buffer float64) *BoundsManager {
	return &BoundsManager{increment: increment, buffer: buffer}
}

// Reset starts a new session with bounds equal to the viewport.
func (b *BoundsManager) Reset(viewport geometry.Size) {
	b.size = viewport
}

// Size returns the current canvas bounds.
func (b *BoundsManager) Size() geometry.Size {
	return b.size
}

// SetAtLeast raises the bounds to cover s. Axes already larger are kept.
func (b *BoundsManager) SetAtLeast(s geometry.Size) {
	if s.Width > b.size.Width {
		b.size.Width = s.Width
	}
	if s.Height > b.size.Height {
		b.size.Height = s.Height
	}
}

// MaybeGrow extends an axis by one fixed increment when the item at pos would
// come within the buffer of that axis's bound. It reports whether either axis
// grew, so the caller can resize the rendered surface before the next event.
func (b *BoundsManager) MaybeGrow(pos geometry.Point2D, item geometry.Size) bool {
	grew := false
	if pos.X+item.Width+b.buffer > b.size.Width {
		b.size.Width += b.increment
		grew = true
	}
	if pos.Y+item.Height+b.buffer > b.size.Height {
		b.size.Height += b.increment
		grew = true
	}
	return grew
}
